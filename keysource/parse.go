// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package keysource turns a bracketed tree description such as
//
//	(8 (3 (1) (6)) (10))
//
// into the sequence of keys met by a pre-order walk of the tree it
// describes. Each number opens a node, which becomes the left child of the
// enclosing node, or its right child if the left one is taken. A closing
// bracket ends the most recent node.
package keysource

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Node is a vertex of the parsed, unbalanced tree.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// Parse builds the tree described by input.
func Parse(input string) (*Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	var root *Node
	var stack []*Node
	depth := 0

	for _, tok := range tokens {
		switch tok.Kind {
		case Open:
			depth++

		case Close:
			if depth == 0 || len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected ')' at offset %d", ErrUnbalancedBrackets, tok.Offset)
			}
			depth--
			stack = stack[:len(stack)-1]

		case Number:
			node := &Node{Value: tok.Value}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: %d at offset %d", ErrMultipleRoots, tok.Value, tok.Offset)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				switch {
				case parent.Left == nil:
					parent.Left = node
				case parent.Right == nil:
					parent.Right = node
				default:
					return nil, fmt.Errorf("%w: %d under %d at offset %d", ErrTooManyChildren, tok.Value, parent.Value, tok.Offset)
				}
			}
			stack = append(stack, node)
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("%w: %d '(' left open", ErrUnbalancedBrackets, depth)
	}
	if root == nil {
		return nil, ErrNoTree
	}
	return root, nil
}

// PreOrder lists the keys node first, then left subtree, then right.
// The parsed tree is not balanced, so the walk keeps its own stack.
func (n *Node) PreOrder() []int {
	var keys []int
	if n == nil {
		return keys
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, node.Value)
		if node.Right != nil {
			stack = append(stack, node.Right)
		}
		if node.Left != nil {
			stack = append(stack, node.Left)
		}
	}
	return keys
}

// Keys parses input and returns its pre-order key sequence.
func Keys(input string) ([]int, error) {
	root, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return root.PreOrder(), nil
}

// ReadFirstLine returns the first line of the file at path. Only the first
// line carries the tree description.
func ReadFirstLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("input file %s not found: %w", path, err)
		}
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// tree descriptions can be long single lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 64*1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return "", fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	line := strings.TrimRight(scanner.Text(), "\r")
	if strings.TrimSpace(line) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}
	return line, nil
}

// Load reads the file at path and returns its pre-order key sequence.
func Load(path string) ([]int, error) {
	line, err := ReadFirstLine(path)
	if err != nil {
		return nil, err
	}
	keys, err := Keys(line)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return keys, nil
}
