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

package avl

import (
	"fmt"
	"iter"
	"strings"
)

// Order selects one of the four traversals.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

var orderNames = [...]string{"pre-order", "in-order", "post-order", "level-order"}
var orderLabels = [...]string{"Pre-order", "In-order", "Post-order", "Level-order"}

// AllOrders lists the traversals in display order.
func AllOrders() []Order {
	return []Order{PreOrder, InOrder, PostOrder, LevelOrder}
}

func (o Order) String() string {
	if o < PreOrder || o > LevelOrder {
		return fmt.Sprintf("order(%d)", int(o))
	}
	return orderNames[o]
}

// Label is the capitalised name used as an output prefix.
func (o Order) Label() string {
	if o < PreOrder || o > LevelOrder {
		return o.String()
	}
	return orderLabels[o]
}

// ParseOrder accepts "pre", "preorder", "pre-order" and the like, plus
// "bfs"/"breadth" for level order.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	switch name {
	case "pre", "preorder":
		return PreOrder, nil
	case "in", "inorder", "sorted":
		return InOrder, nil
	case "post", "postorder":
		return PostOrder, nil
	case "level", "levelorder", "bfs", "breadth", "breadthfirst":
		return LevelOrder, nil
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

// Walk returns the traversal for o. An unknown order yields nothing.
func (tree *Tree) Walk(o Order) iter.Seq[int] {
	switch o {
	case PreOrder:
		return tree.PreOrder()
	case InOrder:
		return tree.InOrder()
	case PostOrder:
		return tree.PostOrder()
	case LevelOrder:
		return tree.LevelOrder()
	}
	return func(yield func(int) bool) {}
}

// PreOrder yields node, left subtree, right subtree.
func (tree *Tree) PreOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		tree.root.preOrder(yield)
	}
}

// InOrder yields keys in ascending order.
func (tree *Tree) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		tree.root.inOrder(yield)
	}
}

// PostOrder yields left subtree, right subtree, node.
func (tree *Tree) PostOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		tree.root.postOrder(yield)
	}
}

// LevelOrder yields keys breadth first, left to right within a depth.
func (tree *Tree) LevelOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		if tree.root == nil {
			return
		}
		queue := []*Node{tree.root}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			if !yield(node.key) {
				return
			}
			if node.left != nil {
				queue = append(queue, node.left)
			}
			if node.right != nil {
				queue = append(queue, node.right)
			}
		}
	}
}

// the recursive walkers return false once the consumer stops

func (n *Node) preOrder(yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.key) && n.left.preOrder(yield) && n.right.preOrder(yield)
}

func (n *Node) inOrder(yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(yield) && yield(n.key) && n.right.inOrder(yield)
}

func (n *Node) postOrder(yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return n.left.postOrder(yield) && n.right.postOrder(yield) && yield(n.key)
}

// Levels groups keys by depth, root first.
func (tree *Tree) Levels() [][]int {
	var levels [][]int
	if tree.root == nil {
		return levels
	}
	current := []*Node{tree.root}
	for len(current) > 0 {
		var next []*Node
		keys := make([]int, 0, len(current))
		for _, node := range current {
			keys = append(keys, node.key)
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		levels = append(levels, keys)
		current = next
	}
	return levels
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[int]) []int {
	keys := []int{}
	for key := range seq {
		keys = append(keys, key)
	}
	return keys
}
