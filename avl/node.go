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

// Node is a single key in the tree. A nil *Node is the empty subtree.
type Node struct {
	key    int
	height int // 1 for a leaf, 0 for an absent child
	left   *Node
	right  *Node
}

func newNode(key int) *Node {
	return &Node{key: key, height: 1}
}

// Key returns the node's key.
func (n *Node) Key() int {
	return n.key
}

// Height returns the stored height, 0 for a nil node.
func (n *Node) Height() int {
	return height(n)
}

// Left returns the left child or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Balance returns height(left) - height(right).
func (n *Node) Balance() int {
	return balanceFactor(n)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor(n *Node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func updateHeight(n *Node) {
	n.height = max(height(n.left), height(n.right)) + 1
}
