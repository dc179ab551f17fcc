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

// Package avl implements an insert-only, height-balanced binary search
// tree over int keys.
//
// After every call to Insert the tree satisfies:
//   - every key in a left subtree is smaller than its parent, every key in
//     a right subtree is larger
//   - the heights of the two subtrees of any node differ by at most one
//   - each node's stored height is 1 + the larger child height
//
// Duplicate keys are ignored. A Tree is not safe for concurrent use.
package avl

// Tree holds the root of a balanced tree and its node count.
type Tree struct {
	root  *Node
	count int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{root: nil, count: 0}
}

// Insert adds key to the tree and reports whether it was new.
func (tree *Tree) Insert(key int) bool {
	root, inserted := insert(tree.root, key)
	tree.root = root
	if inserted {
		tree.count++
	}
	return inserted
}

// InsertAll inserts keys in slice order and returns how many were new.
func (tree *Tree) InsertAll(keys []int) int {
	added := 0
	for _, key := range keys {
		if tree.Insert(key) {
			added++
		}
	}
	return added
}

// insert returns the new root of the subtree rooted at node and whether a
// node was created below it.
func insert(node *Node, key int) (*Node, bool) {
	if node == nil {
		return newNode(key), true
	}

	var inserted bool
	switch {
	case key < node.key:
		node.left, inserted = insert(node.left, key)
	case key > node.key:
		node.right, inserted = insert(node.right, key)
	default:
		return node, false
	}

	// nothing below changed shape, so heights and balance are untouched
	if !inserted {
		return node, false
	}

	updateHeight(node)
	return rebalance(node), true
}

// Contains reports whether key is present.
func (tree *Tree) Contains(key int) bool {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return true
		}
	}
	return false
}

// IsEmpty is true when the tree has no nodes.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Len is the number of distinct keys.
func (tree *Tree) Len() int {
	return tree.count
}

// Height of the whole tree, 0 when empty.
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root returns the root node, nil when empty.
func (tree *Tree) Root() *Node {
	return tree.root
}
