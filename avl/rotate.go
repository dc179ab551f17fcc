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

// rotateRight lifts y.left above y:
//
//	    y          x
//	   / \        / \
//	  x   c  =>  a   y
//	 / \            / \
//	a   b          b   c
func rotateRight(y *Node) *Node {
	x := y.left
	y.left = x.right
	x.right = y

	// y is now below x, so its height must be fixed first
	updateHeight(y)
	updateHeight(x)
	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft(x *Node) *Node {
	y := x.right
	x.right = y.left
	y.left = x

	updateHeight(x)
	updateHeight(y)
	return y
}

// rebalance restores |bf| <= 1 at n, assuming both subtrees are already
// balanced and n's height is current. Returns the new subtree root.
func rebalance(n *Node) *Node {
	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) < 0 {
			// Left-Right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) > 0 {
			// Right-Left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}
