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
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes a sideways ASCII diagram of the tree to w, right subtree
// on top. It returns the height of the tree.
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", rootBranch)
}

func printTree(w io.Writer, n *Node, prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, n.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%d (h=%d, bf=%+d)\n", n.key, n.height, balanceFactor(n))
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, n.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
