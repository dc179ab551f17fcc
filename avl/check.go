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
	"errors"
	"fmt"
)

// Invariant names a structural property of the tree.
type Invariant string

const (
	InvariantOrder   Invariant = "ordering"
	InvariantBalance Invariant = "balance"
	InvariantHeight  Invariant = "height"
	InvariantCount   Invariant = "count"
)

// InvariantError reports the first violation found by Check.
type InvariantError struct {
	Invariant Invariant
	Key       int
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s invariant violated at key %d: %s", e.Invariant, e.Key, e.Detail)
}

// IsInvariantError reports whether err is (or wraps) an InvariantError.
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// Check walks the whole tree and verifies ordering, balance, stored
// heights and the node count.
func (tree *Tree) Check() error {
	count := 0
	if _, err := check(tree.root, nil, nil, &count); err != nil {
		return err
	}
	if count != tree.count {
		key := 0
		if tree.root != nil {
			key = tree.root.key
		}
		return &InvariantError{
			Invariant: InvariantCount,
			Key:       key,
			Detail:    fmt.Sprintf("counted %d nodes, tree records %d", count, tree.count),
		}
	}
	return nil
}

// check returns the recomputed height of n. lo and hi are exclusive bounds
// inherited from ancestors, nil when unbounded.
func check(n *Node, lo, hi *int, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	if lo != nil && n.key <= *lo {
		return 0, &InvariantError{InvariantOrder, n.key, fmt.Sprintf("not greater than ancestor %d", *lo)}
	}
	if hi != nil && n.key >= *hi {
		return 0, &InvariantError{InvariantOrder, n.key, fmt.Sprintf("not less than ancestor %d", *hi)}
	}

	lh, err := check(n.left, lo, &n.key, count)
	if err != nil {
		return 0, err
	}
	rh, err := check(n.right, &n.key, hi, count)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, &InvariantError{InvariantHeight, n.key, fmt.Sprintf("stored %d, actual %d", n.height, h)}
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, &InvariantError{InvariantBalance, n.key, fmt.Sprintf("balance factor %+d", bf)}
	}
	return h, nil
}
