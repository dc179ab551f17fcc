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

package main

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/avl"
)

func TestCacheTraversalAndGetTraversal(t *testing.T) {
	c := NewTraversalCache()
	rendered := "20 10 30"

	// Nothing cached yet
	if got, ok := GetTraversal(c, avl.PreOrder, 1); ok || got != "" {
		t.Errorf("GetTraversal before caching = (%q, %v); want empty miss", got, ok)
	}

	CacheTraversal(c, avl.PreOrder, 1, rendered)

	if got, ok := GetTraversal(c, avl.PreOrder, 1); !ok || got != rendered {
		t.Errorf("GetTraversal = (%q, %v); want (%q, true)", got, ok, rendered)
	}

	// Same revision, different order
	if _, ok := GetTraversal(c, avl.InOrder, 1); ok {
		t.Errorf("GetTraversal(InOrder) hit an entry cached for PreOrder")
	}
}

func TestCacheRevisionInvalidates(t *testing.T) {
	c := NewTraversalCache()
	CacheTraversal(c, avl.LevelOrder, 3, "1 2 3")

	if _, ok := GetTraversal(c, avl.LevelOrder, 4); ok {
		t.Errorf("entry for revision 3 served for revision 4")
	}
}

func TestCacheExpiration(t *testing.T) {
	// Very short expiration to test expiry behavior
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	CacheTraversal(c, avl.InOrder, 0, "10 20 30")

	if got, ok := GetTraversal(c, avl.InOrder, 0); !ok || got != "10 20 30" {
		t.Errorf("GetTraversal = (%q, %v); want cached value", got, ok)
	}

	time.Sleep(150 * time.Millisecond)

	if got, ok := GetTraversal(c, avl.InOrder, 0); ok {
		t.Errorf("after expiration GetTraversal = %q; want miss", got)
	}
}
