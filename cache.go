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
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/avl"
)

const (
	// Rendered traversals only live as long as an interactive session
	traversalCacheExpiration = 30 * time.Minute
	traversalCacheCleanup    = 5 * time.Minute
)

// NewTraversalCache creates the cache for rendered traversals
func NewTraversalCache() *cache.Cache {
	return cache.New(traversalCacheExpiration, traversalCacheCleanup)
}

// traversalCacheKey ties an entry to one tree revision, so bumping the
// revision after a mutation makes every older entry unreachable.
func traversalCacheKey(o avl.Order, revision int) string {
	return fmt.Sprintf("%s@%d", o, revision)
}

func CacheTraversal(c *cache.Cache, o avl.Order, revision int, rendered string) {
	c.Set(traversalCacheKey(o, revision), rendered, cache.DefaultExpiration)
}

func GetTraversal(c *cache.Cache, o avl.Order, revision int) (string, bool) {
	val, ok := c.Get(traversalCacheKey(o, revision))
	if !ok {
		return "", false
	}
	return val.(string), true
}
