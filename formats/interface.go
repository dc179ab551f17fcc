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

package formats

import (
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/arbor/avl"
)

// Formatter defines the interface for the different output formats
type Formatter interface {
	Name() string
	Format(w io.Writer, r *Report) error
}

// Options shared by all formatters
type Options struct {
	Separator string // between keys, defaults to a single space
	Color     bool   // style labels for a terminal
	Render    bool   // render markdown for a terminal instead of emitting raw markdown
	Width     int    // word wrap for rendered markdown
}

// Stats describes how the tree was built
type Stats struct {
	Source     string `json:"source,omitempty"`
	Keys       int    `json:"keys"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
	Nodes      int    `json:"nodes"`
	Height     int    `json:"height"`
}

// Report holds the traversals to print, in the order they should appear
type Report struct {
	Orders    []avl.Order
	Sequences map[avl.Order][]int
	Stats     Stats
}

// NewReport walks tree once per requested order.
func NewReport(tree *avl.Tree, orders []avl.Order) *Report {
	r := &Report{
		Orders:    orders,
		Sequences: make(map[avl.Order][]int, len(orders)),
		Stats: Stats{
			Nodes:  tree.Len(),
			Height: tree.Height(),
		},
	}
	for _, o := range orders {
		r.Sequences[o] = avl.Collect(tree.Walk(o))
	}
	return r
}

// JoinKeys renders keys with sep between them.
func JoinKeys(keys []int, sep string) string {
	if sep == "" {
		sep = " "
	}
	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.Itoa(key))
	}
	return sb.String()
}
