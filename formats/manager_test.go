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
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/arbor/avl"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	tree := avl.New()
	tree.InsertAll([]int{30, 20, 10})
	r := NewReport(tree, avl.AllOrders())
	r.Stats.Source = "tree.txt"
	r.Stats.Keys = 3
	r.Stats.Inserted = 3
	return r
}

func TestFormatterManager(t *testing.T) {
	manager := NewFormatterManager(Options{})

	assert.Equal(t, []string{"text", "plain", "json", "markdown"}, manager.Names())

	f, err := manager.Get("  JSON ")
	require.NoError(t, err)
	assert.Equal(t, "json", f.Name())

	_, err = manager.Get("yaml")
	require.Error(t, err)
	var unknown ErrUnknownFormat
	assert.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "yaml")
}

type stubFormatter struct{}

func (stubFormatter) Name() string                     { return "text" }
func (stubFormatter) Format(io.Writer, *Report) error { return nil }

func TestRegisterFormatterReplacesByName(t *testing.T) {
	manager := NewFormatterManager(Options{})
	manager.RegisterFormatter(stubFormatter{})

	assert.Len(t, manager.Names(), 4)
	f, err := manager.Get("text")
	require.NoError(t, err)
	assert.IsType(t, stubFormatter{}, f)
}

func TestNewReport(t *testing.T) {
	r := sampleReport(t)

	assert.Equal(t, []int{20, 10, 30}, r.Sequences[avl.PreOrder])
	assert.Equal(t, []int{10, 20, 30}, r.Sequences[avl.InOrder])
	assert.Equal(t, []int{10, 30, 20}, r.Sequences[avl.PostOrder])
	assert.Equal(t, []int{20, 10, 30}, r.Sequences[avl.LevelOrder])
	assert.Equal(t, 3, r.Stats.Nodes)
	assert.Equal(t, 2, r.Stats.Height)
}

func TestNewReportEmptyTree(t *testing.T) {
	r := NewReport(avl.New(), []avl.Order{avl.InOrder})
	assert.Empty(t, r.Sequences[avl.InOrder])
	assert.Zero(t, r.Stats.Nodes)
	assert.Zero(t, r.Stats.Height)
}

func TestJoinKeys(t *testing.T) {
	assert.Equal(t, "1 -2 3", JoinKeys([]int{1, -2, 3}, ""))
	assert.Equal(t, "1,2", JoinKeys([]int{1, 2}, ","))
	assert.Equal(t, "", JoinKeys(nil, " "))
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(Options{}).Format(&buf, sampleReport(t)))

	want := "Pre-order: 20 10 30\n" +
		"In-order: 10 20 30\n" +
		"Post-order: 10 30 20\n" +
		"Level-order: 20 10 30\n"
	assert.Equal(t, want, buf.String())
}

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport(t)
	r.Orders = []avl.Order{avl.InOrder, avl.LevelOrder}
	require.NoError(t, NewPlainFormatter(Options{Separator: ","}).Format(&buf, r))

	assert.Equal(t, "10,20,30\n20,10,30\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport(t)
	r.Orders = append(r.Orders, avl.Order(99))
	require.NoError(t, NewJSONFormatter(Options{}).Format(&buf, r))

	var decoded struct {
		Stats      Stats `json:"stats"`
		Traversals []struct {
			Order string `json:"order"`
			Keys  []int  `json:"keys"`
		} `json:"traversals"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "tree.txt", decoded.Stats.Source)
	assert.Equal(t, 3, decoded.Stats.Nodes)
	require.Len(t, decoded.Traversals, 5)
	assert.Equal(t, "pre-order", decoded.Traversals[0].Order)
	assert.Equal(t, []int{20, 10, 30}, decoded.Traversals[0].Keys)
	assert.Equal(t, "in-order", decoded.Traversals[1].Order)
	assert.Equal(t, []int{10, 20, 30}, decoded.Traversals[1].Keys)

	// an order with no sequence is still an empty list, not null
	assert.NotNil(t, decoded.Traversals[4].Keys)
	assert.Contains(t, buf.String(), `"keys": []`)
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(Options{}).Format(&buf, sampleReport(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# AVL traversals\n"))
	assert.Contains(t, out, "Source: `tree.txt`")
	assert.Contains(t, out, "| Pre-order | 20 10 30 |")
	assert.Contains(t, out, "| Level-order | 20 10 30 |")
	assert.Contains(t, out, "**Height:** 2")
	assert.Contains(t, out, "**Duplicates dropped:** 0")
}

func TestMarkdownFormatterRendered(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Render: true, Width: 60}
	require.NoError(t, NewMarkdownFormatter(opts).Format(&buf, sampleReport(t)))

	out := buf.String()
	assert.Contains(t, out, "AVL traversals")
	assert.Contains(t, out, "Pre-order")
}
