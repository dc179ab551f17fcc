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
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// TextFormatter prints one labelled line per traversal:
//
//	Pre-order: 20 10 30
type TextFormatter struct {
	opts  Options
	label lipgloss.Style
}

func NewTextFormatter(opts Options) *TextFormatter {
	return &TextFormatter{
		opts: opts,
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
	}
}

func (t *TextFormatter) Name() string {
	return "text"
}

func (t *TextFormatter) Format(w io.Writer, r *Report) error {
	for _, o := range r.Orders {
		label := o.Label() + ":"
		if t.opts.Color {
			label = t.label.Render(label)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", label, JoinKeys(r.Sequences[o], t.opts.Separator)); err != nil {
			return err
		}
	}
	return nil
}

// PlainFormatter prints keys only, one traversal per line
type PlainFormatter struct {
	opts Options
}

func NewPlainFormatter(opts Options) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

func (p *PlainFormatter) Name() string {
	return "plain"
}

func (p *PlainFormatter) Format(w io.Writer, r *Report) error {
	for _, o := range r.Orders {
		if _, err := fmt.Fprintln(w, JoinKeys(r.Sequences[o], p.opts.Separator)); err != nil {
			return err
		}
	}
	return nil
}
