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
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWordWrap = 80

// MarkdownFormatter writes a markdown table of traversals, optionally
// rendered for the terminal with glamour
type MarkdownFormatter struct {
	opts Options
}

func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

func (m *MarkdownFormatter) Format(w io.Writer, r *Report) error {
	doc := Markdown(r, m.opts.Separator)
	if !m.opts.Render {
		_, err := io.WriteString(w, doc)
		return err
	}

	rendered, err := RenderMarkdown(doc, m.opts.Color, m.opts.Width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}

// Markdown builds the raw markdown document for r.
func Markdown(r *Report, sep string) string {
	var sb strings.Builder

	sb.WriteString("# AVL traversals\n\n")
	if r.Stats.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: `%s`\n\n", r.Stats.Source))
	}

	sb.WriteString("| Order | Keys |\n")
	sb.WriteString("|-------|------|\n")
	for _, o := range r.Orders {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", o.Label(), JoinKeys(r.Sequences[o], sep)))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("**Nodes:** %d\n\n", r.Stats.Nodes))
	sb.WriteString(fmt.Sprintf("**Height:** %d\n\n", r.Stats.Height))
	if r.Stats.Keys > 0 {
		sb.WriteString(fmt.Sprintf("**Keys read:** %d\n\n", r.Stats.Keys))
		sb.WriteString(fmt.Sprintf("**Duplicates dropped:** %d\n\n", r.Stats.Duplicates))
	}
	return sb.String()
}

// RenderMarkdown renders doc for a terminal. Without colour the notty
// style is used so the output stays plain.
func RenderMarkdown(doc string, color bool, width int) (string, error) {
	if width <= 0 {
		width = defaultWordWrap
	}
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(doc)
}
