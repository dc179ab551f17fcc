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
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/formats"
)

var dashboardLog = newChannel(tagDashboard)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// getBanner describes when and how fast the tree was built
func getBanner(stats IngestStats, now time.Time) string {
	source := stats.Source
	if source == "" {
		source = "input"
	}
	return fmt.Sprintf("%s. Built %s from %s in %s",
		FormatDateTime(now), FormatClock(stats.LoadedAt), source, FormatElapsed(stats.Elapsed))
}

// computeHeaderRatio reserves at least three lines for the banner and no
// more than a quarter of the screen.
func computeHeaderRatio(termHeight int) float64 {
	if termHeight <= 0 {
		return 0.05
	}
	ratio := 3.0 / float64(termHeight)
	if ratio < 0.05 {
		ratio = 0.05
	}
	if ratio > 0.25 {
		ratio = 0.25
	}
	return ratio
}

// depthHistogram counts nodes per depth, root first
func depthHistogram(tree *avl.Tree) ([]float64, []string) {
	levels := tree.Levels()
	data := make([]float64, len(levels))
	labels := make([]string, len(levels))
	for depth, keys := range levels {
		data[depth] = float64(len(keys))
		labels[depth] = "d" + strconv.Itoa(depth)
	}
	return data, labels
}

// traversalRows renders one list row per order
func traversalRows(tree *avl.Tree, sep string) []string {
	orders := avl.AllOrders()
	rows := make([]string, len(orders))
	for i, o := range orders {
		rows[i] = fmt.Sprintf("[%-12s](fg:green) %s", o.Label()+":", formats.JoinKeys(avl.Collect(tree.Walk(o)), sep))
	}
	return rows
}

func statsText(stats IngestStats, tree *avl.Tree) string {
	status := "[✔ invariants hold](fg:green)"
	if err := tree.Check(); err != nil {
		status = fmt.Sprintf("[✘ %v](fg:red)", err)
	}
	return fmt.Sprintf(`Nodes      %d
Height     %d
Keys read  %d
Inserted   %d
Duplicates %d

%s`, tree.Len(), tree.Height(), stats.Keys, stats.Inserted, stats.Duplicates, status)
}

func layoutDashboard(
	grid *ui.Grid,
	bannerPara *widgets.Paragraph,
	depthChart *widgets.BarChart,
	traversalList *widgets.List,
	statsPara *widgets.Paragraph,
	keyboardPara *widgets.Paragraph,
	headerRatio float64,
) {
	grid.Set(
		ui.NewRow(headerRatio, bannerPara),
		ui.NewRow(1-headerRatio,
			ui.NewCol(0.6,
				ui.NewRow(0.5, depthChart),
				ui.NewRow(0.5, traversalList),
			),
			ui.NewCol(0.4,
				ui.NewRow(0.6, statsPara),
				ui.NewRow(0.4, keyboardPara),
			),
		),
	)
}

// runDashboard shows the tree in a termui dashboard until q or esc
func runDashboard(tree *avl.Tree, stats IngestStats, cfg *Config) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()
	dashboardLog.Infof("dashboard started with %d nodes", tree.Len())

	bannerPara := widgets.NewParagraph()
	bannerPara.Title = " Arbor "
	bannerPara.Text = getBanner(stats, time.Now())
	bannerPara.WrapText = true
	bannerPara.BorderStyle = StyleBorder(false)

	depthChart := widgets.NewBarChart()
	depthChart.Title = " Nodes per depth "
	depthChart.Data, depthChart.Labels = depthHistogram(tree)
	depthChart.BarWidth = 5
	depthChart.BarColors = []ui.Color{scheme.Primary, scheme.Accent}
	depthChart.LabelStyles = []ui.Style{StyleText()}
	depthChart.NumStyles = []ui.Style{ui.NewStyle(scheme.OnPrimary)}
	depthChart.BorderStyle = StyleBorder(false)

	traversalList := widgets.NewList()
	traversalList.Title = " Traversals "
	traversalList.Rows = traversalRows(tree, cfg.Output.Separator)
	traversalList.SelectedRow = 0
	traversalList.SelectedRowStyle = StylePrimary()
	traversalList.WrapText = false
	traversalList.BorderStyle = StyleBorder(true)

	statsPara := widgets.NewParagraph()
	statsPara.Title = " Stats "
	statsPara.Text = statsText(stats, tree)
	statsPara.BorderStyle = StyleBorder(false)

	keyboardPara := widgets.NewParagraph()
	keyboardPara.Title = " Keyboard Shortcuts "
	keyboardPara.Text = `[<up>/<down>](fg:green) -> Select a traversal
[<enter>](fg:green) or [<ctrl> + y](fg:green) -> Copy selected traversal
[q](fg:green), [<esc>](fg:green) or [<ctrl> + c](fg:green) -> Quit`
	keyboardPara.TextStyle = StyleTextMuted()
	keyboardPara.BorderStyle = StyleBorder(false)

	termWidth, termHeight := ui.TerminalDimensions()
	headerRatio := computeHeaderRatio(termHeight)
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)

	layoutDashboard(grid, bannerPara, depthChart, traversalList, statsPara, keyboardPara, headerRatio)
	ui.Render(grid)

	orders := avl.AllOrders()
	uiEvents := ui.PollEvents()
	clock := time.NewTicker(1 * time.Second)
	defer clock.Stop()

	for {
		select {
		case t := <-clock.C:
			bannerPara.Text = getBanner(stats, t)
			ui.Render(bannerPara)

		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>", "<Escape>":
				return nil
			case "<Up>", "k":
				traversalList.ScrollUp()
			case "<Down>", "j":
				traversalList.ScrollDown()
			case "<Home>":
				traversalList.ScrollTop()
			case "<End>":
				traversalList.ScrollBottom()
			case "<Enter>", "<C-y>":
				o := orders[traversalList.SelectedRow]
				keys := formats.JoinKeys(avl.Collect(tree.Walk(o)), cfg.Output.Separator)
				if err := clipboard.WriteAll(keys); err != nil {
					dashboardLog.Warnf("copy %s failed: %v", o, err)
					statsPara.Text = statsText(stats, tree) + fmt.Sprintf("\n[copy failed: %v](fg:red)", err)
				} else {
					statsPara.Text = statsText(stats, tree) + fmt.Sprintf("\n[📋 copied %s](fg:green)", o)
				}
			case "<Resize>":
				if payload, ok := e.Payload.(ui.Resize); ok {
					grid.SetRect(0, 0, payload.Width, payload.Height)
					headerRatio = computeHeaderRatio(payload.Height)
				}
				layoutDashboard(grid, bannerPara, depthChart, traversalList, statsPara, keyboardPara, headerRatio)
				ui.Clear()
			}
			ui.Render(grid)
		}
	}
}

// describeLevels lists keys per depth, used by the diagram command
func describeLevels(tree *avl.Tree, sep string) string {
	var sb strings.Builder
	for depth, keys := range tree.Levels() {
		sb.WriteString(fmt.Sprintf("depth %d: %s\n", depth, formats.JoinKeys(keys, sep)))
	}
	return sb.String()
}
