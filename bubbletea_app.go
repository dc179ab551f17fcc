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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/arbor/avl"
)

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusOrders
	focusDetail
	focusCount
)

// longest key preview shown under each order in the list
const previewWidth = 40

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	commandInput textinput.Model
	ordersList   list.Model
	detail       viewport.Model

	session *session

	focusIndex int
	status     string
	statusErr  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// orderItem is one traversal in the orders list
type orderItem struct {
	order   avl.Order
	preview string
}

func (i orderItem) FilterValue() string { return i.order.String() }
func (i orderItem) Title() string       { return i.order.Label() }
func (i orderItem) Description() string { return i.preview }

// statusMsg reports the outcome of a background command such as a copy
type statusMsg struct {
	text string
	err  error
}

func InitialModel(s *session) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 42 7 -3 | load tree.txt | order level | copy"
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	ordersList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	ordersList.SetShowTitle(false)
	ordersList.SetShowHelp(false)
	ordersList.SetShowStatusBar(false)
	ordersList.SetFilteringEnabled(false)

	detail := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		commandInput:    ti,
		ordersList:      ordersList,
		detail:          detail,
		session:         s,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case statusMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus(msg.text, false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshDetail()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focusIndex + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+y":
		return m, copyCmd(m.session.selected, m.session.traversal(m.session.selected))
	}

	switch m.focusIndex {
	case focusInput:
		if msg.Type == tea.KeyEnter {
			return m.runCommand()
		}
		m.commandInput, cmd = m.commandInput.Update(msg)
		return m, cmd

	case focusOrders:
		switch msg.String() {
		case "up", "k":
			m.ordersList.CursorUp()
		case "down", "j":
			m.ordersList.CursorDown()
		case "enter":
			m.setFocus(focusDetail)
			return m, nil
		default:
			return m, nil
		}
		if item, ok := m.ordersList.SelectedItem().(orderItem); ok {
			m.session.selected = item.order
			m.refreshDetail()
		}
		return m, nil

	case focusDetail:
		switch msg.String() {
		case "home":
			m.detail.GotoTop()
		case "end":
			m.detail.GotoBottom()
		default:
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// runCommand executes the input line against the session
func (m Model) runCommand() (tea.Model, tea.Cmd) {
	line := m.commandInput.Value()
	m.commandInput.SetValue("")

	result, err := m.session.execute(line)
	if err != nil {
		exploreLog.Warnf("command %q failed: %v", line, err)
		m.setStatus(err.Error(), true)
		return m, nil
	}
	if result.quit {
		return m, tea.Quit
	}

	m.setStatus(result.message, false)
	m.refresh()

	if result.copy {
		return m, copyCmd(m.session.selected, m.session.traversal(m.session.selected))
	}
	return m, nil
}

func copyCmd(o avl.Order, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{err: fmt.Errorf("copy failed: %w", err)}
		}
		return statusMsg{text: fmt.Sprintf("📋 copied %s to clipboard", o)}
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == focusInput {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
}

// refresh rebuilds the orders list and the detail pane from the session
func (m *Model) refresh() {
	orders := avl.AllOrders()
	items := make([]list.Item, len(orders))
	selected := 0
	for i, o := range orders {
		items[i] = orderItem{order: o, preview: preview(m.session.traversal(o))}
		if o == m.session.selected {
			selected = i
		}
	}
	m.ordersList.SetItems(items)
	m.ordersList.Select(selected)
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	doc := m.session.document()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(doc); err == nil {
			m.detail.SetContent(rendered)
			return
		}
	}
	m.detail.SetContent(doc)
}

func preview(keys string) string {
	if keys == "" {
		return "(empty)"
	}
	if len(keys) > previewWidth {
		return keys[:previewWidth-1] + "…"
	}
	return keys
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(focus int) lipgloss.Style {
		if m.focusIndex == focus {
			return m.styles.BorderFocused
		}
		return m.styles.BorderBlurred
	}
	title := func(focus int, text string, width int) string {
		if m.focusIndex == focus {
			text += " (Active)"
		}
		return m.styles.Title.Width(width - 4).Render(" " + text + " ")
	}

	inputBox := box(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			title(focusInput, "⌨️  Command", leftWidth),
			m.commandInput.View(),
		))

	ordersBox := box(focusOrders).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			title(focusOrders, "🌳 Traversals", leftWidth),
			m.ordersList.View(),
		))

	detailBox := box(focusDetail).
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			title(focusDetail, "📖 "+m.session.selected.Label(), rightWidth),
			m.detail.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, ordersBox),
		detailBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.commandInput.Width = leftWidth - 6
	m.ordersList.SetSize(leftWidth-2, listHeight-2)
	m.detail.Width = rightWidth - 2
	m.detail.Height = inputHeight + listHeight
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

func (m Model) renderHelp() string {
	entries := [][2]string{
		{"enter", "run command"},
		{"tab", "switch focus"},
		{"↑/↓", "pick order"},
		{"ctrl+y", "copy traversal"},
		{"esc", "quit"},
	}

	help := make([]string, 0, len(entries))
	for _, e := range entries {
		help = append(help, fmt.Sprintf("%s %s",
			m.styles.HelpKey.Render(e[0]),
			m.styles.HelpDesc.Render(e[1])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(help, " • "))
}

// runBubbleTeaApp starts the explorer on tree
func runBubbleTeaApp(tree *avl.Tree, stats IngestStats, cfg *Config) error {
	s := newSession(tree, stats, cfg)
	model := InitialModel(s)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	exploreLog.Infof("explorer started with %d nodes", s.tree.Len())
	_, err := program.Run()
	return err
}
