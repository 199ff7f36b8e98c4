// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive browse surface over the query engine:
// a filterable, sortable paper list with a detail pane. It owns the
// session-scoped criteria state and passes it into the core on every
// rerun; the core itself never reads ambient state, so quitting the
// TUI discards the session cleanly.
package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/paperdeck/internal/browse"
	"github.com/pdiddy/paperdeck/internal/highlight"
	"github.com/pdiddy/paperdeck/internal/query"
	"github.com/pdiddy/paperdeck/pkg/types"
)

// Config wires the loaded dataset and browse defaults into the TUI.
type Config struct {
	Papers      []types.Paper
	PageSize    int
	DefaultSort browse.SortKey
}

type stage int

const (
	stageList stage = iota
	stageSearch
	stageDetail
)

const tagline = "Browse the curated paper collection."

const (
	minListHeight  = 5
	chromeHeight   = 7
	defaultWidth   = 100
	defaultHeight  = 24
	detailPadding  = 4
	minDetailWidth = 40
)

type model struct {
	config Config
	stage  stage

	searchInput textinput.Model
	viewport    viewport.Model

	criteria query.Criteria
	sortKey  browse.SortKey
	results  []types.Paper

	cursor int
	top    int

	width  int
	height int

	infoMessage string
}

// New returns a tea.Model over the given collection, ready to be
// mounted into a Program.
func New(config Config) tea.Model {
	input := textinput.New()
	input.Placeholder = `Search: terms, OR, "phrases"…`
	input.CharLimit = 200
	input.Width = 60

	vp := viewport.New(defaultWidth-detailPadding, defaultHeight-chromeHeight)

	if config.DefaultSort == "" {
		config.DefaultSort = browse.SortRelevance
	}

	m := &model{
		config:      config,
		stage:       stageList,
		searchInput: input,
		viewport:    vp,
		sortKey:     config.DefaultSort,
		width:       defaultWidth,
		height:      defaultHeight,
		infoMessage: "Press / to search, s to change sort, enter to open a paper.",
	}
	m.rerun()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// rerun re-evaluates the pipeline with the current session criteria.
// The record slice is immutable; only the result view changes.
func (m *model) rerun() {
	m.results = browse.Run(m.config.Papers, m.criteria, m.sortKey)
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.top = 0
	m.scrollCursorIntoView()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - detailPadding
		if w < minDetailWidth {
			w = minDetailWidth
		}
		m.viewport.Width = w
		h := msg.Height - chromeHeight
		if h < minListHeight {
			h = minListHeight
		}
		m.viewport.Height = h
		if m.stage == stageDetail {
			m.refreshDetail()
		}
		m.scrollCursorIntoView()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.stage {
		case stageSearch:
			return m.updateSearch(msg)
		case stageDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.scrollCursorIntoView()
		}
	case "down", "j":
		if m.cursor < len(m.results)-1 {
			m.cursor++
			m.scrollCursorIntoView()
		}
	case "pgup":
		m.cursor -= m.listHeight()
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.scrollCursorIntoView()
	case "pgdown":
		m.cursor += m.listHeight()
		if m.cursor > len(m.results)-1 {
			m.cursor = len(m.results) - 1
		}
		m.scrollCursorIntoView()
	case "g":
		m.cursor = 0
		m.scrollCursorIntoView()
	case "G":
		m.cursor = len(m.results) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.scrollCursorIntoView()
	case "/":
		m.stage = stageSearch
		m.searchInput.SetValue(m.criteria.Text)
		m.searchInput.Focus()
		return m, textinput.Blink
	case "s":
		m.cycleSort()
	case "c":
		m.criteria = query.Criteria{}
		m.infoMessage = "Filters cleared."
		m.rerun()
	case "enter":
		if len(m.results) > 0 {
			m.stage = stageDetail
			m.refreshDetail()
		}
	}
	return m, nil
}

func (m *model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.criteria.Text = strings.TrimSpace(m.searchInput.Value())
		m.searchInput.Blur()
		m.stage = stageList
		m.cursor = 0
		m.rerun()
		if m.criteria.Text == "" {
			m.infoMessage = "Showing all papers."
		} else {
			m.infoMessage = "Query applied. Press c to clear."
		}
		return m, nil
	case tea.KeyEsc:
		m.searchInput.Blur()
		m.stage = stageList
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.stage = stageList
		return m, nil
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
			m.refreshDetail()
		}
		return m, nil
	case "right", "l":
		if m.cursor < len(m.results)-1 {
			m.cursor++
			m.refreshDetail()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// cycleSort advances to the next sort key and reruns the pipeline.
func (m *model) cycleSort() {
	for i, key := range browse.SortKeys {
		if key == m.sortKey {
			m.sortKey = browse.SortKeys[(i+1)%len(browse.SortKeys)]
			break
		}
	}
	m.infoMessage = "Sorted by " + string(m.sortKey) + "."
	m.rerun()
}

func (m *model) listHeight() int {
	h := m.height - chromeHeight
	if h < minListHeight {
		h = minListHeight
	}
	return h
}

func (m *model) scrollCursorIntoView() {
	h := m.listHeight()
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+h {
		m.top = m.cursor - h + 1
	}
	if m.top < 0 {
		m.top = 0
	}
}

// styleTerms wraps every case-insensitive occurrence of each query
// term with the match style, for the detail pane. Same independent
// per-term marking as the markup highlighter, rendered with lipgloss
// instead of tags.
func styleTerms(text string, terms []string) string {
	for _, term := range terms {
		pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
		if err != nil {
			continue
		}
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			return matchStyle.Render(match)
		})
	}
	return text
}

func (m *model) queryTerms() []string {
	return highlight.Terms(m.criteria.Text)
}
