// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/pdiddy/paperdeck/pkg/types"
)

func (m *model) View() string {
	switch m.stage {
	case stageDetail:
		return m.viewDetail()
	case stageSearch:
		return m.viewSearch()
	default:
		return m.viewList()
	}
}

func (m *model) viewList() string {
	parts := []string{
		m.headerView(),
		m.listView(),
		m.statusView("↑/↓ move • enter open • / search • s sort • c clear • q quit"),
	}
	return joinNonEmpty(parts)
}

func (m *model) viewSearch() string {
	parts := []string{
		m.headerView(),
		m.listView(),
		m.searchInput.View(),
		helperStyle.Render("Enter to apply the query, Esc to cancel."),
	}
	return joinNonEmpty(parts)
}

func (m *model) viewDetail() string {
	parts := []string{
		m.headerView(),
		m.viewport.View(),
		m.statusView("↑/↓ scroll • ←/→ prev/next paper • esc back • q back"),
	}
	return joinNonEmpty(parts)
}

func (m *model) headerView() string {
	title := headerStyle.Render("paperdeck")
	counts := fmt.Sprintf("%d papers • sort: %s", len(m.results), m.sortKey)
	if m.criteria.Text != "" {
		counts += fmt.Sprintf(" • query: %q", m.criteria.Text)
	}
	return title + "  " + taglineStyle.Render(tagline) + "\n" + helperStyle.Render(counts)
}

func (m *model) listView() string {
	if len(m.results) == 0 {
		return errorStyle.Render("No papers found matching your criteria. Press c to clear filters.")
	}

	h := m.listHeight()
	end := m.top + h
	if end > len(m.results) {
		end = len(m.results)
	}

	var b strings.Builder
	for i := m.top; i < end; i++ {
		line := m.listLine(i)
		if i == m.cursor {
			b.WriteString(currentLineStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < end-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func (m *model) listLine(i int) string {
	p := m.results[i]
	title := p.Title
	if title == "" {
		title = "(untitled)"
	}
	year := "----"
	if y, ok := p.Year(); ok {
		year = fmt.Sprintf("%d", y)
	}
	line := fmt.Sprintf("%4d  %s  %5d  %s", i+1, year, p.Citations, title)
	maxWidth := m.width - 4
	if maxWidth > 10 && len(line) > maxWidth {
		line = line[:maxWidth-1] + "…"
	}
	return line
}

func (m *model) statusView(hints string) string {
	parts := []string{hints}
	if m.infoMessage != "" {
		parts = append(parts, m.infoMessage)
	}
	return statusBarStyle.Render(strings.Join(parts, "  •  "))
}

// refreshDetail rebuilds the viewport content for the paper under the
// cursor, highlighting the active query terms.
func (m *model) refreshDetail() {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return
	}
	p := m.results[m.cursor]
	terms := m.queryTerms()
	wrap := func(s string) string { return wordwrap.String(s, m.viewport.Width) }

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(wrap(orUntitled(p.Title))))
	b.WriteString("\n\n")

	meta := []struct{ label, value string }{
		{"Authors", p.FormatAuthors()},
		{"Published", p.FormatDate()},
		{"Journal", p.Journal},
		{"Source", p.Source},
		{"Type", p.PublicationType},
		{"Citations", fmt.Sprintf("%d", p.Citations)},
		{"Rank", rankLabel(p)},
		{"DOI", p.DOI},
		{"Link", p.BestURL()},
		{"Full text", p.FullText()},
		{"Topics", strings.Join(p.TopicTags(types.PerfectlyRelevant, types.HighlyRelevant, types.SomewhatRelevant), ", ")},
	}
	for _, field := range meta {
		if field.value == "" {
			continue
		}
		b.WriteString(detailLabelStyle.Render(field.label+": ") + field.value + "\n")
	}

	for _, section := range []struct{ label, text string }{
		{"Abstract", p.Abstract},
		{"TL;DR", p.TLDR},
		{"Relevance", p.RelevanceSummary},
	} {
		if section.text == "" {
			continue
		}
		b.WriteString("\n" + detailLabelStyle.Render(section.label) + "\n")
		b.WriteString(styleTerms(wrap(section.text), terms))
		b.WriteRune('\n')
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func orUntitled(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}

func rankLabel(p types.Paper) string {
	if p.Rank == types.RankUnknown {
		return ""
	}
	return fmt.Sprintf("%d", p.Rank)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
