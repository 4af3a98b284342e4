// Package ui renders the interactive explorer: a bubbletea program with
// one tab per visualization, re-running the filter + aggregation
// pipeline on every year-range change.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cordex-org/cordex/dataset"
	"github.com/cordex-org/cordex/engine"
)

// Tab identifies one of the five views.
type Tab int

const (
	TabYears Tab = iota
	TabJournals
	TabWords
	TabSources
	TabPapers
	tabCount
)

func (t Tab) title() string {
	switch t {
	case TabYears:
		return "Years"
	case TabJournals:
		return "Journals"
	case TabWords:
		return "Title Words"
	case TabSources:
		return "Sources"
	case TabPapers:
		return "Papers"
	}
	return ""
}

// Bound selects which end of the year range the arrow keys move.
type Bound int

const (
	BoundLo Bound = iota
	BoundHi
)

// Options sizes the aggregates shown by the explorer.
type Options struct {
	TopJournals int
	TopWords    int
	SampleRows  int
	Logger      *zap.Logger
}

// Model is the bubbletea model for the explorer.
type Model struct {
	data   *dataset.Table
	view   engine.PaperView
	opts   Options
	logger *zap.Logger

	yearRange engine.YearRange
	active    Bound
	tab       Tab
	summary   *engine.Summary

	papers table.Model
	gauge  progress.Model

	width    int
	height   int
	quitting bool
}

// NewModel builds the explorer over a loaded table. The initial range is
// clamped to the table's year span before the first aggregation.
func NewModel(data *dataset.Table, initial engine.YearRange, opts Options) Model {
	if opts.TopJournals <= 0 {
		opts.TopJournals = engine.DefaultTopJournals
	}
	if opts.TopWords <= 0 {
		opts.TopWords = engine.DefaultTopWords
	}
	if opts.SampleRows <= 0 {
		opts.SampleRows = engine.DefaultSampleRows
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if data.HasYears() {
		initial = initial.Clamp(data.MinYear, data.MaxYear)
	}

	gauge := progress.New(
		progress.WithGradient("#00ffff", "#ff00ff"),
		progress.WithWidth(40),
	)

	papers := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 64},
			{Title: "Journal", Width: 28},
			{Title: "Year", Width: 6},
		}),
		table.WithHeight(opts.SampleRows+1),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(lipgloss.Color("51")).
		Bold(true).
		BorderForeground(lipgloss.Color("238")).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("45"))
	papers.SetStyles(styles)

	m := Model{
		data:      data,
		view:      engine.NewView(data),
		opts:      opts,
		logger:    opts.Logger,
		yearRange: initial,
		papers:    papers,
		gauge:     gauge,
	}
	m.recompute()
	return m
}

// recompute re-runs the whole pipeline for the current range.
func (m *Model) recompute() {
	m.summary = engine.Summarize(m.view, m.yearRange,
		engine.WithTopJournals(m.opts.TopJournals),
		engine.WithTopWords(m.opts.TopWords),
		engine.WithSampleRows(m.opts.SampleRows),
	)

	rows := make([]table.Row, 0, len(m.summary.Sample.Rows))
	for _, r := range m.summary.Sample.Rows {
		rows = append(rows, table.Row(r))
	}
	m.papers.SetRows(rows)

	m.logger.Debug("summary recomputed",
		zap.Int("lo", m.yearRange.Lo),
		zap.Int("hi", m.yearRange.Hi),
		zap.Int("papers", m.summary.Count),
	)
}

// Init implements tea.Model. The explorer is fully synchronous: nothing
// to schedule.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			m.tab = (m.tab + 1) % tabCount
			return m, nil

		case "shift+tab":
			m.tab = (m.tab + tabCount - 1) % tabCount
			return m, nil

		case "1", "2", "3", "4", "5":
			m.tab = Tab(msg.String()[0] - '1')
			return m, nil

		case "enter", " ":
			if m.active == BoundLo {
				m.active = BoundHi
			} else {
				m.active = BoundLo
			}
			return m, nil

		case "left", "h":
			m.shiftBound(-1)
			return m, nil

		case "right", "l":
			m.shiftBound(+1)
			return m, nil

		default:
			// Remaining keys (up/down scrolling) belong to the sample
			// table when it is the active view.
			if m.tab == TabPapers {
				var cmd tea.Cmd
				m.papers, cmd = m.papers.Update(msg)
				return m, cmd
			}
		}
	}

	return m, nil
}

// shiftBound moves the active year bound by delta, keeping the range
// ordered and inside the table's span, then recomputes if it changed.
func (m *Model) shiftBound(delta int) {
	if !m.data.HasYears() {
		return
	}

	r := m.yearRange
	if m.active == BoundLo {
		r.Lo += delta
		if r.Lo < m.data.MinYear {
			r.Lo = m.data.MinYear
		}
		if r.Lo > r.Hi {
			r.Lo = r.Hi
		}
	} else {
		r.Hi += delta
		if r.Hi > m.data.MaxYear {
			r.Hi = m.data.MaxYear
		}
		if r.Hi < r.Lo {
			r.Hi = r.Lo
		}
	}

	if r != m.yearRange {
		m.yearRange = r
		m.recompute()
	}
}

// Range returns the current year selection.
func (m Model) Range() engine.YearRange { return m.yearRange }

// Summary returns the aggregates for the current selection.
func (m Model) Summary() *engine.Summary { return m.summary }

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(headerStyle.Render(" CORD-19 Data Explorer ") + "\n")
	content.WriteString(m.renderRangeLine() + "\n")
	content.WriteString(m.renderCountLine() + "\n")
	content.WriteString(m.renderTabBar() + "\n")

	switch m.tab {
	case TabYears:
		content.WriteString(m.renderYears())
	case TabJournals:
		content.WriteString(m.renderRanking("┃ Top Journals", m.summary.TopJournalList))
	case TabWords:
		content.WriteString(m.renderRanking("┃ Most Frequent Title Words", m.summary.TopWordList))
	case TabSources:
		content.WriteString(m.renderRanking("┃ Papers by Source", m.summary.BySource))
	case TabPapers:
		content.WriteString(m.renderPapers())
	}

	content.WriteString("\n" + m.renderFooter())
	return containerStyle.Render(content.String())
}

func (m Model) renderRangeLine() string {
	lo := fmt.Sprintf("%d", m.yearRange.Lo)
	hi := fmt.Sprintf("%d", m.yearRange.Hi)
	if m.active == BoundLo {
		lo = activeBoundStyle.Render(lo)
		hi = valueStyle.Render(hi)
	} else {
		lo = valueStyle.Render(lo)
		hi = activeBoundStyle.Render(hi)
	}

	span := dimStyle.Render("(no parseable years in dataset)")
	gauge := ""
	if m.data.HasYears() {
		span = dimStyle.Render(fmt.Sprintf("(dataset spans %d to %d)", m.data.MinYear, m.data.MaxYear))
		total := m.data.MaxYear - m.data.MinYear + 1
		selected := m.yearRange.Hi - m.yearRange.Lo + 1
		gauge = "  " + m.gauge.ViewAs(float64(selected)/float64(total))
	}

	return labelStyle.Render("Years: ") + lo + dimStyle.Render(" to ") + hi + " " + span + gauge
}

func (m Model) renderCountLine() string {
	return valueStyle.Render(engine.FormatInt(m.summary.Count)) +
		labelStyle.Render(fmt.Sprintf(" papers between %d and %d", m.yearRange.Lo, m.yearRange.Hi))
}

func (m Model) renderTabBar() string {
	var parts []string
	for t := Tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t.title())
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) chartWidth() int {
	w := m.width - 10
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) renderYears() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("┃ Publications by Year") + "\n")
	b.WriteString(renderBarChart(m.summary.ByYear, m.chartWidth(), chartHeight) + "\n")
	b.WriteString(renderLegend(m.summary.ByYear))

	b.WriteString(sectionStyle.Render("┃ Avg Abstract Length by Year") + "\n")
	b.WriteString(renderSparkline(m.summary.AbstractByYear) + "\n")
	for _, g := range m.summary.AbstractByYear {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(g.Label),
			valueStyle.Render(fmt.Sprintf("%.0f words", g.Value)),
		))
	}
	return b.String()
}

func (m Model) renderRanking(section string, groups []engine.Group) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(section) + "\n")
	b.WriteString(renderBarChart(groups, m.chartWidth(), chartHeight) + "\n")
	b.WriteString(renderLegend(groups))
	return b.String()
}

func (m Model) renderPapers() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("┃ Sample Papers") + "\n")
	if len(m.summary.Sample.Rows) == 0 {
		b.WriteString(dimStyle.Render("no papers in the selected range") + "\n")
		return b.String()
	}
	b.WriteString(m.papers.View() + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("showing %d of %s papers",
		len(m.summary.Sample.Rows), engine.FormatInt(m.summary.Sample.Total))) + "\n")
	return b.String()
}

func (m Model) renderFooter() string {
	return footerKeyStyle.Render("[←/→]") + footerStyle.Render(" adjust year  ") +
		footerKeyStyle.Render("[enter]") + footerStyle.Render(" switch bound  ") +
		footerKeyStyle.Render("[tab]") + footerStyle.Render(" next view  ") +
		footerKeyStyle.Render("[1-5]") + footerStyle.Render(" jump  ") +
		footerKeyStyle.Render("[q]") + footerStyle.Render(" quit")
}
