package engine

import "strconv"

// ============================================================================
// SAMPLE TABLE BUILDER — Render-ready rows for the papers view
// ============================================================================

// Column defines a sample-table column.
type Column struct {
	Key   string
	Label string
	Align string // "left" or "right"
}

// SampleTable is the render-ready head of a filtered view: one row per
// paper with title, journal, and year.
type SampleTable struct {
	Columns []Column
	Rows    [][]string
	Total   int // size of the view the rows were taken from
}

// SampleColumns returns the fixed column layout of the sample table.
func SampleColumns() []Column {
	return []Column{
		{Key: "title", Label: "Title", Align: "left"},
		{Key: "journal", Label: "Journal", Align: "left"},
		{Key: "year", Label: "Year", Align: "right"},
	}
}

// BuildSampleTable produces the first limit papers of a view as table
// rows, keeping the view's order. Missing journals render as an em-dash
// placeholder; missing years as empty.
func BuildSampleTable(view PaperView, limit int) *SampleTable {
	n := view.Len()
	if limit > 0 && n > limit {
		n = limit
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		p := view.At(i)

		journal := p.Journal
		if journal == "" {
			journal = "—"
		}
		year := ""
		if p.YearKnown {
			year = strconv.Itoa(p.Year)
		}
		rows = append(rows, []string{p.Title, journal, year})
	}

	return &SampleTable{
		Columns: SampleColumns(),
		Rows:    rows,
		Total:   view.Len(),
	}
}
