package dataset

import "time"

// ============================================================================
// PAPER — One row of the metadata file after required-field filtering
// ============================================================================

// Paper is a single research-paper record.
//
// Year is derived from PublishTime and only meaningful when YearKnown is
// true. Rows whose publish_time could not be parsed keep YearKnown=false
// and are excluded from every year-based aggregate.
type Paper struct {
	Title    string
	Journal  string // empty when the row has no journal
	Source   string // empty when the row has no source
	Abstract string

	PublishTime time.Time
	YearKnown   bool
	Year        int

	// AbstractWordCount is the number of whitespace-separated tokens
	// in Abstract (0 for an empty abstract).
	AbstractWordCount int
}

// Table is an ordered, immutable-after-load collection of papers.
// Load builds it once; consumers only read.
type Table struct {
	Papers []Paper

	// MinYear/MaxYear span the known years in the table. Both are 0
	// when no paper has a parseable publish_time.
	MinYear int
	MaxYear int

	// Dropped counts source rows discarded for a missing title or
	// publish_time. Kept for the inspect summary, not re-reported per row.
	Dropped int
}

// Len returns the number of papers in the table.
func (t *Table) Len() int { return len(t.Papers) }

// HasYears reports whether at least one paper has a known year.
func (t *Table) HasYears() bool { return t.MaxYear != 0 }
