package engine

// ============================================================================
// SUMMARIZE — Filter + aggregate pipeline entry point
// ============================================================================
// One call per interaction: the UI passes the loaded view and the
// current year range and gets every render-ready aggregate back.
//
// Pipeline:
//   1. FilterByYear → SubView (zero-copy)
//   2. Independent aggregates over the filtered view
//   3. Sample-table head
//
// No aggregate feeds another; all computation is local and pure.
// ============================================================================

// Defaults match the original explorer: top 10 journals, top 20 title
// words, 10 sample rows.
const (
	DefaultTopJournals = 10
	DefaultTopWords    = 20
	DefaultSampleRows  = 10
)

// Summary holds every aggregate for one year-range selection.
type Summary struct {
	Range    YearRange
	Filtered PaperView

	Count          int
	ByYear         []Group
	TopJournalList []Group
	TopWordList    []Group
	BySource       []Group
	AbstractByYear []Group
	Sample         *SampleTable
}

// Option configures a Summarize call.
type Option func(*summaryConfig)

type summaryConfig struct {
	topJournals int
	topWords    int
	sampleRows  int
}

// WithTopJournals overrides the journal ranking size.
func WithTopJournals(n int) Option {
	return func(c *summaryConfig) { c.topJournals = n }
}

// WithTopWords overrides the title-word ranking size.
func WithTopWords(n int) Option {
	return func(c *summaryConfig) { c.topWords = n }
}

// WithSampleRows overrides the sample-table size.
func WithSampleRows(n int) Option {
	return func(c *summaryConfig) { c.sampleRows = n }
}

// Summarize filters view to the year range and computes all aggregates.
// Pure: same view and range, same summary. An empty filtered view yields
// empty groups, not an error.
func Summarize(view PaperView, r YearRange, opts ...Option) *Summary {
	cfg := &summaryConfig{
		topJournals: DefaultTopJournals,
		topWords:    DefaultTopWords,
		sampleRows:  DefaultSampleRows,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	filtered := FilterByYear(view, r)

	return &Summary{
		Range:          r,
		Filtered:       filtered,
		Count:          filtered.Len(),
		ByYear:         CountByYear(filtered),
		TopJournalList: TopJournals(filtered, cfg.topJournals),
		TopWordList:    TopTitleWords(filtered, cfg.topWords),
		BySource:       CountBySource(filtered),
		AbstractByYear: AvgAbstractWordsByYear(filtered),
		Sample:         BuildSampleTable(filtered, cfg.sampleRows),
	}
}
