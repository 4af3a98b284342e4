package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ============================================================================
// LOADER — Parses the metadata CSV into a Table
// ============================================================================
// Required columns: title, publish_time. Optional: journal, abstract,
// source (the original CORD-19 export spells it source_x; both work).
// Rows missing a required field are dropped silently. Rows whose
// publish_time fails to parse are kept without a year.
// ============================================================================

// LoadError reports an unusable data file: missing, unreadable, or
// lacking a required column. It is fatal for the explorer — there is
// nothing to show without data.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Option configures a Load call.
type Option func(*loadConfig)

type loadConfig struct {
	logger *zap.Logger
}

// WithLogger attaches a logger for per-load diagnostics (row drop
// counts, parse failures). Load is silent without one.
func WithLogger(l *zap.Logger) Option {
	return func(c *loadConfig) { c.logger = l }
}

func applyOptions(opts []Option) *loadConfig {
	cfg := &loadConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// publish_time layouts seen in the CORD-19 metadata export, most
// common first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"2006 Jan 2",
	"2006 Jan",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
}

// Load reads a metadata CSV from path and builds a Table.
//
// Returns a *LoadError when the file cannot be read or the header lacks
// title or publish_time. Malformed rows (wrong field count) are skipped;
// rows missing a required value are dropped and counted in Table.Dropped.
func Load(path string, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot open data file", Err: err}
	}
	defer f.Close()

	table, err := parse(f, cfg)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Reason: "parse failed", Err: err}
	}

	cfg.logger.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("papers", table.Len()),
		zap.Int("dropped", table.Dropped),
		zap.Int("min_year", table.MinYear),
		zap.Int("max_year", table.MaxYear),
	)
	return table, nil
}

// column indices resolved from the header row; -1 = column absent.
type columns struct {
	title       int
	publishTime int
	journal     int
	abstract    int
	source      int
}

func parse(r io.Reader, cfg *loadConfig) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row length validated per column below

	header, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Reason: "cannot read CSV header", Err: err}
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	table := &Table{}
	unparsed := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		title := strings.TrimSpace(field(row, cols.title))
		rawTime := strings.TrimSpace(field(row, cols.publishTime))
		if title == "" || rawTime == "" {
			table.Dropped++
			continue
		}

		paper := Paper{
			Title:    title,
			Journal:  strings.TrimSpace(field(row, cols.journal)),
			Source:   strings.TrimSpace(field(row, cols.source)),
			Abstract: field(row, cols.abstract),
		}
		paper.AbstractWordCount = len(strings.Fields(paper.Abstract))

		if t, ok := parsePublishTime(rawTime); ok {
			paper.PublishTime = t
			paper.Year = t.Year()
			paper.YearKnown = true
		} else {
			unparsed++
		}

		table.Papers = append(table.Papers, paper)
	}

	computeYearBounds(table)

	if table.Dropped > 0 || unparsed > 0 {
		cfg.logger.Debug("rows filtered during load",
			zap.Int("dropped_missing_required", table.Dropped),
			zap.Int("kept_without_year", unparsed),
		)
	}
	return table, nil
}

// resolveColumns maps the header to column indices. Header names are
// trimmed and snake_cased so "Publish Time" and "publish_time" both match.
func resolveColumns(header []string) (columns, error) {
	cols := columns{title: -1, publishTime: -1, journal: -1, abstract: -1, source: -1}

	for i, h := range header {
		switch toSnakeCase(strings.TrimSpace(h)) {
		case "title":
			cols.title = i
		case "publish_time":
			cols.publishTime = i
		case "journal":
			cols.journal = i
		case "abstract":
			cols.abstract = i
		case "source", "source_x":
			cols.source = i
		}
	}

	if cols.title == -1 {
		return cols, &LoadError{Reason: "missing required column: title"}
	}
	if cols.publishTime == -1 {
		return cols, &LoadError{Reason: "missing required column: publish_time"}
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parsePublishTime(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func computeYearBounds(table *Table) {
	for _, p := range table.Papers {
		if !p.YearKnown {
			continue
		}
		if table.MinYear == 0 || p.Year < table.MinYear {
			table.MinYear = p.Year
		}
		if p.Year > table.MaxYear {
			table.MaxYear = p.Year
		}
	}
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
