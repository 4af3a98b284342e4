package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cordex-org/cordex/dataset"
)

// ============================================================================
// AGGREGATORS — Pure summaries over a filtered PaperView
// ============================================================================
// Every aggregator is stateless: same view in, same groups out. Grouping
// records first-encountered order before any sort, so ties in the top-N
// rankings break by first appearance (stable counting-then-sort).
// ============================================================================

// Group is one bucket of an aggregate: a label and its count. Value
// carries non-count measures (currently the average abstract length).
type Group struct {
	Key   string
	Label string
	Count int
	Value float64
}

// CountByYear groups papers by publication year and counts each bucket,
// sorted ascending by year. Papers without a known year are absent from
// the input view already (FilterByYear drops them), so the counts sum to
// view.Len().
func CountByYear(view PaperView) []Group {
	counts := make(map[int]int)
	years := make([]int, 0)

	for i := 0; i < view.Len(); i++ {
		p := view.At(i)
		if !p.YearKnown {
			continue
		}
		if _, seen := counts[p.Year]; !seen {
			years = append(years, p.Year)
		}
		counts[p.Year]++
	}
	sort.Ints(years)

	groups := make([]Group, 0, len(years))
	for _, y := range years {
		label := strconv.Itoa(y)
		groups = append(groups, Group{
			Key:   label,
			Label: label,
			Count: counts[y],
			Value: float64(counts[y]),
		})
	}
	return groups
}

// TopJournals counts papers per journal and returns the n largest
// buckets, descending by count. Papers without a journal are excluded:
// an unnamed bucket would crowd real journals out of a top-10 chart.
func TopJournals(view PaperView, n int) []Group {
	groups := countByKey(view, func(p dataset.Paper) (string, bool) {
		return p.Journal, p.Journal != ""
	})
	return topN(groups, n)
}

// TopTitleWords lowercases each title, splits it on whitespace, and
// counts token frequency across the whole view. Returns the n most
// frequent tokens, descending. "COVID Study" and "covid study" land in
// the same buckets.
func TopTitleWords(view PaperView, n int) []Group {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		for _, word := range strings.Fields(strings.ToLower(view.At(i).Title)) {
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	groups := make([]Group, 0, len(order))
	for _, word := range order {
		groups = append(groups, Group{Key: word, Label: word, Count: counts[word], Value: float64(counts[word])})
	}
	return topN(groups, n)
}

// CountBySource counts papers per source collection, descending by
// count. Papers without a source are kept under an "(unknown)" bucket so
// the chart still accounts for every filtered paper.
func CountBySource(view PaperView) []Group {
	groups := countByKey(view, func(p dataset.Paper) (string, bool) {
		if p.Source == "" {
			return "(unknown)", true
		}
		return p.Source, true
	})
	sortByCountDesc(groups)
	return groups
}

// AvgAbstractWordsByYear averages abstract word counts per publication
// year, ascending by year. Group.Count holds the papers averaged over,
// Group.Value the average.
func AvgAbstractWordsByYear(view PaperView) []Group {
	sums := make(map[int]int)
	counts := make(map[int]int)
	years := make([]int, 0)

	for i := 0; i < view.Len(); i++ {
		p := view.At(i)
		if !p.YearKnown {
			continue
		}
		if _, seen := counts[p.Year]; !seen {
			years = append(years, p.Year)
		}
		sums[p.Year] += p.AbstractWordCount
		counts[p.Year]++
	}
	sort.Ints(years)

	groups := make([]Group, 0, len(years))
	for _, y := range years {
		label := strconv.Itoa(y)
		groups = append(groups, Group{
			Key:   label,
			Label: label,
			Count: counts[y],
			Value: float64(sums[y]) / float64(counts[y]),
		})
	}
	return groups
}

// ============================================================================
// INTERNAL HELPERS
// ============================================================================

// countByKey groups papers by a derived string key, preserving
// first-encountered order. keyFn returns ok=false to skip a paper.
func countByKey(view PaperView, keyFn func(dataset.Paper) (string, bool)) []Group {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key, ok := keyFn(view.At(i))
		if !ok {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{Key: key, Label: key, Count: counts[key], Value: float64(counts[key])})
	}
	return groups
}

// sortByCountDesc sorts groups by descending count; SliceStable keeps
// first-encountered order for equal counts.
func sortByCountDesc(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
}

// topN sorts descending by count and truncates to n entries.
func topN(groups []Group, n int) []Group {
	sortByCountDesc(groups)
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
