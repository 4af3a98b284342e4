package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordex-org/cordex/dataset"
)

func sampleDataset() []dataset.Paper {
	return []dataset.Paper{
		{Title: "Early case report", Journal: "The Lancet", Source: "PMC", Year: 2019, YearKnown: true, AbstractWordCount: 120},
		{Title: "Novel virus study", Journal: "Nature", Source: "PMC", Year: 2020, YearKnown: true, AbstractWordCount: 180},
		{Title: "Novel treatment plan", Journal: "Nature", Source: "Medline", Year: 2020, YearKnown: true, AbstractWordCount: 210},
		{Title: "Vaccine trial results", Journal: "Science", Source: "Medline", Year: 2021, YearKnown: true, AbstractWordCount: 160},
		{Title: "Retrospective review", Journal: "BMJ", Source: "WHO", Year: 2022, YearKnown: true, AbstractWordCount: 90},
	}
}

func TestSummarize(t *testing.T) {
	view := NewSliceView(sampleDataset())
	r := YearRange{Lo: 2020, Hi: 2021}

	s := Summarize(view, r)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, r, s.Range)

	require.Len(t, s.ByYear, 2)
	assert.Equal(t, 2, s.ByYear[0].Count)
	assert.Equal(t, 1, s.ByYear[1].Count)

	require.NotEmpty(t, s.TopJournalList)
	assert.Equal(t, "Nature", s.TopJournalList[0].Label)

	require.NotEmpty(t, s.TopWordList)
	assert.Equal(t, "novel", s.TopWordList[0].Label)
	assert.Equal(t, 2, s.TopWordList[0].Count)
}

func TestSummarizeHistogramSumsToCount(t *testing.T) {
	view := NewSliceView(sampleDataset())
	s := Summarize(view, YearRange{Lo: 2019, Hi: 2022})

	total := 0
	for _, g := range s.ByYear {
		total += g.Count
	}
	assert.Equal(t, s.Count, total)
}

func TestSummarizeEmptyRange(t *testing.T) {
	view := NewSliceView(sampleDataset())
	s := Summarize(view, YearRange{Lo: 1990, Hi: 1991})

	assert.Equal(t, 0, s.Count)
	assert.Empty(t, s.ByYear)
	assert.Empty(t, s.TopJournalList)
	assert.Empty(t, s.TopWordList)
	assert.Empty(t, s.BySource)
	assert.Empty(t, s.Sample.Rows)
}

func TestSummarizeOptions(t *testing.T) {
	view := NewSliceView(sampleDataset())
	s := Summarize(view, YearRange{Lo: 2019, Hi: 2022},
		WithTopJournals(1),
		WithTopWords(2),
		WithSampleRows(3),
	)

	assert.Len(t, s.TopJournalList, 1)
	assert.Len(t, s.TopWordList, 2)
	assert.Len(t, s.Sample.Rows, 3)
}

func TestBuildSampleTable(t *testing.T) {
	view := NewSliceView(sampleDataset())

	sample := BuildSampleTable(view, 10)

	require.Len(t, sample.Columns, 3)
	assert.Equal(t, "Title", sample.Columns[0].Label)
	assert.Equal(t, "Journal", sample.Columns[1].Label)
	assert.Equal(t, "Year", sample.Columns[2].Label)

	require.Len(t, sample.Rows, 5)
	assert.Equal(t, []string{"Early case report", "The Lancet", "2019"}, sample.Rows[0])
	assert.Equal(t, 5, sample.Total)
}

func TestBuildSampleTableHeadLimit(t *testing.T) {
	papers := make([]dataset.Paper, 0, 25)
	for i := 0; i < 25; i++ {
		papers = append(papers, dataset.Paper{Title: "p", Year: 2020, YearKnown: true})
	}

	sample := BuildSampleTable(NewSliceView(papers), 10)

	assert.Len(t, sample.Rows, 10)
	assert.Equal(t, 25, sample.Total)
}

func TestBuildSampleTableMissingFields(t *testing.T) {
	papers := []dataset.Paper{
		{Title: "No journal", Year: 2020, YearKnown: true},
		{Title: "No year", Journal: "Nature"},
	}

	sample := BuildSampleTable(NewSliceView(papers), 10)

	require.Len(t, sample.Rows, 2)
	assert.Equal(t, "—", sample.Rows[0][1])
	assert.Equal(t, "", sample.Rows[1][2])
}
