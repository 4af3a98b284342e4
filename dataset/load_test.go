package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample metadata export, same columns as the CORD-19 file.
var metadataCSV = []byte(`title,abstract,publish_time,journal,source_x
Novel coronavirus genome analysis,Sequencing results for a novel pathogen,2020-01-15,Nature,PMC
Transmission dynamics in households,We model household spread,2020-03-02,The Lancet,PMC
Vaccine efficacy trial results,,2021-06-10,Nature,Medline
Early outbreak case report,Case report from the first cluster,2019-12-30,,WHO
Untitled preprint follow-up,An abstract without a date,not-a-date,BioRxiv,BioRxiv
,An abstract without a title,2020-05-05,Nature,PMC
Missing date row,Some abstract,,Science,PMC
`)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.csv")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	table, err := Load(writeTemp(t, metadataCSV))
	require.NoError(t, err)

	// 7 rows: one lacks a title, one lacks publish_time entirely.
	assert.Equal(t, 5, table.Len())
	assert.Equal(t, 2, table.Dropped)

	first := table.Papers[0]
	assert.Equal(t, "Novel coronavirus genome analysis", first.Title)
	assert.Equal(t, "Nature", first.Journal)
	assert.Equal(t, "PMC", first.Source)
	assert.True(t, first.YearKnown)
	assert.Equal(t, 2020, first.Year)
	assert.Equal(t, 6, first.AbstractWordCount)
}

func TestLoadUnparseableDateKeepsRow(t *testing.T) {
	table, err := Load(writeTemp(t, metadataCSV))
	require.NoError(t, err)

	var preprint *Paper
	for i := range table.Papers {
		if table.Papers[i].Title == "Untitled preprint follow-up" {
			preprint = &table.Papers[i]
		}
	}
	require.NotNil(t, preprint, "row with unparseable date must be kept")
	assert.False(t, preprint.YearKnown)
	assert.Equal(t, 0, preprint.Year)
}

func TestLoadYearBounds(t *testing.T) {
	table, err := Load(writeTemp(t, metadataCSV))
	require.NoError(t, err)

	assert.Equal(t, 2019, table.MinYear)
	assert.Equal(t, 2021, table.MaxYear)
	assert.True(t, table.HasYears())
}

func TestLoadEmptyAbstract(t *testing.T) {
	table, err := Load(writeTemp(t, metadataCSV))
	require.NoError(t, err)

	for _, p := range table.Papers {
		if p.Title == "Vaccine efficacy trial results" {
			assert.Equal(t, 0, p.AbstractWordCount)
		}
	}
}

func TestLoadDateLayouts(t *testing.T) {
	csv := []byte(`title,publish_time
Full date,2020-03-15
Year and month,2020-03
Year only,2020
Spelled out,2020 Mar 15
`)
	table, err := Load(writeTemp(t, csv))
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	for _, p := range table.Papers {
		assert.True(t, p.YearKnown, "layout for %q should parse", p.Title)
		assert.Equal(t, 2020, p.Year)
	}
}

func TestLoadSourceColumnSpellings(t *testing.T) {
	plain := []byte("title,publish_time,source\nA study,2020-01-01,PMC\n")
	table, err := Load(writeTemp(t, plain))
	require.NoError(t, err)
	assert.Equal(t, "PMC", table.Papers[0].Source)

	underscored := []byte("title,publish_time,source_x\nA study,2020-01-01,Medline\n")
	table, err = Load(writeTemp(t, underscored))
	require.NoError(t, err)
	assert.Equal(t, "Medline", table.Papers[0].Source)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "cannot open")
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	noTitle := []byte("abstract,publish_time\nsomething,2020-01-01\n")
	_, err := Load(writeTemp(t, noTitle))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "title")

	noTime := []byte("title,journal\nA study,Nature\n")
	_, err = Load(writeTemp(t, noTime))
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "publish_time")
}

func TestLoadShortRows(t *testing.T) {
	// Rows narrower than the header resolve missing cells as empty.
	csv := []byte(`title,publish_time,journal
A complete row,2020-01-01,Nature
A short row,2020-02-02
`)
	table, err := Load(writeTemp(t, csv))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "", table.Papers[1].Journal)
}
