package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCachedReturnsSameTable(t *testing.T) {
	resetCache()
	path := writeTemp(t, metadataCSV)

	first, err := LoadCached(path)
	require.NoError(t, err)
	second, err := LoadCached(path)
	require.NoError(t, err)

	assert.Same(t, first, second, "repeat loads must reuse the cached table")
}

func TestLoadCachedIgnoresFileChanges(t *testing.T) {
	resetCache()
	path := writeTemp(t, metadataCSV)

	before, err := LoadCached(path)
	require.NoError(t, err)

	// Rewriting the file must not affect the cached table: no
	// invalidation by design, restart to reload.
	require.NoError(t, os.WriteFile(path, []byte("title,publish_time\nOnly row,2022-01-01\n"), 0o644))

	after, err := LoadCached(path)
	require.NoError(t, err)
	assert.Same(t, before, after)
	assert.Equal(t, before.Len(), after.Len())
}

func TestLoadCachedDoesNotCacheFailures(t *testing.T) {
	resetCache()
	path := filepath.Join(t.TempDir(), "metadata.csv")

	_, err := LoadCached(path)
	require.Error(t, err)

	// The file appears after the failed attempt; retry must succeed.
	require.NoError(t, os.WriteFile(path, []byte("title,publish_time\nA study,2020-01-01\n"), 0o644))
	table, err := LoadCached(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestLoadCachedKeyIsCleanedPath(t *testing.T) {
	resetCache()
	path := writeTemp(t, metadataCSV)

	first, err := LoadCached(path)
	require.NoError(t, err)

	messy := filepath.Dir(path) + "/./" + filepath.Base(path)
	second, err := LoadCached(messy)
	require.NoError(t, err)

	assert.Same(t, first, second)
}
