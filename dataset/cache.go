package dataset

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// ============================================================================
// LOAD CACHE — Process-lifetime memoization keyed by cleaned path
// ============================================================================
// The explorer re-runs filter + aggregation on every interaction but
// loads the file exactly once. There is no invalidation: picking up an
// edited file requires a restart.
// ============================================================================

var loadCache = struct {
	mu     sync.Mutex
	tables map[string]*Table
}{tables: make(map[string]*Table)}

// LoadCached returns the memoized Table for path, loading it on first
// use. Repeat calls with the same path return the same *Table. A failed
// load is not cached, so a corrected file can be retried without restart.
func LoadCached(path string, opts ...Option) (*Table, error) {
	key := filepath.Clean(path)

	loadCache.mu.Lock()
	defer loadCache.mu.Unlock()

	if table, ok := loadCache.tables[key]; ok {
		applyOptions(opts).logger.Debug("load cache hit", zap.String("path", key))
		return table, nil
	}

	table, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	loadCache.tables[key] = table
	return table, nil
}

// resetCache clears the memoized tables. Test hook only.
func resetCache() {
	loadCache.mu.Lock()
	defer loadCache.mu.Unlock()
	loadCache.tables = make(map[string]*Table)
}
