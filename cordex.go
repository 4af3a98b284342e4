// Package cordex explores CORD-19 research-paper metadata.
//
// Usage:
//
//	import (
//	    "github.com/cordex-org/cordex/dataset"
//	    "github.com/cordex-org/cordex/engine"
//	)
//
//	table, err := dataset.LoadCached("metadata.csv")
//	summary := engine.Summarize(engine.NewView(table),
//	    engine.YearRange{Lo: 2020, Hi: 2021},
//	)
//
// The dataset package loads the metadata CSV once per process; the
// engine filters by publication year and computes render-ready
// aggregates (year histogram, top journals, frequent title words,
// source counts, sample rows). The ui package presents them as a
// terminal dashboard. All computation is local and pure; the engine
// never touches the filesystem or the network.
package cordex
