package engine

import "github.com/cordex-org/cordex/dataset"

// ============================================================================
// PAPER VIEW — Zero-Copy Access to a Loaded Table
// ============================================================================
// The engine never owns the loaded data. Filtering produces a SubView
// (index list into the parent) instead of copying papers, so every
// year-range change is cheap even on the full metadata file.
// ============================================================================

// PaperView provides indexed read access to a sequence of papers.
// Aggregators call At in tight loops — keep implementations fast.
type PaperView interface {
	Len() int
	At(index int) dataset.Paper
}

// NewView wraps a loaded table as a PaperView.
func NewView(table *dataset.Table) PaperView {
	return sliceView(table.Papers)
}

// NewSliceView wraps a plain paper slice. Used by tests and ad-hoc callers.
func NewSliceView(papers []dataset.Paper) PaperView {
	return sliceView(papers)
}

type sliceView []dataset.Paper

func (v sliceView) Len() int { return len(v) }

func (v sliceView) At(i int) dataset.Paper {
	if i < 0 || i >= len(v) {
		return dataset.Paper{}
	}
	return v[i]
}

// subView is a filtered subset of a parent view. Holds indices into the
// parent — no data copy.
type subView struct {
	parent  PaperView
	indices []int
}

func newSubView(parent PaperView, indices []int) PaperView {
	return &subView{parent: parent, indices: indices}
}

func (v *subView) Len() int { return len(v.indices) }

func (v *subView) At(i int) dataset.Paper {
	if i < 0 || i >= len(v.indices) {
		return dataset.Paper{}
	}
	return v.parent.At(v.indices[i])
}

// Papers materializes a view into a slice. Intended for small views
// (sample tables); aggregators stay on the view.
func Papers(view PaperView) []dataset.Paper {
	out := make([]dataset.Paper, view.Len())
	for i := range out {
		out[i] = view.At(i)
	}
	return out
}
