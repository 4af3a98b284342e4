package engine

// ============================================================================
// YEAR FILTER — Inclusive year-range restriction via PaperView
// ============================================================================
// Single pass over the parent view, returns a SubView (index list) with
// the original order preserved. Papers without a known year never pass.
// ============================================================================

// YearRange is an inclusive pair of publication-year bounds, Lo <= Hi.
type YearRange struct {
	Lo int
	Hi int
}

// Valid reports whether the range is ordered.
func (r YearRange) Valid() bool { return r.Lo <= r.Hi }

// Contains reports whether year falls inside the range.
func (r YearRange) Contains(year int) bool { return year >= r.Lo && year <= r.Hi }

// Clamp pulls the range inside [min, max]. A range entirely outside the
// bounds collapses onto the nearest bound. Used to reconcile the default
// selection with the table's actual year span.
func (r YearRange) Clamp(min, max int) YearRange {
	if r.Lo < min {
		r.Lo = min
	}
	if r.Lo > max {
		r.Lo = max
	}
	if r.Hi > max {
		r.Hi = max
	}
	if r.Hi < r.Lo {
		r.Hi = r.Lo
	}
	return r
}

// FilterByYear returns the papers whose known year satisfies
// r.Lo <= year <= r.Hi, in original order. An empty result is valid.
// Filtering an already-filtered view with the same range is a no-op
// beyond one more index indirection.
func FilterByYear(view PaperView, r YearRange) PaperView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		p := view.At(i)
		if p.YearKnown && r.Contains(p.Year) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}
