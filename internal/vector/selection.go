// Package vector provides encoding-transparent columnar views and selection
// masks for vectorized batch evaluation.
//
// A batch is a fixed number of logical rows. Every column of a batch exposes
// one of three shapes: Flat (dense, one value per row), Constant (a single
// repeated value), or Generic (any other encoding, read through a decode
// indirection). Shape classification happens once when a view is built, never
// per row, so kernels can pick an access strategy outside their hot loop.
package vector

import (
	"sort"

	"github.com/okapilab/okapi/internal/errors"
)

// Selection is an ordered set of active row indices over a fixed-size batch.
// It is immutable for the duration of a kernel call; rows outside the
// selection are never read or written.
type Selection struct {
	rowCount int
	indices  []int
}

// NewSelection creates a selection over the given indices. Indices must be
// in-bounds; they are sorted and deduplicated so iteration is strictly
// ascending.
func NewSelection(rowCount int, indices []int) (*Selection, error) {
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= rowCount {
			return nil, errors.ErrInvalidIndex
		}
		out = append(out, idx)
	}
	sort.Ints(out)
	dedup := out[:0]
	for i, idx := range out {
		if i == 0 || idx != out[i-1] {
			dedup = append(dedup, idx)
		}
	}
	return &Selection{rowCount: rowCount, indices: dedup}, nil
}

// SelectAll creates a selection covering every row of the batch.
func SelectAll(rowCount int) *Selection {
	indices := make([]int, rowCount)
	for i := range indices {
		indices[i] = i
	}
	return &Selection{rowCount: rowCount, indices: indices}
}

// RowCount returns the batch row count the selection was built for.
func (s *Selection) RowCount() int {
	return s.rowCount
}

// Len returns the number of active rows.
func (s *Selection) Len() int {
	return len(s.indices)
}

// ForEach invokes fn exactly once per active index, strictly ascending.
// An empty selection performs zero invocations.
func (s *Selection) ForEach(fn func(i int)) {
	for _, idx := range s.indices {
		fn(idx)
	}
}

// Filter returns a new selection containing the active rows for which pred
// holds. The receiver is unchanged.
func (s *Selection) Filter(pred func(i int) bool) *Selection {
	kept := make([]int, 0, len(s.indices))
	for _, idx := range s.indices {
		if pred(idx) {
			kept = append(kept, idx)
		}
	}
	return &Selection{rowCount: s.rowCount, indices: kept}
}

// Indices returns the active indices in ascending order. The returned slice
// must not be mutated.
func (s *Selection) Indices() []int {
	return s.indices
}
