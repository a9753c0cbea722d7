package vector

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/bitutil"
)

// Flat is the dense array representation for one scalar type: a contiguous
// value buffer plus an optional validity bitmap in Arrow layout (bit set =
// valid, nil bitmap = no nulls). It backs the Flat shape and is the only
// representation results are written into.
type Flat[T any] struct {
	dtype    arrow.DataType
	values   []T
	validity []byte
}

// NewFlat wraps a value buffer and optional validity bitmap as a flat
// column. The buffers are not copied.
func NewFlat[T any](dtype arrow.DataType, values []T, validity []byte) *Flat[T] {
	return &Flat[T]{dtype: dtype, values: values, validity: validity}
}

// NewFlatEmpty allocates a flat column of rowCount rows with every row
// valid and zero-valued. Used for result buffers; entries outside the
// active selection are left unspecified by kernels.
func NewFlatEmpty[T any](dtype arrow.DataType, rowCount int) *Flat[T] {
	return &Flat[T]{dtype: dtype, values: make([]T, rowCount)}
}

func (f *Flat[T]) Len() int                 { return len(f.values) }
func (f *Flat[T]) Shape() Shape             { return ShapeFlat }
func (f *Flat[T]) DataType() arrow.DataType { return f.dtype }

// Value returns the value at row i. Defined only when IsNull(i) is false.
func (f *Flat[T]) Value(i int) T {
	return f.values[i]
}

func (f *Flat[T]) IsNull(i int) bool {
	return f.validity != nil && !bitutil.BitIsSet(f.validity, i)
}

// HasNulls reports whether any row is null. Kernel callers use this to pick
// the flat-no-nulls fast path.
func (f *Flat[T]) HasNulls() bool {
	if f.validity == nil {
		return false
	}
	n := len(f.values)
	return bitutil.CountSetBits(f.validity, 0, n) != n
}

// Values exposes the dense value buffer for fast-path iteration. The slice
// must not be resized by the caller.
func (f *Flat[T]) Values() []T {
	return f.values
}

// Set writes a value at row i and marks it valid.
func (f *Flat[T]) Set(i int, v T) {
	f.values[i] = v
	if f.validity != nil {
		bitutil.SetBit(f.validity, i)
	}
}

// SetNull marks row i null, materializing the validity bitmap on first use.
func (f *Flat[T]) SetNull(i int) {
	if f.validity == nil {
		f.validity = newAllValidBitmap(len(f.values))
	}
	bitutil.ClearBit(f.validity, i)
}

// Resize grows or shrinks the column to rowCount rows. Existing values are
// kept where capacity allows; a validity bitmap, if present, is re-derived
// for the new length with new rows valid.
func (f *Flat[T]) Resize(rowCount int) {
	oldLen := len(f.values)
	switch {
	case rowCount <= cap(f.values):
		f.values = f.values[:rowCount]
	default:
		grown := make([]T, rowCount)
		copy(grown, f.values)
		f.values = grown
	}
	if f.validity != nil {
		grownBits := newAllValidBitmap(rowCount)
		n := rowCount
		if oldLen < n {
			n = oldLen
		}
		for i := 0; i < n; i++ {
			if !bitutil.BitIsSet(f.validity, i) {
				bitutil.ClearBit(grownBits, i)
			}
		}
		f.validity = grownBits
	}
}

func newAllValidBitmap(rowCount int) []byte {
	bits := make([]byte, bitutil.BytesForBits(int64(rowCount)))
	bitutil.SetBitsTo(bits, 0, int64(rowCount), true)
	return bits
}
