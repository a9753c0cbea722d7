package vector

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Dict is a dictionary-encoded column: a table of distinct values plus one
// int32 code per row (-1 for null). It is the Generic shape; every read goes
// through the code indirection, so kernels treat it as the slow path.
type Dict[T any] struct {
	dtype    arrow.DataType
	values   []T
	codes    []int32
	hasNulls bool
}

// NewDict creates a dictionary column. codes[i] indexes values, or is -1
// when row i is null.
func NewDict[T any](dtype arrow.DataType, values []T, codes []int32) *Dict[T] {
	hasNulls := false
	for _, code := range codes {
		if code < 0 {
			hasNulls = true
			break
		}
	}
	return &Dict[T]{dtype: dtype, values: values, codes: codes, hasNulls: hasNulls}
}

func (d *Dict[T]) Len() int                 { return len(d.codes) }
func (d *Dict[T]) HasNulls() bool           { return d.hasNulls }
func (d *Dict[T]) Shape() Shape             { return ShapeGeneric }
func (d *Dict[T]) DataType() arrow.DataType { return d.dtype }

func (d *Dict[T]) IsNull(i int) bool {
	return d.codes[i] < 0
}

// Value resolves the dictionary code at row i. Defined only when IsNull(i)
// is false.
func (d *Dict[T]) Value(i int) T {
	return d.values[d.codes[i]]
}
