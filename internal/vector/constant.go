package vector

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Const logically repeats a single value (or null) for every row of the
// batch. Kernels read the value once and reuse it across the selection.
type Const[T any] struct {
	dtype    arrow.DataType
	value    T
	valid    bool
	rowCount int
}

// NewConst creates a constant column repeating value for rowCount rows.
func NewConst[T any](dtype arrow.DataType, value T, rowCount int) *Const[T] {
	return &Const[T]{dtype: dtype, value: value, valid: true, rowCount: rowCount}
}

// NewConstNull creates a constant column that is null at every row.
func NewConstNull[T any](dtype arrow.DataType, rowCount int) *Const[T] {
	return &Const[T]{dtype: dtype, rowCount: rowCount}
}

func (c *Const[T]) Len() int                 { return c.rowCount }
func (c *Const[T]) Shape() Shape             { return ShapeConstant }
func (c *Const[T]) DataType() arrow.DataType { return c.dtype }
func (c *Const[T]) IsNull(int) bool          { return !c.valid }
func (c *Const[T]) HasNulls() bool           { return !c.valid && c.rowCount > 0 }

func (c *Const[T]) Value(int) T {
	return c.value
}
