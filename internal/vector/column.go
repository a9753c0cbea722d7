package vector

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Shape classifies how a column physically stores its values. The
// classification is fixed for a view's lifetime and determined once at
// construction.
type Shape int

const (
	// ShapeFlat is a dense array with one value per row; direct indexed
	// reads are valid and cheap.
	ShapeFlat Shape = iota
	// ShapeConstant logically repeats a single value for every row; one
	// read suffices regardless of row count.
	ShapeConstant
	// ShapeGeneric is any other encoding; reads go through a decode
	// indirection resolved per call.
	ShapeGeneric
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeConstant:
		return "constant"
	case ShapeGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Any is the type-erased read-only view over one argument column. Kernels
// down-assert to the typed Column[T] they were compiled for.
type Any interface {
	Len() int
	IsNull(i int) bool
	// HasNulls reports whether any row is null; hosts use it together with
	// the flat-no-nulls fast path hint to skip null machinery.
	HasNulls() bool
	Shape() Shape
	DataType() arrow.DataType
}

// Column is the typed read-only accessor over one argument column.
// Value(i) is defined only when IsNull(i) is false.
type Column[T any] interface {
	Any
	Value(i int) T
}
