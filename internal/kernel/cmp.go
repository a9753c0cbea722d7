// Package kernel provides vectorized binary-comparison kernels over columnar
// views. A kernel is compiled once per (operator, element type) pair by the
// dispatcher, is stateless and immutable after construction, and may be
// invoked concurrently from independent batches.
package kernel

import (
	"bytes"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"golang.org/x/exp/constraints"
)

// Op identifies one of the supported comparison operators.
type Op int

const (
	OpEqual Op = iota
	OpLess
	OpGreater
	OpLessOrEqual
	OpGreaterOrEqual
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "equalto"
	case OpLess:
		return "lessthan"
	case OpGreater:
		return "greaterthan"
	case OpLessOrEqual:
		return "lessthanorequal"
	case OpGreaterOrEqual:
		return "greaterthanorequal"
	default:
		return "unknown"
	}
}

// orderedCmp builds the predicate for types with a native total order:
// fixed-width integers, floats, strings (byte-lexicographic), timestamps and
// dates. Floats follow Go's IEEE semantics: every comparison involving NaN
// is false, including equal(NaN, NaN).
func orderedCmp[T constraints.Ordered](op Op) func(a, b T) bool {
	switch op {
	case OpEqual:
		return func(a, b T) bool { return a == b }
	case OpLess:
		return func(a, b T) bool { return a < b }
	case OpGreater:
		return func(a, b T) bool { return a > b }
	case OpLessOrEqual:
		return func(a, b T) bool { return a <= b }
	case OpGreaterOrEqual:
		return func(a, b T) bool { return a >= b }
	default:
		return nil
	}
}

// bytesCmp builds the byte-lexicographic predicate for variable-length
// binary values.
func bytesCmp(op Op) func(a, b []byte) bool {
	switch op {
	case OpEqual:
		return func(a, b []byte) bool { return bytes.Equal(a, b) }
	case OpLess:
		return func(a, b []byte) bool { return bytes.Compare(a, b) < 0 }
	case OpGreater:
		return func(a, b []byte) bool { return bytes.Compare(a, b) > 0 }
	case OpLessOrEqual:
		return func(a, b []byte) bool { return bytes.Compare(a, b) <= 0 }
	case OpGreaterOrEqual:
		return func(a, b []byte) bool { return bytes.Compare(a, b) >= 0 }
	default:
		return nil
	}
}

// boolCmp builds the logical-boolean predicate with false < true.
func boolCmp(op Op) func(a, b bool) bool {
	rank := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	switch op {
	case OpEqual:
		return func(a, b bool) bool { return a == b }
	case OpLess:
		return func(a, b bool) bool { return rank(a) < rank(b) }
	case OpGreater:
		return func(a, b bool) bool { return rank(a) > rank(b) }
	case OpLessOrEqual:
		return func(a, b bool) bool { return rank(a) <= rank(b) }
	case OpGreaterOrEqual:
		return func(a, b bool) bool { return rank(a) >= rank(b) }
	default:
		return nil
	}
}

// decimalCmp builds the wide-integer predicate. All five operators derive
// from decimal128.Num.Less, which orders by the full 128-bit value.
func decimalCmp(op Op) func(a, b decimal128.Num) bool {
	switch op {
	case OpEqual:
		return func(a, b decimal128.Num) bool { return !a.Less(b) && !b.Less(a) }
	case OpLess:
		return func(a, b decimal128.Num) bool { return a.Less(b) }
	case OpGreater:
		return func(a, b decimal128.Num) bool { return b.Less(a) }
	case OpLessOrEqual:
		return func(a, b decimal128.Num) bool { return !b.Less(a) }
	case OpGreaterOrEqual:
		return func(a, b decimal128.Num) bool { return !a.Less(b) }
	default:
		return nil
	}
}
