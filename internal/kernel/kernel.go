package kernel

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/okapilab/okapi/internal/errors"
	"github.com/okapilab/okapi/internal/vector"
)

// EvalContext is the host's service object. The kernel uses it for exactly
// one thing: requesting that the result buffer be writable with the given
// output type and row capacity. Allocation policy stays with the host.
type EvalContext interface {
	EnsureWritable(result **vector.Flat[bool], outputType arrow.DataType, rowCount int)
}

// Function is a stateless, reusable comparison evaluator for one operator
// over one element type. Instances carry no per-call state and are safe to
// invoke concurrently on independent batches.
type Function interface {
	// Name returns the operator name the function was constructed with.
	Name() string
	// IsDefaultNullBehavior reports that a null argument at a row implies a
	// null result at that row; the host's null-propagation wrapper must
	// exclude such rows from the selection before calling Apply.
	IsDefaultNullBehavior() bool
	// SupportsFlatNoNullsFastPath reports that the host may skip null
	// machinery entirely when both inputs are flat with no nulls.
	SupportsFlatNoNullsFastPath() bool
	// Apply fills result with the comparison over the selected rows of the
	// two argument columns. Rows outside the selection are unspecified.
	Apply(rows *vector.Selection, args []vector.Any, outputType arrow.DataType, ctx EvalContext, result **vector.Flat[bool]) error
}

// Kernel is the generic comparison evaluator for element type T. The access
// strategy is chosen once per call from the two arguments' shapes, outside
// the per-row loop:
//
//	flat/flat      direct indexed reads on both dense buffers
//	flat/constant  the constant is read once and cached
//	constant/flat  symmetric, constant on the left operand
//	anything else  decode indirection on both arguments per row
type Kernel[T any] struct {
	name string
	cmp  func(a, b T) bool
}

func newKernel[T any](name string, cmp func(a, b T) bool) *Kernel[T] {
	return &Kernel[T]{name: name, cmp: cmp}
}

func (k *Kernel[T]) Name() string                      { return k.name }
func (k *Kernel[T]) IsDefaultNullBehavior() bool       { return true }
func (k *Kernel[T]) SupportsFlatNoNullsFastPath() bool { return true }

func (k *Kernel[T]) Apply(
	rows *vector.Selection,
	args []vector.Any,
	outputType arrow.DataType,
	ctx EvalContext,
	result **vector.Flat[bool],
) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError(k.name,
			fmt.Sprintf("expected 2 arguments, got %d", len(args)))
	}
	if result == nil {
		return errors.ErrNilResult
	}

	arg0, ok := args[0].(vector.Column[T])
	if !ok {
		return errors.NewInvalidInputError(k.name,
			fmt.Sprintf("argument 0 does not hold the compiled element type: %T", args[0]))
	}
	arg1, ok := args[1].(vector.Column[T])
	if !ok {
		return errors.NewInvalidInputError(k.name,
			fmt.Sprintf("argument 1 does not hold the compiled element type: %T", args[1]))
	}
	if arg0.Len() != arg1.Len() {
		return errors.ErrMismatchedLength
	}
	if rows.RowCount() > arg0.Len() {
		return errors.NewInvalidInputError(k.name, "selection exceeds batch row count")
	}

	ctx.EnsureWritable(result, outputType, rows.RowCount())
	out := *result

	flat0, isFlat0 := args[0].(*vector.Flat[T])
	flat1, isFlat1 := args[1].(*vector.Flat[T])
	const0, isConst0 := args[0].(*vector.Const[T])
	const1, isConst1 := args[1].(*vector.Const[T])

	switch {
	case isFlat0 && isFlat1:
		v0, v1 := flat0.Values(), flat1.Values()
		rows.ForEach(func(i int) {
			out.Set(i, k.cmp(v0[i], v1[i]))
		})
	case isFlat0 && isConst1:
		v0 := flat0.Values()
		c := const1.Value(0)
		rows.ForEach(func(i int) {
			out.Set(i, k.cmp(v0[i], c))
		})
	case isConst0 && isFlat1:
		c := const0.Value(0)
		v1 := flat1.Values()
		rows.ForEach(func(i int) {
			out.Set(i, k.cmp(c, v1[i]))
		})
	default:
		rows.ForEach(func(i int) {
			out.Set(i, k.cmp(arg0.Value(i), arg1.Value(i)))
		})
	}
	return nil
}
