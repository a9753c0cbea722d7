package exec

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/okapilab/okapi/internal/errors"
	"github.com/okapilab/okapi/internal/kernel"
	"github.com/okapilab/okapi/internal/validation"
	"github.com/okapilab/okapi/internal/vector"
)

// Evaluator wraps comparison kernels with the default null-propagation
// contract: a null on either side of a row yields a null result at that row
// and the predicate is never consulted for it. Kernels themselves only see
// the null-free remainder of the selection.
type Evaluator struct {
	ctx       *Context
	registry  *kernel.Registry
	fastPaths bool
}

// NewEvaluator creates an evaluator sharing the given context. Kernels are
// compiled on first use and cached in the evaluator's registry.
func NewEvaluator(ctx *Context) *Evaluator {
	if ctx == nil {
		ctx = NewContext(nil, nil)
	}
	return &Evaluator{ctx: ctx, registry: kernel.NewRegistry(), fastPaths: true}
}

// SetFastPaths toggles the flat-no-nulls fast path. Disabling it forces every
// evaluation through the null-propagation wrapper regardless of kernel hints.
func (e *Evaluator) SetFastPaths(enabled bool) {
	e.fastPaths = enabled
}

// Context returns the evaluator's evaluation context.
func (e *Evaluator) Context() *Context {
	return e.ctx
}

// Compare evaluates op over the selected rows of left and right into
// result, allocating the result buffer when the slot is empty. Rows outside
// the selection are unspecified; selected rows with a null argument are null
// in the result.
func (e *Evaluator) Compare(
	op kernel.Op,
	left, right vector.Any,
	rows *vector.Selection,
	result **vector.Flat[bool],
) error {
	if err := validation.ValidateAll(
		validation.NewLengthValidator(op.String(), left.Len(), right.Len()),
		validation.NewSelectionValidator(op.String(), rows.RowCount(), left.Len()),
	); err != nil {
		return err
	}
	if result == nil {
		return errors.ErrNilResult
	}

	fn, err := e.registry.Lookup(op, []arrow.DataType{left.DataType(), right.DataType()})
	if err != nil {
		return err
	}

	args := []vector.Any{left, right}
	outputType := arrow.FixedWidthTypes.Boolean

	// Flat inputs with no nulls skip the null machinery entirely.
	if e.fastPaths && fn.SupportsFlatNoNullsFastPath() && !left.HasNulls() && !right.HasNulls() {
		return fn.Apply(rows, args, outputType, e.ctx, result)
	}

	active := rows.Filter(func(i int) bool {
		return !left.IsNull(i) && !right.IsNull(i)
	})
	if err := fn.Apply(active, args, outputType, e.ctx, result); err != nil {
		return err
	}

	out := *result
	rows.ForEach(func(i int) {
		if left.IsNull(i) || right.IsNull(i) {
			out.SetNull(i)
		}
	})
	return nil
}

// CompareNotEqual evaluates inequality as negated equality over the
// selected rows, preserving null propagation. The kernel family itself is
// the five ordered operators; inequality is host-side sugar for the
// expression layer.
func (e *Evaluator) CompareNotEqual(
	left, right vector.Any,
	rows *vector.Selection,
	result **vector.Flat[bool],
) error {
	if err := e.Compare(kernel.OpEqual, left, right, rows, result); err != nil {
		return err
	}
	out := *result
	rows.ForEach(func(i int) {
		if !out.IsNull(i) {
			out.Set(i, !out.Value(i))
		}
	})
	return nil
}
