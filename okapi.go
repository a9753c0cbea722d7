// Package okapi provides a vectorized binary-comparison evaluation engine
// for columnar batches backed by Apache Arrow. This package is the sole
// public API for the library.
//
// The engine evaluates one comparison operator over two columnar arguments
// and a selection of active rows, picking the fastest code path the
// arguments' encodings allow: dense arrays are read directly, repeated
// constants are read once, and any other encoding goes through a decode
// indirection. Kernels are compiled per (operator, element type), are
// stateless, and may be shared across concurrently evaluated batches.
package okapi

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/okapilab/okapi/internal/config"
	"github.com/okapilab/okapi/internal/exec"
	"github.com/okapilab/okapi/internal/expr"
	"github.com/okapilab/okapi/internal/kernel"
	"github.com/okapilab/okapi/internal/monitoring"
	"github.com/okapilab/okapi/internal/vector"
)

// Op identifies a comparison operator.
type Op = kernel.Op

// Supported comparison operators.
const (
	OpEqual          = kernel.OpEqual
	OpLess           = kernel.OpLess
	OpGreater        = kernel.OpGreater
	OpLessOrEqual    = kernel.OpLessOrEqual
	OpGreaterOrEqual = kernel.OpGreaterOrEqual
)

// Function is a compiled, stateless comparison kernel.
type Function = kernel.Function

// Selection is an ordered set of active row indices over a batch.
type Selection = vector.Selection

// Column is the type-erased read-only view over one argument column.
type Column = vector.Any

// BoolColumn is the dense boolean result column kernels write into.
type BoolColumn = vector.Flat[bool]

// Shape classifies a column's physical encoding.
type Shape = vector.Shape

// Column shapes.
const (
	ShapeFlat     = vector.ShapeFlat
	ShapeConstant = vector.ShapeConstant
	ShapeGeneric  = vector.ShapeGeneric
)

// Config is the engine configuration.
type Config = config.Config

// Kernel construction entry points, one per supported operator. Each
// validates the two-argument signature and the element kind allow-list
// before any row is processed.

func MakeEqual(name string, argTypes []arrow.DataType) (Function, error) {
	return kernel.MakeEqual(name, argTypes)
}

func MakeLess(name string, argTypes []arrow.DataType) (Function, error) {
	return kernel.MakeLess(name, argTypes)
}

func MakeGreater(name string, argTypes []arrow.DataType) (Function, error) {
	return kernel.MakeGreater(name, argTypes)
}

func MakeLessOrEqual(name string, argTypes []arrow.DataType) (Function, error) {
	return kernel.MakeLessOrEqual(name, argTypes)
}

func MakeGreaterOrEqual(name string, argTypes []arrow.DataType) (Function, error) {
	return kernel.MakeGreaterOrEqual(name, argTypes)
}

// FromArrow adapts an Arrow array into a columnar view, classifying its
// shape once.
func FromArrow(arr arrow.Array) (Column, error) {
	return vector.FromArrow(arr)
}

// SelectAll creates a selection covering every row of a batch.
func SelectAll(rowCount int) *Selection {
	return vector.SelectAll(rowCount)
}

// NewSelection creates a selection over the given row indices.
func NewSelection(rowCount int, indices []int) (*Selection, error) {
	return vector.NewSelection(rowCount, indices)
}

// Engine bundles an evaluation context, a kernel cache, and the batch
// pipeline behind one handle.
type Engine struct {
	eval     *exec.Evaluator
	pipeline *exec.Pipeline
	exprEval *expr.Evaluator
}

// NewEngine creates an engine with the given allocator and configuration.
// A nil allocator falls back to the Go allocator.
func NewEngine(mem memory.Allocator, cfg Config) *Engine {
	metrics := monitoring.NewMetricsCollector(cfg.MetricsCollection)
	ctx := exec.NewContext(mem, metrics)
	eval := exec.NewEvaluator(ctx)
	return &Engine{
		eval:     eval,
		pipeline: exec.NewPipeline(eval, cfg),
		exprEval: expr.NewEvaluator(eval),
	}
}

// Compare evaluates op over the selected rows of two columns with default
// null propagation and returns the boolean result.
func (e *Engine) Compare(op Op, left, right Column, rows *Selection) (*BoolColumn, error) {
	var result *BoolColumn
	if err := e.eval.Compare(op, left, right, rows, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CompareColumns evaluates op between two named columns of an Arrow record,
// batching and parallelizing when the row count warrants it.
func (e *Engine) CompareColumns(op Op, rec arrow.Record, leftName, rightName string) (*BoolColumn, error) {
	return e.pipeline.CompareColumns(op, rec, leftName, rightName)
}

// Filter evaluates a comparison expression over a batch of named columns.
func (e *Engine) Filter(ex Expr, columns map[string]Column) (*BoolColumn, error) {
	return e.exprEval.EvaluateBoolean(ex, columns)
}

// Metrics returns the engine's collected operation metrics summary.
func (e *Engine) Metrics() monitoring.MetricsSummary {
	return e.eval.Context().Metrics().GetSummary()
}

// Expr is a lazily evaluated comparison expression.
type Expr = expr.Expr

// Col creates a column reference expression.
func Col(name string) *expr.ColumnExpr {
	return expr.Col(name)
}

// Lit creates a literal expression; it evaluates to a constant-shaped
// column.
func Lit(value interface{}) *expr.LiteralExpr {
	return expr.Lit(value)
}
