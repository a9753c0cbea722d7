package expr

import (
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/okapilab/okapi/internal/common"
	"github.com/okapilab/okapi/internal/errors"
	"github.com/okapilab/okapi/internal/exec"
	"github.com/okapilab/okapi/internal/kernel"
	"github.com/okapilab/okapi/internal/vector"
)

// Evaluator evaluates comparison expressions against a batch of columnar
// views.
type Evaluator struct {
	ex *exec.Evaluator
}

// NewEvaluator creates an expression evaluator on top of the given
// kernel evaluator. A nil argument gets a default evaluator.
func NewEvaluator(ex *exec.Evaluator) *Evaluator {
	if ex == nil {
		ex = exec.NewEvaluator(nil)
	}
	return &Evaluator{ex: ex}
}

// EvaluateBoolean evaluates a comparison expression over every row of the
// batch and returns the boolean result column with nulls propagated.
func (e *Evaluator) EvaluateBoolean(expr Expr, columns map[string]vector.Any) (*vector.Flat[bool], error) {
	switch ex := expr.(type) {
	case *ComparisonExpr:
		return e.evaluateComparison(ex, columns)
	case *InvalidExpr:
		return nil, errors.NewInvalidInputError("evaluate", ex.Message())
	default:
		return nil, errors.NewInvalidInputError("evaluate",
			fmt.Sprintf("expression does not produce a boolean result: %s", expr))
	}
}

func (e *Evaluator) evaluateComparison(expr *ComparisonExpr, columns map[string]vector.Any) (*vector.Flat[bool], error) {
	rowCount, err := batchLength(columns)
	if err != nil {
		return nil, err
	}

	left, err := e.resolve(expr.left, columns, rowCount, typeHint(expr.right, columns))
	if err != nil {
		return nil, fmt.Errorf("resolving left operand: %w", err)
	}
	right, err := e.resolve(expr.right, columns, rowCount, typeHint(expr.left, columns))
	if err != nil {
		return nil, fmt.Errorf("resolving right operand: %w", err)
	}

	rows := vector.SelectAll(rowCount)
	var result *vector.Flat[bool]

	if expr.op == OpNe {
		if err := e.ex.CompareNotEqual(left, right, rows, &result); err != nil {
			return nil, err
		}
		return result, nil
	}

	var op kernel.Op
	switch expr.op {
	case OpEq:
		op = kernel.OpEqual
	case OpLt:
		op = kernel.OpLess
	case OpLe:
		op = kernel.OpLessOrEqual
	case OpGt:
		op = kernel.OpGreater
	case OpGe:
		op = kernel.OpGreaterOrEqual
	default:
		return nil, errors.NewInvalidInputError("evaluate",
			fmt.Sprintf("unsupported comparison operation: %s", expr.op))
	}

	if err := e.ex.Compare(op, left, right, rows, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Evaluator) resolve(expr Expr, columns map[string]vector.Any, rowCount int, hint arrow.DataType) (vector.Any, error) {
	switch ex := expr.(type) {
	case *ColumnExpr:
		col, exists := columns[ex.name]
		if !exists {
			return nil, errors.NewInvalidInputError("evaluate",
				fmt.Sprintf("column not found: %s", ex.name))
		}
		return col, nil
	case *LiteralExpr:
		return literalColumn(ex.value, rowCount, hint)
	case *InvalidExpr:
		return nil, errors.NewInvalidInputError("evaluate", ex.Message())
	default:
		return nil, errors.NewInvalidInputError("evaluate",
			fmt.Sprintf("unsupported operand expression: %s", expr))
	}
}

// typeHint returns the declared type a literal on the opposite side should
// coerce to, or nil when the opposite side is not a column.
func typeHint(expr Expr, columns map[string]vector.Any) arrow.DataType {
	col, ok := expr.(*ColumnExpr)
	if !ok {
		return nil
	}
	if c, exists := columns[col.name]; exists {
		return c.DataType()
	}
	return nil
}

func batchLength(columns map[string]vector.Any) (int, error) {
	for _, col := range columns {
		return col.Len(), nil
	}
	return 0, errors.NewInvalidInputError("evaluate", "cannot determine batch length without columns")
}

// literalColumn builds the constant-shaped view a literal evaluates to. When
// the opposite operand is a column, its declared type drives the literal's
// type so both arguments present the identical type the dispatcher requires.
func literalColumn(value interface{}, rowCount int, hint arrow.DataType) (vector.Any, error) {
	if hint != nil {
		return coercedLiteral(value, rowCount, hint)
	}

	switch val := value.(type) {
	case bool:
		return vector.NewConst(arrow.FixedWidthTypes.Boolean, val, rowCount), nil
	case int8:
		return vector.NewConst(arrow.PrimitiveTypes.Int8, val, rowCount), nil
	case int16:
		return vector.NewConst(arrow.PrimitiveTypes.Int16, val, rowCount), nil
	case int32:
		return vector.NewConst(arrow.PrimitiveTypes.Int32, val, rowCount), nil
	case int64:
		return vector.NewConst(arrow.PrimitiveTypes.Int64, val, rowCount), nil
	case int:
		return vector.NewConst(arrow.PrimitiveTypes.Int64, int64(val), rowCount), nil
	case float32:
		return vector.NewConst(arrow.PrimitiveTypes.Float32, val, rowCount), nil
	case float64:
		return vector.NewConst(arrow.PrimitiveTypes.Float64, val, rowCount), nil
	case string:
		return vector.NewConst(arrow.BinaryTypes.String, val, rowCount), nil
	case []byte:
		return vector.NewConst(arrow.BinaryTypes.Binary, val, rowCount), nil
	case time.Time:
		dtype := &arrow.TimestampType{Unit: arrow.Nanosecond}
		return vector.NewConst(dtype, arrow.Timestamp(val.UnixNano()), rowCount), nil
	default:
		return nil, errors.NewInvalidInputError("evaluate",
			fmt.Sprintf("unsupported literal type: %T", value))
	}
}

func coercedLiteral(value interface{}, rowCount int, hint arrow.DataType) (vector.Any, error) {
	switch hint.ID() {
	case arrow.BOOL:
		v, err := common.ToBool(value)
		if err != nil {
			return nil, errors.NewInvalidInputError("evaluate", err.Error())
		}
		return vector.NewConst(hint, v, rowCount), nil
	case arrow.INT8:
		v, err := common.ToInt64(value)
		if err != nil {
			return nil, errors.NewInvalidInputError("evaluate", err.Error())
		}
		return vector.NewConst(hint, int8(v), rowCount), nil
	case arrow.INT16:
		v, err := common.ToInt64(value)
		if err != nil {
			return nil, errors.NewInvalidInputError("evaluate", err.Error())
		}
		return vector.NewConst(hint, int16(v), rowCount), nil
	case arrow.INT32:
		v, err := common.ToInt64(value)
		if err != nil {
			return nil, errors.NewInvalidInputError("evaluate", err.Error())
		}
		return vector.NewConst(hint, int32(v), rowCount), nil
	case arrow.INT64:
		v, err := common.ToInt64(value)
		if err != nil {
			return nil, errors.NewInvalidInputError("evaluate", err.Error())
		}
		return vector.NewConst(hint, v, rowCount), nil
	case arrow.FLOAT32:
		v, err := common.ToFloat64(value)
		if err != nil {
			return nil, errors.NewInvalidInputError("evaluate", err.Error())
		}
		return vector.NewConst(hint, float32(v), rowCount), nil
	case arrow.FLOAT64:
		v, err := common.ToFloat64(value)
		if err != nil {
			return nil, errors.NewInvalidInputError("evaluate", err.Error())
		}
		return vector.NewConst(hint, v, rowCount), nil
	case arrow.STRING:
		return vector.NewConst(hint, common.ToString(value), rowCount), nil
	case arrow.BINARY:
		if v, ok := value.([]byte); ok {
			return vector.NewConst(hint, v, rowCount), nil
		}
		return vector.NewConst(hint, []byte(common.ToString(value)), rowCount), nil
	case arrow.TIMESTAMP:
		switch v := value.(type) {
		case time.Time:
			ts, err := arrow.TimestampFromTime(v, hint.(*arrow.TimestampType).Unit)
			if err != nil {
				return nil, errors.NewInvalidInputError("evaluate", err.Error())
			}
			return vector.NewConst(hint, ts, rowCount), nil
		case arrow.Timestamp:
			return vector.NewConst(hint, v, rowCount), nil
		case int64:
			return vector.NewConst(hint, arrow.Timestamp(v), rowCount), nil
		}
		return nil, errors.NewInvalidInputError("evaluate",
			fmt.Sprintf("cannot coerce %T to timestamp", value))
	case arrow.DATE32:
		switch v := value.(type) {
		case time.Time:
			return vector.NewConst(hint, arrow.Date32FromTime(v), rowCount), nil
		case arrow.Date32:
			return vector.NewConst(hint, v, rowCount), nil
		case int32:
			return vector.NewConst(hint, arrow.Date32(v), rowCount), nil
		}
		return nil, errors.NewInvalidInputError("evaluate",
			fmt.Sprintf("cannot coerce %T to date", value))
	default:
		// No coercion rule; fall back to the literal's own type and let the
		// dispatcher's signature check decide.
		return literalColumn(value, rowCount, nil)
	}
}
