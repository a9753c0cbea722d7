package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprTypes(t *testing.T) {
	assert.Equal(t, ExprColumn, Col("age").Type())
	assert.Equal(t, ExprLiteral, Lit(42).Type())
	assert.Equal(t, ExprComparison, Col("age").Gt(Lit(42)).Type())
	assert.Equal(t, ExprInvalid, Invalid("bad").Type())
}

func TestExprString(t *testing.T) {
	assert.Equal(t, "col(age)", Col("age").String())
	assert.Equal(t, "lit(42)", Lit(42).String())
	assert.Equal(t, "(col(age) >= lit(18))", Col("age").Ge(Lit(18)).String())
	assert.Equal(t, "invalid(bad)", Invalid("bad").String())
}

func TestComparisonAccessors(t *testing.T) {
	cmp := Col("score").Lt(Lit(50))

	assert.Equal(t, "score", cmp.Left().(*ColumnExpr).Name())
	assert.Equal(t, OpLt, cmp.Op())
	assert.Equal(t, 50, cmp.Right().(*LiteralExpr).Value())
}

func TestCompareOpString(t *testing.T) {
	tests := []struct {
		op   CompareOp
		want string
	}{
		{OpEq, "=="},
		{OpNe, "!="},
		{OpLt, "<"},
		{OpLe, "<="},
		{OpGt, ">"},
		{OpGe, ">="},
		{CompareOp(99), "?"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestLiteralBuilders(t *testing.T) {
	// Literal-on-the-left comparisons build the same node shape.
	cmp := Lit(10).Le(Col("limit"))
	assert.Equal(t, OpLe, cmp.Op())
	assert.Equal(t, 10, cmp.Left().(*LiteralExpr).Value())
	assert.Equal(t, "limit", cmp.Right().(*ColumnExpr).Name())
}
