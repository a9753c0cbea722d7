// Package expr provides the comparison expression layer that drives kernel
// evaluation: column references, literals, and the six comparison builders.
package expr

import (
	"fmt"
)

// ExprType represents the type of expression
type ExprType int

const (
	ExprColumn ExprType = iota
	ExprLiteral
	ExprComparison
	ExprInvalid
)

// Expr represents an expression that can be evaluated against a batch
type Expr interface {
	Type() ExprType
	String() string
}

// ColumnExpr represents a column reference
type ColumnExpr struct {
	name string
}

func (c *ColumnExpr) Type() ExprType {
	return ExprColumn
}

func (c *ColumnExpr) String() string {
	return fmt.Sprintf("col(%s)", c.name)
}

func (c *ColumnExpr) Name() string {
	return c.name
}

// LiteralExpr represents a literal value; it evaluates to a constant-shaped
// column repeated for every row of the batch.
type LiteralExpr struct {
	value interface{}
}

func (l *LiteralExpr) Type() ExprType {
	return ExprLiteral
}

func (l *LiteralExpr) String() string {
	return fmt.Sprintf("lit(%v)", l.value)
}

func (l *LiteralExpr) Value() interface{} {
	return l.value
}

// CompareOp represents comparison operations
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (op CompareOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "?"
	}
}

// ComparisonExpr represents a binary comparison
type ComparisonExpr struct {
	left  Expr
	op    CompareOp
	right Expr
}

func (b *ComparisonExpr) Type() ExprType {
	return ExprComparison
}

func (b *ComparisonExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.left.String(), b.op, b.right.String())
}

func (b *ComparisonExpr) Left() Expr {
	return b.left
}

func (b *ComparisonExpr) Op() CompareOp {
	return b.op
}

func (b *ComparisonExpr) Right() Expr {
	return b.right
}

// InvalidExpr represents an expression that failed to build; evaluation
// surfaces its message as an error.
type InvalidExpr struct {
	message string
}

func (i *InvalidExpr) Type() ExprType {
	return ExprInvalid
}

func (i *InvalidExpr) String() string {
	return fmt.Sprintf("invalid(%s)", i.message)
}

func (i *InvalidExpr) Message() string {
	return i.message
}

// Col creates a column reference expression
func Col(name string) *ColumnExpr {
	return &ColumnExpr{name: name}
}

// Lit creates a literal expression
func Lit(value interface{}) *LiteralExpr {
	return &LiteralExpr{value: value}
}

// Invalid creates an invalid expression carrying an error message
func Invalid(message string) *InvalidExpr {
	return &InvalidExpr{message: message}
}

// Comparison builders

func (c *ColumnExpr) Eq(other Expr) *ComparisonExpr { return compare(c, OpEq, other) }
func (c *ColumnExpr) Ne(other Expr) *ComparisonExpr { return compare(c, OpNe, other) }
func (c *ColumnExpr) Lt(other Expr) *ComparisonExpr { return compare(c, OpLt, other) }
func (c *ColumnExpr) Le(other Expr) *ComparisonExpr { return compare(c, OpLe, other) }
func (c *ColumnExpr) Gt(other Expr) *ComparisonExpr { return compare(c, OpGt, other) }
func (c *ColumnExpr) Ge(other Expr) *ComparisonExpr { return compare(c, OpGe, other) }

func (l *LiteralExpr) Eq(other Expr) *ComparisonExpr { return compare(l, OpEq, other) }
func (l *LiteralExpr) Ne(other Expr) *ComparisonExpr { return compare(l, OpNe, other) }
func (l *LiteralExpr) Lt(other Expr) *ComparisonExpr { return compare(l, OpLt, other) }
func (l *LiteralExpr) Le(other Expr) *ComparisonExpr { return compare(l, OpLe, other) }
func (l *LiteralExpr) Gt(other Expr) *ComparisonExpr { return compare(l, OpGt, other) }
func (l *LiteralExpr) Ge(other Expr) *ComparisonExpr { return compare(l, OpGe, other) }

func compare(left Expr, op CompareOp, right Expr) *ComparisonExpr {
	return &ComparisonExpr{left: left, op: op, right: right}
}
