// Package validation provides input validation utilities for batch
// evaluation: reusable validators for column existence, length consistency,
// and selection bounds, composed with ValidateAll before any row work
// begins.
package validation

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/okapilab/okapi/internal/errors"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// LengthValidator checks that argument columns share one row count
type LengthValidator struct {
	op      string
	lengths []int
}

// NewLengthValidator creates a validator over the given column lengths
func NewLengthValidator(op string, lengths ...int) *LengthValidator {
	return &LengthValidator{op: op, lengths: lengths}
}

// Validate checks all lengths are equal
func (v *LengthValidator) Validate() error {
	for i := 1; i < len(v.lengths); i++ {
		if v.lengths[i] != v.lengths[0] {
			return errors.ErrMismatchedLength
		}
	}
	return nil
}

// SelectionValidator checks that a selection fits within the batch
type SelectionValidator struct {
	op       string
	rowCount int
	batchLen int
}

// NewSelectionValidator creates a validator for selection bounds
func NewSelectionValidator(op string, rowCount, batchLen int) *SelectionValidator {
	return &SelectionValidator{op: op, rowCount: rowCount, batchLen: batchLen}
}

// Validate checks the selection's row count does not exceed the batch
func (v *SelectionValidator) Validate() error {
	if v.rowCount > v.batchLen {
		return errors.NewInvalidInputError(v.op, "selection exceeds batch row count")
	}
	return nil
}

// SchemaColumnsValidator validates column existence in a record schema
type SchemaColumnsValidator struct {
	op      string
	schema  *arrow.Schema
	columns []string
}

// NewSchemaColumnsValidator creates a validator for named record columns
func NewSchemaColumnsValidator(op string, schema *arrow.Schema, columns ...string) *SchemaColumnsValidator {
	return &SchemaColumnsValidator{op: op, schema: schema, columns: columns}
}

// Validate checks that every named column exists in the schema
func (v *SchemaColumnsValidator) Validate() error {
	for _, column := range v.columns {
		if len(v.schema.FieldIndices(column)) == 0 {
			return errors.NewInvalidInputError(v.op,
				fmt.Sprintf("column not found: %s", column))
		}
	}
	return nil
}

// ValidateAll runs multiple validators and returns the first error
func ValidateAll(validators ...Validator) error {
	for _, validator := range validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}
