package validation

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"

	"github.com/okapilab/okapi/internal/errors"
)

func TestLengthValidator(t *testing.T) {
	assert.NoError(t, NewLengthValidator("equalto", 3, 3).Validate())
	assert.NoError(t, NewLengthValidator("equalto").Validate())
	assert.ErrorIs(t, NewLengthValidator("equalto", 3, 4).Validate(), errors.ErrMismatchedLength)
}

func TestSelectionValidator(t *testing.T) {
	assert.NoError(t, NewSelectionValidator("equalto", 3, 3).Validate())
	assert.NoError(t, NewSelectionValidator("equalto", 2, 3).Validate())
	assert.Error(t, NewSelectionValidator("equalto", 4, 3).Validate())
}

func TestSchemaColumnsValidator(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int64},
		{Name: "b", Type: arrow.PrimitiveTypes.Int64},
	}, nil)

	assert.NoError(t, NewSchemaColumnsValidator("equalto", schema, "a", "b").Validate())

	err := NewSchemaColumnsValidator("equalto", schema, "a", "missing").Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestValidateAll(t *testing.T) {
	assert.NoError(t, ValidateAll(
		NewLengthValidator("equalto", 2, 2),
		NewSelectionValidator("equalto", 2, 2),
	))

	err := ValidateAll(
		NewLengthValidator("equalto", 2, 3),
		NewSelectionValidator("equalto", 9, 2),
	)
	assert.ErrorIs(t, err, errors.ErrMismatchedLength)
}
