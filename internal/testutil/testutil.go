// Package testutil provides common testing utilities for building columnar
// test data: typed Arrow arrays with null positions, dictionary-encoded
// arrays for exercising the generic decode path, and selection builders.
package testutil

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/okapilab/okapi/internal/vector"
)

// Int64Array builds an int64 Arrow array. valid may be nil for no nulls.
func Int64Array(t *testing.T, mem memory.Allocator, values []int64, valid []bool) arrow.Array {
	t.Helper()
	builder := array.NewInt64Builder(mem)
	defer builder.Release()
	builder.AppendValues(values, valid)
	return builder.NewArray()
}

// Float64Array builds a float64 Arrow array. valid may be nil for no nulls.
func Float64Array(t *testing.T, mem memory.Allocator, values []float64, valid []bool) arrow.Array {
	t.Helper()
	builder := array.NewFloat64Builder(mem)
	defer builder.Release()
	builder.AppendValues(values, valid)
	return builder.NewArray()
}

// StringArray builds a string Arrow array. valid may be nil for no nulls.
func StringArray(t *testing.T, mem memory.Allocator, values []string, valid []bool) arrow.Array {
	t.Helper()
	builder := array.NewStringBuilder(mem)
	defer builder.Release()
	builder.AppendValues(values, valid)
	return builder.NewArray()
}

// BoolArray builds a boolean Arrow array. valid may be nil for no nulls.
func BoolArray(t *testing.T, mem memory.Allocator, values []bool, valid []bool) arrow.Array {
	t.Helper()
	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()
	builder.AppendValues(values, valid)
	return builder.NewArray()
}

// StringDictArray builds a dictionary-encoded string array, the Generic
// shape's natural producer in tests. valid may be nil for no nulls.
func StringDictArray(t *testing.T, mem memory.Allocator, values []string, valid []bool) arrow.Array {
	t.Helper()
	dt := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}
	builder := array.NewDictionaryBuilder(mem, dt).(*array.BinaryDictionaryBuilder)
	defer builder.Release()
	for i, v := range values {
		if valid != nil && !valid[i] {
			builder.AppendNull()
			continue
		}
		require.NoError(t, builder.AppendString(v))
	}
	return builder.NewArray()
}

// Int64DictArray builds a dictionary-encoded int64 array. valid may be nil
// for no nulls.
func Int64DictArray(t *testing.T, mem memory.Allocator, values []int64, valid []bool) arrow.Array {
	t.Helper()
	dt := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.PrimitiveTypes.Int64}
	builder := array.NewDictionaryBuilder(mem, dt).(*array.Int64DictionaryBuilder)
	defer builder.Release()
	for i, v := range values {
		if valid != nil && !valid[i] {
			builder.AppendNull()
			continue
		}
		require.NoError(t, builder.Append(v))
	}
	return builder.NewArray()
}

// Int64Flat builds a flat int64 view directly, bypassing Arrow.
// nullAt lists the row indices that should be null.
func Int64Flat(t *testing.T, values []int64, nullAt ...int) *vector.Flat[int64] {
	t.Helper()
	flat := vector.NewFlat(arrow.PrimitiveTypes.Int64, values, nil)
	for _, i := range nullAt {
		flat.SetNull(i)
	}
	return flat
}

// StringFlat builds a flat string view directly, bypassing Arrow.
func StringFlat(t *testing.T, values []string, nullAt ...int) *vector.Flat[string] {
	t.Helper()
	flat := vector.NewFlat(arrow.BinaryTypes.String, values, nil)
	for _, i := range nullAt {
		flat.SetNull(i)
	}
	return flat
}

// View adapts an Arrow array into a columnar view, failing the test on
// unsupported encodings.
func View(t *testing.T, arr arrow.Array) vector.Any {
	t.Helper()
	v, err := vector.FromArrow(arr)
	require.NoError(t, err)
	return v
}

// Selection builds a selection over the given indices, failing the test on
// out-of-bounds indices.
func Selection(t *testing.T, rowCount int, indices ...int) *vector.Selection {
	t.Helper()
	sel, err := vector.NewSelection(rowCount, indices)
	require.NoError(t, err)
	return sel
}

// BoolResult collects a boolean result column into values plus a validity
// slice for assertion convenience.
func BoolResult(t *testing.T, f *vector.Flat[bool]) (values []bool, valid []bool) {
	t.Helper()
	values = make([]bool, f.Len())
	valid = make([]bool, f.Len())
	for i := 0; i < f.Len(); i++ {
		valid[i] = !f.IsNull(i)
		if valid[i] {
			values[i] = f.Value(i)
		}
	}
	return values, valid
}
