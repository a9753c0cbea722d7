package vector

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromArrowInt64(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewInt64Builder(mem)
	defer builder.Release()
	builder.AppendValues([]int64{1, 2, 3}, []bool{true, false, true})
	arr := builder.NewInt64Array()
	defer arr.Release()

	view, err := FromArrow(arr)
	require.NoError(t, err)

	flat, ok := view.(*Flat[int64])
	require.True(t, ok)
	assert.Equal(t, ShapeFlat, flat.Shape())
	assert.Equal(t, 3, flat.Len())
	assert.Equal(t, int64(1), flat.Value(0))
	assert.True(t, flat.IsNull(1))
	assert.Equal(t, int64(3), flat.Value(2))
}

func TestFromArrowString(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewStringBuilder(mem)
	defer builder.Release()
	builder.AppendValues([]string{"a", "b"}, nil)
	arr := builder.NewStringArray()
	defer arr.Release()

	view, err := FromArrow(arr)
	require.NoError(t, err)

	flat, ok := view.(*Flat[string])
	require.True(t, ok)
	assert.False(t, flat.HasNulls())
	assert.Equal(t, "b", flat.Value(1))
	assert.Equal(t, arrow.BinaryTypes.String, flat.DataType())
}

func TestFromArrowBoolean(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()
	builder.AppendValues([]bool{true, false, true}, nil)
	arr := builder.NewBooleanArray()
	defer arr.Release()

	view, err := FromArrow(arr)
	require.NoError(t, err)

	flat, ok := view.(*Flat[bool])
	require.True(t, ok)
	assert.Equal(t, []bool{true, false, true}, flat.Values())
}

func TestFromArrowDictionary(t *testing.T) {
	mem := memory.NewGoAllocator()
	dtype := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}
	builder := array.NewDictionaryBuilder(mem, dtype).(*array.BinaryDictionaryBuilder)
	defer builder.Release()

	require.NoError(t, builder.AppendString("ant"))
	require.NoError(t, builder.AppendString("bee"))
	builder.AppendNull()
	require.NoError(t, builder.AppendString("ant"))
	arr := builder.NewDictionaryArray()
	defer arr.Release()

	view, err := FromArrow(arr)
	require.NoError(t, err)

	dict, ok := view.(*Dict[string])
	require.True(t, ok)
	assert.Equal(t, ShapeGeneric, dict.Shape())
	// The declared type is the logical value type, not the encoding.
	assert.Equal(t, arrow.BinaryTypes.String, dict.DataType())
	assert.Equal(t, "ant", dict.Value(0))
	assert.Equal(t, "bee", dict.Value(1))
	assert.True(t, dict.IsNull(2))
	assert.Equal(t, "ant", dict.Value(3))
}

func TestFromArrowUnsupported(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewListBuilder(mem, arrow.PrimitiveTypes.Int64)
	defer builder.Release()
	arr := builder.NewListArray()
	defer arr.Release()

	_, err := FromArrow(arr)
	assert.Error(t, err)
}

func TestBoolToArrow(t *testing.T) {
	f := NewFlatEmpty[bool](arrow.FixedWidthTypes.Boolean, 3)
	f.Set(0, true)
	f.SetNull(1)
	f.Set(2, false)

	arr := BoolToArrow(f, memory.NewGoAllocator())
	defer arr.Release()

	boolArr, ok := arr.(*array.Boolean)
	require.True(t, ok)
	assert.Equal(t, 3, boolArr.Len())
	assert.True(t, boolArr.Value(0))
	assert.True(t, boolArr.IsNull(1))
	assert.False(t, boolArr.Value(2))
}

func TestFromArrowRoundTripThroughSlice(t *testing.T) {
	mem := memory.NewGoAllocator()
	builder := array.NewFloat64Builder(mem)
	defer builder.Release()
	builder.AppendValues([]float64{0.5, 1.5, 2.5, 3.5}, nil)
	arr := builder.NewFloat64Array()
	defer arr.Release()

	view, err := FromArrow(arr)
	require.NoError(t, err)

	flat, ok := view.(*Flat[float64])
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, flat.Values())
}
