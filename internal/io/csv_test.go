package io

import (
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReadWithHeader(t *testing.T) {
	data := "score,limit,name\n40,70,ant\n70,70,bee\n95,70,cat\n"
	reader := NewCSVReader(strings.NewReader(data), DefaultCSVOptions(), nil)

	rec, err := reader.Read()
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(3), rec.NumRows())
	assert.Equal(t, int64(3), rec.NumCols())
	assert.Equal(t, "score", rec.Schema().Field(0).Name)
	assert.Equal(t, arrow.PrimitiveTypes.Int64, rec.Schema().Field(0).Type)
	assert.Equal(t, arrow.BinaryTypes.String, rec.Schema().Field(2).Type)

	scores := rec.Column(0).(*array.Int64)
	assert.Equal(t, []int64{40, 70, 95}, scores.Int64Values())
}

func TestCSVReadWithoutHeader(t *testing.T) {
	options := DefaultCSVOptions()
	options.Header = false
	reader := NewCSVReader(strings.NewReader("1,2\n3,4\n"), options, nil)

	rec, err := reader.Read()
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, "column_0", rec.Schema().Field(0).Name)
}

func TestCSVTypeInference(t *testing.T) {
	data := "ints,floats,bools,mixed\n1,1.5,true,1\n2,2,false,x\n"
	reader := NewCSVReader(strings.NewReader(data), DefaultCSVOptions(), nil)

	rec, err := reader.Read()
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, arrow.PrimitiveTypes.Int64, rec.Schema().Field(0).Type)
	assert.Equal(t, arrow.PrimitiveTypes.Float64, rec.Schema().Field(1).Type)
	assert.Equal(t, arrow.FixedWidthTypes.Boolean, rec.Schema().Field(2).Type)
	assert.Equal(t, arrow.BinaryTypes.String, rec.Schema().Field(3).Type)
}

func TestCSVEmptyFieldsBecomeNulls(t *testing.T) {
	data := "a,b\n1,x\n,y\n3,\n"
	reader := NewCSVReader(strings.NewReader(data), DefaultCSVOptions(), nil)

	rec, err := reader.Read()
	require.NoError(t, err)
	defer rec.Release()

	ints := rec.Column(0).(*array.Int64)
	assert.False(t, ints.IsNull(0))
	assert.True(t, ints.IsNull(1))

	strs := rec.Column(1).(*array.String)
	assert.True(t, strs.IsNull(2))
}

func TestCSVEmptyInput(t *testing.T) {
	reader := NewCSVReader(strings.NewReader(""), DefaultCSVOptions(), nil)

	rec, err := reader.Read()
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(0), rec.NumRows())
	assert.Equal(t, int64(0), rec.NumCols())
}

func TestCSVCustomDelimiter(t *testing.T) {
	options := DefaultCSVOptions()
	options.Delimiter = ';'
	reader := NewCSVReader(strings.NewReader("a;b\n1;2\n"), options, nil)

	rec, err := reader.Read()
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumCols())
	assert.Equal(t, int64(1), rec.NumRows())
}

func TestInferKind(t *testing.T) {
	assert.Equal(t, kindInt64, inferKind([]string{"1", "", "-3"}))
	assert.Equal(t, kindFloat64, inferKind([]string{"1", "2.5"}))
	assert.Equal(t, kindBool, inferKind([]string{"true", "false", ""}))
	assert.Equal(t, kindString, inferKind([]string{"true", "yes"}))
	// All-empty columns default to string.
	assert.Equal(t, kindString, inferKind([]string{"", ""}))
}
