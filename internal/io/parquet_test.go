package io

import (
	"bytes"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParquetWriteRead(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)

	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()
	builder.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2, 3}, []bool{true, false, true})
	builder.Field(1).(*array.StringBuilder).AppendValues([]string{"ant", "bee", "cat"}, nil)
	rec := builder.NewRecord()
	defer rec.Release()

	var buf bytes.Buffer
	require.NoError(t, NewParquetWriter(&buf, mem).Write(rec))
	require.NotZero(t, buf.Len())

	got, err := NewParquetReader(bytes.NewReader(buf.Bytes()), mem).Read()
	require.NoError(t, err)
	defer got.Release()

	assert.Equal(t, int64(3), got.NumRows())
	assert.Equal(t, int64(2), got.NumCols())

	ids := got.Column(0).(*array.Int64)
	assert.Equal(t, int64(1), ids.Value(0))
	assert.True(t, ids.IsNull(1))
	assert.Equal(t, int64(3), ids.Value(2))

	names := got.Column(1).(*array.String)
	assert.Equal(t, "bee", names.Value(1))
}

func TestParquetReadGarbage(t *testing.T) {
	_, err := NewParquetReader(bytes.NewReader([]byte("not parquet")), nil).Read()
	assert.Error(t, err)
}
