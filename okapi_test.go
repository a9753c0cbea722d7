package okapi_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	okapi "github.com/okapilab/okapi"
	"github.com/okapilab/okapi/internal/config"
	"github.com/okapilab/okapi/internal/testutil"
)

func newEngine() *okapi.Engine {
	return okapi.NewEngine(nil, config.NewConfig())
}

func TestEngineCompare(t *testing.T) {
	mem := memory.NewGoAllocator()
	engine := newEngine()

	leftArr := testutil.Int64Array(t, mem, []int64{1, 5, 9}, nil)
	defer leftArr.Release()
	rightArr := testutil.Int64Array(t, mem, []int64{5, 5, 5}, nil)
	defer rightArr.Release()

	left := testutil.View(t, leftArr)
	right := testutil.View(t, rightArr)

	result, err := engine.Compare(okapi.OpLessOrEqual, left, right, okapi.SelectAll(3))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, result.Values())
}

func TestEngineCompareNullPropagation(t *testing.T) {
	engine := newEngine()

	left := testutil.Int64Flat(t, []int64{1, 2, 3}, 1)
	right := testutil.Int64Flat(t, []int64{1, 2, 0}, 2)

	result, err := engine.Compare(okapi.OpEqual, left, right, okapi.SelectAll(3))
	require.NoError(t, err)

	values, valid := testutil.BoolResult(t, result)
	assert.Equal(t, []bool{true, false, false}, valid)
	assert.True(t, values[0])
}

func TestEngineCompareShapes(t *testing.T) {
	mem := memory.NewGoAllocator()
	engine := newEngine()

	dictArr := testutil.StringDictArray(t, mem, []string{"ant", "bee", "cat"}, nil)
	defer dictArr.Release()
	flatArr := testutil.StringArray(t, mem, []string{"bee", "bee", "bee"}, nil)
	defer flatArr.Release()

	dict := testutil.View(t, dictArr)
	flat := testutil.View(t, flatArr)
	assert.Equal(t, okapi.ShapeGeneric, dict.Shape())
	assert.Equal(t, okapi.ShapeFlat, flat.Shape())

	result, err := engine.Compare(okapi.OpGreater, dict, flat, okapi.SelectAll(3))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, result.Values())
}

func TestEngineCompareColumns(t *testing.T) {
	mem := memory.NewGoAllocator()
	engine := newEngine()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "score", Type: arrow.PrimitiveTypes.Int64},
		{Name: "limit", Type: arrow.PrimitiveTypes.Int64},
	}, nil)
	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()
	builder.Field(0).(*array.Int64Builder).AppendValues([]int64{40, 70, 95}, nil)
	builder.Field(1).(*array.Int64Builder).AppendValues([]int64{70, 70, 70}, nil)
	rec := builder.NewRecord()
	defer rec.Release()

	result, err := engine.CompareColumns(okapi.OpGreaterOrEqual, rec, "score", "limit")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, result.Values())
}

func TestEngineFilter(t *testing.T) {
	engine := newEngine()
	columns := map[string]okapi.Column{
		"score": testutil.Int64Flat(t, []int64{40, 70, 95}),
	}

	result, err := engine.Filter(okapi.Col("score").Ge(okapi.Lit(70)), columns)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, result.Values())
}

func TestEngineMetrics(t *testing.T) {
	cfg := config.NewConfig()
	cfg.MetricsCollection = true
	engine := okapi.NewEngine(nil, cfg)

	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int64},
		{Name: "b", Type: arrow.PrimitiveTypes.Int64},
	}, nil)
	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()
	builder.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2}, nil)
	builder.Field(1).(*array.Int64Builder).AppendValues([]int64{2, 2}, nil)
	rec := builder.NewRecord()
	defer rec.Release()

	_, err := engine.CompareColumns(okapi.OpEqual, rec, "a", "b")
	require.NoError(t, err)

	summary := engine.Metrics()
	assert.Equal(t, 1, summary.TotalOperations)
	assert.Equal(t, int64(2), summary.TotalRows)
}

func TestMakeKernelErrors(t *testing.T) {
	_, err := okapi.MakeEqual("equalto", []arrow.DataType{arrow.PrimitiveTypes.Int64})
	assert.Error(t, err)

	_, err = okapi.MakeLess("lessthan", []arrow.DataType{
		arrow.PrimitiveTypes.Uint32, arrow.PrimitiveTypes.Uint32,
	})
	assert.Error(t, err)
}

func TestSelectionConstruction(t *testing.T) {
	rows, err := okapi.NewSelection(5, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, rows.Indices())

	_, err = okapi.NewSelection(5, []int{5})
	assert.Error(t, err)
}
