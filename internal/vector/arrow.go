package vector

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/bitutil"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/okapilab/okapi/internal/errors"
)

// FromArrow adapts an Arrow array into a columnar view, classifying its
// shape once: plain typed arrays become Flat views (zero-copy for fixed
// width values), dictionary arrays become Generic views. The array must stay
// retained for the view's lifetime.
func FromArrow(arr arrow.Array) (Any, error) {
	switch a := arr.(type) {
	case *array.Boolean:
		values := make([]bool, a.Len())
		for i := range values {
			values[i] = a.Value(i)
		}
		return NewFlat(a.DataType(), values, validityOf(a)), nil
	case *array.Int8:
		return NewFlat(a.DataType(), a.Int8Values(), validityOf(a)), nil
	case *array.Int16:
		return NewFlat(a.DataType(), a.Int16Values(), validityOf(a)), nil
	case *array.Int32:
		return NewFlat(a.DataType(), a.Int32Values(), validityOf(a)), nil
	case *array.Int64:
		return NewFlat(a.DataType(), a.Int64Values(), validityOf(a)), nil
	case *array.Float32:
		return NewFlat(a.DataType(), a.Float32Values(), validityOf(a)), nil
	case *array.Float64:
		return NewFlat(a.DataType(), a.Float64Values(), validityOf(a)), nil
	case *array.String:
		values := make([]string, a.Len())
		for i := range values {
			values[i] = a.Value(i)
		}
		return NewFlat(a.DataType(), values, validityOf(a)), nil
	case *array.Binary:
		values := make([][]byte, a.Len())
		for i := range values {
			values[i] = a.Value(i)
		}
		return NewFlat(a.DataType(), values, validityOf(a)), nil
	case *array.Timestamp:
		return NewFlat(a.DataType(), a.TimestampValues(), validityOf(a)), nil
	case *array.Date32:
		return NewFlat(a.DataType(), a.Date32Values(), validityOf(a)), nil
	case *array.Decimal128:
		return NewFlat(a.DataType(), a.Values(), validityOf(a)), nil
	case *array.Dictionary:
		return dictFromArrow(a)
	default:
		return nil, errors.NewInvalidInputError(
			"FromArrow", fmt.Sprintf("unsupported array type: %T", arr))
	}
}

// BoolToArrow materializes a boolean result column as an Arrow array using
// the host's allocator.
func BoolToArrow(f *Flat[bool], mem memory.Allocator) arrow.Array {
	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()
	for i := 0; i < f.Len(); i++ {
		if f.IsNull(i) {
			builder.AppendNull()
			continue
		}
		builder.Append(f.Value(i))
	}
	return builder.NewArray()
}

// validityOf copies an array's null bitmap into Arrow bit layout, or returns
// nil when the array has no nulls.
func validityOf(arr arrow.Array) []byte {
	if arr.NullN() == 0 {
		return nil
	}
	bits := make([]byte, bitutil.BytesForBits(int64(arr.Len())))
	for i := 0; i < arr.Len(); i++ {
		if !arr.IsNull(i) {
			bitutil.SetBit(bits, i)
		}
	}
	return bits
}

// dictFromArrow builds a Generic view from an Arrow dictionary array. The
// view's declared type is the dictionary's value type, so the dispatcher
// sees the logical element type, not the encoding.
func dictFromArrow(a *array.Dictionary) (Any, error) {
	codes := make([]int32, a.Len())
	for i := range codes {
		if a.IsNull(i) {
			codes[i] = -1
			continue
		}
		codes[i] = int32(a.GetValueIndex(i))
	}

	valueType := a.DataType().(*arrow.DictionaryType).ValueType

	switch dict := a.Dictionary().(type) {
	case *array.Int8:
		return NewDict(valueType, dict.Int8Values(), codes), nil
	case *array.Int16:
		return NewDict(valueType, dict.Int16Values(), codes), nil
	case *array.Int32:
		return NewDict(valueType, dict.Int32Values(), codes), nil
	case *array.Int64:
		return NewDict(valueType, dict.Int64Values(), codes), nil
	case *array.Float32:
		return NewDict(valueType, dict.Float32Values(), codes), nil
	case *array.Float64:
		return NewDict(valueType, dict.Float64Values(), codes), nil
	case *array.String:
		values := make([]string, dict.Len())
		for i := range values {
			values[i] = dict.Value(i)
		}
		return NewDict(valueType, values, codes), nil
	case *array.Binary:
		values := make([][]byte, dict.Len())
		for i := range values {
			values[i] = dict.Value(i)
		}
		return NewDict(valueType, values, codes), nil
	case *array.Timestamp:
		return NewDict(valueType, dict.TimestampValues(), codes), nil
	case *array.Date32:
		return NewDict(valueType, dict.Date32Values(), codes), nil
	case *array.Decimal128:
		return NewDict[decimal128.Num](valueType, dict.Values(), codes), nil
	default:
		return nil, errors.NewInvalidInputError(
			"FromArrow", fmt.Sprintf("unsupported dictionary value type: %T", dict))
	}
}
