package kernel

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/decimal128"

	"github.com/okapilab/okapi/internal/errors"
)

// Make validates the argument signature and compiles the kernel for the
// requested operator and the arguments' element kind. Both checks happen
// here, before any row is processed: exactly two arguments, both of the
// identical declared type, and the type's kind on the closed allow-list.
func Make(op Op, name string, argTypes []arrow.DataType) (Function, error) {
	if len(argTypes) != 2 {
		return nil, errors.NewSignatureError(name,
			fmt.Sprintf("expected 2 arguments, got %d", len(argTypes)))
	}
	if !arrow.TypeEqual(argTypes[0], argTypes[1]) {
		return nil, errors.NewSignatureError(name,
			fmt.Sprintf("argument types must be identical: %s vs %s",
				argTypes[0], argTypes[1]))
	}

	switch argTypes[0].ID() {
	case arrow.BOOL:
		return newKernel(name, boolCmp(op)), nil
	case arrow.INT8:
		return newKernel(name, orderedCmp[int8](op)), nil
	case arrow.INT16:
		return newKernel(name, orderedCmp[int16](op)), nil
	case arrow.INT32:
		return newKernel(name, orderedCmp[int32](op)), nil
	case arrow.INT64:
		return newKernel(name, orderedCmp[int64](op)), nil
	case arrow.DECIMAL128:
		return newKernel[decimal128.Num](name, decimalCmp(op)), nil
	case arrow.FLOAT32:
		return newKernel(name, orderedCmp[float32](op)), nil
	case arrow.FLOAT64:
		return newKernel(name, orderedCmp[float64](op)), nil
	case arrow.STRING:
		return newKernel(name, orderedCmp[string](op)), nil
	case arrow.BINARY:
		return newKernel(name, bytesCmp(op)), nil
	case arrow.TIMESTAMP:
		return newKernel(name, orderedCmp[arrow.Timestamp](op)), nil
	case arrow.DATE32:
		return newKernel(name, orderedCmp[arrow.Date32](op)), nil
	default:
		return nil, errors.NewUnsupportedTypeError(name, argTypes[0].String())
	}
}

// Kernel construction entry points, one per supported operator.

func MakeEqual(name string, argTypes []arrow.DataType) (Function, error) {
	return Make(OpEqual, name, argTypes)
}

func MakeLess(name string, argTypes []arrow.DataType) (Function, error) {
	return Make(OpLess, name, argTypes)
}

func MakeGreater(name string, argTypes []arrow.DataType) (Function, error) {
	return Make(OpGreater, name, argTypes)
}

func MakeLessOrEqual(name string, argTypes []arrow.DataType) (Function, error) {
	return Make(OpLessOrEqual, name, argTypes)
}

func MakeGreaterOrEqual(name string, argTypes []arrow.DataType) (Function, error) {
	return Make(OpGreaterOrEqual, name, argTypes)
}
