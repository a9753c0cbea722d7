package kernel

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	okerrors "github.com/okapilab/okapi/internal/errors"
)

func TestMakeSupportedKinds(t *testing.T) {
	supported := []arrow.DataType{
		arrow.FixedWidthTypes.Boolean,
		arrow.PrimitiveTypes.Int8,
		arrow.PrimitiveTypes.Int16,
		arrow.PrimitiveTypes.Int32,
		arrow.PrimitiveTypes.Int64,
		&arrow.Decimal128Type{Precision: 38, Scale: 0},
		arrow.PrimitiveTypes.Float32,
		arrow.PrimitiveTypes.Float64,
		arrow.BinaryTypes.String,
		arrow.BinaryTypes.Binary,
		&arrow.TimestampType{Unit: arrow.Microsecond},
		arrow.FixedWidthTypes.Date32,
	}
	ops := []Op{OpEqual, OpLess, OpGreater, OpLessOrEqual, OpGreaterOrEqual}

	for _, dtype := range supported {
		for _, op := range ops {
			fn, err := Make(op, op.String(), []arrow.DataType{dtype, dtype})
			require.NoError(t, err, "op %s type %s", op, dtype)
			assert.NotNil(t, fn)
		}
	}
}

func TestMakeSignatureErrors(t *testing.T) {
	tests := []struct {
		name     string
		argTypes []arrow.DataType
	}{
		{
			name:     "no arguments",
			argTypes: nil,
		},
		{
			name:     "one argument",
			argTypes: []arrow.DataType{arrow.PrimitiveTypes.Int64},
		},
		{
			name: "three arguments",
			argTypes: []arrow.DataType{
				arrow.PrimitiveTypes.Int64, arrow.PrimitiveTypes.Int64, arrow.PrimitiveTypes.Int64,
			},
		},
		{
			name:     "mismatched types",
			argTypes: []arrow.DataType{arrow.PrimitiveTypes.Int64, arrow.PrimitiveTypes.Int32},
		},
		{
			name: "same kind different parameters",
			argTypes: []arrow.DataType{
				&arrow.TimestampType{Unit: arrow.Second},
				&arrow.TimestampType{Unit: arrow.Nanosecond},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := MakeEqual("equalto", tt.argTypes)
			assert.Nil(t, fn)
			require.Error(t, err)

			var kerr *okerrors.KernelError
			require.True(t, errors.As(err, &kerr))
			assert.Equal(t, "equalto", kerr.Op)
		})
	}
}

func TestMakeUnsupportedType(t *testing.T) {
	unsupported := []arrow.DataType{
		arrow.PrimitiveTypes.Uint64,
		arrow.FixedWidthTypes.Float16,
		arrow.ListOf(arrow.PrimitiveTypes.Int64),
	}

	for _, dtype := range unsupported {
		fn, err := MakeLess("lessthan", []arrow.DataType{dtype, dtype})
		assert.Nil(t, fn)
		require.Error(t, err)

		var kerr *okerrors.KernelError
		require.True(t, errors.As(err, &kerr))
		assert.Equal(t, "lessthan", kerr.Op)
		assert.Equal(t, dtype.String(), kerr.Type)
		assert.Contains(t, err.Error(), "not supported for this type")
	}
}

func TestRegistryCachesKernels(t *testing.T) {
	registry := NewRegistry()
	argTypes := []arrow.DataType{arrow.PrimitiveTypes.Int64, arrow.PrimitiveTypes.Int64}

	first, err := registry.Lookup(OpEqual, argTypes)
	require.NoError(t, err)
	second, err := registry.Lookup(OpEqual, argTypes)
	require.NoError(t, err)

	// Stateless kernels are shared on cache hits.
	assert.Same(t, first, second)
	assert.Equal(t, 1, registry.Len())

	// A different operator or type compiles a distinct kernel.
	_, err = registry.Lookup(OpLess, argTypes)
	require.NoError(t, err)
	_, err = registry.Lookup(OpEqual, []arrow.DataType{arrow.PrimitiveTypes.Int32, arrow.PrimitiveTypes.Int32})
	require.NoError(t, err)
	assert.Equal(t, 3, registry.Len())
}

func TestRegistryDoesNotCacheErrors(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Lookup(OpEqual, []arrow.DataType{arrow.PrimitiveTypes.Uint8, arrow.PrimitiveTypes.Uint8})
	require.Error(t, err)
	assert.Equal(t, 0, registry.Len())
}
