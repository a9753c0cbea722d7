// Package common provides shared type conversion utilities used by the
// expression layer when coercing literals to a column's declared type.
package common

import (
	"fmt"
	"math"
	"strconv"
)

// TypeConverter provides common type conversion utilities.
type TypeConverter struct{}

// NewTypeConverter creates a new TypeConverter instance.
func NewTypeConverter() *TypeConverter {
	return &TypeConverter{}
}

// ToInt64 converts various numeric types to int64.
func (tc *TypeConverter) ToInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("uint value %d overflows int64 range", v)
		}
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("uint64 value %d overflows int64 range", v)
		}
		return int64(v), nil
	case float32:
		if v > math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("float32 value %f overflows int64 range", v)
		}
		return int64(v), nil
	case float64:
		if v > math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("float64 value %f overflows int64 range", v)
		}
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", value)
	}
}

// ToFloat64 converts various numeric types to float64.
func (tc *TypeConverter) ToFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	case bool:
		if v {
			return 1.0, nil
		}
		return 0.0, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// ToString converts various types to string.
func (tc *TypeConverter) ToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
func (tc *TypeConverter) ToBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int8:
		return v != 0, nil
	case int16:
		return v != 0, nil
	case int32:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case uint:
		return v != 0, nil
	case uint8:
		return v != 0, nil
	case uint16:
		return v != 0, nil
	case uint32:
		return v != 0, nil
	case uint64:
		return v != 0, nil
	case float32:
		return v != 0.0, nil
	case float64:
		return v != 0.0, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return false, fmt.Errorf("cannot convert %T to bool", value)
	}
}

// Default converter instance for convenience.
var defaultConverter = NewTypeConverter()

// ToInt64 converts various types to int64 using the default converter.
func ToInt64(value interface{}) (int64, error) {
	return defaultConverter.ToInt64(value)
}

// ToFloat64 converts various types to float64 using the default converter.
func ToFloat64(value interface{}) (float64, error) {
	return defaultConverter.ToFloat64(value)
}

// ToString converts various types to string using the default converter.
func ToString(value interface{}) string {
	return defaultConverter.ToString(value)
}

// ToBool converts various types to bool using the default converter.
func ToBool(value interface{}) (bool, error) {
	return defaultConverter.ToBool(value)
}
