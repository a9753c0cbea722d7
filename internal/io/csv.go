package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// CSVOptions contains configuration options for CSV reading
type CSVOptions struct {
	// Delimiter is the field delimiter (default: comma)
	Delimiter rune
	// Comment is the comment character (default: 0 = disabled)
	Comment rune
	// Header indicates whether the first row contains headers
	Header bool
	// SkipInitialSpace indicates whether to skip initial whitespace
	SkipInitialSpace bool
}

// DefaultCSVOptions returns default CSV options
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter: ',',
		Comment:   0,
		Header:    true,
	}
}

// CSVReader reads CSV data and converts it to Arrow records with inferred
// column types. Empty fields become nulls.
type CSVReader struct {
	reader  io.Reader
	options CSVOptions
	mem     memory.Allocator
}

// NewCSVReader creates a new CSV reader with the specified options
func NewCSVReader(reader io.Reader, options CSVOptions, mem memory.Allocator) *CSVReader {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &CSVReader{reader: reader, options: options, mem: mem}
}

// Read reads CSV data and returns a single record covering every row
func (r *CSVReader) Read() (arrow.Record, error) {
	csvReader := csv.NewReader(r.reader)
	csvReader.Comma = r.options.Delimiter
	csvReader.Comment = r.options.Comment
	csvReader.TrimLeadingSpace = r.options.SkipInitialSpace

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		schema := arrow.NewSchema(nil, nil)
		return array.NewRecord(schema, nil, 0), nil
	}

	var headers []string
	var dataRows [][]string

	if r.options.Header {
		headers = records[0]
		dataRows = records[1:]
	} else {
		numCols := len(records[0])
		headers = make([]string, numCols)
		for i := 0; i < numCols; i++ {
			headers[i] = fmt.Sprintf("column_%d", i)
		}
		dataRows = records
	}

	fields := make([]arrow.Field, len(headers))
	columns := make([]arrow.Array, len(headers))
	defer func() {
		for _, col := range columns {
			if col != nil {
				col.Release()
			}
		}
	}()

	for colIdx, name := range headers {
		values := make([]string, len(dataRows))
		for rowIdx, row := range dataRows {
			if colIdx < len(row) {
				values[rowIdx] = row[colIdx]
			}
		}

		arr, dtype, err := r.buildColumn(values)
		if err != nil {
			return nil, fmt.Errorf("building column %s: %w", name, err)
		}
		columns[colIdx] = arr
		fields[colIdx] = arrow.Field{Name: name, Type: dtype, Nullable: true}
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, columns, int64(len(dataRows))), nil
}

// columnKind is the inferred scalar kind of one CSV column
type columnKind int

const (
	kindInt64 columnKind = iota
	kindFloat64
	kindBool
	kindString
)

// inferKind finds the narrowest kind every non-empty value parses as, in
// the order int64, float64, bool, string.
func inferKind(values []string) columnKind {
	kind := kindInt64
	sawValue := false
	for _, v := range values {
		if v == "" {
			continue
		}
		sawValue = true
		if kind == kindInt64 {
			if _, err := strconv.ParseInt(v, 10, 64); err == nil {
				continue
			}
			kind = kindFloat64
		}
		if kind == kindFloat64 {
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				continue
			}
			kind = kindBool
		}
		if kind == kindBool {
			if v == trueStr || v == falseStr {
				continue
			}
			kind = kindString
		}
		if kind == kindString {
			break
		}
	}
	if !sawValue {
		return kindString
	}
	return kind
}

func (r *CSVReader) buildColumn(values []string) (arrow.Array, arrow.DataType, error) {
	switch inferKind(values) {
	case kindInt64:
		builder := array.NewInt64Builder(r.mem)
		defer builder.Release()
		for _, v := range values {
			if v == "" {
				builder.AppendNull()
				continue
			}
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, nil, err
			}
			builder.Append(parsed)
		}
		return builder.NewArray(), arrow.PrimitiveTypes.Int64, nil
	case kindFloat64:
		builder := array.NewFloat64Builder(r.mem)
		defer builder.Release()
		for _, v := range values {
			if v == "" {
				builder.AppendNull()
				continue
			}
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, nil, err
			}
			builder.Append(parsed)
		}
		return builder.NewArray(), arrow.PrimitiveTypes.Float64, nil
	case kindBool:
		builder := array.NewBooleanBuilder(r.mem)
		defer builder.Release()
		for _, v := range values {
			if v == "" {
				builder.AppendNull()
				continue
			}
			builder.Append(v == trueStr)
		}
		return builder.NewArray(), arrow.FixedWidthTypes.Boolean, nil
	default:
		builder := array.NewStringBuilder(r.mem)
		defer builder.Release()
		for _, v := range values {
			if v == "" {
				builder.AppendNull()
				continue
			}
			builder.Append(v)
		}
		return builder.NewArray(), arrow.BinaryTypes.String, nil
	}
}
