package io

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ParquetReader reads Parquet data into Arrow records.
type ParquetReader struct {
	reader io.Reader
	mem    memory.Allocator
}

// NewParquetReader creates a new Parquet reader.
func NewParquetReader(reader io.Reader, mem memory.Allocator) *ParquetReader {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &ParquetReader{reader: reader, mem: mem}
}

// Read reads Parquet data and returns it as a single record.
func (r *ParquetReader) Read() (arrow.Record, error) {
	data, err := io.ReadAll(r.reader)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	readerAt := bytes.NewReader(data)

	pqReader, err := file.NewParquetReader(readerAt)
	if err != nil {
		return nil, fmt.Errorf("creating parquet file reader: %w", err)
	}

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, r.mem)
	if err != nil {
		return nil, fmt.Errorf("creating arrow file reader: %w", err)
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	defer table.Release()

	return tableToRecord(table, r.mem)
}

// tableToRecord flattens a (possibly chunked) table into one record.
func tableToRecord(table arrow.Table, mem memory.Allocator) (arrow.Record, error) {
	if table.NumRows() == 0 {
		return array.NewRecord(table.Schema(), nil, 0), nil
	}

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	if !tr.Next() {
		return nil, fmt.Errorf("table reader yielded no records")
	}
	rec := tr.Record()
	rec.Retain()
	return rec, nil
}

// ParquetWriter writes Arrow records as Parquet data.
type ParquetWriter struct {
	writer io.Writer
	mem    memory.Allocator
}

// NewParquetWriter creates a new Parquet writer.
func NewParquetWriter(writer io.Writer, mem memory.Allocator) *ParquetWriter {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &ParquetWriter{writer: writer, mem: mem}
}

// Write writes the record as one Parquet file with snappy compression.
func (w *ParquetWriter) Write(rec arrow.Record) error {
	table := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer table.Release()

	props := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Snappy),
		parquet.WithAllocator(w.mem),
	)
	arrProps := pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(w.mem))

	if err := pqarrow.WriteTable(table, w.writer, rec.NumRows(), props, arrProps); err != nil {
		return fmt.Errorf("writing parquet table: %w", err)
	}
	return nil
}
