// Package io provides batch ingestion for the evaluation pipeline.
//
// Readers produce Arrow records whose columns feed vector.FromArrow; the
// scan layer that normally produces batches is upstream of the engine, so
// these readers exist to drive the CLI and end-to-end tests. CSV reading
// performs automatic type inference; Parquet reading goes through the Arrow
// parquet bridge.
package io

import (
	"github.com/apache/arrow-go/v18/arrow"
)

const (
	// DefaultBatchSize is the default row count per emitted record
	DefaultBatchSize = 1024
)

// BatchReader defines the interface for reading columnar batches from
// various sources
type BatchReader interface {
	// Read reads the source and returns its rows as a single record. The
	// caller releases the record.
	Read() (arrow.Record, error)
}

// BatchWriter defines the interface for writing columnar batches to various
// destinations
type BatchWriter interface {
	// Write writes the record to the destination
	Write(rec arrow.Record) error
}
