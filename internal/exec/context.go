// Package exec provides the host-side evaluation layer around comparison
// kernels: the evaluation context kernels request result buffers through,
// the default null-propagation wrapper, and a batch pipeline for large
// inputs.
package exec

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/okapilab/okapi/internal/monitoring"
	"github.com/okapilab/okapi/internal/vector"
)

// Context is the per-host evaluation context. Kernels treat it as opaque and
// use it only to request writable result buffers; the allocator is used when
// results are materialized back into Arrow arrays.
type Context struct {
	mem     memory.Allocator
	metrics *monitoring.MetricsCollector
}

// NewContext creates an evaluation context. A nil allocator falls back to
// the Go allocator; a nil collector disables metrics.
func NewContext(mem memory.Allocator, metrics *monitoring.MetricsCollector) *Context {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	if metrics == nil {
		metrics = monitoring.NewMetricsCollector(false)
	}
	return &Context{mem: mem, metrics: metrics}
}

// Allocator returns the context's Arrow allocator.
func (c *Context) Allocator() memory.Allocator {
	return c.mem
}

// Metrics returns the context's metrics collector.
func (c *Context) Metrics() *monitoring.MetricsCollector {
	return c.metrics
}

// EnsureWritable makes the caller's result slot hold a writable boolean
// column with at least rowCount rows. An existing buffer is reused and
// resized; contents outside the rows a kernel writes stay unspecified.
func (c *Context) EnsureWritable(result **vector.Flat[bool], outputType arrow.DataType, rowCount int) {
	if *result == nil {
		*result = vector.NewFlatEmpty[bool](outputType, rowCount)
		return
	}
	if (*result).Len() < rowCount {
		(*result).Resize(rowCount)
	}
}
