// Package monitoring provides performance monitoring and metrics collection
// for batch kernel evaluation.
package monitoring

import (
	"runtime"
	"sync"
	"time"
)

// OperationMetrics represents performance metrics for a single kernel
// invocation or pipeline run.
type OperationMetrics struct {
	Duration      time.Duration `json:"duration"`
	RowsProcessed int64         `json:"rows_processed"`
	MemoryUsed    int64         `json:"memory_used"`
	Operation     string        `json:"operation"`
}

// MetricsCollector collects and stores performance metrics for kernel
// evaluation.
type MetricsCollector struct {
	mu      sync.RWMutex
	metrics []OperationMetrics
	enabled bool
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector(enabled bool) *MetricsCollector {
	return &MetricsCollector{
		metrics: make([]OperationMetrics, 0),
		enabled: enabled,
	}
}

// IsEnabled returns whether metrics collection is enabled.
func (mc *MetricsCollector) IsEnabled() bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.enabled
}

// SetEnabled enables or disables metrics collection.
func (mc *MetricsCollector) SetEnabled(enabled bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.enabled = enabled
}

// RecordOperation executes the given function and records performance
// metrics for it. When collection is disabled the function runs without
// instrumentation.
func (mc *MetricsCollector) RecordOperation(operation string, rows int64, fn func() error) error {
	if !mc.IsEnabled() {
		return fn()
	}

	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	start := time.Now()
	err := fn()
	duration := time.Since(start)

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)

	memoryUsed := int64(memAfter.Alloc - memBefore.Alloc) //nolint:gosec // Memory values are expected to be safe

	metrics := OperationMetrics{
		Duration:      duration,
		RowsProcessed: rows,
		MemoryUsed:    memoryUsed,
		Operation:     operation,
	}

	mc.mu.Lock()
	mc.metrics = append(mc.metrics, metrics)
	mc.mu.Unlock()

	return err
}

// GetMetrics returns a copy of all collected metrics.
func (mc *MetricsCollector) GetMetrics() []OperationMetrics {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	result := make([]OperationMetrics, len(mc.metrics))
	copy(result, mc.metrics)
	return result
}

// Clear removes all collected metrics.
func (mc *MetricsCollector) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.metrics = mc.metrics[:0]
}

// GetSummary returns a summary of collected metrics.
func (mc *MetricsCollector) GetSummary() MetricsSummary {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	if len(mc.metrics) == 0 {
		return MetricsSummary{}
	}

	var totalDuration time.Duration
	var totalMemory int64
	var totalRows int64
	operationCounts := make(map[string]int)

	for _, metric := range mc.metrics {
		totalDuration += metric.Duration
		totalMemory += metric.MemoryUsed
		totalRows += metric.RowsProcessed
		operationCounts[metric.Operation]++
	}

	return MetricsSummary{
		TotalOperations: len(mc.metrics),
		TotalDuration:   totalDuration,
		TotalMemory:     totalMemory,
		TotalRows:       totalRows,
		OperationCounts: operationCounts,
		AverageDuration: totalDuration / time.Duration(len(mc.metrics)),
	}
}

// MetricsSummary provides aggregate statistics for collected metrics.
type MetricsSummary struct {
	TotalOperations int            `json:"total_operations"`
	TotalDuration   time.Duration  `json:"total_duration"`
	TotalMemory     int64          `json:"total_memory"`
	TotalRows       int64          `json:"total_rows"`
	OperationCounts map[string]int `json:"operation_counts"`
	AverageDuration time.Duration  `json:"average_duration"`
}
