// Package metrics provides MetricsCollector implementations for the
// peer-1on1 library.
package metrics

import "github.com/Seitaro-Yuki/peer-1on1/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// Used by default when no collector is injected, and as an embedding base
// for partial implementations.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: Collector that performs no operations
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAttempts discards the measurement.
func (n *NopMetrics) RecordAttempts(_ /* count */ int) {}

// RecordRejected discards the measurement.
func (n *NopMetrics) RecordRejected(_ /* count */ int) {}

// RecordPenalty discards the measurement.
func (n *NopMetrics) RecordPenalty(_ /* total */ int) {}

// RecordSkipped discards the measurement.
func (n *NopMetrics) RecordSkipped(_ /* count */ int) {}

// ObserveGenerateDuration discards the measurement.
func (n *NopMetrics) ObserveGenerateDuration(_ /* seconds */ float64) {}
