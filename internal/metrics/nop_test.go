package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

func TestNopMetrics(t *testing.T) {
	collector := NewNop()

	// Verify it implements the interface
	var _ types.MetricsCollector = collector

	// All methods should be callable without panicking
	require.NotPanics(t, func() {
		collector.RecordAttempts(10)
		collector.RecordRejected(2)
		collector.RecordPenalty(5)
		collector.RecordSkipped(1)
		collector.ObserveGenerateDuration(0.01)
	})
}
