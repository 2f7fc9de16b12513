package types

// MetricsCollector records measurements from pairing generation.
//
// The engine reports through this interface after every generated period.
// The nop implementation is used by default; a Prometheus-backed collector
// is available for services embedding the library.
type MetricsCollector interface {
	// RecordAttempts records the number of candidate sets examined while
	// generating one period.
	RecordAttempts(count int)

	// RecordRejected records the number of candidate sets discarded for
	// containing a forbidden pair.
	RecordRejected(count int)

	// RecordPenalty records the total repetition penalty of the chosen
	// candidate set.
	RecordPenalty(total int)

	// RecordSkipped records how many members were left unpaired.
	RecordSkipped(count int)

	// ObserveGenerateDuration observes the wall time of one generation,
	// in seconds.
	ObserveGenerateDuration(seconds float64)
}
