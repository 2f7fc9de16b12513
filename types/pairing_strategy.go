package types

import (
	"context"
	rand "math/rand/v2"
)

// PairHistory is a read-only view over past periods, used to penalize
// repetition when selecting new pairs.
//
// Implementations must tolerate periods with empty assignment lists and
// treat them as contributing nothing.
type PairHistory interface {
	// PairCount returns how many times the unordered pair {a, b} was
	// assigned across all periods, in either orientation.
	PairCount(a, b string) int

	// LastAssignment returns the assignment, with orientation, from the
	// chronologically last period in which the unordered pair {a, b}
	// occurred. The second return value is false when the pair has never
	// been assigned.
	LastAssignment(a, b string) (Assignment, bool)

	// Recent reports whether the unordered pair {a, b} was assigned in the
	// most recent period that has a non-empty assignment list.
	Recent(a, b string) bool

	// Periods returns the number of periods in the history, including
	// periods with empty assignment lists.
	Periods() int
}

// PairScorer assigns a non-negative repetition penalty to a candidate pair.
//
// A higher penalty means the pair repeats recent or frequent history and
// should be avoided when an alternative exists.
type PairScorer interface {
	// Penalty returns the repetition penalty for pairing a with b.
	Penalty(a, b string) int
}

// PairingStats carries counters from one strategy run, recorded through
// the MetricsCollector by the engine.
type PairingStats struct {
	// Attempts is the number of candidate sets examined. Zero for
	// strategies that build a single candidate incrementally.
	Attempts int

	// Rejected is the number of candidate sets discarded for containing
	// a forbidden pair.
	Rejected int

	// Penalty is the total repetition penalty of the chosen candidate set.
	Penalty int
}

// PairingResult is the outcome of one strategy run: a valid candidate set
// plus the members left unpaired.
type PairingResult struct {
	// Assignments cover every eligible member exactly once, except the
	// skipped ones. No assignment violates an exclusion rule.
	Assignments []Assignment

	// Skipped lists members left unpaired, in the order they were dropped.
	Skipped []string

	// Stats carries counters from the run.
	Stats PairingStats
}

// PairingStrategy produces one complete pairing of the eligible members.
//
// Strategy implementations must guarantee:
//   - No forbidden pair ever appears in the output
//   - No member is assigned twice within one result
//   - Deterministic output given a fixed random source
//   - Termination, even when no valid pairing exists (degrade by skipping)
type PairingStrategy interface {
	// Pair builds a pairing of the given members.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - members: Eligible members, in roster order
	//   - excluded: Forbidden unordered pairs
	//   - scorer: Repetition penalty source used for candidate selection
	//   - rng: Seeded random source; ignored by deterministic strategies
	//
	// Returns:
	//   - PairingResult: Chosen assignments and skipped members
	//   - error: Context cancellation or missing dependency
	Pair(ctx context.Context, members []string, excluded ExclusionSet, scorer PairScorer, rng *rand.Rand) (PairingResult, error)
}
