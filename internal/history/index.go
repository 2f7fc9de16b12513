// Package history builds read-only lookup structures over past periods.
package history

import "github.com/Seitaro-Yuki/peer-1on1/types"

// Index is a derived view over the pairing history.
//
// It answers three questions about any unordered pair:
//   - how often the pair was assigned across all periods,
//   - which orientation the pair had the last time it was assigned,
//   - whether the pair appears in the most recent non-empty period.
//
// The index is built once per generation and never mutated afterwards.
type Index struct {
	counts  map[types.Pair]int
	last    map[types.Pair]types.Assignment
	recent  map[types.Pair]struct{}
	periods int
}

// Compile-time assertion that Index implements PairHistory.
var _ types.PairHistory = (*Index)(nil)

// New builds an index over the given periods.
//
// Periods with empty or missing assignment lists contribute nothing.
//
// Parameters:
//   - periods: Ordered, chronological pairing history
//
// Returns:
//   - *Index: Derived lookup structures
func New(periods []types.Period) *Index {
	idx := &Index{
		counts:  make(map[types.Pair]int),
		last:    make(map[types.Pair]types.Assignment),
		recent:  make(map[types.Pair]struct{}),
		periods: len(periods),
	}

	for _, p := range periods {
		for _, a := range p.Assignments {
			key := a.Key()
			idx.counts[key]++
			idx.last[key] = a
		}
	}

	// The recency penalty is scoped to the single most recent period that
	// actually assigned anyone, not merely the last list entry.
	for i := len(periods) - 1; i >= 0; i-- {
		if len(periods[i].Assignments) == 0 {
			continue
		}
		for _, a := range periods[i].Assignments {
			idx.recent[a.Key()] = struct{}{}
		}

		break
	}

	return idx
}

// PairCount returns how many times {a, b} was assigned, in either orientation.
func (x *Index) PairCount(a, b string) int {
	return x.counts[types.NewPair(a, b)]
}

// LastAssignment returns the orientation of the chronologically last
// assignment of {a, b}. The second return value is false when the pair has
// never been assigned.
func (x *Index) LastAssignment(a, b string) (types.Assignment, bool) {
	assignment, ok := x.last[types.NewPair(a, b)]
	return assignment, ok
}

// Recent reports whether {a, b} was assigned in the most recent period with
// a non-empty assignment list.
func (x *Index) Recent(a, b string) bool {
	_, ok := x.recent[types.NewPair(a, b)]
	return ok
}

// Periods returns the number of periods the index was built from, including
// empty ones.
func (x *Index) Periods() int {
	return x.periods
}
