package peer1on1

import "github.com/Seitaro-Yuki/peer-1on1/types"

// Scorer assigns repetition penalties to candidate pairs using the history
// index.
//
// The penalty combines two terms:
//
//	penalty(a, b) = recent(a, b)*recentPenalty + count(a, b)*repeatPenalty
//
// where recent(a, b) is 1 when the pair was assigned in the most recent
// period with assignments, and count(a, b) is the all-time occurrence count.
// The recency term must dominate: repeating last period's pair is worse than
// any accumulation of older repeats.
type Scorer struct {
	history       types.PairHistory
	recentPenalty int
	repeatPenalty int
}

// Compile-time assertion that Scorer implements PairScorer.
var _ types.PairScorer = (*Scorer)(nil)

// NewScorer creates a scorer over the given history.
//
// A recentPenalty of 0 or less selects the automatic weight
// repeatPenalty * (periods + 1). Since no pair occurs more often than once
// per period, the frequency term never reaches that value, so recency always
// outweighs it. A repeatPenalty of 0 or less falls back to 1.
//
// Parameters:
//   - history: Read-only history view
//   - recentPenalty: Weight of the recency term (0 = auto)
//   - repeatPenalty: Weight per historical occurrence
//
// Returns:
//   - *Scorer: Initialized scorer
func NewScorer(history types.PairHistory, recentPenalty, repeatPenalty int) *Scorer {
	if repeatPenalty <= 0 {
		repeatPenalty = 1
	}
	if recentPenalty <= 0 {
		recentPenalty = repeatPenalty * (history.Periods() + 1)
	}

	return &Scorer{
		history:       history,
		recentPenalty: recentPenalty,
		repeatPenalty: repeatPenalty,
	}
}

// Penalty returns the non-negative repetition penalty for pairing a with b.
func (s *Scorer) Penalty(a, b string) int {
	penalty := s.repeatPenalty * s.history.PairCount(a, b)
	if s.history.Recent(a, b) {
		penalty += s.recentPenalty
	}

	return penalty
}
