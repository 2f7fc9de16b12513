package strategy

import (
	"context"
	rand "math/rand/v2"
	"slices"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

// DefaultMaxAttempts is the default number of shuffled candidate sets
// examined per roster size.
const DefaultMaxAttempts = 1000

// Shuffle implements pairing by bounded randomized search.
type Shuffle struct {
	maxAttempts int
}

var _ types.PairingStrategy = (*Shuffle)(nil)

// ShuffleOption configures a Shuffle strategy.
type ShuffleOption func(*Shuffle)

// NewShuffle creates a new randomized search strategy.
//
// The strategy repeatedly shuffles the eligible members, splits the shuffled
// order into two halves to form mentor/mentee candidates, and keeps the valid
// candidate set with the lowest total repetition penalty.
//
// Parameters:
//   - opts: Optional configuration (WithMaxAttempts)
//
// Returns:
//   - *Shuffle: Initialized shuffle strategy
//
// Example:
//
//	strategy := strategy.NewShuffle(strategy.WithMaxAttempts(500))
//	engine, _ := peer1on1.New(cfg, peer1on1.WithStrategy(strategy))
func NewShuffle(opts ...ShuffleOption) *Shuffle {
	s := &Shuffle{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithMaxAttempts sets how many shuffled candidate sets are examined per
// roster size before the search gives up and skips a member.
//
// Higher values improve candidate quality on heavily constrained rosters at
// the cost of CPU time. Values below 1 fall back to the default.
//
// Parameters:
//   - attempts: Number of attempts per roster size
//
// Returns:
//   - ShuffleOption: Configuration option
func WithMaxAttempts(attempts int) ShuffleOption {
	return func(s *Shuffle) {
		if attempts > 0 {
			s.maxAttempts = attempts
		}
	}
}

// Pair builds a pairing by bounded randomized search.
//
// The algorithm runs an explicit loop with a skip accumulator instead of
// recursion, so it terminates on every input:
//
//  1. If the eligible count is odd, move one random member to the skip list.
//  2. Examine up to MaxAttempts shuffled candidate sets; discard sets that
//     contain a forbidden pair; keep the lowest-penalty valid set.
//  3. If no valid set was found, skip the member with the fewest valid
//     partners and retry on the strictly smaller set.
//
// When fewer than two members remain, everyone left is skipped and the
// assignment list is empty.
//
// Parameters:
//   - ctx: Context for cancellation, checked once per roster size
//   - members: Eligible members
//   - excluded: Forbidden unordered pairs
//   - scorer: Repetition penalty source
//   - rng: Seeded random source (required)
//
// Returns:
//   - types.PairingResult: Chosen assignments and skipped members
//   - error: ErrRandRequired, ErrScorerRequired, or context error
func (s *Shuffle) Pair(ctx context.Context, members []string, excluded types.ExclusionSet, scorer types.PairScorer, rng *rand.Rand) (types.PairingResult, error) {
	if rng == nil {
		return types.PairingResult{}, ErrRandRequired
	}
	if scorer == nil {
		return types.PairingResult{}, ErrScorerRequired
	}

	eligible := slices.Clone(members)
	skipped := make([]string, 0)
	stats := types.PairingStats{}

	for len(eligible) >= 2 {
		if err := ctx.Err(); err != nil {
			return types.PairingResult{}, err
		}

		if len(eligible)%2 == 1 {
			drop := rng.IntN(len(eligible))
			skipped = append(skipped, eligible[drop])
			eligible = slices.Delete(eligible, drop, drop+1)
		}

		var best []types.Assignment
		bestPenalty := 0

		for attempt := 0; attempt < s.maxAttempts; attempt++ {
			stats.Attempts++
			rng.Shuffle(len(eligible), func(i, j int) {
				eligible[i], eligible[j] = eligible[j], eligible[i]
			})

			candidate, ok := splitHalves(eligible, excluded)
			if !ok {
				stats.Rejected++
				continue
			}

			penalty := totalPenalty(scorer, candidate)
			if best == nil || penalty < bestPenalty {
				best = candidate
				bestPenalty = penalty
			}
			if bestPenalty == 0 {
				break
			}
		}

		if best != nil {
			stats.Penalty = bestPenalty
			return types.PairingResult{Assignments: best, Skipped: skipped, Stats: stats}, nil
		}

		// Every attempt hit a forbidden pair. Skip the member with the
		// fewest valid partners and retry on the strictly smaller set.
		drop := mostConstrained(eligible, excluded)
		skipped = append(skipped, eligible[drop])
		eligible = slices.Delete(eligible, drop, drop+1)
	}

	skipped = append(skipped, eligible...)

	return types.PairingResult{Assignments: []types.Assignment{}, Skipped: skipped, Stats: stats}, nil
}

// splitHalves forms candidate assignments by pairing the i-th member of the
// first half with the i-th member of the second half. Returns false when any
// candidate violates an exclusion rule.
func splitHalves(eligible []string, excluded types.ExclusionSet) ([]types.Assignment, bool) {
	half := len(eligible) / 2
	candidate := make([]types.Assignment, 0, half)

	for i := 0; i < half; i++ {
		mentor, mentee := eligible[i], eligible[half+i]
		if excluded.Forbidden(mentor, mentee) {
			return nil, false
		}
		candidate = append(candidate, types.Assignment{Mentor: mentor, Mentee: mentee})
	}

	return candidate, true
}

// totalPenalty sums the scorer penalty over a candidate set.
func totalPenalty(scorer types.PairScorer, candidate []types.Assignment) int {
	total := 0
	for _, a := range candidate {
		total += scorer.Penalty(a.Mentor, a.Mentee)
	}

	return total
}

// mostConstrained returns the index of the member with the fewest valid
// partners among the eligible set. Ties break on the lexicographically
// smaller name so the choice is deterministic.
func mostConstrained(eligible []string, excluded types.ExclusionSet) int {
	best := -1
	bestPartners := 0

	for i, m := range eligible {
		partners := 0
		for j, other := range eligible {
			if i != j && !excluded.Forbidden(m, other) {
				partners++
			}
		}

		if best == -1 || partners < bestPartners || (partners == bestPartners && m < eligible[best]) {
			best = i
			bestPartners = partners
		}
	}

	return best
}
