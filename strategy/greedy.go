package strategy

import (
	"context"
	rand "math/rand/v2"
	"slices"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

// Greedy implements most-constrained-first incremental pairing.
type Greedy struct{}

var _ types.PairingStrategy = (*Greedy)(nil)

// NewGreedy creates a new greedy incremental strategy.
//
// The strategy repeatedly picks the member with the fewest remaining valid
// partners and pairs it with its lowest-penalty available partner. Processing
// the most constrained member first reduces dead ends on rosters with many
// exclusion rules.
//
// Greedy is fully deterministic and ignores the random source.
//
// Returns:
//   - *Greedy: Initialized greedy strategy
//
// Example:
//
//	strategy := strategy.NewGreedy()
//	engine, _ := peer1on1.New(cfg, peer1on1.WithStrategy(strategy))
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Pair builds a pairing incrementally.
//
// The algorithm:
//  1. Pick the remaining member with the fewest valid partners
//     (ties break on the lexicographically smaller name).
//  2. Pair it with the valid partner carrying the lowest repetition penalty
//     (ties break on the lexicographically smaller name).
//  3. Members with no valid partner left are skipped.
//
// An odd eligible count leaves exactly one member unpaired at the end, which
// lands on the skip list through the same no-partner rule.
//
// Parameters:
//   - ctx: Context for cancellation, checked once per round
//   - members: Eligible members
//   - excluded: Forbidden unordered pairs
//   - scorer: Repetition penalty source
//   - rng: Ignored; Greedy is deterministic
//
// Returns:
//   - types.PairingResult: Chosen assignments and skipped members
//   - error: ErrScorerRequired or context error
func (g *Greedy) Pair(ctx context.Context, members []string, excluded types.ExclusionSet, scorer types.PairScorer, _ *rand.Rand) (types.PairingResult, error) {
	if scorer == nil {
		return types.PairingResult{}, ErrScorerRequired
	}

	remaining := slices.Clone(members)
	assignments := make([]types.Assignment, 0, len(members)/2)
	skipped := make([]string, 0)
	stats := types.PairingStats{}

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return types.PairingResult{}, err
		}

		next := mostConstrained(remaining, excluded)
		member := remaining[next]
		remaining = slices.Delete(remaining, next, next+1)

		partner := -1
		partnerPenalty := 0
		for i, candidate := range remaining {
			if excluded.Forbidden(member, candidate) {
				continue
			}

			penalty := scorer.Penalty(member, candidate)
			if partner == -1 || penalty < partnerPenalty || (penalty == partnerPenalty && candidate < remaining[partner]) {
				partner = i
				partnerPenalty = penalty
			}
		}

		if partner == -1 {
			skipped = append(skipped, member)
			continue
		}

		assignments = append(assignments, types.Assignment{Mentor: member, Mentee: remaining[partner]})
		stats.Penalty += partnerPenalty
		remaining = slices.Delete(remaining, partner, partner+1)
	}

	return types.PairingResult{Assignments: assignments, Skipped: skipped, Stats: stats}, nil
}
