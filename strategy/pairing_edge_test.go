package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

// Edge-case coverage shared by both built-in strategies.

func TestStrategies_EdgeCases(t *testing.T) {
	ctx := context.Background()

	strategies := map[string]types.PairingStrategy{
		"shuffle": NewShuffle(WithMaxAttempts(200)),
		"greedy":  NewGreedy(),
	}

	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			t.Run("empty roster yields empty result", func(t *testing.T) {
				result, err := strat.Pair(ctx, nil, types.NewExclusionSet(nil), stubScorer{}, newRand(1))

				require.NoError(t, err)
				require.Empty(t, result.Assignments)
				require.Empty(t, result.Skipped)
			})

			t.Run("single member is skipped", func(t *testing.T) {
				result, err := strat.Pair(ctx, []string{"alice"}, types.NewExclusionSet(nil), stubScorer{}, newRand(1))

				require.NoError(t, err)
				require.Empty(t, result.Assignments)
				require.Equal(t, []string{"alice"}, result.Skipped)
			})

			t.Run("complete exclusion degrades to all skipped", func(t *testing.T) {
				members := []string{"alice", "bob", "carol", "dave"}
				excluded := types.NewExclusionSet([]types.Pair{
					{"alice", "bob"}, {"alice", "carol"}, {"alice", "dave"},
					{"bob", "carol"}, {"bob", "dave"}, {"carol", "dave"},
				})

				result, err := strat.Pair(ctx, members, excluded, stubScorer{}, newRand(1))

				require.NoError(t, err)
				require.Empty(t, result.Assignments)
				require.ElementsMatch(t, members, result.Skipped)
			})

			t.Run("large constrained roster keeps invariants", func(t *testing.T) {
				members := []string{
					"alice", "bob", "carol", "dave", "erin",
					"frank", "grace", "henry", "iris", "jack",
				}
				excluded := types.NewExclusionSet([]types.Pair{
					{"alice", "bob"},
					{"carol", "dave"},
					{"erin", "frank"},
					{"grace", "henry"},
					{"iris", "jack"},
				})

				for seed := uint64(1); seed <= 5; seed++ {
					result, err := strat.Pair(ctx, members, excluded, stubScorer{}, newRand(seed))

					require.NoError(t, err)
					requireEachMemberOnce(t, members, result)
					for _, a := range result.Assignments {
						require.NotEqual(t, a.Mentor, a.Mentee)
						require.False(t, excluded.Forbidden(a.Mentor, a.Mentee))
					}
					// Assigned plus skipped always account for the full roster.
					require.Equal(t, len(members), 2*len(result.Assignments)+len(result.Skipped))
				}
			})
		})
	}
}

func TestShuffle_FindsPerfectMatching(t *testing.T) {
	// Ten members with five disjoint forbidden pairs: a perfect matching
	// exists, and the randomized search must find one. (Greedy may strand
	// the last two members here; it trades completeness for determinism.)
	members := []string{
		"alice", "bob", "carol", "dave", "erin",
		"frank", "grace", "henry", "iris", "jack",
	}
	excluded := types.NewExclusionSet([]types.Pair{
		{"alice", "bob"},
		{"carol", "dave"},
		{"erin", "frank"},
		{"grace", "henry"},
		{"iris", "jack"},
	})
	strategy := NewShuffle()

	for seed := uint64(1); seed <= 5; seed++ {
		result, err := strategy.Pair(context.Background(), members, excluded, stubScorer{}, newRand(seed))

		require.NoError(t, err)
		require.Len(t, result.Assignments, 5, "seed %d", seed)
		require.Empty(t, result.Skipped, "seed %d", seed)
	}
}
