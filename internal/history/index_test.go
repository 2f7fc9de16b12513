package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

func TestIndex_PairCount(t *testing.T) {
	index := New([]types.Period{
		{Month: "2021年1月", Assignments: []types.Assignment{{Mentor: "alice", Mentee: "bob"}}},
		{Month: "2021年2月", Assignments: []types.Assignment{{Mentor: "bob", Mentee: "alice"}}},
		{Month: "2021年3月", Assignments: []types.Assignment{{Mentor: "carol", Mentee: "dave"}}},
	})

	t.Run("counts both orientations as one pair", func(t *testing.T) {
		require.Equal(t, 2, index.PairCount("alice", "bob"))
		require.Equal(t, 2, index.PairCount("bob", "alice"))
	})

	t.Run("unseen pairs count zero", func(t *testing.T) {
		require.Equal(t, 0, index.PairCount("alice", "carol"))
	})
}

func TestIndex_LastAssignment(t *testing.T) {
	index := New([]types.Period{
		{Month: "2021年1月", Assignments: []types.Assignment{{Mentor: "alice", Mentee: "bob"}}},
		{Month: "2021年2月", Assignments: []types.Assignment{{Mentor: "bob", Mentee: "alice"}}},
	})

	t.Run("returns the chronologically last orientation", func(t *testing.T) {
		last, ok := index.LastAssignment("alice", "bob")

		require.True(t, ok)
		require.Equal(t, types.Assignment{Mentor: "bob", Mentee: "alice"}, last)
	})

	t.Run("reports pairs with no history", func(t *testing.T) {
		_, ok := index.LastAssignment("alice", "carol")
		require.False(t, ok)
	})
}

func TestIndex_Recent(t *testing.T) {
	t.Run("covers only the most recent non-empty period", func(t *testing.T) {
		index := New([]types.Period{
			{Month: "2021年1月", Assignments: []types.Assignment{{Mentor: "alice", Mentee: "bob"}}},
			{Month: "2021年2月", Assignments: []types.Assignment{{Mentor: "carol", Mentee: "dave"}}},
			{Month: "2021年3月", Skipped: types.SkipList{"alice"}, Assignments: []types.Assignment{}},
		})

		require.True(t, index.Recent("carol", "dave"))
		require.True(t, index.Recent("dave", "carol"))
		require.False(t, index.Recent("alice", "bob"))
	})

	t.Run("all-empty history marks nothing recent", func(t *testing.T) {
		index := New([]types.Period{{Month: "2021年1月"}})
		require.False(t, index.Recent("alice", "bob"))
	})
}

func TestIndex_Periods(t *testing.T) {
	t.Run("includes empty periods", func(t *testing.T) {
		index := New([]types.Period{{Month: "2021年1月"}, {Month: "2021年2月"}})
		require.Equal(t, 2, index.Periods())
	})

	t.Run("empty history", func(t *testing.T) {
		index := New(nil)

		require.Equal(t, 0, index.Periods())
		require.Equal(t, 0, index.PairCount("alice", "bob"))
		require.False(t, index.Recent("alice", "bob"))
	})
}
