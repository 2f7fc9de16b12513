package peer1on1

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Seitaro-Yuki/peer-1on1/internal/history"
	"github.com/Seitaro-Yuki/peer-1on1/types"
)

func TestAdjustOrientation(t *testing.T) {
	index := history.New([]types.Period{
		{Month: "2021年10月", Assignments: []types.Assignment{
			{Mentor: "alice", Mentee: "bob"},
			{Mentor: "carol", Mentee: "dave"},
		}},
	})

	t.Run("flips a repeated orientation", func(t *testing.T) {
		adjusted := adjustOrientation([]types.Assignment{{Mentor: "alice", Mentee: "bob"}}, index)
		require.Equal(t, []types.Assignment{{Mentor: "bob", Mentee: "alice"}}, adjusted)
	})

	t.Run("keeps an already-opposite orientation", func(t *testing.T) {
		adjusted := adjustOrientation([]types.Assignment{{Mentor: "bob", Mentee: "alice"}}, index)
		require.Equal(t, []types.Assignment{{Mentor: "bob", Mentee: "alice"}}, adjusted)
	})

	t.Run("leaves pairs without history unchanged", func(t *testing.T) {
		adjusted := adjustOrientation([]types.Assignment{{Mentor: "erin", Mentee: "frank"}}, index)
		require.Equal(t, []types.Assignment{{Mentor: "erin", Mentee: "frank"}}, adjusted)
	})

	t.Run("only the repeated pair is affected", func(t *testing.T) {
		candidate := []types.Assignment{
			{Mentor: "alice", Mentee: "bob"},
			{Mentor: "dave", Mentee: "carol"},
			{Mentor: "erin", Mentee: "frank"},
		}

		adjusted := adjustOrientation(candidate, index)

		require.Equal(t, []types.Assignment{
			{Mentor: "bob", Mentee: "alice"},
			{Mentor: "dave", Mentee: "carol"},
			{Mentor: "erin", Mentee: "frank"},
		}, adjusted)
	})

	t.Run("is idempotent", func(t *testing.T) {
		candidate := []types.Assignment{
			{Mentor: "alice", Mentee: "bob"},
			{Mentor: "carol", Mentee: "dave"},
			{Mentor: "erin", Mentee: "frank"},
		}

		once := adjustOrientation(candidate, index)
		twice := adjustOrientation(once, index)

		require.Equal(t, once, twice)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		candidate := []types.Assignment{{Mentor: "alice", Mentee: "bob"}}

		adjustOrientation(candidate, index)

		require.Equal(t, []types.Assignment{{Mentor: "alice", Mentee: "bob"}}, candidate)
	})
}
