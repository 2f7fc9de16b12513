package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPair(t *testing.T) {
	t.Run("normalizes orientation", func(t *testing.T) {
		require.Equal(t, NewPair("alice", "bob"), NewPair("bob", "alice"))
		require.Equal(t, Pair{"alice", "bob"}, NewPair("bob", "alice"))
	})
}

func TestAssignment_Flipped(t *testing.T) {
	a := Assignment{Mentor: "alice", Mentee: "bob"}

	require.Equal(t, Assignment{Mentor: "bob", Mentee: "alice"}, a.Flipped())
	require.Equal(t, a, a.Flipped().Flipped())
	require.Equal(t, a.Key(), a.Flipped().Key())
}

func TestExclusionSet_Forbidden(t *testing.T) {
	t.Run("matches either orientation", func(t *testing.T) {
		set := NewExclusionSet([]Pair{{"bob", "alice"}})

		require.True(t, set.Forbidden("alice", "bob"))
		require.True(t, set.Forbidden("bob", "alice"))
		require.False(t, set.Forbidden("alice", "carol"))
	})

	t.Run("empty set forbids nothing", func(t *testing.T) {
		set := NewExclusionSet(nil)
		require.False(t, set.Forbidden("alice", "bob"))
	})
}
