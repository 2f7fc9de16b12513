package peer1on1

import "github.com/Seitaro-Yuki/peer-1on1/types"

// adjustOrientation flips assignments whose orientation exactly repeats the
// most recent historical orientation of the same unordered pair.
//
// Equality is checked against both orientations explicitly: when the
// historical entry is already the flip of the candidate, the candidate is
// left unchanged rather than flipped back. Pairs with no history are left
// unchanged. Applying the adjustment twice yields the same result as
// applying it once.
func adjustOrientation(assignments []types.Assignment, history types.PairHistory) []types.Assignment {
	adjusted := make([]types.Assignment, len(assignments))

	for i, a := range assignments {
		adjusted[i] = a

		last, ok := history.LastAssignment(a.Mentor, a.Mentee)
		if !ok {
			continue
		}

		if last == a {
			adjusted[i] = a.Flipped()
		}
		// last == a.Flipped(): previous orientation already opposite, keep.
	}

	return adjusted
}
