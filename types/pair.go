package types

// Pair is the unordered pair of members underlying an assignment or an
// exclusion rule. It serializes as a two-element JSON array.
type Pair [2]string

// NewPair returns the normalized pair for two members.
//
// Normalization orders the members lexicographically so that Pair values
// compare equal regardless of orientation.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{a, b}
}

// Contains reports whether the pair includes the given member.
func (p Pair) Contains(member string) bool {
	return p[0] == member || p[1] == member
}

// ExclusionSet is a lookup over forbidden unordered pairs.
//
// A forbidden pair must never appear as an assignment in any generated
// period, in either orientation.
type ExclusionSet map[Pair]struct{}

// NewExclusionSet builds an exclusion set from a list of rules.
//
// Rules are normalized on insertion, so [a, b] and [b, a] describe the
// same forbidden pair.
//
// Parameters:
//   - rules: Unordered pairs that must never be assigned
//
// Returns:
//   - ExclusionSet: Normalized lookup set
func NewExclusionSet(rules []Pair) ExclusionSet {
	set := make(ExclusionSet, len(rules))
	for _, r := range rules {
		set[NewPair(r[0], r[1])] = struct{}{}
	}

	return set
}

// Forbidden reports whether pairing a with b violates a rule, in either
// orientation.
func (s ExclusionSet) Forbidden(a, b string) bool {
	_, ok := s[NewPair(a, b)]
	return ok
}
