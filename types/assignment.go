package types

import (
	"encoding/json"
	"fmt"
)

// Assignment is a directed mentor/mentee pairing within a period.
//
// Two assignments with swapped mentor and mentee represent the same
// unordered pair but different orientation.
type Assignment struct {
	Mentor string
	Mentee string
}

// Flipped returns the assignment with mentor and mentee swapped.
func (a Assignment) Flipped() Assignment {
	return Assignment{Mentor: a.Mentee, Mentee: a.Mentor}
}

// Key returns the normalized unordered pair underlying the assignment.
func (a Assignment) Key() Pair {
	return NewPair(a.Mentor, a.Mentee)
}

// MarshalJSON encodes the assignment as a two-element array, mentor first.
func (a Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{a.Mentor, a.Mentee})
}

// UnmarshalJSON decodes a ["mentor", "mentee"] array into the assignment.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("assignment must be a [mentor, mentee] array: %w", err)
	}

	a.Mentor = pair[0]
	a.Mentee = pair[1]

	return nil
}
