package types

import (
	"encoding/json"
	"fmt"
)

// SkipList holds the members left unpaired in a period.
//
// Historical documents sometimes record a single skipped member as a bare
// string instead of an array; decoding accepts both forms. Encoding always
// produces an array, which is the canonical form.
type SkipList []string

// UnmarshalJSON decodes either a single name or an array of names.
func (s *SkipList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = SkipList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("skip must be a name or an array of names: %w", err)
	}

	*s = SkipList(many)

	return nil
}

// Period is one rotation cycle: a label, the assignments generated for it,
// and the members left unpaired.
//
// Periods read from history may carry an empty or missing assignment list;
// consumers must treat such periods as contributing nothing.
type Period struct {
	// Month is the period label, e.g. "2021年10月".
	Month string `json:"month"`

	// Skipped lists members left unpaired, due to odd roster parity,
	// exclusion rules, or infeasibility.
	Skipped SkipList `json:"skip,omitempty"`

	// Assignments is the list of mentor/mentee pairings for the period.
	Assignments []Assignment `json:"pairs"`
}

// Schedule is the full pairing document: the roster, the forbidden pairs,
// and the chronological history of generated periods.
//
// History is append-only: generating a new period never modifies existing
// entries, it only adds one period at the end.
type Schedule struct {
	// Members is the roster. Names are opaque, case-sensitive identities
	// and must be unique.
	Members []string `json:"members"`

	// Excluded lists unordered pairs that must never be assigned.
	Excluded []Pair `json:"excluded,omitempty"`

	// Months is the ordered, chronological pairing history.
	Months []Period `json:"months"`
}

// Validate checks the document invariants.
//
// The roster is required and must not contain duplicate names. A missing
// exclusion list or history is valid and treated as empty.
//
// Returns:
//   - error: ErrMembersRequired or ErrDuplicateMember on violation, nil otherwise
func (s *Schedule) Validate() error {
	if len(s.Members) == 0 {
		return ErrMembersRequired
	}

	seen := make(map[string]struct{}, len(s.Members))
	for _, m := range s.Members {
		if _, dup := seen[m]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateMember, m)
		}
		seen[m] = struct{}{}
	}

	return nil
}
