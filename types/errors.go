package types

import "errors"

// Sentinel errors for schedule document validation.
var (
	// ErrMembersRequired is returned when the document has no roster.
	ErrMembersRequired = errors.New("members are required")

	// ErrDuplicateMember is returned when two roster entries share a name.
	ErrDuplicateMember = errors.New("duplicate member")
)
