package schedule

import "errors"

// Sentinel errors for document and label handling.
var (
	// ErrNoPeriods is returned by the successor policy when the history is
	// empty and there is no label to continue from.
	ErrNoPeriods = errors.New("no periods to derive the next label from")

	// ErrBadLabel is returned when a period label cannot be parsed.
	ErrBadLabel = errors.New("unparseable period label")

	// ErrUnknownPolicy is returned for an unrecognized label policy.
	ErrUnknownPolicy = errors.New("unknown label policy")
)
