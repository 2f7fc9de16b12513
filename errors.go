package peer1on1

import "errors"

// Sentinel errors returned by the Engine.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScheduleRequired is returned when Generate is called with a nil schedule.
	ErrScheduleRequired = errors.New("schedule is required")
)
