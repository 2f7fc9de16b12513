package strategy

import "errors"

// ErrRandRequired is returned by randomized strategies when no random source is provided.
var ErrRandRequired = errors.New("random source is required")

// ErrScorerRequired is returned when no scorer is provided.
var ErrScorerRequired = errors.New("scorer is required")
