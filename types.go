package peer1on1

import "github.com/Seitaro-Yuki/peer-1on1/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern allows internal packages to depend on `types` without
// depending on the root package, while still providing a convenient
// `peer1on1.Schedule`, `peer1on1.Assignment`, etc. for users.
type (
	Assignment   = types.Assignment
	Pair         = types.Pair
	Period       = types.Period
	Schedule     = types.Schedule
	SkipList     = types.SkipList
	ExclusionSet = types.ExclusionSet
)

// Re-export interfaces from the types subpackage for convenience.
type (
	PairingStrategy  = types.PairingStrategy
	PairHistory      = types.PairHistory
	PairScorer       = types.PairScorer
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)
