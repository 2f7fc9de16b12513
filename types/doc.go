// Package types provides core type definitions and interfaces for the peer-1on1 library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root peer1on1 package and its internal implementations.
//
// Key types:
//   - Assignment: Directed mentor/mentee pairing
//   - Period: One generated rotation cycle (a "month")
//   - Schedule: The full roster/exclusion/history document
//   - PairingStrategy: Pluggable pairing algorithm interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
