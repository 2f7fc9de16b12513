package peer1on1

import (
	"time"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	strategy types.PairingStrategy
	logger   types.Logger
	metrics  types.MetricsCollector
	clock    func() time.Time
	seed     uint64
}

// WithStrategy sets a custom pairing strategy, overriding Config.Strategy.
//
// Parameters:
//   - strategy: PairingStrategy implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	engine, err := peer1on1.New(cfg, peer1on1.WithStrategy(strategy.NewGreedy()))
func WithStrategy(strategy types.PairingStrategy) Option {
	return func(o *engineOptions) {
		o.strategy = strategy
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	engine, err := peer1on1.New(cfg, peer1on1.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "peer1on1")
//	engine, err := peer1on1.New(cfg, peer1on1.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithSeed sets an explicit random seed for the shuffle strategy.
//
// A seed of 0 (the default) derives a seed from the input document, so
// repeated runs on identical input produce identical output.
//
// Parameters:
//   - seed: Random seed
//
// Returns:
//   - Option: Functional option for New
func WithSeed(seed uint64) Option {
	return func(o *engineOptions) {
		o.seed = seed
	}
}

// WithClock sets the time source used by the "clock" label policy.
//
// Primarily useful in tests to pin the generated period label.
//
// Parameters:
//   - clock: Function returning the current time
//
// Returns:
//   - Option: Functional option for New
func WithClock(clock func() time.Time) Option {
	return func(o *engineOptions) {
		o.clock = clock
	}
}
