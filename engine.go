package peer1on1

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/Seitaro-Yuki/peer-1on1/internal/history"
	"github.com/Seitaro-Yuki/peer-1on1/internal/logger"
	"github.com/Seitaro-Yuki/peer-1on1/internal/metrics"
	"github.com/Seitaro-Yuki/peer-1on1/schedule"
	"github.com/Seitaro-Yuki/peer-1on1/strategy"
	"github.com/Seitaro-Yuki/peer-1on1/types"
)

// Engine generates one new pairing period from a schedule document.
//
// An Engine is a pure function of (roster, exclusions, history) plus a
// seedable random source; it never mutates its input. The caller appends the
// returned period to the document, typically via schedule.Append.
type Engine struct {
	cfg      Config
	strategy types.PairingStrategy
	logger   types.Logger
	metrics  types.MetricsCollector
	clock    func() time.Time
	seed     uint64
}

// New creates an Engine from the given configuration and options.
//
// Missing configuration values are filled with defaults before validation.
// Without WithStrategy, the strategy named by Config.Strategy is built:
// "shuffle" with Config.MaxAttempts, or "greedy".
//
// Parameters:
//   - cfg: Engine configuration
//   - opts: Optional dependencies (WithStrategy, WithLogger, WithMetrics,
//     WithSeed, WithClock)
//
// Returns:
//   - *Engine: Initialized engine
//   - error: Wrapped ErrInvalidConfig when the configuration is invalid
//
// Example:
//
//	engine, err := peer1on1.New(peer1on1.DefaultConfig(),
//	    peer1on1.WithSeed(42),
//	)
func New(cfg Config, opts ...Option) (*Engine, error) {
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.strategy == nil {
		switch cfg.Strategy {
		case StrategyGreedy:
			o.strategy = strategy.NewGreedy()
		default:
			o.strategy = strategy.NewShuffle(strategy.WithMaxAttempts(cfg.MaxAttempts))
		}
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}
	if o.clock == nil {
		o.clock = time.Now
	}

	return &Engine{
		cfg:      cfg,
		strategy: o.strategy,
		logger:   o.logger,
		metrics:  o.metrics,
		clock:    o.clock,
		seed:     o.seed,
	}, nil
}

// Generate computes the next period for the given schedule.
//
// The input document is not modified. The returned period carries the
// computed label, the chosen assignments with adjusted orientation, and the
// members left unpaired. When no valid pairing exists the assignment list is
// empty and every eligible member appears on the skip list.
//
// Parameters:
//   - ctx: Context for cancellation
//   - sched: Schedule document (roster, exclusions, history)
//
// Returns:
//   - types.Period: The newly generated period
//   - error: Validation, label computation, or context error
func (e *Engine) Generate(ctx context.Context, sched *types.Schedule) (types.Period, error) {
	start := time.Now()

	if sched == nil {
		return types.Period{}, ErrScheduleRequired
	}
	if err := sched.Validate(); err != nil {
		return types.Period{}, err
	}

	label, err := schedule.NextLabel(e.cfg.LabelPolicy, sched.Months, e.clock())
	if err != nil {
		return types.Period{}, fmt.Errorf("compute period label: %w", err)
	}

	index := history.New(sched.Months)
	scorer := NewScorer(index, e.cfg.RecentPenalty, e.cfg.RepeatPenalty)
	excluded := types.NewExclusionSet(sched.Excluded)

	result, err := e.strategy.Pair(ctx, sched.Members, excluded, scorer, e.newRand(sched))
	if err != nil {
		return types.Period{}, fmt.Errorf("pair members: %w", err)
	}

	assignments := adjustOrientation(result.Assignments, index)

	e.metrics.RecordAttempts(result.Stats.Attempts)
	e.metrics.RecordRejected(result.Stats.Rejected)
	e.metrics.RecordPenalty(result.Stats.Penalty)
	e.metrics.RecordSkipped(len(result.Skipped))
	e.metrics.ObserveGenerateDuration(time.Since(start).Seconds())

	e.logger.Info("generated period",
		"month", label,
		"pairs", len(assignments),
		"skipped", len(result.Skipped),
		"attempts", result.Stats.Attempts,
		"penalty", result.Stats.Penalty,
	)

	period := types.Period{
		Month:       label,
		Assignments: assignments,
	}
	if len(result.Skipped) > 0 {
		period.Skipped = types.SkipList(result.Skipped)
	}

	return period, nil
}

// newRand builds the seeded random source for one generation.
//
// An explicit seed takes precedence. Otherwise the seed is derived from the
// document itself, so repeated runs on identical input are reproducible
// while a changed history still varies the pairing.
func (e *Engine) newRand(sched *types.Schedule) *rand.Rand {
	seed := e.seed
	if seed == 0 {
		seed = deriveSeed(sched)
	}

	return rand.New(rand.NewPCG(seed, seed<<1|1))
}

// deriveSeed hashes the roster and the history shape into a stable seed.
func deriveSeed(sched *types.Schedule) uint64 {
	var sb strings.Builder
	for _, m := range sched.Members {
		sb.WriteString(m)
		sb.WriteByte(0)
	}
	sb.WriteString(strconv.Itoa(len(sched.Months)))
	if n := len(sched.Months); n > 0 {
		sb.WriteByte(0)
		sb.WriteString(sched.Months[n-1].Month)
	}

	return xxh3.HashString(sb.String())
}
