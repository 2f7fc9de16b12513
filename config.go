package peer1on1

import (
	"fmt"

	"github.com/Seitaro-Yuki/peer-1on1/schedule"
)

// Built-in strategy names accepted by Config.Strategy.
const (
	// StrategyShuffle selects bounded randomized search (default).
	StrategyShuffle = "shuffle"

	// StrategyGreedy selects most-constrained-first incremental assignment.
	StrategyGreedy = "greedy"
)

// Config is the configuration for the Engine.
type Config struct {
	// Strategy selects the pairing algorithm: "shuffle" or "greedy".
	// Exactly one strategy runs per generation; there is no fallback
	// between them. Default: "shuffle".
	Strategy string `yaml:"strategy"`

	// MaxAttempts is how many shuffled candidate sets the shuffle strategy
	// examines per roster size before skipping a member. Ignored by the
	// greedy strategy. Default: 1000.
	MaxAttempts int `yaml:"maxAttempts"`

	// RepeatPenalty is the additive penalty per historical occurrence of a
	// candidate pair. Default: 1.
	RepeatPenalty int `yaml:"repeatPenalty"`

	// RecentPenalty is the penalty for repeating a pair from the most
	// recent period with assignments. It must outweigh any total the
	// frequency term can reach. Set to 0 (the default) to derive it
	// automatically as RepeatPenalty * (periods + 1), which always
	// dominates because no pair occurs more often than once per period.
	RecentPenalty int `yaml:"recentPenalty"`

	// LabelPolicy selects how the new period label is computed:
	// "successor" continues the calendar from the last period's label,
	// "clock" uses the current date. Default: "successor".
	LabelPolicy schedule.LabelPolicy `yaml:"labelPolicy"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Strategy:      StrategyShuffle,
		MaxAttempts:   1000,
		RepeatPenalty: 1,
		RecentPenalty: 0, // auto: RepeatPenalty * (periods + 1)
		LabelPolicy:   schedule.PolicySuccessor,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	if cfg.RepeatPenalty == 0 {
		cfg.RepeatPenalty = defaults.RepeatPenalty
	}
	if cfg.LabelPolicy == "" {
		cfg.LabelPolicy = defaults.LabelPolicy
	}
	// Note: RecentPenalty of 0 is valid (auto-derived), so no default applies.
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: Wrapped ErrInvalidConfig describing the violation, nil when valid
func (c *Config) Validate() error {
	switch c.Strategy {
	case StrategyShuffle, StrategyGreedy:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Strategy)
	}

	switch c.LabelPolicy {
	case schedule.PolicySuccessor, schedule.PolicyClock:
	default:
		return fmt.Errorf("%w: unknown label policy %q", ErrInvalidConfig, c.LabelPolicy)
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: maxAttempts must be positive", ErrInvalidConfig)
	}
	if c.RepeatPenalty < 0 || c.RecentPenalty < 0 {
		return fmt.Errorf("%w: penalties must be non-negative", ErrInvalidConfig)
	}

	return nil
}
