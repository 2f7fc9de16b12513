package peer1on1

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Seitaro-Yuki/peer-1on1/schedule"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, StrategyShuffle, cfg.Strategy)
	require.Equal(t, 1000, cfg.MaxAttempts)
	require.Equal(t, 1, cfg.RepeatPenalty)
	require.Equal(t, 0, cfg.RecentPenalty)
	require.Equal(t, schedule.PolicySuccessor, cfg.LabelPolicy)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills a zero config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := Config{Strategy: StrategyGreedy, MaxAttempts: 50}
		SetDefaults(&cfg)

		require.Equal(t, StrategyGreedy, cfg.Strategy)
		require.Equal(t, 50, cfg.MaxAttempts)
		require.Equal(t, schedule.PolicySuccessor, cfg.LabelPolicy)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects an unknown strategy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Strategy = "backtracking"

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects an unknown label policy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LabelPolicy = "lunar"

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects non-positive attempts", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxAttempts = -1

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects negative penalties", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RepeatPenalty = -1

		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestConfig_YAML(t *testing.T) {
	doc := `
strategy: greedy
maxAttempts: 200
repeatPenalty: 2
recentPenalty: 50
labelPolicy: clock
`

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	require.Equal(t, StrategyGreedy, cfg.Strategy)
	require.Equal(t, 200, cfg.MaxAttempts)
	require.Equal(t, 2, cfg.RepeatPenalty)
	require.Equal(t, 50, cfg.RecentPenalty)
	require.Equal(t, schedule.PolicyClock, cfg.LabelPolicy)
	require.NoError(t, cfg.Validate())
}
