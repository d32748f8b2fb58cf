package config

import (
	_ "embed"
)

//go:embed defaults/whack.yaml
var defaultWhackYAML []byte

// DefaultWhackConfig returns the default whack-a-mole configuration.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Session: SessionConfig{
			DurationSecs: 10,
			TickMS:       1000,
		},
		Difficulty: DifficultyHard,
		Delays: DelayConfig{
			EasyMS:    1500,
			NormalMS:  1000,
			HardMinMS: 600,
			HardMaxMS: 1200,
		},
		Scoring: ScoringConfig{
			RequireVisible: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWhackYAML
}
