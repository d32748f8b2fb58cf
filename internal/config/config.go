// Package config provides YAML-based game configuration loading and
// difficulty presets for the whack-a-mole game.
package config

// WhackConfig contains all configuration for a whack-a-mole session.
type WhackConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Delays     DelayConfig      `yaml:"delays"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// SessionConfig defines the countdown parameters.
type SessionConfig struct {
	DurationSecs int `yaml:"duration_secs"` // Remaining time at session start
	TickMS       int `yaml:"tick_ms"`       // Interval between countdown ticks
}

// DelayConfig defines how long a mole stays visible per difficulty.
type DelayConfig struct {
	EasyMS    int `yaml:"easy_ms"`
	NormalMS  int `yaml:"normal_ms"`
	HardMinMS int `yaml:"hard_min_ms"` // Inclusive lower bound of the hard range
	HardMaxMS int `yaml:"hard_max_ms"` // Inclusive upper bound of the hard range
}

// ScoringConfig defines how clicks on moles are credited.
type ScoringConfig struct {
	// RequireVisible rejects clicks on moles whose hole is not showing.
	// When false every click on a mole scores.
	RequireVisible bool `yaml:"require_visible"`
}
