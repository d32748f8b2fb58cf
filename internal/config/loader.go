package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the whack-a-mole configuration.
// Search order: customPath -> ~/.whack/configs/whack.yaml -> ./configs/whack.yaml -> embedded default
func Load(customPath string) (WhackConfig, error) {
	cfg := DefaultWhackConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("whack.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultWhackConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "whack.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultWhackConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWhackYAML, &cfg); err != nil {
		return DefaultWhackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".whack", "configs", filename)
}

// ApplyPreset overrides the configured difficulty.
// An empty preset keeps the configured one.
func ApplyPreset(cfg *WhackConfig, preset string) error {
	if preset == "" {
		return nil
	}
	p, err := ParseDifficulty(preset)
	if err != nil {
		return err
	}
	cfg.Difficulty = p
	return nil
}

// Validate checks that the configuration can drive a session.
func (c WhackConfig) Validate() error {
	var errs []error
	if c.Session.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("session.duration_secs must be positive, got %d", c.Session.DurationSecs))
	}
	if c.Session.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("session.tick_ms must be positive, got %d", c.Session.TickMS))
	}
	if !c.Difficulty.Valid() {
		errs = append(errs, fmt.Errorf("difficulty: %w: %q", ErrInvalidDifficulty, c.Difficulty))
	}
	if c.Delays.EasyMS <= 0 || c.Delays.NormalMS <= 0 || c.Delays.HardMinMS <= 0 {
		errs = append(errs, errors.New("delays must be positive"))
	}
	if c.Delays.HardMinMS > c.Delays.HardMaxMS {
		errs = append(errs, fmt.Errorf("delays.hard_min_ms (%d) exceeds delays.hard_max_ms (%d)",
			c.Delays.HardMinMS, c.Delays.HardMaxMS))
	}
	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c WhackConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
