package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg WhackConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != DefaultWhackConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultWhackConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whack.yaml")
	data := []byte("session:\n  duration_secs: 30\ndifficulty: easy\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.DurationSecs != 30 {
		t.Errorf("DurationSecs = %d, expected 30", cfg.Session.DurationSecs)
	}
	if cfg.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %q, expected easy", cfg.Difficulty)
	}
	// Unset fields keep their defaults
	if cfg.Delays.HardMaxMS != 1200 {
		t.Errorf("HardMaxMS = %d, expected default 1200", cfg.Delays.HardMaxMS)
	}
	if cfg.Session.TickMS != 1000 {
		t.Errorf("TickMS = %d, expected default 1000", cfg.Session.TickMS)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("session: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultWhackConfig() {
		t.Errorf("expected embedded default, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "whack.yaml"), []byte("difficulty: normal\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Difficulty != DifficultyNormal {
		t.Errorf("expected local config difficulty normal, got %q", cfg.Difficulty)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".whack", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "whack.yaml"), []byte("difficulty: easy\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Difficulty != DifficultyEasy {
		t.Errorf("expected user config difficulty easy, got %q", cfg.Difficulty)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultWhackConfig()

	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Errorf("empty preset should be a no-op, got %v", err)
	}
	if cfg.Difficulty != DifficultyHard {
		t.Errorf("empty preset changed difficulty to %q", cfg.Difficulty)
	}

	if err := ApplyPreset(&cfg, "Normal"); err != nil {
		t.Fatalf("ApplyPreset() failed: %v", err)
	}
	if cfg.Difficulty != DifficultyNormal {
		t.Errorf("Difficulty = %q, expected normal", cfg.Difficulty)
	}

	err := ApplyPreset(&cfg, "insane")
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("ApplyPreset(insane) error = %v, expected ErrInvalidDifficulty", err)
	}
	if cfg.Difficulty != DifficultyNormal {
		t.Error("failed ApplyPreset should leave difficulty untouched")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultWhackConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*WhackConfig)
	}{
		{"zero duration", func(c *WhackConfig) { c.Session.DurationSecs = 0 }},
		{"zero tick", func(c *WhackConfig) { c.Session.TickMS = 0 }},
		{"unknown difficulty", func(c *WhackConfig) { c.Difficulty = "insane" }},
		{"negative delay", func(c *WhackConfig) { c.Delays.EasyMS = -1 }},
		{"inverted hard range", func(c *WhackConfig) { c.Delays.HardMinMS = 1300 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultWhackConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := DefaultWhackConfig()
	cfg.Difficulty = DifficultyEasy
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "whack.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, expected %+v", loaded, cfg)
	}
}
