package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDifficulty is returned for a difficulty outside the known presets.
var ErrInvalidDifficulty = errors.New("invalid difficulty level")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns the known difficulty presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts user input to a preset.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known presets.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	default:
		return false
	}
}

// Next returns the following preset, wrapping from hard back to easy.
// Unknown presets cycle to easy.
func (p DifficultyPreset) Next() DifficultyPreset {
	switch p {
	case DifficultyEasy:
		return DifficultyNormal
	case DifficultyNormal:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// Describe returns a short human-readable description of the reveal
// duration used by a preset.
func (d DelayConfig) Describe(p DifficultyPreset) string {
	switch p {
	case DifficultyEasy:
		return fmt.Sprintf("moles stay up %dms", d.EasyMS)
	case DifficultyNormal:
		return fmt.Sprintf("moles stay up %dms", d.NormalMS)
	case DifficultyHard:
		return fmt.Sprintf("moles stay up %d-%dms at random", d.HardMinMS, d.HardMaxMS)
	default:
		return "unknown"
	}
}
