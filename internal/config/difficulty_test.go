package config

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDifficulty(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDifficulty) {
					t.Errorf("ParseDifficulty(%q) error = %v, expected ErrInvalidDifficulty", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDifficultyNextCycles(t *testing.T) {
	p := DifficultyEasy
	seen := []DifficultyPreset{p}
	for range 3 {
		p = p.Next()
		seen = append(seen, p)
	}
	expected := []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyEasy}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("cycle[%d] = %q, expected %q", i, seen[i], expected[i])
		}
	}
	if DifficultyPreset("bogus").Next() != DifficultyEasy {
		t.Error("unknown preset should cycle to easy")
	}
}

func TestDescribe(t *testing.T) {
	d := DefaultWhackConfig().Delays
	if got := d.Describe(DifficultyHard); got != "moles stay up 600-1200ms at random" {
		t.Errorf("Describe(hard) = %q", got)
	}
	if got := d.Describe(DifficultyEasy); got != "moles stay up 1500ms" {
		t.Errorf("Describe(easy) = %q", got)
	}
}
