package battle

import (
	"errors"
	"testing"
)

func TestParseRoundingMode(t *testing.T) {
	tests := []struct {
		name string
		want RoundingMode
	}{
		{"", RoundSingleFloor},
		{"single-floor", RoundSingleFloor},
		{"per-stage-floor", RoundPerStageFloor},
		{"Per-Stage-Floor", RoundPerStageFloor},
	}
	for _, tt := range tests {
		got, err := ParseRoundingMode(tt.name)
		if err != nil {
			t.Fatalf("ParseRoundingMode(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ParseRoundingMode(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}

	if _, err := ParseRoundingMode("nearest"); !errors.Is(err, ErrUnknownRounding) {
		t.Errorf("ParseRoundingMode(nearest) err = %v, want ErrUnknownRounding", err)
	}
}

func TestRoundingModeString(t *testing.T) {
	if got := RoundSingleFloor.String(); got != "single-floor" {
		t.Errorf("RoundSingleFloor.String() = %q", got)
	}
	if got := RoundPerStageFloor.String(); got != "per-stage-floor" {
		t.Errorf("RoundPerStageFloor.String() = %q", got)
	}
}
