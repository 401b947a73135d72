package model

import (
	"errors"
	"testing"
)

func TestNatureModifiers(t *testing.T) {
	tests := []struct {
		nature Nature
		stat   Stat
		want   float64
	}{
		{NatureAdamant, StatAttack, 1.1},
		{NatureAdamant, StatSpAttack, 0.9},
		{NatureAdamant, StatSpeed, 1.0},
		{NatureModest, StatSpAttack, 1.1},
		{NatureModest, StatAttack, 0.9},
		{NatureJolly, StatSpeed, 1.1},
		{NatureJolly, StatSpAttack, 0.9},
		{NatureHardy, StatAttack, 1.0},
		{NatureSerious, StatSpeed, 1.0},
	}
	for _, tt := range tests {
		if got := tt.nature.Modifier(tt.stat); got != tt.want {
			t.Errorf("%s.Modifier(%s) = %v, want %v", tt.nature, tt.stat, got, tt.want)
		}
	}
}

func TestEveryNatureBalances(t *testing.T) {
	staged := []Stat{StatAttack, StatDefense, StatSpAttack, StatSpDefense, StatSpeed}
	for n := Nature(0); n < natureCount; n++ {
		var raised, lowered int
		for _, s := range staged {
			switch n.Modifier(s) {
			case 1.1:
				raised++
			case 0.9:
				lowered++
			}
		}
		if raised != lowered || raised > 1 {
			t.Errorf("%s raises %d and lowers %d stats, want matched 0 or 1", n, raised, lowered)
		}
	}
}

func TestParseNature(t *testing.T) {
	got, err := ParseNature("adamant")
	if err != nil {
		t.Fatalf("ParseNature(adamant): %v", err)
	}
	if got != NatureAdamant {
		t.Errorf("ParseNature(adamant) = %s, want Adamant", got)
	}

	if _, err := ParseNature("zealous"); !errors.Is(err, ErrUnknownNature) {
		t.Errorf("ParseNature(zealous) err = %v, want ErrUnknownNature", err)
	}
}

func TestCalcStat(t *testing.T) {
	tests := []struct {
		name               string
		base, iv, ev, level int
		mod                float64
		want               int
	}{
		// 252 EV / 31 IV, level 100, boosting nature
		{"max attack boosted", 130, 31, 252, 100, 1.1, 394},
		// same spread, neutral nature
		{"max attack neutral", 130, 31, 252, 100, 1.0, 359},
		// zero investment, hindering nature
		{"uninvested hindered", 100, 0, 0, 100, 0.9, 184},
		{"level 50 spread", 100, 31, 252, 50, 1.0, 152},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalcStat(tt.base, tt.iv, tt.ev, tt.level, tt.mod); got != tt.want {
				t.Errorf("CalcStat(%d,%d,%d,%d,%v) = %d, want %d",
					tt.base, tt.iv, tt.ev, tt.level, tt.mod, got, tt.want)
			}
		})
	}
}

func TestCalcHP(t *testing.T) {
	// 2*108+31+63 = 310 at level 100 → 310 + 100 + 10
	if got := CalcHP(108, 31, 252, 100); got != 420 {
		t.Errorf("CalcHP(108,31,252,100) = %d, want 420", got)
	}
	if got := CalcHP(50, 0, 0, 50); got != 110 {
		t.Errorf("CalcHP(50,0,0,50) = %d, want 110", got)
	}
}
