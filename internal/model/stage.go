package model

import (
	"errors"
	"fmt"
)

// Stage bounds shared by all seven staged axes.
const (
	MinStage = -6
	MaxStage = 6
)

// ErrStageOutOfRange reports a stage outside [-6, 6]. Stages are never
// clamped here: an out-of-range value means the caller broke its contract.
var ErrStageOutOfRange = errors.New("stat stage out of range")

// StatStages holds the per-battle stage offsets of a combatant.
// Each axis is an integer in [-6, 6].
type StatStages struct {
	Attack    int `yaml:"attack"`
	Defense   int `yaml:"defense"`
	SpAttack  int `yaml:"sp_attack"`
	SpDefense int `yaml:"sp_defense"`
	Speed     int `yaml:"speed"`
	Accuracy  int `yaml:"accuracy"`
	Evasion   int `yaml:"evasion"`
}

// Get returns the stage for a staged axis. StatHP has no stage and returns 0.
func (s StatStages) Get(stat Stat) int {
	switch stat {
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpAttack:
		return s.SpAttack
	case StatSpDefense:
		return s.SpDefense
	case StatSpeed:
		return s.Speed
	case StatAccuracy:
		return s.Accuracy
	case StatEvasion:
		return s.Evasion
	default:
		return 0
	}
}

// Validate checks every axis against the [-6, 6] bound.
func (s StatStages) Validate() error {
	axes := []struct {
		stat  Stat
		value int
	}{
		{StatAttack, s.Attack},
		{StatDefense, s.Defense},
		{StatSpAttack, s.SpAttack},
		{StatSpDefense, s.SpDefense},
		{StatSpeed, s.Speed},
		{StatAccuracy, s.Accuracy},
		{StatEvasion, s.Evasion},
	}
	for _, a := range axes {
		if a.value < MinStage || a.value > MaxStage {
			return fmt.Errorf("%w: %s = %d", ErrStageOutOfRange, a.stat, a.value)
		}
	}
	return nil
}
