package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a type name cannot be parsed.
var ErrUnknownType = errors.New("unknown type name")

// Type is one of the 18 elemental types, numbered in the order the games
// themselves use (Normal=0 .. Fairy=17).
type Type uint8

const (
	TypeNormal Type = iota
	TypeFighting
	TypeFlying
	TypePoison
	TypeGround
	TypeRock
	TypeBug
	TypeGhost
	TypeSteel
	TypeFire
	TypeWater
	TypeGrass
	TypeElectric
	TypePsychic
	TypeIce
	TypeDragon
	TypeDark
	TypeFairy

	typeCount = 18
)

var typeNames = [typeCount]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock",
	"Bug", "Ghost", "Steel", "Fire", "Water", "Grass",
	"Electric", "Psychic", "Ice", "Dragon", "Dark", "Fairy",
}

func (t Type) String() string {
	if int(t) >= typeCount {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// ParseType converts a case-insensitive type name into a Type.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if strings.EqualFold(n, name) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// typeChart[attacking][defending] — Gen VII effectiveness matrix.
// Rows are the attacking type, columns the defending type, both in enum order.
var typeChart = [typeCount][typeCount]float64{
	//             Nor  Fig  Fly  Poi  Gro  Roc  Bug  Gho  Ste  Fir  Wat  Gra  Ele  Psy  Ice  Dra  Dar  Fai
	TypeNormal:   {1, 1, 1, 1, 1, 0.5, 1, 0, 0.5, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	TypeFighting: {2, 1, 0.5, 0.5, 1, 2, 0.5, 0, 2, 1, 1, 1, 1, 0.5, 2, 1, 2, 0.5},
	TypeFlying:   {1, 2, 1, 1, 1, 0.5, 2, 1, 0.5, 1, 1, 2, 0.5, 1, 1, 1, 1, 1},
	TypePoison:   {1, 1, 1, 0.5, 0.5, 0.5, 1, 0.5, 0, 1, 1, 2, 1, 1, 1, 1, 1, 2},
	TypeGround:   {1, 1, 0, 2, 1, 2, 0.5, 1, 2, 2, 1, 0.5, 2, 1, 1, 1, 1, 1},
	TypeRock:     {1, 0.5, 2, 1, 0.5, 1, 2, 1, 0.5, 2, 1, 1, 1, 1, 2, 1, 1, 1},
	TypeBug:      {1, 0.5, 0.5, 0.5, 1, 1, 1, 0.5, 0.5, 0.5, 1, 2, 1, 2, 1, 1, 2, 0.5},
	TypeGhost:    {0, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 2, 1, 1, 0.5, 1},
	TypeSteel:    {1, 1, 1, 1, 1, 2, 1, 1, 0.5, 0.5, 0.5, 1, 0.5, 1, 2, 1, 1, 2},
	TypeFire:     {1, 1, 1, 1, 1, 0.5, 2, 1, 2, 0.5, 0.5, 2, 1, 1, 2, 0.5, 1, 1},
	TypeWater:    {1, 1, 1, 1, 2, 2, 1, 1, 1, 2, 0.5, 0.5, 1, 1, 1, 0.5, 1, 1},
	TypeGrass:    {1, 1, 0.5, 0.5, 2, 2, 0.5, 1, 0.5, 0.5, 2, 0.5, 1, 1, 1, 0.5, 1, 1},
	TypeElectric: {1, 1, 2, 1, 0, 1, 1, 1, 1, 1, 2, 0.5, 0.5, 1, 1, 0.5, 1, 1},
	TypePsychic:  {1, 2, 1, 2, 1, 1, 1, 1, 0.5, 1, 1, 1, 1, 0.5, 1, 1, 0, 1},
	TypeIce:      {1, 1, 2, 1, 2, 1, 1, 1, 0.5, 0.5, 0.5, 2, 1, 1, 0.5, 2, 1, 1},
	TypeDragon:   {1, 1, 1, 1, 1, 1, 1, 1, 0.5, 1, 1, 1, 1, 1, 1, 2, 1, 0},
	TypeDark:     {1, 0.5, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 2, 1, 1, 0.5, 0.5},
	TypeFairy:    {1, 2, 1, 0.5, 1, 1, 1, 1, 0.5, 0.5, 1, 1, 1, 1, 1, 2, 2, 1},
}

// Effectiveness returns the single-axis chart multiplier for an attacking
// type against one defending type: one of 0, 0.5, 1, 2.
func Effectiveness(attacking, defending Type) float64 {
	return typeChart[attacking][defending]
}

// CombinedEffectiveness returns the chart product against a full defender
// typing: one of 0, 0.25, 0.5, 1, 2, 4 for mono- and dual-typed defenders.
func CombinedEffectiveness(attacking Type, defending []Type) float64 {
	mult := 1.0
	for _, d := range defending {
		mult *= typeChart[attacking][d]
	}
	return mult
}

// EffectivenessClass buckets a type-chart product for reporting.
type EffectivenessClass uint8

const (
	EffectivenessImmune EffectivenessClass = iota
	EffectivenessResisted
	EffectivenessNeutral
	EffectivenessSuper
)

func (e EffectivenessClass) String() string {
	switch e {
	case EffectivenessImmune:
		return "immune"
	case EffectivenessResisted:
		return "resisted"
	case EffectivenessNeutral:
		return "neutral"
	case EffectivenessSuper:
		return "super-effective"
	default:
		return fmt.Sprintf("EffectivenessClass(%d)", uint8(e))
	}
}

// ClassifyEffectiveness maps a chart product to its reporting class.
func ClassifyEffectiveness(mult float64) EffectivenessClass {
	switch {
	case mult == 0:
		return EffectivenessImmune
	case mult < 1:
		return EffectivenessResisted
	case mult > 1:
		return EffectivenessSuper
	default:
		return EffectivenessNeutral
	}
}
