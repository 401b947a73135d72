package data

import (
	"errors"
	"fmt"

	"github.com/mivora/battlecalc/internal/model"
)

// ErrNoPowerFunction is returned when a move declares dynamic power but no
// power function is registered for it.
var ErrNoPowerFunction = errors.New("no power function")

// PowerInput carries the battle state a dynamic power function may read.
// Power functions are pure: same input, same power.
type PowerInput struct {
	Attacker *model.Combatant
	Defender *model.Combatant
	Field    model.Field
}

// PowerFunc computes a move's base power from battle state before any
// power modifier applies.
type PowerFunc func(in PowerInput) (int, error)

var powerFuncs = map[model.MoveID]PowerFunc{
	"low-kick":     weightPower,
	"grass-knot":   weightPower,
	"heavy-slam":   weightRatioPower,
	"heat-crash":   weightRatioPower,
	"eruption":     currentHPPower,
	"water-spout":  currentHPPower,
	"flail":        desperationPower,
	"reversal":     desperationPower,
	"electro-ball": speedRatioPower,
	"gyro-ball":    inverseSpeedPower,
	"stored-power": storedPower,
	"punishment":   punishmentPower,
	"acrobatics":   acrobaticsPower,
	"knock-off":    knockOffPower,
	"facade":       facadePower,
}

// PowerFuncFor returns the registered power function for a dynamic-power
// move.
func PowerFuncFor(id model.MoveID) (PowerFunc, error) {
	fn, ok := powerFuncs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPowerFunction, id)
	}
	return fn, nil
}

func combatantWeight(c *model.Combatant) (float64, error) {
	sp, err := GetSpecies(c.Species)
	if err != nil {
		return 0, err
	}
	return sp.WeightKG, nil
}

// Formula: tiered by the target's weight in kilograms.
// <10kg: 20, <25kg: 40, <50kg: 60, <100kg: 80, <200kg: 100, else 120.
func weightPower(in PowerInput) (int, error) {
	w, err := combatantWeight(in.Defender)
	if err != nil {
		return 0, err
	}
	switch {
	case w < 10:
		return 20, nil
	case w < 25:
		return 40, nil
	case w < 50:
		return 60, nil
	case w < 100:
		return 80, nil
	case w < 200:
		return 100, nil
	default:
		return 120, nil
	}
}

// Formula: tiered by how many times the attacker outweighs the target.
// 5x or more: 120, 4x: 100, 3x: 80, 2x: 60, else 40.
func weightRatioPower(in PowerInput) (int, error) {
	aw, err := combatantWeight(in.Attacker)
	if err != nil {
		return 0, err
	}
	dw, err := combatantWeight(in.Defender)
	if err != nil {
		return 0, err
	}
	if dw <= 0 {
		return 120, nil
	}
	switch r := aw / dw; {
	case r >= 5:
		return 120, nil
	case r >= 4:
		return 100, nil
	case r >= 3:
		return 80, nil
	case r >= 2:
		return 60, nil
	default:
		return 40, nil
	}
}

// Formula: 150 * currentHP / maxHP, floored, minimum 1.
func currentHPPower(in PowerInput) (int, error) {
	a := in.Attacker
	p := 150 * a.CurrentHP / a.MaxHP
	if p < 1 {
		p = 1
	}
	return p, nil
}

// Formula: tiered by p = 48 * currentHP / maxHP.
// p<=1: 200, p<=4: 150, p<=9: 100, p<=16: 80, p<=32: 40, else 20.
func desperationPower(in PowerInput) (int, error) {
	a := in.Attacker
	p := 48 * a.CurrentHP / a.MaxHP
	switch {
	case p <= 1:
		return 200, nil
	case p <= 4:
		return 150, nil
	case p <= 9:
		return 100, nil
	case p <= 16:
		return 80, nil
	case p <= 32:
		return 40, nil
	default:
		return 20, nil
	}
}

// Formula: tiered by attackerSpeed / defenderSpeed using raw stats.
// 4x or more: 150, 3x: 120, 2x: 80, 1x: 60, slower: 40.
func speedRatioPower(in PowerInput) (int, error) {
	def := in.Defender.Stats.Speed
	if def <= 0 {
		return 150, nil
	}
	switch r := in.Attacker.Stats.Speed / def; {
	case r >= 4:
		return 150, nil
	case r >= 3:
		return 120, nil
	case r >= 2:
		return 80, nil
	case r >= 1:
		return 60, nil
	default:
		return 40, nil
	}
}

// Formula: 25 * defenderSpeed / attackerSpeed + 1, capped at 150.
func inverseSpeedPower(in PowerInput) (int, error) {
	atk := in.Attacker.Stats.Speed
	if atk <= 0 {
		return 150, nil
	}
	p := 25*in.Defender.Stats.Speed/atk + 1
	if p > 150 {
		p = 150
	}
	return p, nil
}

func positiveStageSum(st model.StatStages) int {
	sum := 0
	for _, s := range []int{st.Attack, st.Defense, st.SpAttack, st.SpDefense, st.Speed, st.Accuracy, st.Evasion} {
		if s > 0 {
			sum += s
		}
	}
	return sum
}

// Formula: 20 + 20 per positive stage boost on the attacker.
func storedPower(in PowerInput) (int, error) {
	return 20 + 20*positiveStageSum(in.Attacker.Stages), nil
}

// Formula: 60 + 20 per positive stage boost on the target, capped at 200.
func punishmentPower(in PowerInput) (int, error) {
	p := 60 + 20*positiveStageSum(in.Defender.Stages)
	if p > 200 {
		p = 200
	}
	return p, nil
}

// Formula: 55, doubled to 110 when the attacker holds no usable item.
func acrobaticsPower(in PowerInput) (int, error) {
	if in.Attacker.HeldItem() == "" {
		return 110, nil
	}
	return 55, nil
}

// Formula: 65, raised to 97 when the target holds a usable item.
func knockOffPower(in PowerInput) (int, error) {
	if in.Defender.HeldItem() != "" {
		return 97, nil
	}
	return 65, nil
}

// Formula: 70, doubled to 140 when the attacker has a non-volatile status.
func facadePower(in PowerInput) (int, error) {
	if in.Attacker.Status != model.StatusNone {
		return 140, nil
	}
	return 70, nil
}
