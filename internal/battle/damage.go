package battle

import (
	"math"

	"github.com/mivora/battlecalc/internal/rng"
)

// RawDamage computes the pre-modifier damage core in exact integer
// arithmetic.
// Formula: raw = floor(((floor(0.4*level) + 2) * power * attack / defense) / 50 + 2).
func RawDamage(level, power, attack, defense int) int {
	if defense < 1 {
		defense = 1
	}
	levelFactor := 2*level/5 + 2
	return levelFactor*power*attack/(50*defense) + 2
}

// randomRoll draws the damage-range factor: one of the 16 equally likely
// values {0.85, 0.86, ..., 1.00}.
func randomRoll(src rng.Source) float64 {
	return float64(85+src.IntN(16)) / 100
}

// floorDamage floors a damage product, absorbing accumulated float error
// below a billionth so an exact integer never truncates to its neighbor.
func floorDamage(x float64) int {
	return int(math.Floor(x + 1e-9))
}

// applyModifiers multiplies the pipeline product and the random roll onto
// the raw damage under the configured rounding semantics.
func (r *Resolver) applyModifiers(ctx *ModifierContext, raw int, roll float64) int {
	switch r.rounding {
	case RoundPerStageFloor:
		amount := raw
		for _, stage := range damageStages {
			amount = floorDamage(float64(amount) * stage.fn(ctx))
		}
		return floorDamage(float64(amount) * roll)
	default:
		product := 1.0
		for _, stage := range damageStages {
			product *= stage.fn(ctx)
		}
		return floorDamage(float64(raw) * product * roll)
	}
}
