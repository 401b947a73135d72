package battle

import "github.com/mivora/battlecalc/internal/model"

// StageMultiplier returns the stat multiplier for a stage in [-6, 6].
// Formula: (2+s)/2 for s >= 0, 2/(2-s) for s < 0.
func StageMultiplier(stage int) float64 {
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// EffectiveStat applies a stage to a base stat value. Floored, never below 1.
func EffectiveStat(base, stage int) int {
	v := int(float64(base) * StageMultiplier(stage))
	if v < 1 {
		return 1
	}
	return v
}

// effectiveAttack resolves the attacker's offensive stat for the move
// category. The defender's Unaware zeroes the stage; a critical hit ignores
// the attacker's own drops.
func (ctx *ModifierContext) effectiveAttack() int {
	stat := model.StatAttack
	if ctx.Move.Category == model.CategorySpecial {
		stat = model.StatSpAttack
	}
	base := ctx.Attacker.Stats.Get(stat)

	stage := ctx.Attacker.Stages.Get(stat)
	if def := ctx.defenderAbility(); def != nil && def.Unaware {
		stage = 0
	}
	if ctx.IsCritical && stage < 0 {
		stage = 0
	}
	return EffectiveStat(base, stage)
}

// effectiveDefense resolves the defender's defensive stat for the move
// category. The attacker's Unaware zeroes the stage; a critical hit ignores
// the defender's boosts.
func (ctx *ModifierContext) effectiveDefense() int {
	stat := model.StatDefense
	if ctx.Move.Category == model.CategorySpecial {
		stat = model.StatSpDefense
	}
	base := ctx.Defender.Stats.Get(stat)

	stage := ctx.Defender.Stages.Get(stat)
	if atk := ctx.attackerAbility(); atk != nil && atk.Unaware {
		stage = 0
	}
	if ctx.IsCritical && stage > 0 {
		stage = 0
	}
	return EffectiveStat(base, stage)
}
