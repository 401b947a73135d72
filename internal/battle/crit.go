package battle

import "github.com/mivora/battlecalc/internal/rng"

// critStage accumulates the attacker's critical-hit stage: +1 for
// high-crit-ratio moves, crit-boosting items and Super Luck, +2 under
// Focus Energy.
func (ctx *ModifierContext) critStage() int {
	stage := 0
	if ctx.Move.HighCritRatio {
		stage++
	}
	if it := ctx.attackerItem(); it != nil {
		stage += it.CritStageBonus
	}
	if a := ctx.attackerAbility(); a != nil && a.SuperLuck {
		stage++
	}
	if ctx.Attacker.Volatiles.FocusEnergy {
		stage += 2
	}
	return stage
}

// critChance returns the crit probability for a stage as numerator and
// denominator: {0: 1/24, 1: 1/8, 2: 1/2, 3+: 1}.
func critChance(stage int) (num, den int) {
	switch {
	case stage <= 0:
		return 1, 24
	case stage == 1:
		return 1, 8
	case stage == 2:
		return 1, 2
	default:
		return 1, 1
	}
}

// resolveCrit decides the critical-hit branch. Anti-crit defender abilities
// beat every source, including guaranteed-crit moves and a forced override.
// A random draw is consumed only on the probabilistic path.
func (ctx *ModifierContext) resolveCrit(src rng.Source, override CritOverride) bool {
	if def := ctx.defenderAbilityMB(); def != nil && def.CritImmune {
		return false
	}
	switch override {
	case CritForced:
		return true
	case CritSuppressed:
		return false
	}
	if ctx.Move.AlwaysCrits {
		return true
	}
	num, den := critChance(ctx.critStage())
	if num >= den {
		return true
	}
	return src.IntN(den) < num
}
