package battle

import "github.com/mivora/battlecalc/internal/model"

// modifierStage is one pipeline step: a pure function of the context
// returning a multiplier. A stage whose precondition is unmet returns 1 so
// the pipeline stays homogeneous.
type modifierStage struct {
	name string
	fn   func(ctx *ModifierContext) float64
}

// damageStages is the fixed pipeline order. Reordering is a correctness
// bug: truncation points depend on it under per-stage rounding.
var damageStages = []modifierStage{
	{"target-count", targetCountStage},
	{"weather", weatherStage},
	{"critical", criticalStage},
	{"stab", stabStage},
	{"type-effectiveness", typeEffectivenessStage},
	{"burn", burnStage},
	{"minimize", minimizeStage},
	{"semi-invulnerable", semiInvulnerableStage},
	{"screens", screenStage},
	{"fluffy", fluffyStage},
	{"damage-filter", filterStage},
	{"full-hp-guard", fullHPGuardStage},
	{"tinted-lens", tintedLensStage},
	{"friend-guard", friendGuardStage},
	{"z-vs-protect", zProtectStage},
	{"chilan-berry", chilanBerryStage},
	{"resist-berry", resistBerryStage},
	{"expert-belt", expertBeltStage},
	{"life-orb", lifeOrbStage},
	{"metronome", metronomeStage},
}

// resolveEffectiveness fixes the combined type-chart product in the
// context: per-defending-type multipliers, Ring Target lifting type
// immunities, delta-stream shielding Flying, Magnet Rise against Ground,
// then ability immunities (absorb types, Soundproof, Bulletproof) unless
// mold-broken.
func (ctx *ModifierContext) resolveEffectiveness() {
	eff := 1.0
	ringTarget := ctx.defenderItem() != nil && ctx.defenderItem().RingTarget

	for _, dt := range ctx.Defender.Types {
		m := model.Effectiveness(ctx.MoveType, dt)
		if m == 0 && ringTarget {
			m = 1
		}
		if m > 1 && dt == model.TypeFlying && ctx.Field.Weather == model.WeatherStrongWinds {
			m = 1
		}
		eff *= m
	}

	if ctx.MoveType == model.TypeGround && ctx.Defender.Volatiles.Levitating {
		eff = 0
	}
	if def := ctx.defenderAbilityMB(); def != nil {
		if def.HasImmuneType && def.ImmuneType == ctx.MoveType {
			eff = 0
		}
		if def.SoundImmune && ctx.Move.Sound {
			eff = 0
		}
		if def.BulletImmune && ctx.Move.BallOrBomb {
			eff = 0
		}
	}
	ctx.Effectiveness = eff
}

// blockedByWonderGuard reports the Wonder Guard special case: everything
// short of a super-effective hit is blocked outright.
func (ctx *ModifierContext) blockedByWonderGuard() bool {
	def := ctx.defenderAbilityMB()
	return def != nil && def.WonderGuard && ctx.Effectiveness <= 1
}

func targetCountStage(ctx *ModifierContext) float64 {
	if ctx.multiTarget() {
		return 0.75
	}
	return 1
}

// weatherStage applies the weather/type table. Heavy rain and harsh sun
// inherit the ordinary boosts and add their own nullification.
func weatherStage(ctx *ModifierContext) float64 {
	w := ctx.Field.Weather
	switch ctx.MoveType {
	case model.TypeWater:
		if w == model.WeatherHarshSun {
			return 0
		}
		if w.IsRain() {
			return 1.5
		}
		if w.IsSun() {
			return 0.5
		}
	case model.TypeFire:
		if w == model.WeatherHeavyRain {
			return 0
		}
		if w.IsSun() {
			return 1.5
		}
		if w.IsRain() {
			return 0.5
		}
	}
	return 1
}

func criticalStage(ctx *ModifierContext) float64 {
	if !ctx.IsCritical {
		return 1
	}
	if a := ctx.attackerAbility(); a != nil && a.Sniper {
		return 1.5 * 1.5
	}
	return 1.5
}

func stabStage(ctx *ModifierContext) float64 {
	if !ctx.Attacker.HasType(ctx.MoveType) {
		return 1
	}
	if a := ctx.attackerAbility(); a != nil && a.Adaptability {
		return 2
	}
	return 1.5
}

func typeEffectivenessStage(ctx *ModifierContext) float64 {
	return ctx.Effectiveness
}

func burnStage(ctx *ModifierContext) float64 {
	if ctx.Attacker.Status != model.StatusBurn {
		return 1
	}
	if ctx.Move.Category != model.CategoryPhysical || ctx.Move.IgnoresBurnPenalty {
		return 1
	}
	if a := ctx.attackerAbility(); a != nil && a.Guts {
		return 1
	}
	return 0.5
}

func minimizeStage(ctx *ModifierContext) float64 {
	if ctx.Defender.Volatiles.Minimized && ctx.Move.DoublesVsMinimize {
		return 2
	}
	return 1
}

func semiInvulnerableStage(ctx *ModifierContext) float64 {
	state := ctx.Defender.Volatiles.SemiInvulnerable
	if state != model.SemiInvulnNone && ctx.Move.HitsState(state) && ctx.Move.PowerDoublesVsSemiInvulnerable {
		return 2
	}
	return 1
}

// screenStage halves damage behind the matching screen. Crits, screen
// breakers and Infiltrator go through.
func screenStage(ctx *ModifierContext) float64 {
	if ctx.IsCritical || ctx.Move.BreaksScreens {
		return 1
	}
	if a := ctx.attackerAbility(); a != nil && a.Infiltrator {
		return 1
	}
	side := ctx.defenderSide()
	active := side.AuroraVeil > 0
	switch ctx.Move.Category {
	case model.CategoryPhysical:
		active = active || side.Reflect > 0
	case model.CategorySpecial:
		active = active || side.LightScreen > 0
	}
	if active {
		return 0.5
	}
	return 1
}

func fluffyStage(ctx *ModifierContext) float64 {
	def := ctx.defenderAbilityMB()
	if def == nil || !def.Fluffy {
		return 1
	}
	mod := 1.0
	if ctx.Move.Contact {
		mod *= 0.5
	}
	if ctx.MoveType == model.TypeFire {
		mod *= 2
	}
	return mod
}

func filterStage(ctx *ModifierContext) float64 {
	def := ctx.defenderAbilityMB()
	if def != nil && def.SuperResist && ctx.Effectiveness > 1 {
		return 0.75
	}
	return 1
}

// fullHPGuardStage halves damage into a full-HP Multiscale or Shadow
// Shield defender. This stage survives mold-breaker attackers.
func fullHPGuardStage(ctx *ModifierContext) float64 {
	def := ctx.defenderAbility()
	if def != nil && def.HalvesAtFull && ctx.Defender.AtFullHP() {
		return 0.5
	}
	return 1
}

func tintedLensStage(ctx *ModifierContext) float64 {
	a := ctx.attackerAbility()
	if a != nil && a.TintedLens && ctx.Effectiveness > 0 && ctx.Effectiveness < 1 {
		return 2
	}
	return 1
}

func friendGuardStage(ctx *ModifierContext) float64 {
	if ctx.defenderSide().FriendGuard && !ctx.MoldBreakerActive {
		return 0.75
	}
	return 1
}

// zProtectStage reduces a Z-Move punching through a successful protection:
// a quarter gets through, half against Spiky Shield.
func zProtectStage(ctx *ModifierContext) float64 {
	if !ctx.Move.ZMove || ctx.ProtectionActive == model.ProtectNone {
		return 1
	}
	if ctx.ProtectionActive == model.ProtectSpikyShield {
		return 0.5
	}
	return 0.25
}

func chilanBerryStage(ctx *ModifierContext) float64 {
	it := ctx.defenderItem()
	if it != nil && it.ChilanBerry && ctx.MoveType == model.TypeNormal {
		ctx.addSideEffect(SideEffectBerryConsumed)
		return 0.5
	}
	return 1
}

func resistBerryStage(ctx *ModifierContext) float64 {
	it := ctx.defenderItem()
	if it != nil && it.HasResistBerry && it.ResistBerry == ctx.MoveType && ctx.Effectiveness > 1 {
		ctx.addSideEffect(SideEffectBerryConsumed)
		return 0.5
	}
	return 1
}

func expertBeltStage(ctx *ModifierContext) float64 {
	it := ctx.attackerItem()
	if it != nil && it.ExpertBelt && ctx.Effectiveness > 1 {
		return 1.2
	}
	return 1
}

// lifeOrbStage boosts damage and records the recoil unless Magic Guard
// spares the holder.
func lifeOrbStage(ctx *ModifierContext) float64 {
	it := ctx.attackerItem()
	if it == nil || !it.LifeOrb {
		return 1
	}
	if a := ctx.attackerAbility(); a == nil || !a.MagicGuard {
		ctx.addSideEffect(SideEffectLifeOrbRecoil)
	}
	return 1.3
}

// metronomeStage escalates with consecutive uses of the same move:
// 1 + 0.2 per use, capped at 2.
func metronomeStage(ctx *ModifierContext) float64 {
	it := ctx.attackerItem()
	if it == nil || !it.Metronome {
		return 1
	}
	mod := 1 + 0.2*float64(ctx.Attacker.Volatiles.ConsecutiveUses)
	if mod > 2 {
		mod = 2
	}
	return mod
}
