package battle

import (
	"math"

	"github.com/mivora/battlecalc/internal/model"
	"github.com/mivora/battlecalc/internal/rng"
)

// accuracyStage combines the attacker's accuracy stage with the defender's
// evasion stage, clamped back into [-6, 6]. Each side's Unaware zeroes the
// opposing component.
func (ctx *ModifierContext) accuracyStage() int {
	acc := ctx.Attacker.Stages.Accuracy
	eva := ctx.Defender.Stages.Evasion

	if def := ctx.defenderAbility(); def != nil && def.Unaware {
		acc = 0
	}
	if atk := ctx.attackerAbility(); atk != nil && atk.Unaware {
		eva = 0
	}

	stage := acc - eva
	if stage > model.MaxStage {
		stage = model.MaxStage
	}
	if stage < model.MinStage {
		stage = model.MinStage
	}
	return stage
}

// accuracyItemAbilityMod multiplies the item and ability accuracy factors:
// Bright Powder x0.9 and weather evasion x0.8 on the defender, Wide Lens
// x1.1, conditional Zoom Lens x1.2 and Compound Eyes x1.3 on the attacker.
func (ctx *ModifierContext) accuracyItemAbilityMod() float64 {
	mod := 1.0

	if it := ctx.defenderItem(); it != nil && it.BrightPowder {
		mod *= 0.9
	}
	if def := ctx.defenderAbility(); def != nil && def.HasEvasionWeather && ctx.Field.Weather == def.EvasionWeather {
		mod *= 0.8
	}
	if it := ctx.attackerItem(); it != nil {
		if it.WideLens {
			mod *= 1.1
		}
		if it.ZoomLens && ctx.Attacker.Volatiles.MovedAfterTarget {
			mod *= 1.2
		}
	}
	if atk := ctx.attackerAbility(); atk != nil && atk.CompoundEyes {
		mod *= 1.3
	}
	return mod
}

// resolveHit runs the hit check: semi-invulnerability short-circuits first,
// No Guard on either side forces the connection, then the accuracy value is
// assembled, clamped to [0, 100] and drawn against. A draw is consumed only
// when the clamped accuracy is strictly between the bounds.
func (ctx *ModifierContext) resolveHit(src rng.Source) HitResult {
	state := ctx.Defender.Volatiles.SemiInvulnerable
	if state != model.SemiInvulnNone && !ctx.Move.HitsState(state) {
		return HitResult{Hits: false, Reason: HitReasonSemiInvulnerable}
	}

	atk, def := ctx.attackerAbility(), ctx.defenderAbility()
	if (atk != nil && atk.NoGuard) || (def != nil && def.NoGuard) {
		return HitResult{Hits: true, Reason: HitReasonNoGuard}
	}

	if ctx.Defender.Volatiles.Minimized && ctx.Move.DoublesVsMinimize {
		return HitResult{Hits: true, Reason: HitReasonSureHit}
	}
	if ctx.Move.SureHitInRain && ctx.Field.Weather.IsRain() {
		return HitResult{Hits: true, Reason: HitReasonSureHit}
	}
	if ctx.Move.SureHitInHail && ctx.Field.Weather == model.WeatherHail {
		return HitResult{Hits: true, Reason: HitReasonSureHit}
	}
	if ctx.Move.Accuracy == 0 {
		return HitResult{Hits: true, Reason: HitReasonSureHit}
	}

	acc := float64(ctx.Move.Accuracy)
	if ctx.Move.SunAccuracy > 0 && ctx.Field.Weather.IsSun() {
		acc = float64(ctx.Move.SunAccuracy)
	}
	acc *= StageMultiplier(ctx.accuracyStage())
	acc *= ctx.accuracyItemAbilityMod()

	if acc <= 0 {
		return HitResult{Hits: false, Reason: HitReasonMissed}
	}
	if acc >= 100 {
		return HitResult{Hits: true, Reason: HitReasonSureHit}
	}

	// Hundredths of a percent keep fractional accuracy exact in the draw.
	threshold := int(math.Round(acc * 100))
	if src.IntN(10000) < threshold {
		return HitResult{Hits: true, Reason: HitReasonRolled}
	}
	return HitResult{Hits: false, Reason: HitReasonMissed}
}
