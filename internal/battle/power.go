package battle

import (
	"fmt"

	"github.com/mivora/battlecalc/internal/data"
	"github.com/mivora/battlecalc/internal/model"
)

// resolveBasePower runs the power-modifier chain in its fixed order:
// dynamic power function, field and terrain, ally boosts, ability boosts,
// item boosts, one-shot Charge. It fixes ctx.Power and the post-conversion
// ctx.MoveType that STAB and effectiveness read.
func (ctx *ModifierContext) resolveBasePower() error {
	base := ctx.Move.Power
	if ctx.Move.DynamicPower {
		fn, err := data.PowerFuncFor(ctx.Move.ID)
		if err != nil {
			return err
		}
		base, err = fn(data.PowerInput{Attacker: ctx.Attacker, Defender: ctx.Defender, Field: ctx.Field})
		if err != nil {
			return fmt.Errorf("move %q: %w", ctx.Move.ID, err)
		}
	}

	// Technician reads the pre-modifier base, after dynamic resolution.
	techBase := base

	power := float64(base)
	power *= ctx.terrainPowerMod()
	power *= ctx.auraPowerMod()
	power *= ctx.allyPowerMod()
	power *= ctx.abilityPowerMod(techBase)
	power *= ctx.itemPowerMod()
	power *= ctx.chargePowerMod()

	ctx.Power = floorDamage(power)
	if ctx.Power < 1 {
		ctx.Power = 1
	}
	return nil
}

// terrainPowerMod applies terrain boosts and dampers. Boosts require a
// grounded attacker; Misty damping a grounded target.
func (ctx *ModifierContext) terrainPowerMod() float64 {
	switch ctx.Field.Terrain {
	case model.TerrainElectric:
		if ctx.MoveType == model.TypeElectric && ctx.attackerGrounded() {
			return 1.5
		}
	case model.TerrainGrassy:
		if ctx.MoveType == model.TypeGrass && ctx.attackerGrounded() {
			return 1.5
		}
		if groundShakingMove(ctx.Move.ID) {
			return 0.5
		}
	case model.TerrainPsychic:
		if ctx.MoveType == model.TypePsychic && ctx.attackerGrounded() {
			return 1.5
		}
	case model.TerrainMisty:
		if ctx.MoveType == model.TypeDragon && ctx.defenderGrounded() {
			return 0.5
		}
	}
	return 1
}

// groundShakingMove marks the moves Grassy Terrain dampens.
func groundShakingMove(id model.MoveID) bool {
	return id == "earthquake" || id == "bulldoze" || id == "magnitude"
}

// auraPowerMod applies field auras: x1.33 on the aura's type, flipped to
// x0.75 while Aura Break is up.
func (ctx *ModifierContext) auraPowerMod() float64 {
	active := (ctx.Field.DarkAura && ctx.MoveType == model.TypeDark) ||
		(ctx.Field.FairyAura && ctx.MoveType == model.TypeFairy)
	if !active {
		return 1
	}
	if ctx.Field.AuraBreak {
		return 0.75
	}
	return 1.33
}

// allyPowerMod applies ally-granted boosts: Helping Hand and Me First.
func (ctx *ModifierContext) allyPowerMod() float64 {
	mod := 1.0
	if ctx.Attacker.Volatiles.HelpingHand {
		mod *= 1.5
	}
	if ctx.Attacker.Volatiles.MeFirst {
		mod *= 1.5
	}
	return mod
}

// abilityPowerMod applies the attacker's ability boosts, including the
// "-ate" type conversion recorded into ctx.MoveType.
func (ctx *ModifierContext) abilityPowerMod(techBase int) float64 {
	a := ctx.attackerAbility()
	if a == nil {
		return 1
	}
	mod := 1.0

	if a.HasAteType {
		switch {
		case a.AteType == model.TypeNormal && ctx.MoveType != model.TypeNormal:
			// Normalize converts everything else to Normal.
			ctx.MoveType = model.TypeNormal
			mod *= 1.2
		case a.AteType != model.TypeNormal && ctx.MoveType == model.TypeNormal:
			ctx.MoveType = a.AteType
			mod *= 1.2
		}
	}
	if a.Technician && techBase <= 60 {
		mod *= 1.5
	}
	if a.HasPinchType && ctx.MoveType == a.PinchType && ctx.Attacker.CurrentHP*3 <= ctx.Attacker.MaxHP {
		mod *= 1.5
	}
	if a.IronFist && ctx.Move.Punch {
		mod *= 1.2
	}
	if a.StrongJaw && ctx.Move.Bite {
		mod *= 1.5
	}
	return mod
}

// itemPowerMod applies the attacker's held-item boosts. A matching gem is
// spent and reported as a side effect.
func (ctx *ModifierContext) itemPowerMod() float64 {
	it := ctx.attackerItem()
	if it == nil {
		return 1
	}
	mod := 1.0

	if it.PhysicalPowerBoost && ctx.Move.Category == model.CategoryPhysical {
		mod *= 1.1
	}
	if it.SpecialPowerBoost && ctx.Move.Category == model.CategorySpecial {
		mod *= 1.1
	}
	if it.HasBoostType && ctx.MoveType == it.BoostType {
		mod *= 1.2
	}
	if it.HasGemType && ctx.MoveType == it.GemType {
		mod *= 1.3
		ctx.addSideEffect(SideEffectGemConsumed)
	}
	return mod
}

// chargePowerMod doubles the next Electric move and spends the charge.
func (ctx *ModifierContext) chargePowerMod() float64 {
	if ctx.Attacker.Volatiles.Charged && ctx.MoveType == model.TypeElectric {
		ctx.addSideEffect(SideEffectChargeConsumed)
		return 2
	}
	return 1
}
