package battle

import (
	"fmt"

	"github.com/mivora/battlecalc/internal/model"
	"github.com/mivora/battlecalc/internal/rng"
)

// ResolveHit decides whether the move connects. Order: semi-invulnerable
// target, No Guard, sure-hit rules, then the accuracy draw. One draw is
// consumed only when an actual accuracy roll happens.
func (r *Resolver) ResolveHit(attacker, defender *model.Combatant, move *model.Move, field model.Field, src rng.Source) (HitResult, error) {
	if err := validatePair(attacker, defender); err != nil {
		return HitResult{}, err
	}
	ctx, err := newModifierContext(attacker, defender, move, field)
	if err != nil {
		return HitResult{}, err
	}
	return ctx.resolveHit(src), nil
}

// ResolveDamage resolves one damaging move use against a target that has
// already been determined to be hit. Draw order within a resolution is
// fixed: critical hit first, damage range last.
//
// Blocked outcomes (protection, immunity, Wonder Guard, Disguise) are
// modeled results with Amount zero, not errors. Side effects accrued
// before a block, such as a spent gem, stay in the result.
func (r *Resolver) ResolveDamage(attacker, defender *model.Combatant, move *model.Move, field model.Field, prot model.ProtectionState, src rng.Source, override CritOverride) (DamageResult, error) {
	if err := validatePair(attacker, defender); err != nil {
		return DamageResult{}, err
	}
	if move.FixedDamage {
		return DamageResult{}, fmt.Errorf("move %q: %w", move.ID, ErrFixedDamage)
	}
	if !move.IsDamaging() {
		return DamageResult{}, fmt.Errorf("move %q: %w", move.ID, ErrNotDamaging)
	}

	ctx, err := newModifierContext(attacker, defender, move, field)
	if err != nil {
		return DamageResult{}, err
	}

	// Protection gate. Feint-class moves strike through at full damage;
	// Z-Moves leak through at the pipeline's reduced rate.
	if !move.IgnoresProtect && prot.Blocks(move) {
		if !move.ZMove {
			return DamageResult{
				Effectiveness: model.EffectivenessNeutral,
				BlockedBy:     BlockedByProtection,
			}, nil
		}
		ctx.ProtectionActive = prot.Active
	}

	if err := ctx.resolveBasePower(); err != nil {
		return DamageResult{}, err
	}
	ctx.resolveEffectiveness()

	if ctx.Effectiveness == 0 {
		return DamageResult{
			Effectiveness: model.EffectivenessImmune,
			BlockedBy:     BlockedByImmunity,
			MoveType:      ctx.MoveType,
			SideEffects:   ctx.sideEffects,
		}, nil
	}
	if ctx.blockedByWonderGuard() {
		return DamageResult{
			Effectiveness: model.ClassifyEffectiveness(ctx.Effectiveness),
			BlockedBy:     BlockedByWonderGuard,
			MoveType:      ctx.MoveType,
			SideEffects:   ctx.sideEffects,
		}, nil
	}
	if def := ctx.defenderAbilityMB(); def != nil && def.Disguise && !defender.Volatiles.DisguiseBusted {
		ctx.addSideEffect(SideEffectDisguiseBusted)
		return DamageResult{
			Effectiveness: model.ClassifyEffectiveness(ctx.Effectiveness),
			BlockedBy:     BlockedByDisguise,
			MoveType:      ctx.MoveType,
			SideEffects:   ctx.sideEffects,
		}, nil
	}

	ctx.IsCritical = ctx.resolveCrit(src, override)

	raw := RawDamage(attacker.Level, ctx.Power, ctx.effectiveAttack(), ctx.effectiveDefense())
	amount := r.applyModifiers(ctx, raw, randomRoll(src))
	if amount < 1 {
		amount = 1
	}

	result := DamageResult{
		Amount:               amount,
		IsCritical:           ctx.IsCritical,
		Effectiveness:        model.ClassifyEffectiveness(ctx.Effectiveness),
		BlockedBy:            BlockedByNone,
		MoveType:             ctx.MoveType,
		WouldKOFromCurrentHP: amount >= defender.CurrentHP,
		WouldKOFromFullHP:    amount >= defender.MaxHP,
		SideEffects:          ctx.sideEffects,
	}
	result.WouldSurviveAt1 = prot.Enduring() && result.WouldKOFromCurrentHP
	return result, nil
}

// validatePair fails fast on caller contract violations in either
// snapshot.
func validatePair(attacker, defender *model.Combatant) error {
	if err := attacker.Validate(); err != nil {
		return fmt.Errorf("attacker: %w", err)
	}
	if err := defender.Validate(); err != nil {
		return fmt.Errorf("defender: %w", err)
	}
	return nil
}
