package battle

import (
	"fmt"

	"github.com/mivora/battlecalc/internal/data"
	"github.com/mivora/battlecalc/internal/model"
)

// ModifierContext threads the full state of one move use through every
// resolver stage. It is built per invocation and never outlives it.
//
// Ability and item views are resolved once at construction: a suppressed
// ability or a consumed item reads as absent everywhere downstream.
type ModifierContext struct {
	Attacker *model.Combatant
	Defender *model.Combatant
	Move     *model.Move
	Field    model.Field

	// MoveType is the current move type after conversion effects. STAB and
	// type effectiveness read it, never Move.Type.
	MoveType model.Type

	// Power is the resolved base power after the power-modifier chain.
	Power int

	IsCritical bool

	// MoldBreakerActive is set when the attacker's usable ability ignores
	// suppressible defender abilities.
	MoldBreakerActive bool

	// Effectiveness is the combined type chart product after immunity
	// overrides, fixed before the pipeline runs.
	Effectiveness float64

	// ProtectionActive names the defender's successful protection this
	// turn when a Z-Move is punching through it.
	ProtectionActive model.ProtectKind

	atkAbility *data.Ability
	defAbility *data.Ability
	atkItem    *data.Item
	defItem    *data.Item

	sideEffects []SideEffect
}

// newModifierContext resolves compendium lookups and suppression views.
// Lookup failures surface as data errors.
func newModifierContext(attacker, defender *model.Combatant, move *model.Move, field model.Field) (*ModifierContext, error) {
	ctx := &ModifierContext{
		Attacker: attacker,
		Defender: defender,
		Move:     move,
		Field:    field,
		MoveType: move.Type,
	}

	var err error
	if ctx.atkAbility, err = usableAbility(attacker); err != nil {
		return nil, err
	}
	if ctx.defAbility, err = usableAbility(defender); err != nil {
		return nil, err
	}
	if ctx.atkItem, err = usableItem(attacker); err != nil {
		return nil, err
	}
	if ctx.defItem, err = usableItem(defender); err != nil {
		return nil, err
	}

	ctx.MoldBreakerActive = ctx.atkAbility != nil && ctx.atkAbility.MoldBreaker
	return ctx, nil
}

// usableAbility resolves a combatant's ability after Gastro Acid-class
// suppression. Unsuppressible abilities shrug the suppression off.
func usableAbility(c *model.Combatant) (*data.Ability, error) {
	if c.Ability == "" {
		return nil, nil
	}
	a, err := data.GetAbility(c.Ability)
	if err != nil {
		return nil, fmt.Errorf("combatant %q: %w", c.Name, err)
	}
	if c.AbilitySuppressed && !a.Unsuppressible {
		return nil, nil
	}
	return a, nil
}

// usableItem resolves a combatant's held item; consumed items read as
// absent.
func usableItem(c *model.Combatant) (*data.Item, error) {
	id := c.HeldItem()
	if id == "" {
		return nil, nil
	}
	it, err := data.GetItem(id)
	if err != nil {
		return nil, fmt.Errorf("combatant %q: %w", c.Name, err)
	}
	return it, nil
}

// attackerAbility returns the attacker's usable ability, nil when absent.
func (ctx *ModifierContext) attackerAbility() *data.Ability {
	return ctx.atkAbility
}

// defenderAbility returns the defender's usable ability regardless of the
// attacker. Stages documented as immune to mold-breaker read this view.
func (ctx *ModifierContext) defenderAbility() *data.Ability {
	return ctx.defAbility
}

// defenderAbilityMB additionally hides suppressible defender abilities
// from mold-breaker attackers.
func (ctx *ModifierContext) defenderAbilityMB() *data.Ability {
	if ctx.defAbility == nil {
		return nil
	}
	if ctx.MoldBreakerActive && !ctx.defAbility.Unsuppressible {
		return nil
	}
	return ctx.defAbility
}

func (ctx *ModifierContext) attackerItem() *data.Item { return ctx.atkItem }
func (ctx *ModifierContext) defenderItem() *data.Item { return ctx.defItem }

func (ctx *ModifierContext) addSideEffect(e SideEffect) {
	ctx.sideEffects = append(ctx.sideEffects, e)
}

// multiTarget reports whether the move strikes more than one target in the
// current format.
func (ctx *ModifierContext) multiTarget() bool {
	return ctx.Field.Doubles && ctx.Move.Spread
}

// defenderSide returns the defender's side of the field.
func (ctx *ModifierContext) defenderSide() model.Side {
	return ctx.Field.Side(ctx.Defender.SideIndex)
}

// attackerGrounded reports whether the attacker touches the terrain.
func (ctx *ModifierContext) attackerGrounded() bool {
	return combatantGrounded(ctx.Attacker, ctx.atkAbility)
}

// defenderGrounded reports whether the defender touches the terrain.
func (ctx *ModifierContext) defenderGrounded() bool {
	return combatantGrounded(ctx.Defender, ctx.defAbility)
}

func combatantGrounded(c *model.Combatant, ability *data.Ability) bool {
	if c.HasType(model.TypeFlying) {
		return false
	}
	if ability != nil && ability.Levitates {
		return false
	}
	if c.Volatiles.Levitating {
		return false
	}
	if c.Volatiles.SemiInvulnerable == model.SemiInvulnAirborne {
		return false
	}
	return true
}
