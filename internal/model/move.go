package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a move category name cannot be parsed.
var ErrUnknownCategory = errors.New("unknown move category")

// Identifier types for the static compendium. Identifiers are lowercase
// kebab-case names ("thunderbolt", "life-orb").
type (
	MoveID    string
	AbilityID string
	ItemID    string
	SpeciesID string
)

// MoveCategory splits moves into the two damaging classes plus status.
type MoveCategory uint8

const (
	CategoryPhysical MoveCategory = iota
	CategorySpecial
	CategoryStatus
)

var categoryNames = [...]string{"physical", "special", "status"}

func (c MoveCategory) String() string {
	if int(c) >= len(categoryNames) {
		return fmt.Sprintf("MoveCategory(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory converts a case-insensitive category name into a MoveCategory.
func ParseCategory(name string) (MoveCategory, error) {
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return MoveCategory(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Move is an immutable move template from the static compendium.
type Move struct {
	ID       MoveID
	Name     string
	Type     Type
	Category MoveCategory

	// Power is the static base power. Zero for status moves, fixed-damage
	// moves and moves whose power is computed by a dynamic power function.
	Power int

	// Accuracy is the base accuracy in percent. Zero means the move skips
	// the accuracy check entirely.
	Accuracy int

	Priority int

	AlwaysCrits   bool
	HighCritRatio bool // one extra crit stage

	// Spread moves hit every opposing combatant in multi-combatant battles.
	Spread bool

	Contact    bool
	Sound      bool
	BallOrBomb bool
	Powder     bool
	Punch      bool
	Bite       bool
	ZMove      bool

	// IgnoresProtect marks Feint-class moves that strike a protected
	// target at full damage.
	IgnoresProtect bool

	// BypassesProtect marks delayed-strike moves (Future Sight class) that
	// are exempt from the protection gate entirely. They carry FixedDamage
	// and are resolved by the turn orchestrator, not the damage formula.
	BypassesProtect bool

	BreaksScreens bool

	// IgnoresBurnPenalty exempts the move from the burned-attacker halving
	// of physical damage (Facade).
	IgnoresBurnPenalty bool

	// FixedDamage moves deal a predetermined amount and must never be
	// routed through the damage formula.
	FixedDamage bool

	// DynamicPower moves compute their power from battle state through a
	// per-move power function registered in the compendium.
	DynamicPower bool

	// DoublesVsMinimize doubles damage against a minimized target and
	// always hits it.
	DoublesVsMinimize bool

	// SureHitInRain skips the accuracy check in rain of either strength
	// (Thunder, Hurricane). SureHitInHail is the hail analog (Blizzard).
	SureHitInRain bool
	SureHitInHail bool

	// SunAccuracy replaces the base accuracy while sun is up. Zero means
	// the move has no sun penalty.
	SunAccuracy int

	// HitsSemiInvulnerable lists the semi-invulnerable states this move
	// can still strike (Earthquake reaches underground targets).
	HitsSemiInvulnerable []SemiInvulnState

	// PowerDoublesVsSemiInvulnerable doubles damage when the move strikes
	// a target in one of the listed states. Sky Uppercut-class moves reach
	// airborne targets without the doubling.
	PowerDoublesVsSemiInvulnerable bool

	// ProtectKind marks protect-family moves and which protection they
	// grant on success.
	ProtectKind ProtectKind
}

// IsDamaging reports whether the move resolves through the damage formula.
func (m *Move) IsDamaging() bool {
	return m.Category != CategoryStatus && !m.FixedDamage
}

// IsProtectFamily reports membership in the shared-decay protect family.
func (m *Move) IsProtectFamily() bool {
	return m.ProtectKind != ProtectNone
}

// HitsState reports whether the move can strike a target in the given
// semi-invulnerable state.
func (m *Move) HitsState(state SemiInvulnState) bool {
	for _, s := range m.HitsSemiInvulnerable {
		if s == state {
			return true
		}
	}
	return false
}
