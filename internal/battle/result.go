package battle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mivora/battlecalc/internal/model"
)

// HitReason explains a hit-check outcome.
type HitReason uint8

const (
	HitReasonRolled HitReason = iota // passed the accuracy draw
	HitReasonMissed                  // failed the accuracy draw
	HitReasonSemiInvulnerable        // target untargetable this turn
	HitReasonNoGuard                 // No Guard forced the connection
	HitReasonSureHit                 // move skips the accuracy check
)

var hitReasonNames = [...]string{"rolled", "missed", "semi-invulnerable", "no-guard", "sure-hit"}

func (r HitReason) String() string {
	if int(r) >= len(hitReasonNames) {
		return fmt.Sprintf("HitReason(%d)", uint8(r))
	}
	return hitReasonNames[r]
}

// HitResult reports whether a move connects and why.
type HitResult struct {
	Hits   bool
	Reason HitReason
}

// BlockedBy tags a zero-damage outcome with the mechanic that produced it.
// These are modeled outcomes, not errors.
type BlockedBy uint8

const (
	BlockedByNone BlockedBy = iota
	BlockedByProtection
	BlockedByImmunity
	BlockedByWonderGuard
	BlockedByDisguise
)

var blockedByNames = [...]string{"none", "protection", "immunity", "wonder-guard", "disguise"}

func (b BlockedBy) String() string {
	if int(b) >= len(blockedByNames) {
		return fmt.Sprintf("BlockedBy(%d)", uint8(b))
	}
	return blockedByNames[b]
}

// SideEffect is a consequence of the resolution the orchestrator must apply
// to battle state: item consumption, recoil, a busted Disguise.
type SideEffect uint8

const (
	SideEffectGemConsumed SideEffect = iota
	SideEffectBerryConsumed
	SideEffectChargeConsumed
	SideEffectLifeOrbRecoil // 1/10 max HP self-damage
	SideEffectDisguiseBusted
)

var sideEffectNames = [...]string{
	"gem-consumed", "berry-consumed", "charge-consumed", "life-orb-recoil", "disguise-busted",
}

func (e SideEffect) String() string {
	if int(e) >= len(sideEffectNames) {
		return fmt.Sprintf("SideEffect(%d)", uint8(e))
	}
	return sideEffectNames[e]
}

// CritOverride lets callers pin the critical-hit branch instead of rolling,
// for replays and exhaustive exploration.
type CritOverride uint8

const (
	CritAuto CritOverride = iota
	CritForced
	CritSuppressed
)

var critOverrideNames = [...]string{"auto", "forced", "suppressed"}

func (o CritOverride) String() string {
	if int(o) >= len(critOverrideNames) {
		return fmt.Sprintf("CritOverride(%d)", uint8(o))
	}
	return critOverrideNames[o]
}

// ErrUnknownCritOverride is returned when a crit override name cannot be
// parsed.
var ErrUnknownCritOverride = errors.New("unknown crit override")

// ParseCritOverride converts a case-insensitive override name into a
// CritOverride. The empty string parses as CritAuto.
func ParseCritOverride(name string) (CritOverride, error) {
	if name == "" {
		return CritAuto, nil
	}
	for i, n := range critOverrideNames {
		if strings.EqualFold(n, name) {
			return CritOverride(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCritOverride, name)
}

// DamageResult is the outcome of one damage resolution.
type DamageResult struct {
	// Amount is the final damage. Zero only for blocked outcomes; at least
	// 1 whenever the move connects with nonzero effectiveness.
	Amount int

	IsCritical    bool
	Effectiveness model.EffectivenessClass
	BlockedBy     BlockedBy

	// MoveType is the move's resolved type after conversion effects,
	// the one STAB and effectiveness were computed against.
	MoveType model.Type

	// KO signals for the orchestrator's Sturdy, Focus Sash and Endure
	// handling. Both compare Amount against the defender snapshot.
	WouldKOFromCurrentHP bool
	WouldKOFromFullHP    bool

	// WouldSurviveAt1 is set when an active Endure would leave the
	// defender standing at 1 HP instead of fainting.
	WouldSurviveAt1 bool

	SideEffects []SideEffect
}

// HasSideEffect reports whether the resolution produced the given effect.
func (r *DamageResult) HasSideEffect(e SideEffect) bool {
	for _, got := range r.SideEffects {
		if got == e {
			return true
		}
	}
	return false
}
