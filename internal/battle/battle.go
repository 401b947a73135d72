// Package battle resolves single move uses into damage numbers.
//
// Every resolution is a pure function of immutable snapshots: two
// combatants, the move, the field and an injected random source. The
// package never mutates shared battle state; cross-turn bookkeeping
// (applying HP loss, consuming items, persisting protection counters)
// belongs to the turn orchestrator, which acts on the returned results
// and side-effect lists.
package battle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotDamaging reports a status move routed into the damage formula.
	ErrNotDamaging = errors.New("move does not deal damage")

	// ErrFixedDamage reports a fixed-damage move routed into the damage
	// formula. Fixed amounts are resolved by the orchestrator.
	ErrFixedDamage = errors.New("fixed-damage move cannot use the damage formula")

	// ErrUnknownRounding is returned when a rounding mode name cannot be
	// parsed.
	ErrUnknownRounding = errors.New("unknown rounding mode")
)

// RoundingMode picks where truncation happens while the modifier product
// is applied. Reference engines disagree near floor boundaries, so the
// choice is explicit configuration rather than an implementation accident.
type RoundingMode uint8

const (
	// RoundSingleFloor floors once, after the full modifier product.
	RoundSingleFloor RoundingMode = iota

	// RoundPerStageFloor floors after every pipeline stage.
	RoundPerStageFloor
)

var roundingNames = [...]string{"single-floor", "per-stage-floor"}

func (m RoundingMode) String() string {
	if int(m) >= len(roundingNames) {
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
	return roundingNames[m]
}

// ParseRoundingMode converts a case-insensitive mode name into a
// RoundingMode. The empty string parses as RoundSingleFloor.
func ParseRoundingMode(name string) (RoundingMode, error) {
	if name == "" {
		return RoundSingleFloor, nil
	}
	for i, n := range roundingNames {
		if strings.EqualFold(n, name) {
			return RoundingMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRounding, name)
}

// Resolver evaluates hit checks and damage for single move uses. It is
// stateless apart from configuration and safe for concurrent use as long
// as each invocation gets its own random source.
type Resolver struct {
	rounding RoundingMode
}

// NewResolver returns a Resolver using the given rounding semantics.
func NewResolver(rounding RoundingMode) *Resolver {
	return &Resolver{rounding: rounding}
}

// Rounding returns the configured rounding mode.
func (r *Resolver) Rounding() RoundingMode {
	return r.rounding
}
