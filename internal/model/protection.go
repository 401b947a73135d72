package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProtectKind is returned when a protection name cannot be parsed.
var ErrUnknownProtectKind = errors.New("unknown protection kind")

// ProtectKind identifies a member of the protect family. All members share
// one decaying success counter; they differ in what a success blocks.
type ProtectKind uint8

const (
	ProtectNone ProtectKind = iota
	ProtectProtect
	ProtectDetect
	ProtectSpikyShield
	ProtectBanefulBunker
	ProtectKingsShield
	ProtectWideGuard
	ProtectQuickGuard
	ProtectEndure
)

var protectKindNames = [...]string{
	"none", "protect", "detect", "spiky-shield", "baneful-bunker",
	"kings-shield", "wide-guard", "quick-guard", "endure",
}

func (k ProtectKind) String() string {
	if int(k) >= len(protectKindNames) {
		return fmt.Sprintf("ProtectKind(%d)", uint8(k))
	}
	return protectKindNames[k]
}

// ParseProtectKind converts a case-insensitive protection name into a
// ProtectKind. The empty string parses as ProtectNone.
func ParseProtectKind(name string) (ProtectKind, error) {
	if name == "" {
		return ProtectNone, nil
	}
	for i, n := range protectKindNames {
		if strings.EqualFold(n, name) {
			return ProtectKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProtectKind, name)
}

// ProtectionState is the per-combatant protect-family counter plus the
// protection active this turn. The turn orchestrator persists it between
// turns; the resolver returns updated copies and never mutates it in place.
type ProtectionState struct {
	// Count is the number of consecutive successful protect-family uses.
	Count int

	// Active is the protection kind granted this turn, ProtectNone when
	// the last declaration failed or was not a protect-family move.
	Active ProtectKind
}

// Blocks reports whether the active protection blocks the given move.
// Fixed-damage attacks are blocked like any other; delayed strikes carry
// BypassesProtect and must be checked for it first. Endure never blocks;
// it changes the damage outcome instead. Wide Guard stops only spread
// moves and Quick Guard only priority moves.
func (p ProtectionState) Blocks(move *Move) bool {
	if move == nil || move.Category == CategoryStatus {
		return false
	}
	switch p.Active {
	case ProtectProtect, ProtectDetect, ProtectSpikyShield, ProtectBanefulBunker, ProtectKingsShield:
		return true
	case ProtectWideGuard:
		return move.Spread
	case ProtectQuickGuard:
		return move.Priority > 0
	default:
		return false
	}
}

// Enduring reports whether a successful Endure is active this turn.
func (p ProtectionState) Enduring() bool {
	return p.Active == ProtectEndure
}
