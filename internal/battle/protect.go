package battle

import (
	"github.com/mivora/battlecalc/internal/model"
	"github.com/mivora/battlecalc/internal/rng"
)

// protectOdds returns the success denominator 3^min(count, 6) for the
// decaying protect chain: 1, 3, 9, 27, 81, 243, 729, then the 1/729 floor.
func protectOdds(count int) int {
	if count < 0 {
		count = 0
	}
	if count > 6 {
		count = 6
	}
	odds := 1
	for i := 0; i < count; i++ {
		odds *= 3
	}
	return odds
}

// AdvanceProtection advances the shared protect-family counter for one
// declaration. Success is drawn at 1/3^min(count, 6) against the previous
// count; it increments the chain and activates the declared protection for
// the turn. Failure, or declaring anything outside the family, resets the
// chain. The first use never consumes a draw.
func AdvanceProtection(prev model.ProtectionState, declared model.ProtectKind, src rng.Source) model.ProtectionState {
	if declared == model.ProtectNone {
		return model.ProtectionState{}
	}
	odds := protectOdds(prev.Count)
	if odds > 1 && src.IntN(odds) != 0 {
		return model.ProtectionState{}
	}
	return model.ProtectionState{Count: prev.Count + 1, Active: declared}
}

// BypassesProtection reports whether a move is exempt from the protection
// gate entirely. Delayed strikes are resolved outside this engine; the
// orchestrator queries this before routing.
func BypassesProtection(move *model.Move) bool {
	return move.BypassesProtect
}
