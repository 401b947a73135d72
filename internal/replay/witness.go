package replay

import (
	"context"
	"fmt"
	"sort"

	"github.com/mivora/battlecalc/internal/battle"
	"github.com/mivora/battlecalc/internal/model"
)

// CaptureWitnesses seals one record per damage amount, resolving each
// amount's witness seed again, and saves the records whose digest is not
// already stored. Records are named "name/amount" and written in
// ascending amount order. Returns how many records were newly stored.
//
// A seed that no longer reproduces its amount is an error: it means the
// seeds were recorded against different inputs than the ones given here.
func CaptureWitnesses(ctx context.Context, store Store, name string, attacker, defender *model.Combatant, move *model.Move, field model.Field, prot model.ProtectionState, crit battle.CritOverride, rounding battle.RoundingMode, seeds map[int]uint64) (int, error) {
	stored := 0
	for _, amount := range sortedAmounts(seeds) {
		seed := seeds[amount]
		rec, err := Capture(fmt.Sprintf("%s/%d", name, amount), attacker, defender, move, field, prot, crit, seed, rounding)
		if err != nil {
			return stored, fmt.Errorf("capturing witness for %d damage: %w", amount, err)
		}
		if rec.Outcome.Damage == nil || rec.Outcome.Damage.Amount != amount {
			return stored, fmt.Errorf("witness seed %d did not reproduce %d damage", seed, amount)
		}

		existing, err := store.GetByDigest(ctx, rec.Digest)
		if err != nil {
			return stored, fmt.Errorf("checking witness digest: %w", err)
		}
		if existing != nil {
			continue
		}
		if err := store.Save(ctx, rec); err != nil {
			return stored, fmt.Errorf("saving witness for %d damage: %w", amount, err)
		}
		stored++
	}
	return stored, nil
}

func sortedAmounts(seeds map[int]uint64) []int {
	amounts := make([]int, 0, len(seeds))
	for amount := range seeds {
		amounts = append(amounts, amount)
	}
	sort.Ints(amounts)
	return amounts
}
