// Package replay captures single resolutions as verifiable records: the
// full input snapshot, the seed, the outcome and a digest over all of it.
// A record can later be re-resolved bit-for-bit or checked for tampering
// without re-resolving.
package replay

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/mivora/battlecalc/internal/battle"
	"github.com/mivora/battlecalc/internal/data"
	"github.com/mivora/battlecalc/internal/model"
	"github.com/mivora/battlecalc/internal/rng"
)

var (
	// ErrDigestMismatch reports a record whose content no longer matches
	// its digest.
	ErrDigestMismatch = errors.New("replay digest mismatch")

	// ErrOutcomeDiverged reports a replayed resolution that produced a
	// different outcome than the record stores.
	ErrOutcomeDiverged = errors.New("replayed outcome diverged from record")
)

// Input is the value-copied battle state a record was resolved from.
// Copies, not pointers: a record must stay valid after the live battle
// state moves on.
type Input struct {
	Attacker   model.Combatant       `json:"attacker"`
	Defender   model.Combatant       `json:"defender"`
	MoveID     model.MoveID          `json:"move_id"`
	Field      model.Field           `json:"field"`
	Protection model.ProtectionState `json:"protection"`
	Crit       string                `json:"crit"`
}

// Outcome is what the resolution produced. Damage is nil when the hit
// check failed.
type Outcome struct {
	Hit    battle.HitResult     `json:"hit"`
	Damage *battle.DamageResult `json:"damage,omitempty"`
}

// Record is one captured resolution.
type Record struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`

	Seed     uint64 `json:"seed"`
	Rounding string `json:"rounding"`

	Input   Input   `json:"input"`
	Outcome Outcome `json:"outcome"`

	// Digest is the hex BLAKE2b-256 over the deterministic content: seed,
	// rounding, input and outcome. ID and CreatedAt stay outside it.
	Digest string `json:"digest"`
}

// digestPayload fixes the field order the digest is computed over.
type digestPayload struct {
	Seed     uint64  `json:"seed"`
	Rounding string  `json:"rounding"`
	Input    Input   `json:"input"`
	Outcome  Outcome `json:"outcome"`
}

// Capture resolves the given battle once with a fresh source seeded from
// seed and returns the sealed record of it.
func Capture(name string, attacker, defender *model.Combatant, move *model.Move, field model.Field, prot model.ProtectionState, crit battle.CritOverride, seed uint64, rounding battle.RoundingMode) (*Record, error) {
	outcome, err := resolve(attacker, defender, move, field, prot, crit, seed, rounding)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Name:      name,
		Seed:      seed,
		Rounding:  rounding.String(),
		Input: Input{
			Attacker:   *attacker,
			Defender:   *defender,
			MoveID:     move.ID,
			Field:      field,
			Protection: prot,
			Crit:       crit.String(),
		},
		Outcome: *outcome,
	}
	if rec.Digest, err = rec.ComputeDigest(); err != nil {
		return nil, err
	}
	return rec, nil
}

// ComputeDigest returns the hex BLAKE2b-256 digest of the record's
// deterministic content.
func (r *Record) ComputeDigest() (string, error) {
	payload, err := json.Marshal(digestPayload{
		Seed:     r.Seed,
		Rounding: r.Rounding,
		Input:    r.Input,
		Outcome:  r.Outcome,
	})
	if err != nil {
		return "", fmt.Errorf("encoding digest payload: %w", err)
	}
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares it with the stored one.
func (r *Record) Verify() error {
	want, err := r.ComputeDigest()
	if err != nil {
		return err
	}
	if r.Digest != want {
		return fmt.Errorf("%w: record %s", ErrDigestMismatch, r.ID)
	}
	return nil
}

// Replay re-resolves the record's input with its seed and checks the
// outcome against the stored one.
func (r *Record) Replay() error {
	rounding, err := battle.ParseRoundingMode(r.Rounding)
	if err != nil {
		return err
	}
	crit, err := battle.ParseCritOverride(r.Input.Crit)
	if err != nil {
		return err
	}
	move, err := data.GetMove(r.Input.MoveID)
	if err != nil {
		return err
	}

	attacker, defender := r.Input.Attacker, r.Input.Defender
	outcome, err := resolve(&attacker, &defender, move, r.Input.Field, r.Input.Protection, crit, r.Seed, rounding)
	if err != nil {
		return err
	}

	stored, err := json.Marshal(r.Outcome)
	if err != nil {
		return err
	}
	replayed, err := json.Marshal(outcome)
	if err != nil {
		return err
	}
	if !bytes.Equal(stored, replayed) {
		return fmt.Errorf("%w: record %s", ErrOutcomeDiverged, r.ID)
	}
	return nil
}

// resolve runs the canonical hit-then-damage sequence on one seeded
// source, the same order the simulator uses.
func resolve(attacker, defender *model.Combatant, move *model.Move, field model.Field, prot model.ProtectionState, crit battle.CritOverride, seed uint64, rounding battle.RoundingMode) (*Outcome, error) {
	resolver := battle.NewResolver(rounding)
	src := rng.New(seed)

	hit, err := resolver.ResolveHit(attacker, defender, move, field, src)
	if err != nil {
		return nil, err
	}
	out := &Outcome{Hit: hit}
	if !hit.Hits {
		return out, nil
	}

	res, err := resolver.ResolveDamage(attacker, defender, move, field, prot, src, crit)
	if err != nil {
		return nil, err
	}
	out.Damage = &res
	return out, nil
}
