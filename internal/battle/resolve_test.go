package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mivora/battlecalc/internal/data"
	"github.com/mivora/battlecalc/internal/model"
	"github.com/mivora/battlecalc/internal/rng"
)

// resolveAttacker is the worked-example attacker: level 100, both attack
// stats at 300, Water typing for STAB moves.
func resolveAttacker() *model.Combatant {
	return &model.Combatant{
		Name:      "attacker",
		Level:     100,
		Types:     []model.Type{model.TypeWater},
		Stats:     model.Stats{HP: 300, Attack: 300, Defense: 100, SpAttack: 300, SpDefense: 100, Speed: 100},
		CurrentHP: 300,
		MaxHP:     300,
	}
}

// resolveDefender is the worked-example defender: both defense stats at
// 200, neutral Normal typing, enough HP to survive the reference hits.
func resolveDefender() *model.Combatant {
	return &model.Combatant{
		Name:      "defender",
		Level:     100,
		Types:     []model.Type{model.TypeNormal},
		Stats:     model.Stats{HP: 400, Attack: 100, Defense: 200, SpAttack: 100, SpDefense: 200, Speed: 100},
		CurrentHP: 400,
		MaxHP:     400,
	}
}

func mustMove(t *testing.T, id model.MoveID) *model.Move {
	t.Helper()
	m, err := data.GetMove(id)
	require.NoError(t, err)
	return m
}

func TestResolveDamageReferenceVector(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	defender := resolveDefender()

	// Draw order: crit (23 of 24 fails), then the maximum damage roll.
	src := rng.NewSequence(23, 15)
	res, err := r.ResolveDamage(attacker, defender, mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, src, CritAuto)
	require.NoError(t, err)

	// raw = floor(42*80*300/200/50 + 2) = 102; final = floor(102 * 1.5 STAB).
	assert.Equal(t, 153, res.Amount)
	assert.False(t, res.IsCritical)
	assert.Equal(t, model.EffectivenessNeutral, res.Effectiveness)
	assert.Equal(t, BlockedByNone, res.BlockedBy)
	assert.Equal(t, model.TypeWater, res.MoveType)
	assert.False(t, res.WouldKOFromCurrentHP)
	assert.Empty(t, res.SideEffects)
	assert.Equal(t, 0, src.Remaining(), "exactly two draws per plain resolution")
}

func TestResolveDamageCritBranch(t *testing.T) {
	r := NewResolver(RoundSingleFloor)

	res, err := r.ResolveDamage(resolveAttacker(), resolveDefender(), mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.NewSequence(0, 15), CritAuto)
	require.NoError(t, err)
	assert.True(t, res.IsCritical)
	assert.Equal(t, 229, res.Amount) // floor(102 * 1.5 crit * 1.5 STAB)

	// A suppressed crit consumes no crit draw: the single draw is the roll.
	res, err = r.ResolveDamage(resolveAttacker(), resolveDefender(), mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.NewSequence(0), CritSuppressed)
	require.NoError(t, err)
	assert.False(t, res.IsCritical)
	assert.Equal(t, 130, res.Amount) // floor(153 * 0.85)
}

func TestResolveDamageImmunityBeatsEverything(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	attacker.Types = []model.Type{model.TypeNormal} // STAB on tackle
	attacker.Item = "life-orb"

	ghost := resolveDefender()
	ghost.Types = []model.Type{model.TypeGhost}

	res, err := r.ResolveDamage(attacker, ghost, mustMove(t, "tackle"), model.Field{}, model.ProtectionState{}, rng.Low(), CritForced)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Amount, "immunity yields exactly zero")
	assert.Equal(t, model.EffectivenessImmune, res.Effectiveness)
	assert.Equal(t, BlockedByImmunity, res.BlockedBy)
	assert.False(t, res.HasSideEffect(SideEffectLifeOrbRecoil), "no recoil on a blocked hit")
}

func TestResolveDamageGemSpentBeforeImmunity(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	attacker.Item = "normal-gem"

	ghost := resolveDefender()
	ghost.Types = []model.Type{model.TypeGhost}

	res, err := r.ResolveDamage(attacker, ghost, mustMove(t, "tackle"), model.Field{}, model.ProtectionState{}, rng.Low(), CritAuto)
	require.NoError(t, err)

	assert.Equal(t, BlockedByImmunity, res.BlockedBy)
	assert.True(t, res.HasSideEffect(SideEffectGemConsumed), "the gem fires during power resolution")
}

func TestResolveDamageWonderGuard(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	defender := resolveDefender()
	defender.Types = []model.Type{model.TypeWater}
	defender.Ability = "wonder-guard"

	res, err := r.ResolveDamage(resolveAttacker(), defender, mustMove(t, "tackle"), model.Field{}, model.ProtectionState{}, rng.High(), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByWonderGuard, res.BlockedBy)
	assert.Equal(t, 0, res.Amount)

	// A super-effective hit goes through.
	res, err = r.ResolveDamage(resolveAttacker(), defender, mustMove(t, "thunderbolt"), model.Field{}, model.ProtectionState{}, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByNone, res.BlockedBy)
	assert.Greater(t, res.Amount, 0)
	assert.Equal(t, model.EffectivenessSuper, res.Effectiveness)
}

func TestResolveDamageDisguise(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	mimic := resolveDefender()
	mimic.Types = []model.Type{model.TypeGhost, model.TypeFairy}
	mimic.Ability = "disguise"

	res, err := r.ResolveDamage(resolveAttacker(), mimic, mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.High(), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByDisguise, res.BlockedBy)
	assert.Equal(t, 0, res.Amount)
	assert.True(t, res.HasSideEffect(SideEffectDisguiseBusted))

	// Once busted, damage flows normally.
	mimic.Volatiles.DisguiseBusted = true
	res, err = r.ResolveDamage(resolveAttacker(), mimic, mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByNone, res.BlockedBy)
	assert.Greater(t, res.Amount, 0)
}

func TestResolveDamageImmunityBeatsDisguise(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	mimic := resolveDefender()
	mimic.Types = []model.Type{model.TypeGhost, model.TypeFairy}
	mimic.Ability = "disguise"

	res, err := r.ResolveDamage(attacker, mimic, mustMove(t, "tackle"), model.Field{}, model.ProtectionState{}, rng.Low(), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByImmunity, res.BlockedBy)
	assert.False(t, res.HasSideEffect(SideEffectDisguiseBusted), "an immune hit never busts the disguise")
}

func TestResolveDamageMoldBreakerGrounding(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	gengar := resolveDefender()
	gengar.Types = []model.Type{model.TypeGhost, model.TypePoison}
	gengar.Ability = "levitate"

	res, err := r.ResolveDamage(attacker, gengar, mustMove(t, "earthquake"), model.Field{}, model.ProtectionState{}, rng.High(), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByImmunity, res.BlockedBy)

	attacker.Ability = "mold-breaker"
	res, err = r.ResolveDamage(attacker, gengar, mustMove(t, "earthquake"), model.Field{}, model.ProtectionState{}, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByNone, res.BlockedBy)
	assert.Equal(t, model.EffectivenessSuper, res.Effectiveness)
	assert.Greater(t, res.Amount, 0)
}

func TestResolveDamageProtection(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	prot := model.ProtectionState{Count: 1, Active: model.ProtectProtect}

	res, err := r.ResolveDamage(resolveAttacker(), resolveDefender(), mustMove(t, "waterfall"), model.Field{}, prot, rng.Low(), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByProtection, res.BlockedBy)
	assert.Equal(t, 0, res.Amount)

	// Feint strikes a protected target at full damage.
	res, err = r.ResolveDamage(resolveAttacker(), resolveDefender(), mustMove(t, "feint"), model.Field{}, prot, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByNone, res.BlockedBy)
	assert.Greater(t, res.Amount, 0)
}

func TestResolveDamageZMoveThroughProtection(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	defender := resolveDefender()

	// raw = floor(42*185*300/(200*50)) + 2 = 235 for the unprotected hit.
	unprotected, err := r.ResolveDamage(attacker, defender, mustMove(t, "gigavolt-havoc"), model.Field{}, model.ProtectionState{}, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	require.Equal(t, 235, unprotected.Amount)

	prot := model.ProtectionState{Count: 1, Active: model.ProtectProtect}
	res, err := r.ResolveDamage(attacker, defender, mustMove(t, "gigavolt-havoc"), model.Field{}, prot, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, BlockedByNone, res.BlockedBy)
	assert.Equal(t, 58, res.Amount) // floor(235 * 0.25)

	prot.Active = model.ProtectSpikyShield
	res, err = r.ResolveDamage(attacker, defender, mustMove(t, "gigavolt-havoc"), model.Field{}, prot, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, 117, res.Amount) // floor(235 * 0.5)
}

func TestResolveDamageEndure(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	defender := resolveDefender()
	defender.CurrentHP = 100
	prot := model.ProtectionState{Count: 1, Active: model.ProtectEndure}

	res, err := r.ResolveDamage(resolveAttacker(), defender, mustMove(t, "waterfall"), model.Field{}, prot, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, 153, res.Amount, "endure never blocks the hit")
	assert.True(t, res.WouldKOFromCurrentHP)
	assert.False(t, res.WouldKOFromFullHP)
	assert.True(t, res.WouldSurviveAt1)

	defender.CurrentHP = 400
	res, err = r.ResolveDamage(resolveAttacker(), defender, mustMove(t, "waterfall"), model.Field{}, prot, rng.NewSequence(23, 15), CritAuto)
	require.NoError(t, err)
	assert.False(t, res.WouldSurviveAt1, "a survivable hit needs no endure")
}

func TestResolveDamageMinimumOne(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	attacker.Level = 5
	attacker.Stats.Attack = 20

	rock := resolveDefender()
	rock.Types = []model.Type{model.TypeRock}
	rock.Stats.Defense = 500

	res, err := r.ResolveDamage(attacker, rock, mustMove(t, "tackle"), model.Field{}, model.ProtectionState{}, rng.Low(), CritSuppressed)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Amount, "a connecting hit deals at least 1")
	assert.Equal(t, model.EffectivenessResisted, res.Effectiveness)
}

func TestResolveDamageIdempotence(t *testing.T) {
	r := NewResolver(RoundSingleFloor)

	first, err := r.ResolveDamage(resolveAttacker(), resolveDefender(), mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.New(42), CritAuto)
	require.NoError(t, err)
	second, err := r.ResolveDamage(resolveAttacker(), resolveDefender(), mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.New(42), CritAuto)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveDamageRejectsWrongMoves(t *testing.T) {
	r := NewResolver(RoundSingleFloor)

	_, err := r.ResolveDamage(resolveAttacker(), resolveDefender(), mustMove(t, "seismic-toss"), model.Field{}, model.ProtectionState{}, rng.Low(), CritAuto)
	assert.ErrorIs(t, err, ErrFixedDamage)

	_, err = r.ResolveDamage(resolveAttacker(), resolveDefender(), mustMove(t, "growl"), model.Field{}, model.ProtectionState{}, rng.Low(), CritAuto)
	assert.ErrorIs(t, err, ErrNotDamaging)
}

func TestResolveDamageFailsFastOnBadState(t *testing.T) {
	r := NewResolver(RoundSingleFloor)

	attacker := resolveAttacker()
	attacker.Stages.Attack = 7
	_, err := r.ResolveDamage(attacker, resolveDefender(), mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.Low(), CritAuto)
	assert.ErrorIs(t, err, model.ErrStageOutOfRange)

	defender := resolveDefender()
	defender.CurrentHP = -1
	_, err = r.ResolveDamage(resolveAttacker(), defender, mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.Low(), CritAuto)
	assert.ErrorIs(t, err, model.ErrNegativeHP)

	hacked := resolveAttacker()
	hacked.Ability = "missingno"
	_, err = r.ResolveDamage(hacked, resolveDefender(), mustMove(t, "waterfall"), model.Field{}, model.ProtectionState{}, rng.Low(), CritAuto)
	assert.ErrorIs(t, err, data.ErrUnknownAbility)
}

func TestResolveHitChecks(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	defender := resolveDefender()

	defender.Volatiles.SemiInvulnerable = model.SemiInvulnUnderground
	res, err := r.ResolveHit(attacker, defender, mustMove(t, "tackle"), model.Field{}, rng.Low())
	require.NoError(t, err)
	assert.False(t, res.Hits)
	assert.Equal(t, HitReasonSemiInvulnerable, res.Reason)

	// Earthquake reaches underground targets; accuracy 100 needs no draw.
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "earthquake"), model.Field{}, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonSureHit, res.Reason)

	defender.Volatiles.SemiInvulnerable = model.SemiInvulnNone
	attacker.Ability = "no-guard"
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "stone-edge"), model.Field{}, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonNoGuard, res.Reason)
}

func TestResolveHitAccuracyDraw(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	defender := resolveDefender()
	defender.Item = "bright-powder"

	// 100 * 0.9 = 90%: threshold 9000 of 10000.
	res, err := r.ResolveHit(attacker, defender, mustMove(t, "tackle"), model.Field{}, rng.NewSequence(8999))
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonRolled, res.Reason)

	res, err = r.ResolveHit(attacker, defender, mustMove(t, "tackle"), model.Field{}, rng.NewSequence(9000))
	require.NoError(t, err)
	assert.False(t, res.Hits)
	assert.Equal(t, HitReasonMissed, res.Reason)
}

func TestResolveHitModifiers(t *testing.T) {
	r := NewResolver(RoundSingleFloor)

	// Compound Eyes: 70 * 1.3 = 91%.
	attacker := resolveAttacker()
	attacker.Ability = "compound-eyes"
	defender := resolveDefender()
	res, err := r.ResolveHit(attacker, defender, mustMove(t, "thunder"), model.Field{}, rng.NewSequence(9099))
	require.NoError(t, err)
	assert.True(t, res.Hits)
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "thunder"), model.Field{}, rng.NewSequence(9100))
	require.NoError(t, err)
	assert.False(t, res.Hits)

	// Sand Veil in its weather: 100 * 0.8 = 80%.
	attacker = resolveAttacker()
	defender = resolveDefender()
	defender.Ability = "sand-veil"
	sand := model.Field{Weather: model.WeatherSand}
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "tackle"), sand, rng.NewSequence(7999))
	require.NoError(t, err)
	assert.True(t, res.Hits)
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "tackle"), sand, rng.NewSequence(8000))
	require.NoError(t, err)
	assert.False(t, res.Hits)

	// Outside its weather the ability is inert: accuracy stays pinned at 100.
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "tackle"), model.Field{}, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonSureHit, res.Reason)

	// Zoom Lens only after the target moved: 90 * 1.2 = 108, pinned to hit.
	attacker = resolveAttacker()
	attacker.Item = "zoom-lens"
	attacker.Volatiles.MovedAfterTarget = true
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "play-rough"), model.Field{}, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonSureHit, res.Reason)
}

func TestResolveHitWeatherAccuracy(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	defender := resolveDefender()

	// Thunder skips its check in rain, even against stacked evasion.
	defender.Stages.Evasion = 6
	rain := model.Field{Weather: model.WeatherRain}
	res, err := r.ResolveHit(attacker, defender, mustMove(t, "thunder"), rain, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonSureHit, res.Reason)

	defender.Stages.Evasion = 0

	// Blizzard gets the same treatment in hail.
	hail := model.Field{Weather: model.WeatherHail}
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "blizzard"), hail, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonSureHit, res.Reason)

	// In sun Thunder drops to a flat 50%.
	sun := model.Field{Weather: model.WeatherSun}
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "thunder"), sun, rng.NewSequence(4999))
	require.NoError(t, err)
	assert.True(t, res.Hits)
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "thunder"), sun, rng.NewSequence(5000))
	require.NoError(t, err)
	assert.False(t, res.Hits)

	// Clear skies leave the plain 70% check in place.
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "thunder"), model.Field{}, rng.NewSequence(6999))
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonRolled, res.Reason)
}

func TestResolveHitStageClamp(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	attacker.Stages.Accuracy = 6
	defender := resolveDefender()
	defender.Stages.Evasion = -6

	// Combined +12 clamps to +6: any accuracy pins to a hit.
	res, err := r.ResolveHit(attacker, defender, mustMove(t, "stone-edge"), model.Field{}, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonSureHit, res.Reason)

	// Combined -6 quarters the accuracy: 100 * 0.25 = 25%.
	attacker.Stages.Accuracy = -6
	defender.Stages.Evasion = 0
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "tackle"), model.Field{}, rng.NewSequence(2499))
	require.NoError(t, err)
	assert.True(t, res.Hits)
	res, err = r.ResolveHit(attacker, defender, mustMove(t, "tackle"), model.Field{}, rng.NewSequence(2500))
	require.NoError(t, err)
	assert.False(t, res.Hits)
}

func TestResolveHitMinimizeBypass(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	attacker.Stages.Accuracy = -6
	defender := resolveDefender()
	defender.Volatiles.Minimized = true

	res, err := r.ResolveHit(attacker, defender, mustMove(t, "body-slam"), model.Field{}, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonSureHit, res.Reason)
}

func TestResolveHitUnawareZeroesStages(t *testing.T) {
	r := NewResolver(RoundSingleFloor)
	attacker := resolveAttacker()
	attacker.Ability = "unaware"
	defender := resolveDefender()
	defender.Stages.Evasion = 6

	// The attacker's Unaware drops the defender's evasion entirely.
	res, err := r.ResolveHit(attacker, defender, mustMove(t, "tackle"), model.Field{}, rng.High())
	require.NoError(t, err)
	assert.True(t, res.Hits)
	assert.Equal(t, HitReasonSureHit, res.Reason)
}
