package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mivora/battlecalc/internal/battle"
	"github.com/mivora/battlecalc/internal/data"
	"github.com/mivora/battlecalc/internal/model"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAndBuildFull(t *testing.T) {
	path := writeScenario(t, `
name: chomp-vs-nite
attacker:
  species: garchomp
  level: 50
  nature: adamant
  item: life-orb
  status: burn
  stages:
    attack: 2
defender:
  species: dragonite
  level: 50
  hp_percent: 75
  side: 1
move: earthquake
field:
  weather: strong-winds
  sides:
    - {}
    - reflect: 2
protection:
  count: 1
  active: protect
crit: suppressed
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chomp-vs-nite", s.Name)

	b, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, model.SpeciesID("garchomp"), b.Attacker.Species)
	assert.Equal(t, 165, b.Attacker.Stats.Attack, "adamant-boosted attack")
	assert.Equal(t, model.ItemID("life-orb"), b.Attacker.Item)
	assert.Equal(t, model.StatusBurn, b.Attacker.Status)
	assert.Equal(t, 2, b.Attacker.Stages.Attack)

	require.NotNil(t, b.Defender)
	assert.Equal(t, 1, b.Defender.SideIndex)
	assert.Equal(t, b.Defender.MaxHP*75/100, b.Defender.CurrentHP)

	assert.Equal(t, model.MoveID("earthquake"), b.Move.ID)
	assert.Equal(t, model.WeatherStrongWinds, b.Field.Weather)
	assert.Equal(t, 2, b.Field.Sides[1].Reflect)
	assert.Equal(t, model.ProtectProtect, b.Protection.Active)
	assert.Equal(t, 1, b.Protection.Count)
	assert.Equal(t, battle.CritSuppressed, b.Crit)
}

func TestBuildDefaults(t *testing.T) {
	path := writeScenario(t, `
attacker:
  species: pikachu
defender:
  species: snorlax
move: thunderbolt
`)
	s, err := Load(path)
	require.NoError(t, err)
	b, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, DefaultLevel, b.Attacker.Level)
	assert.Equal(t, b.Attacker.MaxHP, b.Attacker.CurrentHP, "full health by default")
	assert.Equal(t, model.AbilityID("lightning-rod"), b.Attacker.Ability, "species default ability")
	assert.Equal(t, model.ProtectNone, b.Protection.Active)
	assert.Equal(t, battle.CritAuto, b.Crit)
	assert.False(t, b.Field.Doubles)
}

func TestBuildExplicitStats(t *testing.T) {
	path := writeScenario(t, `
attacker:
  species: pikachu
  level: 100
  stats: {hp: 300, attack: 300, defense: 100, sp_attack: 300, sp_defense: 100, speed: 100}
defender:
  species: snorlax
move: thunderbolt
`)
	s, err := Load(path)
	require.NoError(t, err)
	b, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, 300, b.Attacker.Stats.Attack)
	assert.Equal(t, 300, b.Attacker.MaxHP)
	assert.Equal(t, 300, b.Attacker.CurrentHP)
}

func TestBuildResolvesEndToEnd(t *testing.T) {
	path := writeScenario(t, `
attacker:
  species: garchomp
defender:
  species: gengar
move: earthquake
`)
	s, err := Load(path)
	require.NoError(t, err)
	b, err := s.Build()
	require.NoError(t, err)

	r := battle.NewResolver(battle.RoundSingleFloor)
	res, err := r.ResolveDamage(b.Attacker, b.Defender, b.Move, b.Field, b.Protection, rngLow{}, b.Crit)
	require.NoError(t, err)
	assert.Equal(t, battle.BlockedByImmunity, res.BlockedBy, "levitate blanks the quake")
}

// rngLow pins every draw to the minimum without importing the rng package
// fixture helpers.
type rngLow struct{}

func (rngLow) IntN(int) int { return 0 }

func TestBuildRejectsUnknownNames(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{
			name: "species",
			body: "attacker: {species: missingno}\ndefender: {species: snorlax}\nmove: tackle\n",
			err:  data.ErrUnknownSpecies,
		},
		{
			name: "move",
			body: "attacker: {species: pikachu}\ndefender: {species: snorlax}\nmove: splash\n",
			err:  data.ErrUnknownMove,
		},
		{
			name: "weather",
			body: "attacker: {species: pikachu}\ndefender: {species: snorlax}\nmove: tackle\nfield: {weather: drizzle}\n",
			err:  model.ErrUnknownWeather,
		},
		{
			name: "nature",
			body: "attacker: {species: pikachu, nature: zealous}\ndefender: {species: snorlax}\nmove: tackle\n",
			err:  model.ErrUnknownNature,
		},
		{
			name: "item",
			body: "attacker: {species: pikachu, item: master-ball}\ndefender: {species: snorlax}\nmove: tackle\n",
			err:  data.ErrUnknownItem,
		},
		{
			name: "protection",
			body: "attacker: {species: pikachu}\ndefender: {species: snorlax}\nmove: tackle\nprotection: {active: bunker}\n",
			err:  model.ErrUnknownProtectKind,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Load(writeScenario(t, tc.body))
			require.NoError(t, err)
			_, err = s.Build()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuildRejectsBadNumbers(t *testing.T) {
	s, err := Load(writeScenario(t, "attacker: {species: pikachu, hp_percent: 150}\ndefender: {species: snorlax}\nmove: tackle\n"))
	require.NoError(t, err)
	_, err = s.Build()
	assert.ErrorContains(t, err, "hp_percent")

	s, err = Load(writeScenario(t, "attacker: {species: pikachu, stages: {attack: 7}}\ndefender: {species: snorlax}\nmove: tackle\n"))
	require.NoError(t, err)
	_, err = s.Build()
	assert.ErrorIs(t, err, model.ErrStageOutOfRange)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
