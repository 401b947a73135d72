// Package scenario loads one-move battle descriptions from YAML files and
// builds resolver inputs from them. A scenario names the two combatants,
// the move, and the field; everything else defaults to a clean battle.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mivora/battlecalc/internal/battle"
	"github.com/mivora/battlecalc/internal/data"
	"github.com/mivora/battlecalc/internal/model"
)

// DefaultLevel is used when a combatant spec leaves the level out.
const DefaultLevel = 50

// CombatantSpec describes one battler. Species, level and nature feed the
// clean-slate stat computation; an explicit stats block overrides it
// wholesale.
type CombatantSpec struct {
	Species string `yaml:"species"`
	Level   int    `yaml:"level"`
	Nature  string `yaml:"nature"`

	// Stats, when present, replaces the species-derived stats entirely.
	Stats *model.Stats `yaml:"stats"`

	// Ability overrides the species default. AbilitySuppressed marks a
	// Gastro Acid-class suppression carried into the snapshot.
	Ability           string `yaml:"ability"`
	AbilitySuppressed bool   `yaml:"ability_suppressed"`

	Item         string `yaml:"item"`
	ItemConsumed bool   `yaml:"item_consumed"`

	Status string `yaml:"status"`

	// HPPercent scales current HP; zero and 100 both mean full health.
	HPPercent int `yaml:"hp_percent"`

	Stages    model.StatStages `yaml:"stages"`
	Volatiles VolatilesSpec    `yaml:"volatiles"`

	// Side selects the combatant's side of the field, 0 or 1.
	Side int `yaml:"side"`
}

// VolatilesSpec mirrors the within-battle flags a scenario may preset.
type VolatilesSpec struct {
	Minimized        bool   `yaml:"minimized"`
	FocusEnergy      bool   `yaml:"focus_energy"`
	Charged          bool   `yaml:"charged"`
	HelpingHand      bool   `yaml:"helping_hand"`
	MeFirst          bool   `yaml:"me_first"`
	Levitating       bool   `yaml:"levitating"`
	SemiInvulnerable string `yaml:"semi_invulnerable"`
	MovedAfterTarget bool   `yaml:"moved_after_target"`
	ConsecutiveUses  int    `yaml:"consecutive_uses"`
	DisguiseBusted   bool   `yaml:"disguise_busted"`
}

// FieldSpec describes the battle-wide state by name.
type FieldSpec struct {
	Weather   string        `yaml:"weather"`
	Terrain   string        `yaml:"terrain"`
	Doubles   bool          `yaml:"doubles"`
	DarkAura  bool          `yaml:"dark_aura"`
	FairyAura bool          `yaml:"fairy_aura"`
	AuraBreak bool          `yaml:"aura_break"`
	Sides     [2]model.Side `yaml:"sides"`
}

// ProtectionSpec describes the defender's protect-family state this turn.
type ProtectionSpec struct {
	Count  int    `yaml:"count"`
	Active string `yaml:"active"`
}

// Scenario is the YAML shape of one battle description.
type Scenario struct {
	Name     string        `yaml:"name"`
	Attacker CombatantSpec `yaml:"attacker"`
	Defender CombatantSpec `yaml:"defender"`
	Move     string        `yaml:"move"`

	Field      FieldSpec      `yaml:"field"`
	Protection ProtectionSpec `yaml:"protection"`

	// Crit pins the critical branch: "auto", "forced" or "suppressed".
	Crit string `yaml:"crit"`
}

// Battle bundles the resolver inputs built from a scenario.
type Battle struct {
	Name       string
	Attacker   *model.Combatant
	Defender   *model.Combatant
	Move       *model.Move
	Field      model.Field
	Protection model.ProtectionState
	Crit       battle.CritOverride
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &s, nil
}

// Build resolves every name in the scenario against the compendium and
// returns validated resolver inputs.
func (s *Scenario) Build() (*Battle, error) {
	attacker, err := buildCombatant(&s.Attacker)
	if err != nil {
		return nil, fmt.Errorf("attacker: %w", err)
	}
	defender, err := buildCombatant(&s.Defender)
	if err != nil {
		return nil, fmt.Errorf("defender: %w", err)
	}

	move, err := data.GetMove(model.MoveID(s.Move))
	if err != nil {
		return nil, err
	}

	field, err := buildField(&s.Field)
	if err != nil {
		return nil, err
	}

	active, err := model.ParseProtectKind(s.Protection.Active)
	if err != nil {
		return nil, err
	}
	crit, err := battle.ParseCritOverride(s.Crit)
	if err != nil {
		return nil, err
	}

	return &Battle{
		Name:       s.Name,
		Attacker:   attacker,
		Defender:   defender,
		Move:       move,
		Field:      field,
		Protection: model.ProtectionState{Count: s.Protection.Count, Active: active},
		Crit:       crit,
	}, nil
}

func buildCombatant(spec *CombatantSpec) (*model.Combatant, error) {
	level := spec.Level
	if level == 0 {
		level = DefaultLevel
	}
	nature, err := model.ParseNature(spec.Nature)
	if err != nil {
		return nil, err
	}

	c, err := data.NewCombatant(model.SpeciesID(spec.Species), level, nature)
	if err != nil {
		return nil, err
	}

	if spec.Stats != nil {
		c.Stats = *spec.Stats
		c.MaxHP = spec.Stats.HP
		c.CurrentHP = spec.Stats.HP
	}
	if spec.Ability != "" {
		c.Ability = model.AbilityID(spec.Ability)
	}
	c.AbilitySuppressed = spec.AbilitySuppressed
	c.Item = model.ItemID(spec.Item)
	c.ItemConsumed = spec.ItemConsumed
	c.Stages = spec.Stages
	c.SideIndex = spec.Side

	if c.Status, err = model.ParseStatus(spec.Status); err != nil {
		return nil, err
	}
	if err := applyVolatiles(c, &spec.Volatiles); err != nil {
		return nil, err
	}

	if p := spec.HPPercent; p != 0 && p != 100 {
		if p < 0 || p > 100 {
			return nil, fmt.Errorf("combatant %q: hp_percent %d outside [0, 100]", c.Name, p)
		}
		hp := c.MaxHP * p / 100
		if hp < 1 {
			hp = 1
		}
		c.CurrentHP = hp
	}

	// Lookups the resolver would only hit mid-resolution fail here instead.
	if c.Ability != "" {
		if _, err := data.GetAbility(c.Ability); err != nil {
			return nil, err
		}
	}
	if c.Item != "" {
		if _, err := data.GetItem(c.Item); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func applyVolatiles(c *model.Combatant, spec *VolatilesSpec) error {
	state, err := model.ParseSemiInvuln(spec.SemiInvulnerable)
	if err != nil {
		return err
	}
	c.Volatiles = model.Volatiles{
		Minimized:        spec.Minimized,
		FocusEnergy:      spec.FocusEnergy,
		Charged:          spec.Charged,
		HelpingHand:      spec.HelpingHand,
		MeFirst:          spec.MeFirst,
		Levitating:       spec.Levitating,
		SemiInvulnerable: state,
		MovedAfterTarget: spec.MovedAfterTarget,
		ConsecutiveUses:  spec.ConsecutiveUses,
		DisguiseBusted:   spec.DisguiseBusted,
	}
	return nil
}

func buildField(spec *FieldSpec) (model.Field, error) {
	weather, err := model.ParseWeather(spec.Weather)
	if err != nil {
		return model.Field{}, err
	}
	terrain, err := model.ParseTerrain(spec.Terrain)
	if err != nil {
		return model.Field{}, err
	}
	return model.Field{
		Weather:   weather,
		Terrain:   terrain,
		Doubles:   spec.Doubles,
		DarkAura:  spec.DarkAura,
		FairyAura: spec.FairyAura,
		AuraBreak: spec.AuraBreak,
		Sides:     spec.Sides,
	}, nil
}
