package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNegativeHP reports an HP value that violates the caller contract:
// negative current HP or a non-positive maximum. Never clamped here.
var ErrNegativeHP = errors.New("invalid HP")

// SemiInvulnState tags the move-granted invulnerability a combatant is in
// for the current turn.
type SemiInvulnState uint8

const (
	SemiInvulnNone SemiInvulnState = iota
	SemiInvulnUnderground // Dig
	SemiInvulnUnderwater  // Dive
	SemiInvulnAirborne    // Fly, Bounce
	SemiInvulnVanished    // Phantom Force, Shadow Force
)

var semiInvulnNames = [...]string{"none", "underground", "underwater", "airborne", "vanished"}

func (s SemiInvulnState) String() string {
	if int(s) >= len(semiInvulnNames) {
		return fmt.Sprintf("SemiInvulnState(%d)", uint8(s))
	}
	return semiInvulnNames[s]
}

// ErrUnknownSemiInvuln is returned when a semi-invulnerable state name
// cannot be parsed.
var ErrUnknownSemiInvuln = errors.New("unknown semi-invulnerable state")

// ParseSemiInvuln converts a case-insensitive state name into a
// SemiInvulnState. The empty string parses as SemiInvulnNone.
func ParseSemiInvuln(name string) (SemiInvulnState, error) {
	if name == "" {
		return SemiInvulnNone, nil
	}
	for i, n := range semiInvulnNames {
		if strings.EqualFold(n, name) {
			return SemiInvulnState(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSemiInvuln, name)
}

// Stats holds the six resolved combat stats. Raw computation from base
// stats belongs to whoever builds the snapshot; the resolver only applies
// stages on top.
type Stats struct {
	HP        int `yaml:"hp"`
	Attack    int `yaml:"attack"`
	Defense   int `yaml:"defense"`
	SpAttack  int `yaml:"sp_attack"`
	SpDefense int `yaml:"sp_defense"`
	Speed     int `yaml:"speed"`
}

// Get returns the resolved stat value for one of the six permanent stats.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatHP:
		return s.HP
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpAttack:
		return s.SpAttack
	case StatSpDefense:
		return s.SpDefense
	case StatSpeed:
		return s.Speed
	default:
		return 0
	}
}

// Volatiles are the within-battle flags that gate damage resolution.
// Setting and clearing them is the turn orchestrator's job.
type Volatiles struct {
	Minimized        bool
	Flinched         bool
	Trapped          bool
	FocusEnergy      bool
	Charged          bool // Charge used last turn; spent by the next Electric move
	HelpingHand      bool
	MeFirst          bool // acting on a stolen move
	Levitating       bool // Magnet Rise class
	SemiInvulnerable SemiInvulnState

	// MovedAfterTarget is set by the orchestrator when this combatant acts
	// after its target in the current turn (Zoom Lens, Payback class).
	MovedAfterTarget bool

	// ConsecutiveUses counts uses of the same move in a row, feeding
	// escalating-power moves and the Metronome item.
	ConsecutiveUses int

	// DisguiseBusted marks that the one-hit Disguise block is spent.
	DisguiseBusted bool
}

// Combatant is an immutable snapshot of one battler. Resolutions read it
// and return new values; cross-turn mutation belongs to the orchestrator.
type Combatant struct {
	Species SpeciesID
	Name    string
	Level   int

	// Types is the current typing, one or two entries. Type-changing
	// effects overwrite it before the snapshot is taken.
	Types []Type

	Stats  Stats
	Stages StatStages

	CurrentHP int
	MaxHP     int

	Status Status

	Ability AbilityID
	// AbilitySuppressed marks the ability as ignored (Gastro Acid class).
	// Unsuppressible abilities shrug it off.
	AbilitySuppressed bool

	Item ItemID
	// ItemConsumed marks a single-use item as already spent and inert.
	ItemConsumed bool

	Volatiles Volatiles

	// SideIndex selects this combatant's side in Field.Sides.
	SideIndex int
}

// HasType reports whether the combatant's current typing includes t.
func (c *Combatant) HasType(t Type) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// AtFullHP reports full health, the Multiscale and Shadow Shield gate.
func (c *Combatant) AtFullHP() bool {
	return c.CurrentHP == c.MaxHP
}

// HeldItem returns the held item identifier, or empty when the item has
// been consumed.
func (c *Combatant) HeldItem() ItemID {
	if c.ItemConsumed {
		return ""
	}
	return c.Item
}

// Validate checks the snapshot against the caller contract: stages inside
// [-6, 6], current HP non-negative, positive max HP, a sane level.
func (c *Combatant) Validate() error {
	if err := c.Stages.Validate(); err != nil {
		return fmt.Errorf("combatant %q: %w", c.Name, err)
	}
	if c.CurrentHP < 0 {
		return fmt.Errorf("combatant %q: %w: current HP %d", c.Name, ErrNegativeHP, c.CurrentHP)
	}
	if c.MaxHP < 1 {
		return fmt.Errorf("combatant %q: %w: max HP %d", c.Name, ErrNegativeHP, c.MaxHP)
	}
	if c.CurrentHP > c.MaxHP {
		return fmt.Errorf("combatant %q: %w: current HP %d above max %d", c.Name, ErrNegativeHP, c.CurrentHP, c.MaxHP)
	}
	if c.Level < 1 {
		return fmt.Errorf("combatant %q: level %d below 1", c.Name, c.Level)
	}
	if len(c.Types) == 0 || len(c.Types) > 2 {
		return fmt.Errorf("combatant %q: %d types, want 1 or 2", c.Name, len(c.Types))
	}
	return nil
}
