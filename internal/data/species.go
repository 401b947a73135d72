package data

import (
	"errors"
	"fmt"

	"github.com/mivora/battlecalc/internal/model"
)

// ErrUnknownSpecies is returned for a species identifier missing from the
// compendium.
var ErrUnknownSpecies = errors.New("unknown species")

// Species is an immutable species template: typing, base stats and the
// physical weight consumed by weight-based power functions.
type Species struct {
	ID        model.SpeciesID
	Name      string
	Types     []model.Type
	BaseStats model.Stats
	WeightKG  float64
	Abilities []model.AbilityID
}

var species = map[model.SpeciesID]*Species{
	"pikachu": {
		ID: "pikachu", Name: "Pikachu",
		Types:     []model.Type{model.TypeElectric},
		BaseStats: model.Stats{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90},
		WeightKG:  6.0,
		Abilities: []model.AbilityID{"lightning-rod"},
	},
	"charizard": {
		ID: "charizard", Name: "Charizard",
		Types:     []model.Type{model.TypeFire, model.TypeFlying},
		BaseStats: model.Stats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100},
		WeightKG:  90.5,
		Abilities: []model.AbilityID{"blaze", "solar-power"},
	},
	"blastoise": {
		ID: "blastoise", Name: "Blastoise",
		Types:     []model.Type{model.TypeWater},
		BaseStats: model.Stats{HP: 79, Attack: 83, Defense: 100, SpAttack: 85, SpDefense: 105, Speed: 78},
		WeightKG:  85.5,
		Abilities: []model.AbilityID{"torrent"},
	},
	"venusaur": {
		ID: "venusaur", Name: "Venusaur",
		Types:     []model.Type{model.TypeGrass, model.TypePoison},
		BaseStats: model.Stats{HP: 80, Attack: 82, Defense: 83, SpAttack: 100, SpDefense: 100, Speed: 80},
		WeightKG:  100.0,
		Abilities: []model.AbilityID{"overgrow"},
	},
	"garchomp": {
		ID: "garchomp", Name: "Garchomp",
		Types:     []model.Type{model.TypeDragon, model.TypeGround},
		BaseStats: model.Stats{HP: 108, Attack: 130, Defense: 95, SpAttack: 80, SpDefense: 85, Speed: 102},
		WeightKG:  95.0,
		Abilities: []model.AbilityID{"sand-veil"},
	},
	"dragonite": {
		ID: "dragonite", Name: "Dragonite",
		Types:     []model.Type{model.TypeDragon, model.TypeFlying},
		BaseStats: model.Stats{HP: 91, Attack: 134, Defense: 95, SpAttack: 100, SpDefense: 100, Speed: 80},
		WeightKG:  210.0,
		Abilities: []model.AbilityID{"multiscale"},
	},
	"mimikyu": {
		ID: "mimikyu", Name: "Mimikyu",
		Types:     []model.Type{model.TypeGhost, model.TypeFairy},
		BaseStats: model.Stats{HP: 55, Attack: 90, Defense: 80, SpAttack: 50, SpDefense: 105, Speed: 96},
		WeightKG:  0.7,
		Abilities: []model.AbilityID{"disguise"},
	},
	"ferrothorn": {
		ID: "ferrothorn", Name: "Ferrothorn",
		Types:     []model.Type{model.TypeGrass, model.TypeSteel},
		BaseStats: model.Stats{HP: 74, Attack: 94, Defense: 131, SpAttack: 54, SpDefense: 116, Speed: 20},
		WeightKG:  110.0,
		Abilities: []model.AbilityID{"iron-barbs"},
	},
	"greninja": {
		ID: "greninja", Name: "Greninja",
		Types:     []model.Type{model.TypeWater, model.TypeDark},
		BaseStats: model.Stats{HP: 72, Attack: 95, Defense: 67, SpAttack: 103, SpDefense: 71, Speed: 122},
		WeightKG:  40.0,
		Abilities: []model.AbilityID{"torrent", "protean"},
	},
	"snorlax": {
		ID: "snorlax", Name: "Snorlax",
		Types:     []model.Type{model.TypeNormal},
		BaseStats: model.Stats{HP: 160, Attack: 110, Defense: 65, SpAttack: 65, SpDefense: 110, Speed: 30},
		WeightKG:  460.0,
		Abilities: []model.AbilityID{"thick-fat", "gluttony"},
	},
	"gengar": {
		ID: "gengar", Name: "Gengar",
		Types:     []model.Type{model.TypeGhost, model.TypePoison},
		BaseStats: model.Stats{HP: 60, Attack: 65, Defense: 60, SpAttack: 130, SpDefense: 75, Speed: 110},
		WeightKG:  40.5,
		Abilities: []model.AbilityID{"levitate"},
	},
	"lucario": {
		ID: "lucario", Name: "Lucario",
		Types:     []model.Type{model.TypeFighting, model.TypeSteel},
		BaseStats: model.Stats{HP: 70, Attack: 110, Defense: 70, SpAttack: 115, SpDefense: 70, Speed: 90},
		WeightKG:  54.0,
		Abilities: []model.AbilityID{"inner-focus", "adaptability"},
	},
}

// GetSpecies returns the species template for an identifier.
func GetSpecies(id model.SpeciesID) (*Species, error) {
	s, ok := species[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, id)
	}
	return s, nil
}

// SpeciesCount returns the number of registered species.
func SpeciesCount() int {
	return len(species)
}

// NewCombatant builds a level-appropriate combatant from a species template
// using the clean-slate convention: 31 IVs everywhere, no EVs.
//
// Convenience for fixtures and scenario defaults; scenario files may still
// override any stat explicitly.
func NewCombatant(id model.SpeciesID, level int, nature model.Nature) (*model.Combatant, error) {
	sp, err := GetSpecies(id)
	if err != nil {
		return nil, err
	}
	const iv = 31
	stats := model.Stats{
		HP:        model.CalcHP(sp.BaseStats.HP, iv, 0, level),
		Attack:    model.CalcStat(sp.BaseStats.Attack, iv, 0, level, nature.Modifier(model.StatAttack)),
		Defense:   model.CalcStat(sp.BaseStats.Defense, iv, 0, level, nature.Modifier(model.StatDefense)),
		SpAttack:  model.CalcStat(sp.BaseStats.SpAttack, iv, 0, level, nature.Modifier(model.StatSpAttack)),
		SpDefense: model.CalcStat(sp.BaseStats.SpDefense, iv, 0, level, nature.Modifier(model.StatSpDefense)),
		Speed:     model.CalcStat(sp.BaseStats.Speed, iv, 0, level, nature.Modifier(model.StatSpeed)),
	}

	c := &model.Combatant{
		Species:   id,
		Name:      sp.Name,
		Level:     level,
		Types:     append([]model.Type(nil), sp.Types...),
		Stats:     stats,
		CurrentHP: stats.HP,
		MaxHP:     stats.HP,
	}
	if len(sp.Abilities) > 0 {
		c.Ability = sp.Abilities[0]
	}
	return c, nil
}
