package data

import (
	"errors"
	"fmt"

	"github.com/mivora/battlecalc/internal/model"
)

// ErrUnknownItem is returned for an item identifier missing from the
// compendium.
var ErrUnknownItem = errors.New("unknown item")

// Item is an immutable held-item template. Single-use items set Consumable;
// consumption itself is reported as a side effect and applied by the caller.
type Item struct {
	ID   model.ItemID
	Name string

	Consumable bool

	// Base-power effects.
	PhysicalPowerBoost bool // x1.1 on physical moves
	SpecialPowerBoost  bool // x1.1 on special moves
	HasBoostType       bool // x1.2 on BoostType moves
	BoostType          model.Type
	HasGemType         bool // x1.3 on GemType moves, single use
	GemType            model.Type

	// Final-damage effects.
	LifeOrb        bool // x1.3 plus recoil side effect
	ExpertBelt     bool // x1.2 on super-effective hits
	Metronome      bool // 1.0 + 0.2 per consecutive use, capped at 2.0
	HasResistBerry bool // halves one super-effective hit of ResistBerry
	ResistBerry    model.Type
	ChilanBerry    bool // halves any Normal hit, single use

	// Crit and accuracy effects.
	CritStageBonus int  // Razor Claw / Scope Lens
	WideLens       bool // accuracy x1.1
	ZoomLens       bool // accuracy x1.2 when moving after the target
	BrightPowder   bool // defender: incoming accuracy x0.9
	RingTarget     bool // defender: type immunities do not apply
}

var items = map[model.ItemID]*Item{
	"muscle-band":  {ID: "muscle-band", Name: "Muscle Band", PhysicalPowerBoost: true},
	"wise-glasses": {ID: "wise-glasses", Name: "Wise Glasses", SpecialPowerBoost: true},

	"charcoal":     {ID: "charcoal", Name: "Charcoal", HasBoostType: true, BoostType: model.TypeFire},
	"mystic-water": {ID: "mystic-water", Name: "Mystic Water", HasBoostType: true, BoostType: model.TypeWater},
	"magnet":       {ID: "magnet", Name: "Magnet", HasBoostType: true, BoostType: model.TypeElectric},
	"miracle-seed": {ID: "miracle-seed", Name: "Miracle Seed", HasBoostType: true, BoostType: model.TypeGrass},
	"dragon-fang":  {ID: "dragon-fang", Name: "Dragon Fang", HasBoostType: true, BoostType: model.TypeDragon},
	"spell-tag":    {ID: "spell-tag", Name: "Spell Tag", HasBoostType: true, BoostType: model.TypeGhost},

	"normal-gem":   {ID: "normal-gem", Name: "Normal Gem", Consumable: true, HasGemType: true, GemType: model.TypeNormal},
	"fire-gem":     {ID: "fire-gem", Name: "Fire Gem", Consumable: true, HasGemType: true, GemType: model.TypeFire},
	"water-gem":    {ID: "water-gem", Name: "Water Gem", Consumable: true, HasGemType: true, GemType: model.TypeWater},
	"electric-gem": {ID: "electric-gem", Name: "Electric Gem", Consumable: true, HasGemType: true, GemType: model.TypeElectric},
	"grass-gem":    {ID: "grass-gem", Name: "Grass Gem", Consumable: true, HasGemType: true, GemType: model.TypeGrass},
	"flying-gem":   {ID: "flying-gem", Name: "Flying Gem", Consumable: true, HasGemType: true, GemType: model.TypeFlying},

	"life-orb":    {ID: "life-orb", Name: "Life Orb", LifeOrb: true},
	"expert-belt": {ID: "expert-belt", Name: "Expert Belt", ExpertBelt: true},
	"metronome":   {ID: "metronome", Name: "Metronome", Metronome: true},

	"occa-berry":   {ID: "occa-berry", Name: "Occa Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeFire},
	"passho-berry": {ID: "passho-berry", Name: "Passho Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeWater},
	"wacan-berry":  {ID: "wacan-berry", Name: "Wacan Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeElectric},
	"yache-berry":  {ID: "yache-berry", Name: "Yache Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeIce},
	"chople-berry": {ID: "chople-berry", Name: "Chople Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeFighting},
	"shuca-berry":  {ID: "shuca-berry", Name: "Shuca Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeGround},
	"kasib-berry":  {ID: "kasib-berry", Name: "Kasib Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeGhost},
	"haban-berry":  {ID: "haban-berry", Name: "Haban Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeDragon},
	"roseli-berry": {ID: "roseli-berry", Name: "Roseli Berry", Consumable: true, HasResistBerry: true, ResistBerry: model.TypeFairy},
	"chilan-berry": {ID: "chilan-berry", Name: "Chilan Berry", Consumable: true, ChilanBerry: true},

	"razor-claw": {ID: "razor-claw", Name: "Razor Claw", CritStageBonus: 1},
	"scope-lens": {ID: "scope-lens", Name: "Scope Lens", CritStageBonus: 1},

	"wide-lens":     {ID: "wide-lens", Name: "Wide Lens", WideLens: true},
	"zoom-lens":     {ID: "zoom-lens", Name: "Zoom Lens", ZoomLens: true},
	"bright-powder": {ID: "bright-powder", Name: "Bright Powder", BrightPowder: true},
	"ring-target":   {ID: "ring-target", Name: "Ring Target", RingTarget: true},
}

// GetItem returns the item template for an identifier.
func GetItem(id model.ItemID) (*Item, error) {
	it, ok := items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return it, nil
}

// ItemCount returns the number of registered items.
func ItemCount() int {
	return len(items)
}
