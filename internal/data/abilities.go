package data

import (
	"errors"
	"fmt"

	"github.com/mivora/battlecalc/internal/model"
)

// ErrUnknownAbility is returned for an ability identifier missing from the
// compendium. Surfaced to the caller; never recovered locally.
var ErrUnknownAbility = errors.New("unknown ability")

// Ability is an immutable ability template. Effects are declared as flat
// flags so the resolver dispatches over a closed, auditable set instead of
// scattered conditionals.
type Ability struct {
	ID   model.AbilityID
	Name string

	// Unsuppressible abilities keep working under mold-breaker attackers
	// and ability-ignoring states alike.
	Unsuppressible bool

	// Attacker-side effects.
	MoldBreaker  bool // ignores suppressible defender abilities
	NoGuard      bool // both sides: every move connects
	CompoundEyes bool // accuracy x1.3
	SuperLuck    bool // +1 crit stage
	Sniper       bool // crit multiplier x1.5 again
	Adaptability bool // STAB 2.0 instead of 1.5
	TintedLens   bool // x2 on not-very-effective hits
	Infiltrator  bool // ignores screens
	Guts         bool // no burn damage penalty
	MagicGuard   bool // no indirect damage (Life Orb recoil)
	Technician   bool // x1.5 on power 60 and below
	IronFist     bool // punch moves x1.2
	StrongJaw    bool // bite moves x1.5
	Unaware      bool // ignores the opponent's stages

	// Type-conversion boosts: Normal moves become AteType and gain x1.2.
	HasAteType bool
	AteType    model.Type

	// Pinch boosts: x1.5 on PinchType moves at or below a third of max HP.
	HasPinchType bool
	PinchType    model.Type

	// Field auras: x1.33 on AuraType moves for everyone; AuraBreak flips
	// active auras to x0.75.
	HasAuraType bool
	AuraType    model.Type
	AuraBreak   bool

	// Defender-side effects.
	WonderGuard  bool // blocked unless hit super-effectively
	CritImmune   bool // Battle Armor / Shell Armor
	Disguise     bool // absorbs one hit, then busts
	HalvesAtFull bool // Multiscale / Shadow Shield
	SuperResist  bool // Filter / Solid Rock / Prism Armor: x0.75 on super-effective
	Fluffy       bool // halves contact, doubles Fire
	Levitates    bool // airborne: ungrounded and immune to Ground

	// Absorb/redirect immunity to one attacking type.
	HasImmuneType bool
	ImmuneType    model.Type

	SoundImmune  bool // Soundproof
	BulletImmune bool // Bulletproof

	// Weather-conditional evasion: accuracy x0.8 against the holder while
	// EvasionWeather is active.
	HasEvasionWeather bool
	EvasionWeather    model.Weather
}

var abilities = map[model.AbilityID]*Ability{
	"mold-breaker": {ID: "mold-breaker", Name: "Mold Breaker", MoldBreaker: true},
	"teravolt":     {ID: "teravolt", Name: "Teravolt", MoldBreaker: true},
	"turboblaze":   {ID: "turboblaze", Name: "Turboblaze", MoldBreaker: true},

	"no-guard":      {ID: "no-guard", Name: "No Guard", NoGuard: true},
	"compound-eyes": {ID: "compound-eyes", Name: "Compound Eyes", CompoundEyes: true},
	"super-luck":    {ID: "super-luck", Name: "Super Luck", SuperLuck: true},
	"sniper":        {ID: "sniper", Name: "Sniper", Sniper: true},
	"adaptability":  {ID: "adaptability", Name: "Adaptability", Adaptability: true},
	"tinted-lens":   {ID: "tinted-lens", Name: "Tinted Lens", TintedLens: true},
	"infiltrator":   {ID: "infiltrator", Name: "Infiltrator", Infiltrator: true},
	"guts":          {ID: "guts", Name: "Guts", Guts: true},
	"magic-guard":   {ID: "magic-guard", Name: "Magic Guard", MagicGuard: true, Unsuppressible: true},
	"technician":    {ID: "technician", Name: "Technician", Technician: true},
	"iron-fist":     {ID: "iron-fist", Name: "Iron Fist", IronFist: true},
	"strong-jaw":    {ID: "strong-jaw", Name: "Strong Jaw", StrongJaw: true},
	"unaware":       {ID: "unaware", Name: "Unaware", Unaware: true},

	"aerilate":    {ID: "aerilate", Name: "Aerilate", HasAteType: true, AteType: model.TypeFlying},
	"pixilate":    {ID: "pixilate", Name: "Pixilate", HasAteType: true, AteType: model.TypeFairy},
	"refrigerate": {ID: "refrigerate", Name: "Refrigerate", HasAteType: true, AteType: model.TypeIce},
	"galvanize":   {ID: "galvanize", Name: "Galvanize", HasAteType: true, AteType: model.TypeElectric},
	"normalize":   {ID: "normalize", Name: "Normalize", HasAteType: true, AteType: model.TypeNormal},

	"overgrow": {ID: "overgrow", Name: "Overgrow", HasPinchType: true, PinchType: model.TypeGrass},
	"blaze":    {ID: "blaze", Name: "Blaze", HasPinchType: true, PinchType: model.TypeFire},
	"torrent":  {ID: "torrent", Name: "Torrent", HasPinchType: true, PinchType: model.TypeWater},
	"swarm":    {ID: "swarm", Name: "Swarm", HasPinchType: true, PinchType: model.TypeBug},

	"dark-aura":  {ID: "dark-aura", Name: "Dark Aura", HasAuraType: true, AuraType: model.TypeDark},
	"fairy-aura": {ID: "fairy-aura", Name: "Fairy Aura", HasAuraType: true, AuraType: model.TypeFairy},
	"aura-break": {ID: "aura-break", Name: "Aura Break", AuraBreak: true, Unsuppressible: true},

	"wonder-guard": {ID: "wonder-guard", Name: "Wonder Guard", WonderGuard: true},
	"battle-armor": {ID: "battle-armor", Name: "Battle Armor", CritImmune: true},
	"shell-armor":  {ID: "shell-armor", Name: "Shell Armor", CritImmune: true},
	"disguise":     {ID: "disguise", Name: "Disguise", Disguise: true},

	"multiscale":    {ID: "multiscale", Name: "Multiscale", HalvesAtFull: true},
	"shadow-shield": {ID: "shadow-shield", Name: "Shadow Shield", HalvesAtFull: true, Unsuppressible: true},

	"filter":      {ID: "filter", Name: "Filter", SuperResist: true},
	"solid-rock":  {ID: "solid-rock", Name: "Solid Rock", SuperResist: true},
	"prism-armor": {ID: "prism-armor", Name: "Prism Armor", SuperResist: true, Unsuppressible: true},

	"fluffy":   {ID: "fluffy", Name: "Fluffy", Fluffy: true},
	"levitate": {ID: "levitate", Name: "Levitate", Levitates: true, HasImmuneType: true, ImmuneType: model.TypeGround},

	"volt-absorb":  {ID: "volt-absorb", Name: "Volt Absorb", HasImmuneType: true, ImmuneType: model.TypeElectric},
	"water-absorb": {ID: "water-absorb", Name: "Water Absorb", HasImmuneType: true, ImmuneType: model.TypeWater},
	"flash-fire":   {ID: "flash-fire", Name: "Flash Fire", HasImmuneType: true, ImmuneType: model.TypeFire},
	"sap-sipper":   {ID: "sap-sipper", Name: "Sap Sipper", HasImmuneType: true, ImmuneType: model.TypeGrass},

	// Redirect absorbers divert moves to the holder; the immunity they
	// grant survives mold-breaker attackers.
	"lightning-rod": {ID: "lightning-rod", Name: "Lightning Rod", HasImmuneType: true, ImmuneType: model.TypeElectric, Unsuppressible: true},
	"storm-drain":   {ID: "storm-drain", Name: "Storm Drain", HasImmuneType: true, ImmuneType: model.TypeWater, Unsuppressible: true},

	"soundproof":  {ID: "soundproof", Name: "Soundproof", SoundImmune: true},
	"bulletproof": {ID: "bulletproof", Name: "Bulletproof", BulletImmune: true},

	"sand-veil":  {ID: "sand-veil", Name: "Sand Veil", HasEvasionWeather: true, EvasionWeather: model.WeatherSand},
	"snow-cloak": {ID: "snow-cloak", Name: "Snow Cloak", HasEvasionWeather: true, EvasionWeather: model.WeatherHail},

	// Markers with no damage-pipeline behavior of their own; registered so
	// the unsuppressible set stays closed and auditable.
	"comatose":        {ID: "comatose", Name: "Comatose", Unsuppressible: true},
	"shields-down":    {ID: "shields-down", Name: "Shields Down", Unsuppressible: true},
	"full-metal-body": {ID: "full-metal-body", Name: "Full Metal Body", Unsuppressible: true},

	// Friend Guard acts from the ally slot; the orchestrator mirrors it
	// into Side.FriendGuard when the ally is on the field.
	"friend-guard": {ID: "friend-guard", Name: "Friend Guard"},

	// Species-sheet abilities with no modeled damage interaction.
	"solar-power": {ID: "solar-power", Name: "Solar Power"},
	"iron-barbs":  {ID: "iron-barbs", Name: "Iron Barbs"},
	"protean":     {ID: "protean", Name: "Protean"},
	"thick-fat":   {ID: "thick-fat", Name: "Thick Fat"},
	"gluttony":    {ID: "gluttony", Name: "Gluttony"},
	"inner-focus": {ID: "inner-focus", Name: "Inner Focus"},
}

// GetAbility returns the ability template for an identifier.
func GetAbility(id model.AbilityID) (*Ability, error) {
	a, ok := abilities[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAbility, id)
	}
	return a, nil
}

// AbilityCount returns the number of registered abilities.
func AbilityCount() int {
	return len(abilities)
}
