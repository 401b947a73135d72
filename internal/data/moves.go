package data

import (
	"errors"
	"fmt"

	"github.com/mivora/battlecalc/internal/model"
)

// ErrUnknownMove is returned for a move identifier missing from the
// compendium.
var ErrUnknownMove = errors.New("unknown move")

var moves = map[model.MoveID]*model.Move{
	// Plain damaging moves.
	"tackle":       {ID: "tackle", Name: "Tackle", Type: model.TypeNormal, Category: model.CategoryPhysical, Power: 40, Accuracy: 100, Contact: true},
	"quick-attack": {ID: "quick-attack", Name: "Quick Attack", Type: model.TypeNormal, Category: model.CategoryPhysical, Power: 40, Accuracy: 100, Priority: 1, Contact: true},
	"thunderbolt":  {ID: "thunderbolt", Name: "Thunderbolt", Type: model.TypeElectric, Category: model.CategorySpecial, Power: 90, Accuracy: 100},
	"thunder":      {ID: "thunder", Name: "Thunder", Type: model.TypeElectric, Category: model.CategorySpecial, Power: 110, Accuracy: 70, SureHitInRain: true, SunAccuracy: 50},
	"hurricane":    {ID: "hurricane", Name: "Hurricane", Type: model.TypeFlying, Category: model.CategorySpecial, Power: 110, Accuracy: 70, SureHitInRain: true, SunAccuracy: 50},
	"flamethrower": {ID: "flamethrower", Name: "Flamethrower", Type: model.TypeFire, Category: model.CategorySpecial, Power: 90, Accuracy: 100},
	"fire-blast":   {ID: "fire-blast", Name: "Fire Blast", Type: model.TypeFire, Category: model.CategorySpecial, Power: 110, Accuracy: 85},
	"fire-punch":   {ID: "fire-punch", Name: "Fire Punch", Type: model.TypeFire, Category: model.CategoryPhysical, Power: 75, Accuracy: 100, Contact: true, Punch: true},
	"hydro-pump":   {ID: "hydro-pump", Name: "Hydro Pump", Type: model.TypeWater, Category: model.CategorySpecial, Power: 110, Accuracy: 80},
	"waterfall":    {ID: "waterfall", Name: "Waterfall", Type: model.TypeWater, Category: model.CategoryPhysical, Power: 80, Accuracy: 100, Contact: true},
	"ice-beam":     {ID: "ice-beam", Name: "Ice Beam", Type: model.TypeIce, Category: model.CategorySpecial, Power: 90, Accuracy: 100},
	"blizzard":     {ID: "blizzard", Name: "Blizzard", Type: model.TypeIce, Category: model.CategorySpecial, Power: 110, Accuracy: 70, Spread: true, SureHitInHail: true},
	"psychic":      {ID: "psychic", Name: "Psychic", Type: model.TypePsychic, Category: model.CategorySpecial, Power: 90, Accuracy: 100},
	"moonblast":    {ID: "moonblast", Name: "Moonblast", Type: model.TypeFairy, Category: model.CategorySpecial, Power: 95, Accuracy: 100},
	"play-rough":   {ID: "play-rough", Name: "Play Rough", Type: model.TypeFairy, Category: model.CategoryPhysical, Power: 90, Accuracy: 90, Contact: true},
	"dragon-claw":  {ID: "dragon-claw", Name: "Dragon Claw", Type: model.TypeDragon, Category: model.CategoryPhysical, Power: 80, Accuracy: 100, Contact: true},
	"outrage":      {ID: "outrage", Name: "Outrage", Type: model.TypeDragon, Category: model.CategoryPhysical, Power: 120, Accuracy: 100, Contact: true},
	"dragon-pulse": {ID: "dragon-pulse", Name: "Dragon Pulse", Type: model.TypeDragon, Category: model.CategorySpecial, Power: 85, Accuracy: 100},
	"iron-head":    {ID: "iron-head", Name: "Iron Head", Type: model.TypeSteel, Category: model.CategoryPhysical, Power: 80, Accuracy: 100, Contact: true},
	"rock-slide":   {ID: "rock-slide", Name: "Rock Slide", Type: model.TypeRock, Category: model.CategoryPhysical, Power: 75, Accuracy: 90, Spread: true},
	"x-scissor":    {ID: "x-scissor", Name: "X-Scissor", Type: model.TypeBug, Category: model.CategoryPhysical, Power: 80, Accuracy: 100, Contact: true},

	// Punches and bites.
	"ice-punch":     {ID: "ice-punch", Name: "Ice Punch", Type: model.TypeIce, Category: model.CategoryPhysical, Power: 75, Accuracy: 100, Contact: true, Punch: true},
	"thunder-punch": {ID: "thunder-punch", Name: "Thunder Punch", Type: model.TypeElectric, Category: model.CategoryPhysical, Power: 75, Accuracy: 100, Contact: true, Punch: true},
	"mach-punch":    {ID: "mach-punch", Name: "Mach Punch", Type: model.TypeFighting, Category: model.CategoryPhysical, Power: 40, Accuracy: 100, Priority: 1, Contact: true, Punch: true},
	"bullet-punch":  {ID: "bullet-punch", Name: "Bullet Punch", Type: model.TypeSteel, Category: model.CategoryPhysical, Power: 40, Accuracy: 100, Priority: 1, Contact: true, Punch: true},
	"bite":          {ID: "bite", Name: "Bite", Type: model.TypeDark, Category: model.CategoryPhysical, Power: 60, Accuracy: 100, Contact: true, Bite: true},
	"crunch":        {ID: "crunch", Name: "Crunch", Type: model.TypeDark, Category: model.CategoryPhysical, Power: 80, Accuracy: 100, Contact: true, Bite: true},
	"fire-fang":     {ID: "fire-fang", Name: "Fire Fang", Type: model.TypeFire, Category: model.CategoryPhysical, Power: 65, Accuracy: 95, Contact: true, Bite: true},

	// Ball and bomb moves.
	"shadow-ball": {ID: "shadow-ball", Name: "Shadow Ball", Type: model.TypeGhost, Category: model.CategorySpecial, Power: 80, Accuracy: 100, BallOrBomb: true},
	"sludge-bomb": {ID: "sludge-bomb", Name: "Sludge Bomb", Type: model.TypePoison, Category: model.CategorySpecial, Power: 90, Accuracy: 100, BallOrBomb: true},
	"energy-ball": {ID: "energy-ball", Name: "Energy Ball", Type: model.TypeGrass, Category: model.CategorySpecial, Power: 90, Accuracy: 100, BallOrBomb: true},
	"focus-blast": {ID: "focus-blast", Name: "Focus Blast", Type: model.TypeFighting, Category: model.CategorySpecial, Power: 120, Accuracy: 70, BallOrBomb: true},

	// Sound moves.
	"hyper-voice": {ID: "hyper-voice", Name: "Hyper Voice", Type: model.TypeNormal, Category: model.CategorySpecial, Power: 90, Accuracy: 100, Sound: true, Spread: true},
	"boomburst":   {ID: "boomburst", Name: "Boomburst", Type: model.TypeNormal, Category: model.CategorySpecial, Power: 140, Accuracy: 100, Sound: true, Spread: true},
	"bug-buzz":    {ID: "bug-buzz", Name: "Bug Buzz", Type: model.TypeBug, Category: model.CategorySpecial, Power: 90, Accuracy: 100, Sound: true},

	// Crit-profile moves.
	"stone-edge":   {ID: "stone-edge", Name: "Stone Edge", Type: model.TypeRock, Category: model.CategoryPhysical, Power: 100, Accuracy: 80, HighCritRatio: true},
	"slash":        {ID: "slash", Name: "Slash", Type: model.TypeNormal, Category: model.CategoryPhysical, Power: 70, Accuracy: 100, Contact: true, HighCritRatio: true},
	"night-slash":  {ID: "night-slash", Name: "Night Slash", Type: model.TypeDark, Category: model.CategoryPhysical, Power: 70, Accuracy: 100, Contact: true, HighCritRatio: true},
	"psycho-cut":   {ID: "psycho-cut", Name: "Psycho Cut", Type: model.TypePsychic, Category: model.CategoryPhysical, Power: 70, Accuracy: 100, HighCritRatio: true},
	"frost-breath": {ID: "frost-breath", Name: "Frost Breath", Type: model.TypeIce, Category: model.CategorySpecial, Power: 60, Accuracy: 90, AlwaysCrits: true},
	"storm-throw":  {ID: "storm-throw", Name: "Storm Throw", Type: model.TypeFighting, Category: model.CategoryPhysical, Power: 60, Accuracy: 100, Contact: true, AlwaysCrits: true},

	// Sure-hit moves skip the accuracy check (Accuracy zero).
	"aerial-ace": {ID: "aerial-ace", Name: "Aerial Ace", Type: model.TypeFlying, Category: model.CategoryPhysical, Power: 60, Contact: true},
	"swift":      {ID: "swift", Name: "Swift", Type: model.TypeNormal, Category: model.CategorySpecial, Power: 60, Spread: true},
	"shock-wave": {ID: "shock-wave", Name: "Shock Wave", Type: model.TypeElectric, Category: model.CategorySpecial, Power: 60},

	// Minimize punishers double damage and never miss a minimized target.
	"stomp":       {ID: "stomp", Name: "Stomp", Type: model.TypeNormal, Category: model.CategoryPhysical, Power: 65, Accuracy: 100, Contact: true, DoublesVsMinimize: true},
	"body-slam":   {ID: "body-slam", Name: "Body Slam", Type: model.TypeNormal, Category: model.CategoryPhysical, Power: 85, Accuracy: 100, Contact: true, DoublesVsMinimize: true},
	"dragon-rush": {ID: "dragon-rush", Name: "Dragon Rush", Type: model.TypeDragon, Category: model.CategoryPhysical, Power: 100, Accuracy: 75, Contact: true, DoublesVsMinimize: true},

	// Semi-invulnerable reach. Most of these also double their damage
	// against the state they reach; Sky Uppercut connects without the bonus.
	"earthquake": {ID: "earthquake", Name: "Earthquake", Type: model.TypeGround, Category: model.CategoryPhysical, Power: 100, Accuracy: 100, Spread: true,
		HitsSemiInvulnerable: []model.SemiInvulnState{model.SemiInvulnUnderground}, PowerDoublesVsSemiInvulnerable: true},
	"surf": {ID: "surf", Name: "Surf", Type: model.TypeWater, Category: model.CategorySpecial, Power: 90, Accuracy: 100, Spread: true,
		HitsSemiInvulnerable: []model.SemiInvulnState{model.SemiInvulnUnderwater}, PowerDoublesVsSemiInvulnerable: true},
	"whirlpool": {ID: "whirlpool", Name: "Whirlpool", Type: model.TypeWater, Category: model.CategorySpecial, Power: 35, Accuracy: 85,
		HitsSemiInvulnerable: []model.SemiInvulnState{model.SemiInvulnUnderwater}, PowerDoublesVsSemiInvulnerable: true},
	"gust": {ID: "gust", Name: "Gust", Type: model.TypeFlying, Category: model.CategorySpecial, Power: 40, Accuracy: 100,
		HitsSemiInvulnerable: []model.SemiInvulnState{model.SemiInvulnAirborne}, PowerDoublesVsSemiInvulnerable: true},
	"twister": {ID: "twister", Name: "Twister", Type: model.TypeDragon, Category: model.CategorySpecial, Power: 40, Accuracy: 100, Spread: true,
		HitsSemiInvulnerable: []model.SemiInvulnState{model.SemiInvulnAirborne}, PowerDoublesVsSemiInvulnerable: true},
	"sky-uppercut": {ID: "sky-uppercut", Name: "Sky Uppercut", Type: model.TypeFighting, Category: model.CategoryPhysical, Power: 85, Accuracy: 90, Contact: true, Punch: true,
		HitsSemiInvulnerable: []model.SemiInvulnState{model.SemiInvulnAirborne}},

	// Semi-invulnerable turn moves. The vanish state itself is volatile
	// battle state managed by the turn orchestrator.
	"dig":           {ID: "dig", Name: "Dig", Type: model.TypeGround, Category: model.CategoryPhysical, Power: 80, Accuracy: 100, Contact: true},
	"dive":          {ID: "dive", Name: "Dive", Type: model.TypeWater, Category: model.CategoryPhysical, Power: 80, Accuracy: 100, Contact: true},
	"fly":           {ID: "fly", Name: "Fly", Type: model.TypeFlying, Category: model.CategoryPhysical, Power: 90, Accuracy: 95, Contact: true},
	"bounce":        {ID: "bounce", Name: "Bounce", Type: model.TypeFlying, Category: model.CategoryPhysical, Power: 85, Accuracy: 85, Contact: true},
	"phantom-force": {ID: "phantom-force", Name: "Phantom Force", Type: model.TypeGhost, Category: model.CategoryPhysical, Power: 90, Accuracy: 100, Contact: true, IgnoresProtect: true},

	// Protection interactions.
	"feint":           {ID: "feint", Name: "Feint", Type: model.TypeNormal, Category: model.CategoryPhysical, Power: 30, Accuracy: 100, Priority: 2, IgnoresProtect: true},
	"hyperspace-hole": {ID: "hyperspace-hole", Name: "Hyperspace Hole", Type: model.TypePsychic, Category: model.CategorySpecial, Power: 80, IgnoresProtect: true},
	"brick-break":     {ID: "brick-break", Name: "Brick Break", Type: model.TypeFighting, Category: model.CategoryPhysical, Power: 75, Accuracy: 100, Contact: true, BreaksScreens: true},
	"psychic-fangs":   {ID: "psychic-fangs", Name: "Psychic Fangs", Type: model.TypePsychic, Category: model.CategoryPhysical, Power: 85, Accuracy: 100, Contact: true, Bite: true, BreaksScreens: true},

	// Delayed strikes resolve outside the protection gate.
	"future-sight": {ID: "future-sight", Name: "Future Sight", Type: model.TypePsychic, Category: model.CategorySpecial, Power: 120, Accuracy: 100, FixedDamage: true, BypassesProtect: true},
	"doom-desire":  {ID: "doom-desire", Name: "Doom Desire", Type: model.TypeSteel, Category: model.CategorySpecial, Power: 140, Accuracy: 100, FixedDamage: true, BypassesProtect: true},

	// Fixed-damage moves never enter the damage formula.
	"seismic-toss": {ID: "seismic-toss", Name: "Seismic Toss", Type: model.TypeFighting, Category: model.CategoryPhysical, Accuracy: 100, FixedDamage: true, Contact: true},
	"night-shade":  {ID: "night-shade", Name: "Night Shade", Type: model.TypeGhost, Category: model.CategorySpecial, Accuracy: 100, FixedDamage: true},
	"dragon-rage":  {ID: "dragon-rage", Name: "Dragon Rage", Type: model.TypeDragon, Category: model.CategorySpecial, Accuracy: 100, FixedDamage: true},

	// Dynamic-power moves; their power functions live in power.go.
	"low-kick":    {ID: "low-kick", Name: "Low Kick", Type: model.TypeFighting, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true},
	"grass-knot":  {ID: "grass-knot", Name: "Grass Knot", Type: model.TypeGrass, Category: model.CategorySpecial, Accuracy: 100, Contact: true, DynamicPower: true},
	"heavy-slam":  {ID: "heavy-slam", Name: "Heavy Slam", Type: model.TypeSteel, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true, DoublesVsMinimize: true},
	"heat-crash":  {ID: "heat-crash", Name: "Heat Crash", Type: model.TypeFire, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true, DoublesVsMinimize: true},
	"eruption":    {ID: "eruption", Name: "Eruption", Type: model.TypeFire, Category: model.CategorySpecial, Accuracy: 100, Spread: true, DynamicPower: true},
	"water-spout": {ID: "water-spout", Name: "Water Spout", Type: model.TypeWater, Category: model.CategorySpecial, Accuracy: 100, Spread: true, DynamicPower: true},
	"flail":       {ID: "flail", Name: "Flail", Type: model.TypeNormal, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true},
	"reversal":    {ID: "reversal", Name: "Reversal", Type: model.TypeFighting, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true},
	"electro-ball": {ID: "electro-ball", Name: "Electro Ball", Type: model.TypeElectric, Category: model.CategorySpecial, Accuracy: 100, BallOrBomb: true, DynamicPower: true},
	"gyro-ball":    {ID: "gyro-ball", Name: "Gyro Ball", Type: model.TypeSteel, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true},
	"stored-power": {ID: "stored-power", Name: "Stored Power", Type: model.TypePsychic, Category: model.CategorySpecial, Accuracy: 100, DynamicPower: true},
	"punishment":   {ID: "punishment", Name: "Punishment", Type: model.TypeDark, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true},
	"acrobatics":   {ID: "acrobatics", Name: "Acrobatics", Type: model.TypeFlying, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true},
	"knock-off":    {ID: "knock-off", Name: "Knock Off", Type: model.TypeDark, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true},
	"facade":       {ID: "facade", Name: "Facade", Type: model.TypeNormal, Category: model.CategoryPhysical, Accuracy: 100, Contact: true, DynamicPower: true, IgnoresBurnPenalty: true},

	// Z-Moves skip the accuracy check and punch through protection at
	// reduced damage.
	"gigavolt-havoc":    {ID: "gigavolt-havoc", Name: "Gigavolt Havoc", Type: model.TypeElectric, Category: model.CategorySpecial, Power: 185, ZMove: true},
	"devastating-drake": {ID: "devastating-drake", Name: "Devastating Drake", Type: model.TypeDragon, Category: model.CategoryPhysical, Power: 190, Contact: true, ZMove: true},

	// Protect family. Shared success decay is tracked per combatant.
	"protect":        {ID: "protect", Name: "Protect", Type: model.TypeNormal, Category: model.CategoryStatus, Priority: 4, ProtectKind: model.ProtectProtect},
	"detect":         {ID: "detect", Name: "Detect", Type: model.TypeFighting, Category: model.CategoryStatus, Priority: 4, ProtectKind: model.ProtectDetect},
	"endure":         {ID: "endure", Name: "Endure", Type: model.TypeNormal, Category: model.CategoryStatus, Priority: 4, ProtectKind: model.ProtectEndure},
	"spiky-shield":   {ID: "spiky-shield", Name: "Spiky Shield", Type: model.TypeGrass, Category: model.CategoryStatus, Priority: 4, ProtectKind: model.ProtectSpikyShield},
	"baneful-bunker": {ID: "baneful-bunker", Name: "Baneful Bunker", Type: model.TypePoison, Category: model.CategoryStatus, Priority: 4, ProtectKind: model.ProtectBanefulBunker},
	"kings-shield":   {ID: "kings-shield", Name: "King's Shield", Type: model.TypeSteel, Category: model.CategoryStatus, Priority: 4, ProtectKind: model.ProtectKingsShield},
	"wide-guard":     {ID: "wide-guard", Name: "Wide Guard", Type: model.TypeRock, Category: model.CategoryStatus, Priority: 3, ProtectKind: model.ProtectWideGuard},
	"quick-guard":    {ID: "quick-guard", Name: "Quick Guard", Type: model.TypeFighting, Category: model.CategoryStatus, Priority: 3, ProtectKind: model.ProtectQuickGuard},

	// Status moves referenced by volatile state and fixtures.
	"charge":       {ID: "charge", Name: "Charge", Type: model.TypeElectric, Category: model.CategoryStatus},
	"helping-hand": {ID: "helping-hand", Name: "Helping Hand", Type: model.TypeNormal, Category: model.CategoryStatus, Priority: 5},
	"minimize":     {ID: "minimize", Name: "Minimize", Type: model.TypeNormal, Category: model.CategoryStatus},
	"growl":        {ID: "growl", Name: "Growl", Type: model.TypeNormal, Category: model.CategoryStatus, Accuracy: 100, Sound: true},
	"sleep-powder": {ID: "sleep-powder", Name: "Sleep Powder", Type: model.TypeGrass, Category: model.CategoryStatus, Accuracy: 75, Powder: true},
	"stun-spore":   {ID: "stun-spore", Name: "Stun Spore", Type: model.TypeGrass, Category: model.CategoryStatus, Accuracy: 75, Powder: true},
	"will-o-wisp":  {ID: "will-o-wisp", Name: "Will-O-Wisp", Type: model.TypeFire, Category: model.CategoryStatus, Accuracy: 85},
}

// GetMove returns the move template for an identifier.
func GetMove(id model.MoveID) (*model.Move, error) {
	m, ok := moves[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, id)
	}
	return m, nil
}

// MoveCount returns the number of registered moves.
func MoveCount() int {
	return len(moves)
}
