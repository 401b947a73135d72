package model

import (
	"errors"
	"fmt"
	"strings"
)

// Field parsing errors.
var (
	ErrUnknownWeather = errors.New("unknown weather name")
	ErrUnknownTerrain = errors.New("unknown terrain name")
)

// Weather is the active field-wide weather condition. HeavyRain, HarshSun
// and StrongWinds are the primal variants that additionally nullify whole
// damage classes.
type Weather uint8

const (
	WeatherNone Weather = iota
	WeatherRain
	WeatherHeavyRain
	WeatherSun
	WeatherHarshSun
	WeatherSand
	WeatherHail
	WeatherStrongWinds
)

var weatherNames = [...]string{
	"none", "rain", "heavy-rain", "sun", "harsh-sun", "sand", "hail", "strong-winds",
}

func (w Weather) String() string {
	if int(w) >= len(weatherNames) {
		return fmt.Sprintf("Weather(%d)", uint8(w))
	}
	return weatherNames[w]
}

// ParseWeather converts a case-insensitive weather name into a Weather.
// The empty string parses as WeatherNone.
func ParseWeather(name string) (Weather, error) {
	if name == "" {
		return WeatherNone, nil
	}
	for i, n := range weatherNames {
		if strings.EqualFold(n, name) {
			return Weather(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeather, name)
}

// IsRain reports rain of either strength.
func (w Weather) IsRain() bool { return w == WeatherRain || w == WeatherHeavyRain }

// IsSun reports sun of either strength.
func (w Weather) IsSun() bool { return w == WeatherSun || w == WeatherHarshSun }

// Terrain is the active field-wide terrain. Terrain boosts apply only to
// grounded combatants.
type Terrain uint8

const (
	TerrainNone Terrain = iota
	TerrainElectric
	TerrainGrassy
	TerrainMisty
	TerrainPsychic
)

var terrainNames = [...]string{"none", "electric", "grassy", "misty", "psychic"}

func (t Terrain) String() string {
	if int(t) >= len(terrainNames) {
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
	return terrainNames[t]
}

// ParseTerrain converts a case-insensitive terrain name into a Terrain.
// The empty string parses as TerrainNone.
func ParseTerrain(name string) (Terrain, error) {
	if name == "" {
		return TerrainNone, nil
	}
	for i, n := range terrainNames {
		if strings.EqualFold(n, name) {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTerrain, name)
}

// Side holds the per-side battle state that gates damage. Screen counters
// hold remaining turns; the turn orchestrator decrements them, never the
// resolver.
type Side struct {
	Reflect     int  `yaml:"reflect"`
	LightScreen int  `yaml:"light_screen"`
	AuroraVeil  int  `yaml:"aurora_veil"`
	FriendGuard bool `yaml:"friend_guard"`
}

// Field is the battle-wide state shared by both sides. It persists across
// turns and is owned by the turn orchestrator; the resolver only reads it.
type Field struct {
	Weather Weather
	Terrain Terrain

	// Doubles marks a multi-combatant battle size, which lets spread moves
	// hit more than one target.
	Doubles bool

	// Aura flags are derived by the orchestrator from the abilities present
	// anywhere on the field.
	DarkAura  bool
	FairyAura bool
	AuraBreak bool

	Sides [2]Side
}

// Side returns the side state for a side index, tolerating out-of-range
// indexes by returning an empty side.
func (f Field) Side(idx int) Side {
	if idx < 0 || idx >= len(f.Sides) {
		return Side{}
	}
	return f.Sides[idx]
}
