package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownNature is returned when a nature name cannot be parsed.
var ErrUnknownNature = errors.New("unknown nature name")

// Nature is one of the 25 personality natures. Each non-neutral nature
// raises one stat by 10% and lowers another by 10%.
type Nature uint8

const (
	NatureHardy Nature = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky

	natureCount = 25
)

// natureEffect holds the raised/lowered stat pair for one nature.
// Neutral natures raise and lower the same stat.
type natureEffect struct {
	name    string
	raises  Stat
	lowers  Stat
	neutral bool
}

var natureEffects = [natureCount]natureEffect{
	NatureHardy:   {name: "Hardy", neutral: true},
	NatureLonely:  {name: "Lonely", raises: StatAttack, lowers: StatDefense},
	NatureBrave:   {name: "Brave", raises: StatAttack, lowers: StatSpeed},
	NatureAdamant: {name: "Adamant", raises: StatAttack, lowers: StatSpAttack},
	NatureNaughty: {name: "Naughty", raises: StatAttack, lowers: StatSpDefense},
	NatureBold:    {name: "Bold", raises: StatDefense, lowers: StatAttack},
	NatureDocile:  {name: "Docile", neutral: true},
	NatureRelaxed: {name: "Relaxed", raises: StatDefense, lowers: StatSpeed},
	NatureImpish:  {name: "Impish", raises: StatDefense, lowers: StatSpAttack},
	NatureLax:     {name: "Lax", raises: StatDefense, lowers: StatSpDefense},
	NatureTimid:   {name: "Timid", raises: StatSpeed, lowers: StatAttack},
	NatureHasty:   {name: "Hasty", raises: StatSpeed, lowers: StatDefense},
	NatureSerious: {name: "Serious", neutral: true},
	NatureJolly:   {name: "Jolly", raises: StatSpeed, lowers: StatSpAttack},
	NatureNaive:   {name: "Naive", raises: StatSpeed, lowers: StatSpDefense},
	NatureModest:  {name: "Modest", raises: StatSpAttack, lowers: StatAttack},
	NatureMild:    {name: "Mild", raises: StatSpAttack, lowers: StatDefense},
	NatureQuiet:   {name: "Quiet", raises: StatSpAttack, lowers: StatSpeed},
	NatureBashful: {name: "Bashful", neutral: true},
	NatureRash:    {name: "Rash", raises: StatSpAttack, lowers: StatSpDefense},
	NatureCalm:    {name: "Calm", raises: StatSpDefense, lowers: StatAttack},
	NatureGentle:  {name: "Gentle", raises: StatSpDefense, lowers: StatDefense},
	NatureSassy:   {name: "Sassy", raises: StatSpDefense, lowers: StatSpeed},
	NatureCareful: {name: "Careful", raises: StatSpDefense, lowers: StatSpAttack},
	NatureQuirky:  {name: "Quirky", neutral: true},
}

func (n Nature) String() string {
	if int(n) >= natureCount {
		return fmt.Sprintf("Nature(%d)", uint8(n))
	}
	return natureEffects[n].name
}

// ParseNature converts a case-insensitive nature name into a Nature.
// The empty string parses as the neutral Hardy.
func ParseNature(name string) (Nature, error) {
	if name == "" {
		return NatureHardy, nil
	}
	for i := range natureEffects {
		if strings.EqualFold(natureEffects[i].name, name) {
			return Nature(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNature, name)
}

// Modifier returns the stat multiplier this nature applies to the given
// stat: 1.1 for the raised stat, 0.9 for the lowered one, otherwise 1.
func (n Nature) Modifier(stat Stat) float64 {
	if int(n) >= natureCount {
		return 1.0
	}
	eff := natureEffects[n]
	if eff.neutral {
		return 1.0
	}
	switch stat {
	case eff.raises:
		return 1.1
	case eff.lowers:
		return 0.9
	default:
		return 1.0
	}
}
