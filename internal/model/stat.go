package model

import "fmt"

// Stat identifies one of the six permanent stats plus the two
// accuracy axes that exist only as stages.
type Stat uint8

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
	StatAccuracy
	StatEvasion
)

var statNames = [...]string{
	"HP", "Attack", "Defense", "Sp.Attack", "Sp.Defense", "Speed", "Accuracy", "Evasion",
}

func (s Stat) String() string {
	if int(s) >= len(statNames) {
		return fmt.Sprintf("Stat(%d)", uint8(s))
	}
	return statNames[s]
}

// CalcStat computes an actual non-HP stat at a level from base stat, IV and EV,
// with the nature modifier applied last.
// Formula: floor((floor((2*base + iv + ev/4) * level / 100) + 5) * natureMod).
func CalcStat(base, iv, ev, level int, natureMod float64) int {
	core := (2*base + iv + ev/4) * level / 100
	return int(float64(core+5) * natureMod)
}

// CalcHP computes the actual HP stat at a level from base stat, IV and EV.
// Formula: floor((2*base + iv + ev/4) * level / 100) + level + 10.
func CalcHP(base, iv, ev, level int) int {
	core := (2*base + iv + ev/4) * level / 100
	return core + level + 10
}
