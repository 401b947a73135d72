package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned when a status name cannot be parsed.
var ErrUnknownStatus = errors.New("unknown status name")

// Status is a non-volatile status condition. Only the conditions that gate
// damage resolution are modeled; their per-turn ticking belongs to the
// turn orchestrator.
type Status uint8

const (
	StatusNone Status = iota
	StatusBurn
	StatusParalysis
	StatusPoison
	StatusBadPoison
	StatusSleep
	StatusFreeze
)

var statusNames = [...]string{
	"none", "burn", "paralysis", "poison", "bad-poison", "sleep", "freeze",
}

func (s Status) String() string {
	if int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
	return statusNames[s]
}

// ParseStatus converts a case-insensitive status name into a Status.
// The empty string parses as StatusNone.
func ParseStatus(name string) (Status, error) {
	if name == "" {
		return StatusNone, nil
	}
	for i, n := range statusNames {
		if strings.EqualFold(n, name) {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}
