package round

import (
	"fmt"
	"strings"
)

// Round identifies one stage of the playoff bracket.
type Round string

const (
	WildCard   Round = "WC"
	Divisional Round = "DIV"
	Conference Round = "CONF"
	SuperBowl  Round = "SB"
)

var ordered = []Round{WildCard, Divisional, Conference, SuperBowl}

var names = map[Round]string{
	WildCard:   "Wild Card",
	Divisional: "Divisional",
	Conference: "Conference",
	SuperBowl:  "Super Bowl",
}

// All returns the rounds in bracket order.
func All() []Round {
	out := make([]Round, len(ordered))
	copy(out, ordered)
	return out
}

// Parse validates a round code. Codes are case-insensitive on input.
func Parse(value string) (Round, error) {
	r := Round(strings.ToUpper(strings.TrimSpace(value)))
	for _, known := range ordered {
		if r == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown round %q", value)
}

// Next returns the round that follows r. The second result is false when
// r is the Super Bowl or not a known round.
func (r Round) Next() (Round, bool) {
	for i, known := range ordered {
		if r == known {
			if i+1 < len(ordered) {
				return ordered[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// Name returns the display name for the round.
func (r Round) Name() string {
	if name, ok := names[r]; ok {
		return name
	}
	return string(r)
}

// IsTerminal reports whether no round follows r.
func (r Round) IsTerminal() bool {
	return r == SuperBowl
}

func (r Round) String() string {
	return string(r)
}
