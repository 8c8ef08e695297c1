package model

import (
	"fmt"
	"slices"
	"strings"
)

// State is the lifecycle position of a device as it appears on the wire.
type State string

const (
	StateAvailable State = "available"
	StateInUse     State = "in-use"
	StateInactive  State = "inactive"
)

var knownStates = [...]State{StateAvailable, StateInUse, StateInactive}

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	return slices.Contains(knownStates[:], s)
}

// Locked reports whether a device in this state is pinned: its name and
// brand are frozen and it cannot be removed until it leaves the state.
func (s State) Locked() bool {
	return s == StateInUse
}

// ParseState accepts the wire value in any letter case.
func ParseState(raw string) (State, error) {
	state := State(strings.ToLower(strings.TrimSpace(raw)))
	if !state.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidState, raw)
	}

	return state, nil
}

func AllStates() []State {
	return slices.Clone(knownStates[:])
}

func stateNames() string {
	var b strings.Builder

	for i, state := range knownStates {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(string(state))
	}

	return b.String()
}
