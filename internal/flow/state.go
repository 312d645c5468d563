// Package flow drives the assessment wizard from login to guidance.
package flow

import (
	"errors"
	"fmt"
)

// State is the screen currently shown.
type State int

const (
	StateLogin State = iota
	StateHome
	StateInput
	StateResult
	StateSuggestion
)

func (s State) String() string {
	switch s {
	case StateLogin:
		return "login"
	case StateHome:
		return "home"
	case StateInput:
		return "input"
	case StateResult:
		return "result"
	case StateSuggestion:
		return "suggestion"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var edges = map[State][]State{
	StateLogin:      {StateHome},
	StateHome:       {StateInput},
	StateInput:      {StateResult},
	StateResult:     {StateSuggestion, StateHome},
	StateSuggestion: {StateHome},
}

// CanTransition reports whether the wizard has an edge from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrCredentialsRequired = errors.New("please enter email and password")
)

// TransitionError is returned when an action is not allowed from the current state.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot go from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
