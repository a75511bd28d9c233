package parcel

import (
	"fmt"

	"depot/internal/pkg/errs"
)

// State represents the custody state of a parcel. It implements a state
// machine with a single forward transition:
//
//	InDepot ──> InDistribution
//
// No transition back to InDepot is defined. The string forms ("IN_DEPOT",
// "IN_DISTRIBUTION") are the persisted wire tokens other systems rely on and
// must not change.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	StateUnknown State = iota

	// InDepot is the initial custody state: the parcel is held in the depot
	// and is eligible for manifest assignment.
	InDepot

	// InDistribution means the parcel left the depot on a distribution run.
	// This is a final state with no further transitions.
	InDistribution
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:   "UNKNOWN",
		InDepot:        "IN_DEPOT",
		InDistribution: "IN_DISTRIBUTION",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // StateUnknown is intentionally excluded as it's invalid
	return map[State]string{
		InDepot:        "IN_DEPOT",
		InDistribution: "IN_DISTRIBUTION",
	}
}

// StateFromString parses a persisted wire token into a State.
// Returns an error for any token that is not a valid state.
func StateFromString(s string) (State, error) {
	for state, str := range getValidStateStrings() {
		if str == s {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", s))
}

// Validate checks if the State value is valid. Valid states are InDepot and
// InDistribution; StateUnknown and any other values are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the wire token for the state ("IN_DEPOT", "IN_DISTRIBUTION")
// or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StartDistribution transitions the state to InDistribution.
//
// Valid transitions:
//   - InDepot -> InDistribution
//
// Any other source state returns an InvalidStateError; in particular a parcel
// already in distribution cannot be dispatched again.
func (s State) StartDistribution() (State, error) {
	if s != InDepot {
		return StateUnknown, errs.NewInvalidStateError("parcel", s.String())
	}

	return InDistribution, nil
}
