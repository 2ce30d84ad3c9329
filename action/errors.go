package action

import "errors"

// Sentinel errors returned while building an Action.
var (
	// ErrEventOutOfRange indicates an event index outside [0, NumEvents).
	ErrEventOutOfRange = errors.New("action: event index out of range")

	// ErrNoDesignatedEvents indicates Build was called with no event
	// designated as actually happening.
	ErrNoDesignatedEvents = errors.New("action: no designated events")

	// ErrNoEvents indicates Build was called on an empty event set.
	ErrNoEvents = errors.New("action: no events")

	// ErrNilPrecondition indicates AddEvent was given a nil precondition,
	// or SetPostcondition a nil guard.
	ErrNilPrecondition = errors.New("action: nil precondition")
)
