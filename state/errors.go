package state

import "errors"

// Sentinel errors returned while building a State.
var (
	// ErrWorldOutOfRange indicates a world index outside [0, NumWorlds).
	ErrWorldOutOfRange = errors.New("state: world index out of range")

	// ErrNoDesignatedWorlds indicates Build was called with no world
	// designated as actually possible.
	ErrNoDesignatedWorlds = errors.New("state: no designated worlds")

	// ErrNoWorlds indicates Build was called on an empty world set.
	ErrNoWorlds = errors.New("state: no worlds")
)
