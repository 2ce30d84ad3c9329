// Package scenario synthesizes Kripke states for benchmark DEL puzzles
// and for property-based tests, in the functional-options style of the
// graph topology generators it is adapted from: option constructors
// validate and panic on meaningless input, so a malformed scenario
// request fails at construction time rather than producing a silently
// degenerate state.
package scenario
