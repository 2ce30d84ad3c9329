// Package action implements event models (also called action models): the
// DEL counterpart of a Kripke state, describing how agents' information
// changes when an action occurs. An Action has a set of events, one
// accessibility relation per agent over those events, a precondition
// formula per event determining when it may occur, an optional
// postcondition per event for ontic (fact-changing) events, and a
// non-empty set of designated events representing what actually happens.
//
// Actions are assembled with a Builder exactly like state.Builder, and
// frozen by Build, which also derives whether the action is purely
// epistemic (no event carries a postcondition) and its maximum depth (the
// greatest modal depth among its preconditions and postcondition guards).
package action
