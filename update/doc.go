// Package update implements product update: combining a Kripke state with
// an action (event model) to produce the state that results from the
// action occurring.
//
// Applicability is checked first — every designated world of the input
// state must admit at least one designated event whose precondition
// holds there, or the action cannot be said to occur. The product itself
// is built by a breadth-first search over (world, event) pairs seeded at
// the designated pairs with a satisfied precondition, expanding through
// pairs related by the same agent in both the state and the action, and
// labeling each new world by applying the event's postconditions (if any)
// to the originating world's label. ProductUpdate applies a sequence of
// actions in order, optionally contracting the state up to bisimulation
// after each step using the same depth budget throughout — the
// state-space control that keeps an iterated product update from growing
// without bound.
package update
