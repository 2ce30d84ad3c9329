// Package state implements the pointed, multi-agent, multi-relational Kripke
// structure at the core of the planner: a set of worlds, one accessibility
// relation per agent, a propositional label per world, and a non-empty set
// of designated (actually-possible) worlds.
//
// States are built incrementally through a Builder (mirroring the
// functional-construction discipline of core.Graph) and frozen into an
// immutable State by Build, which also derives each world's epistemic depth:
// its shortest distance, in relation hops of any agent, from a designated
// world. Depth underlies the budget bookkeeping of bounded bisimulation
// contraction — a world more than k hops from every designated world cannot
// influence satisfaction of a depth-k formula at the actual worlds.
package state
