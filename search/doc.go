// Package search implements iterative-bounded breadth-first planning
// search: given a planning.Task, find a sequence of actions that carries
// the initial state to one satisfying the goal formula.
//
// The search escalates a bisimulation depth bound starting from the
// goal's modal depth, running a bounded breadth-first search at each
// bound before increasing it. Within a bound, every expanded node's state
// is contracted up to bisimulation as far as the bound allows; a node
// whose contraction is not yet exact keeps its pre-contraction state
// alongside so later iterations (with a larger bound) can re-derive a
// tighter contraction instead of re-deriving the product update from
// scratch. An action whose own modal depth would exceed the node's
// remaining budget is deferred to a future iteration rather than applied
// against an under-resolved contraction. Node revisits are suppressed by
// a SignatureStore-backed canonical id, so a state reached by two
// different action sequences is expanded only once per bound.
//
// A Printer receives structured progress events (iteration start, node
// expansion, action attempts, goal discovery, bound escalation). The
// default is NopPrinter, which discards them; ZerologPrinter, passed via
// WithPrinter, logs them through zerolog.
package search
