// Package language provides the name↔id registries shared by every state,
// action, and formula built for one planning task: atomic propositions
// ("atoms") and agents.
//
// A Registry is append-only during task construction and is treated as
// immutable (and safe for concurrent readers) once the task is handed to
// the planner: atoms and agents are shared across every state and action
// of one planning task, so their names and ids must never shift underfoot.
package language
