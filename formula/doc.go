// Package formula implements the immutable, tree-shaped boolean and modal
// formula language the model checker and planner evaluate: true, false,
// atom(a), not(f), and(fs), or(fs), imply(f1, f2), box(ag, f), diamond(ag,
// f). Every node precomputes its modal depth at construction time; nodes
// are shared and never mutated (many-reader, no writer), so a *Formula
// built once can be referenced from many states, actions, and goals in a
// single planning task without copying.
package formula
