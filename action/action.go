package action

import (
	"github.com/katalvlaran/epiplan/bitset"
	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/language"
)

// Action is an immutable event model: events numbered 0..NumEvents-1, one
// accessibility relation per agent, a precondition per event, an optional
// set of atom postconditions per event, and a non-empty set of designated
// events. Values are produced exclusively by Builder.Build.
type Action struct {
	name       string
	relations  []map[language.Agent]bitset.Set
	pre        []*formula.Formula
	post       []map[language.Atom]*formula.Formula
	designated bitset.Set
	ontic      []bool
	maxDepth   int
}

// Name returns the action's display name, for logging and planning trace
// output. It carries no semantic meaning.
func (a *Action) Name() string { return a.name }

// NumEvents returns the number of events in a.
func (a *Action) NumEvents() int { return len(a.pre) }

// Possible returns the set of events agent ag considers possible from
// event e.
func (a *Action) Possible(ag language.Agent, e int) bitset.Set {
	if m := a.relations[e]; m != nil {
		if es, ok := m[ag]; ok {
			return es
		}
	}
	return bitset.Empty()
}

// HasEdge reports whether e R_ag f holds among events.
func (a *Action) HasEdge(ag language.Agent, e, f int) bool {
	return a.Possible(ag, e).Contains(f)
}

// Agents returns the agents with at least one outgoing edge from e. The
// order is unspecified.
func (a *Action) Agents(e int) []language.Agent {
	m := a.relations[e]
	out := make([]language.Agent, 0, len(m))
	for ag := range m {
		out = append(out, ag)
	}
	return out
}

// Precondition returns the formula that must hold at a world for event e
// to be applicable there.
func (a *Action) Precondition(e int) *formula.Formula { return a.pre[e] }

// Postconditions returns event e's atom -> guard-formula postcondition
// map. A non-empty result marks e as ontic: applying e sets each atom to
// the truth value of its guard formula, evaluated against the
// pre-update world. Returns nil for a purely epistemic event.
func (a *Action) Postconditions(e int) map[language.Atom]*formula.Formula { return a.post[e] }

// IsOntic reports whether event e carries any postcondition.
func (a *Action) IsOntic(e int) bool { return a.ontic[e] }

// IsPurelyEpistemic reports whether no event of a carries a postcondition.
func (a *Action) IsPurelyEpistemic() bool {
	for _, ontic := range a.ontic {
		if ontic {
			return false
		}
	}
	return true
}

// Designated returns the set of events that actually occur.
func (a *Action) Designated() bitset.Set { return a.designated }

// IsDesignated reports whether e is a designated event.
func (a *Action) IsDesignated(e int) bool { return a.designated.Contains(e) }

// MaxDepth returns the greatest modal depth among a's precondition and
// postcondition-guard formulas. It bounds how much bisimulation budget a
// single application of a can consume, per the planning search's per-node
// budget bookkeeping.
func (a *Action) MaxDepth() int { return a.maxDepth }
