package state

import (
	"github.com/katalvlaran/epiplan/bitset"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
)

// State is an immutable pointed Kripke structure: worlds numbered
// 0..NumWorlds-1, one accessibility relation per agent, a Label for every
// world, and a non-empty set of designated worlds. Values are produced
// exclusively by Builder.Build, which is what guarantees Depth and
// MaxDepth are always consistent with the relations.
type State struct {
	store      *label.Store
	relations  []map[language.Agent]bitset.Set // relations[w][ag] = worlds reachable from w via ag
	labelIDs   []label.ID
	designated bitset.Set
	depth      []int
	maxDepth   int
}

// NumWorlds returns the number of worlds in s.
func (s *State) NumWorlds() int { return len(s.labelIDs) }

// Possible returns the set of worlds agent ag considers possible from w.
// Returns the empty set if ag has no outgoing edges from w.
func (s *State) Possible(ag language.Agent, w int) bitset.Set {
	if m := s.relations[w]; m != nil {
		if ws, ok := m[ag]; ok {
			return ws
		}
	}
	return bitset.Empty()
}

// HasEdge reports whether w R_ag v holds.
func (s *State) HasEdge(ag language.Agent, w, v int) bool {
	return s.Possible(ag, w).Contains(v)
}

// Agents returns the agents with at least one outgoing edge from w. The
// order is unspecified.
func (s *State) Agents(w int) []language.Agent {
	m := s.relations[w]
	out := make([]language.Agent, 0, len(m))
	for ag := range m {
		out = append(out, ag)
	}
	return out
}

// LabelID returns the interned label id of world w.
func (s *State) LabelID(w int) label.ID { return s.labelIDs[w] }

// Label returns the resolved Label valuation of world w, looked up in the
// Store the state was built against.
func (s *State) Label(w int) label.Label { return s.store.Get(s.labelIDs[w]) }

// Store returns the label.Store used to resolve this state's worlds,
// shared across every state built from the same Builder lineage so
// structurally equal labels always compare id-equal.
func (s *State) Store() *label.Store { return s.store }

// Designated returns the set of worlds considered actually possible.
func (s *State) Designated() bitset.Set { return s.designated }

// IsDesignated reports whether w is a designated world.
func (s *State) IsDesignated(w int) bool { return s.designated.Contains(w) }

// Depth returns the shortest distance, in relation hops of any agent, from
// a designated world to w. Designated worlds have depth 0. A world
// unreachable from every designated world is given depth MaxDepth()+1, the
// sentinel meaning "cannot be distinguished within any finite budget" since
// it has no bearing on satisfaction at the actual worlds.
func (s *State) Depth(w int) int { return s.depth[w] }

// MaxDepth returns the greatest finite Depth among s's worlds, i.e. the
// modal depth a formula would need to reach the furthest world still
// reachable from a designated world.
func (s *State) MaxDepth() int { return s.maxDepth }
