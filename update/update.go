package update

import (
	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/bisim"
	"github.com/katalvlaran/epiplan/checker"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/state"
)

// IsApplicable reports whether a can occur at s: every designated world of
// s must admit at least one designated event of a whose precondition
// holds there. A designated world with no such event would vanish from
// the product, which would leave the result without that world's
// perspective represented at all.
func IsApplicable(s *state.State, a *action.Action) bool {
	applicable := true
	s.Designated().ForEach(func(w int) {
		applicable = applicable && isApplicableAt(s, a, w)
	})
	return applicable
}

func isApplicableAt(s *state.State, a *action.Action, w int) bool {
	found := false
	a.Designated().ForEach(func(e int) {
		found = found || checker.Holds(s, w, a.Precondition(e))
	})
	return found
}

// pair identifies a (world, event) combination during the product
// construction.
type pair struct {
	world, event int
}

// Apply computes the state resulting from a occurring at s. Returns
// ErrNotApplicable if a is not applicable per IsApplicable.
func Apply(s *state.State, a *action.Action) (*state.State, error) {
	if !IsApplicable(s, a) {
		return nil, ErrNotApplicable
	}

	b := state.NewBuilder(s.Store())
	index := make(map[pair]int)
	queue := make([]pair, 0)

	newWorld := func(p pair) int {
		if idx, ok := index[p]; ok {
			return idx
		}
		lbl := applyPostconditions(s, a, p)
		idx := b.AddWorld(s.Store().Emplace(lbl))
		index[p] = idx
		queue = append(queue, p)
		return idx
	}

	s.Designated().ForEach(func(w int) {
		a.Designated().ForEach(func(e int) {
			if checker.Holds(s, w, a.Precondition(e)) {
				idx := newWorld(pair{w, e})
				_ = b.Designate(idx)
			}
		})
	})

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		fromIdx := index[p]

		agents := agentUnion(s.Agents(p.world), a.Agents(p.event))
		for _, ag := range agents {
			s.Possible(ag, p.world).ForEach(func(v int) {
				a.Possible(ag, p.event).ForEach(func(f int) {
					if !checker.Holds(s, v, a.Precondition(f)) {
						return
					}
					toIdx := newWorld(pair{v, f})
					_ = b.AddEdge(ag, fromIdx, toIdx)
				})
			})
		}
	}

	return b.Build()
}

// ProductUpdate applies actions to s left to right, one product update per
// action. When contractEachStep is true, the state resulting from each
// action is contracted up to k-bisimulation (via bisim.Refine/Contract)
// before the next action is applied, using the same bound k for every
// step in the chain rather than decaying it by the action's own modal
// depth between applications — that per-action decay is instead the
// caller's concern (the planning search tracks it against the node's
// remaining budget, one layer above this chain).
//
// Returns ErrNotApplicable if any action in the sequence is not
// applicable to the state at that point in the chain.
func ProductUpdate(s *state.State, actions []*action.Action, k int, contractEachStep bool) (*state.State, error) {
	cur := s
	for _, a := range actions {
		next, err := Apply(cur, a)
		if err != nil {
			return nil, err
		}
		if contractEachStep {
			p := bisim.Refine(next, k)
			next, err = bisim.Contract(next, p)
			if err != nil {
				return nil, err
			}
		}
		cur = next
	}
	return cur, nil
}

// applyPostconditions computes the label of the new world produced by
// (w, e): a copy of w's label in s, with every atom named in e's
// postconditions set to the truth value its guard formula has at w.
func applyPostconditions(s *state.State, a *action.Action, p pair) label.Label {
	lbl := s.Label(p.world)
	for atom, guard := range a.Postconditions(p.event) {
		lbl = lbl.With(atom, checker.Holds(s, p.world, guard))
	}
	return lbl
}

// agentUnion merges two agent id lists, deduplicating.
func agentUnion(a, b []language.Agent) []language.Agent {
	seen := make(map[language.Agent]struct{}, len(a)+len(b))
	out := make([]language.Agent, 0, len(a)+len(b))
	for _, ag := range a {
		if _, ok := seen[ag]; !ok {
			seen[ag] = struct{}{}
			out = append(out, ag)
		}
	}
	for _, ag := range b {
		if _, ok := seen[ag]; !ok {
			seen[ag] = struct{}{}
			out = append(out, ag)
		}
	}
	return out
}
