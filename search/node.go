package search

import (
	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/bisim"
	"github.com/katalvlaran/epiplan/state"
)

// node is one entry in the search tree: a state reached from the task's
// initial state by a sequence of actions, contracted up to bisimulation
// as far as the node's current Bound permits.
type node struct {
	current *state.State // the contracted state
	original *state.State // pre-contraction state; nil once isBisim is true
	bound    int
	isBisim  bool
	stateID  uint64
	graphDepth int
	parent   *node
	via      *action.Action // action applied to parent to reach this node; nil for the root

	// pending holds indices into the task's action list not yet tried
	// against this node this iteration, because their modal depth would
	// have exceeded the remaining budget. They are retried once the bound
	// escalates and the node is refreshed.
	pending []int
}

// currentState is what action applicability and product update operate
// against: the contracted state once resolved, or the original state
// while contraction remains merely a k-bisimulation approximation that
// could still be wrong about successors the remaining budget hasn't
// reached yet. Using original here (rather than the possibly-unsound
// contraction) is what makes it safe to keep exploring from an
// as-yet-unresolved node within the same iteration.
func (n *node) currentState() *state.State {
	if n.original != nil {
		return n.original
	}
	return n.current
}

// contractAt runs bisim.Refine/Contract on raw up to bound and reports
// whether the result is an exact bisimulation contraction: the partition
// reached a fixed point strictly within the budget, so no world beyond
// the budget's reach could still force a further split.
func contractAt(raw *state.State, bound int) (*state.State, bool, error) {
	p := bisim.Refine(raw, bound)
	exact := p.IsExact() && raw.MaxDepth() < bound
	contracted, err := bisim.Contract(raw, p)
	if err != nil {
		return nil, false, err
	}
	return contracted, exact, nil
}

// newRootNode builds the bound-th iteration's root node from a task's
// initial state.
func newRootNode(raw *state.State, bound int, sigStore *bisim.SignatureStore, numActions int) (*node, error) {
	contracted, exact, err := contractAt(raw, bound)
	if err != nil {
		return nil, err
	}
	n := &node{
		current: contracted,
		bound:   bound,
		isBisim: exact,
		stateID: sigStore.StateID(contracted, bound),
		pending: allIndices(numActions),
	}
	if !exact {
		n.original = raw
	}
	return n, nil
}

// refresh re-derives a carried-over node at a new, larger bound: if it
// was not yet bisim-exact, its original (uncontracted) state is
// recontracted at the new bound, possibly now reaching exactness and
// releasing the retained original state.
func (n *node) refresh(bound int, sigStore *bisim.SignatureStore) (*node, error) {
	if n.isBisim {
		return &node{
			current:    n.current,
			bound:      bound,
			isBisim:    true,
			stateID:    sigStore.StateID(n.current, bound),
			graphDepth: n.graphDepth,
			parent:     n.parent,
			via:        n.via,
			pending:    n.pending,
		}, nil
	}
	contracted, exact, err := contractAt(n.original, bound)
	if err != nil {
		return nil, err
	}
	refreshed := &node{
		current:    contracted,
		bound:      bound,
		isBisim:    exact,
		stateID:    sigStore.StateID(contracted, bound),
		graphDepth: n.graphDepth,
		parent:     n.parent,
		via:        n.via,
		pending:    n.pending,
	}
	if !exact {
		refreshed.original = n.original
	}
	return refreshed, nil
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// plan walks parent links back to the root, returning the action sequence
// that reaches n, in application order.
func (n *node) plan() []*action.Action {
	var rev []*action.Action
	for cur := n; cur != nil && cur.via != nil; cur = cur.parent {
		rev = append(rev, cur.via)
	}
	out := make([]*action.Action, len(rev))
	for i, a := range rev {
		out[len(rev)-1-i] = a
	}
	return out
}
