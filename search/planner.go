package search

import (
	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/checker"
	"github.com/katalvlaran/epiplan/planning"
	"github.com/katalvlaran/epiplan/state"
	"github.com/katalvlaran/epiplan/update"
)

// Result is the outcome of a successful Search: the action sequence that
// carries the task's initial state to one satisfying its goal, and the
// resulting state itself.
type Result struct {
	Plan       []*action.Action
	FinalState *state.State
	Statistics Statistics
}

// Statistics reports how much work Search did to find (or fail to find)
// a plan.
type Statistics struct {
	NodesExpanded int
	Iterations    int
	FinalBound    int
}

// Search finds a plan for task, escalating the bisimulation depth bound
// starting at the goal's modal depth (1 for a propositional goal) until a
// plan is found, or until no node is left to retry or config.maxBound is
// exceeded (both ErrNoPlanFound).
func Search(task *planning.Task, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if checker.Satisfies(task.Initial, task.Goal) {
		return &Result{FinalState: task.Initial}, nil
	}

	stats := Statistics{}
	bound := task.Goal.ModalDepth()
	if bound == 0 {
		bound = 1
	}

	root, err := newRootNode(task.Initial, bound, cfg.sigStore, len(task.Actions))
	if err != nil {
		return nil, err
	}
	carry := []*node{root}

	for bound <= cfg.maxBound {
		cfg.printer.IterationStart(bound)
		stats.Iterations++

		result, next, expanded, err := boundedSearch(task, bound, carry, &cfg, &stats)
		stats.NodesExpanded += expanded
		if err != nil {
			return nil, err
		}
		if result != nil {
			stats.FinalBound = bound
			result.Statistics = stats
			return result, nil
		}
		if len(next) == 0 {
			// No node survived to retry and the frontier is exhausted: the
			// goal is unreachable by any action sequence this task admits.
			return nil, ErrNoPlanFound
		}

		newBound := bound + 1
		cfg.printer.BoundEscalated(bound, newBound)
		carry = make([]*node, 0, len(next))
		for _, n := range next {
			refreshed, err := n.refresh(newBound, cfg.sigStore)
			if err != nil {
				return nil, err
			}
			carry = append(carry, refreshed)
		}
		bound = newBound
	}
	return nil, ErrNoPlanFound
}

// boundedSearch runs one bound's breadth-first search starting from seed
// nodes (the fresh root on the first iteration, or carried-over nodes
// refreshed at the new bound thereafter). It returns a Result on success,
// or the set of frontier-exhausted nodes that still have deferred actions
// to retry at a larger bound.
func boundedSearch(task *planning.Task, bound int, seeds []*node, cfg *config, stats *Statistics) (*Result, []*node, int, error) {
	visited := make(map[uint64]bool, 64)
	f := newFrontier()
	for _, n := range seeds {
		visited[n.stateID] = true
		f.push(n)
	}

	var carry []*node
	expanded := 0

	for !f.empty() {
		n := f.popFront()
		cfg.printer.NodeExpandStart(n.stateID, n.graphDepth, n.bound)
		expanded++

		childrenPushed := 0
		var deferred []int
		for _, idx := range n.pending {
			act := task.Actions[idx]

			budget := n.bound
			if !n.isBisim {
				budget = n.bound - act.MaxDepth()
			}
			if !n.isBisim && budget < task.Goal.ModalDepth() {
				deferred = append(deferred, idx)
				continue
			}

			applicable := update.IsApplicable(n.currentState(), act)
			cfg.printer.ActionAttempt(n.stateID, act.Name(), applicable)
			if !applicable {
				continue
			}

			raw, err := update.Apply(n.currentState(), act)
			if err != nil {
				continue
			}

			childBound := n.bound
			if !n.isBisim {
				childBound = budget
			}
			contracted, exact, err := contractAt(raw, childBound)
			if err != nil {
				return nil, nil, expanded, err
			}

			id := cfg.sigStore.StateID(contracted, childBound)
			if visited[id] {
				continue
			}
			visited[id] = true

			child := &node{
				current:    contracted,
				bound:      childBound,
				isBisim:    exact,
				stateID:    id,
				graphDepth: n.graphDepth + 1,
				parent:     n,
				via:        act,
				pending:    allIndices(len(task.Actions)),
			}
			if !exact {
				child.original = raw
			}

			if checker.Satisfies(contracted, task.Goal) {
				plan := child.plan()
				cfg.printer.GoalFound(id, len(plan))
				return &Result{Plan: plan, FinalState: contracted}, nil, expanded, nil
			}

			f.push(child)
			childrenPushed++
		}

		cfg.printer.NodeExpandEnd(n.stateID, childrenPushed)
		if len(deferred) > 0 {
			n.pending = deferred
			carry = append(carry, n)
		}
	}

	return nil, carry, expanded, nil
}
