package search

import (
	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/checker"
	"github.com/katalvlaran/epiplan/planning"
	"github.com/katalvlaran/epiplan/update"
)

// ValidatePlan replays plan from task.Initial, applying each action in
// order through product update, and reports whether the resulting state
// satisfies task.Goal. It is a Search-independent check: a Result's plan
// is only trustworthy once this returns true, since Search's own
// contraction bookkeeping is itself a candidate for a subtle bug.
func ValidatePlan(task *planning.Task, plan []*action.Action) (bool, error) {
	cur := task.Initial
	for _, act := range plan {
		next, err := update.Apply(cur, act)
		if err != nil {
			return false, err
		}
		cur = next
	}
	return checker.Satisfies(cur, task.Goal), nil
}
