package planning

import (
	"errors"

	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/state"
)

// ErrNoActions is returned by NewTask when no action is supplied: a
// search with nothing to apply can only ever succeed by the initial
// state already satisfying the goal.
var ErrNoActions = errors.New("planning: no actions")

// ErrNilGoal is returned by NewTask when the goal formula is nil.
var ErrNilGoal = errors.New("planning: nil goal")

// ErrNilInitialState is returned by NewTask when the initial state is nil.
var ErrNilInitialState = errors.New("planning: nil initial state")

// Task bundles a planning problem: the language its formulas and actions
// are drawn from, the initial state, the actions the search may apply,
// and the goal every designated world of the resulting state must
// satisfy.
type Task struct {
	Language *language.Registry
	Initial  *state.State
	Actions  []*action.Action
	Goal     *formula.Formula
}

// NewTask validates and returns a Task. Actions may be empty only if the
// caller intends to check the initial state against the goal directly;
// NewTask itself rejects an empty action set via ErrNoActions since a
// search package driving it needs at least one action to make progress.
func NewTask(lang *language.Registry, initial *state.State, actions []*action.Action, goal *formula.Formula) (*Task, error) {
	if initial == nil {
		return nil, ErrNilInitialState
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	return &Task{Language: lang, Initial: initial, Actions: actions, Goal: goal}, nil
}
