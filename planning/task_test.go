package planning_test

import (
	"testing"

	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/planning"
	"github.com/katalvlaran/epiplan/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trivialState(t *testing.T) *state.State {
	t.Helper()
	store := label.NewStore()
	b := state.NewBuilder(store)
	w := b.AddWorld(store.Emplace(label.New()))
	require.NoError(t, b.Designate(w))
	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func trivialAction(t *testing.T) *action.Action {
	t.Helper()
	b := action.NewBuilder("noop")
	e, err := b.AddEvent(formula.NewTrue())
	require.NoError(t, err)
	require.NoError(t, b.Designate(e))
	a, err := b.Build()
	require.NoError(t, err)
	return a
}

func TestNewTaskValidates(t *testing.T) {
	lang := language.New()
	s := trivialState(t)
	a := trivialAction(t)
	goal := formula.NewTrue()

	_, err := planning.NewTask(lang, nil, []*action.Action{a}, goal)
	assert.ErrorIs(t, err, planning.ErrNilInitialState)

	_, err = planning.NewTask(lang, s, []*action.Action{a}, nil)
	assert.ErrorIs(t, err, planning.ErrNilGoal)

	_, err = planning.NewTask(lang, s, nil, goal)
	assert.ErrorIs(t, err, planning.ErrNoActions)

	task, err := planning.NewTask(lang, s, []*action.Action{a}, goal)
	require.NoError(t, err)
	assert.Same(t, s, task.Initial)
}
