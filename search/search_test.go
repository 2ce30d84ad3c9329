package search_test

import (
	"testing"

	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/planning"
	"github.com/katalvlaran/epiplan/search"
	"github.com/katalvlaran/epiplan/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const heads = language.Atom(0)

var alice = language.Agent(0)

func buildUncertainCoin(t *testing.T) *state.State {
	t.Helper()
	store := label.NewStore()
	b := state.NewBuilder(store)

	w0 := b.AddWorld(store.Emplace(label.New(heads)))
	w1 := b.AddWorld(store.Emplace(label.New()))
	for _, w := range []int{w0, w1} {
		require.NoError(t, b.AddEdge(alice, w, w0))
		require.NoError(t, b.AddEdge(alice, w, w1))
	}
	require.NoError(t, b.Designate(w0))

	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func buildAnnounceHeads(t *testing.T) *action.Action {
	t.Helper()
	b := action.NewBuilder("announce heads")
	e, err := b.AddEvent(formula.NewAtom(heads))
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(alice, e, e))
	require.NoError(t, b.Designate(e))
	a, err := b.Build()
	require.NoError(t, err)
	return a
}

func TestSearchFindsAnnouncementPlan(t *testing.T) {
	lang := language.New()
	initial := buildUncertainCoin(t)
	announce := buildAnnounceHeads(t)
	goal := formula.NewBox(alice, formula.NewAtom(heads))

	task, err := planning.NewTask(lang, initial, []*action.Action{announce}, goal)
	require.NoError(t, err)

	result, err := search.Search(task)
	require.NoError(t, err)
	require.Len(t, result.Plan, 1)
	assert.Equal(t, "announce heads", result.Plan[0].Name())

	ok, err := search.ValidatePlan(task, result.Plan)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSearchReturnsEmptyPlanWhenGoalAlreadyHolds(t *testing.T) {
	lang := language.New()
	initial := buildUncertainCoin(t)
	announce := buildAnnounceHeads(t)
	goal := formula.NewAtom(heads) // holds at the single designated world already

	task, err := planning.NewTask(lang, initial, []*action.Action{announce}, goal)
	require.NoError(t, err)

	result, err := search.Search(task)
	require.NoError(t, err)
	assert.Empty(t, result.Plan)
}

func TestSearchFailsWhenGoalUnreachable(t *testing.T) {
	lang := language.New()
	initial := buildUncertainCoin(t)
	announce := buildAnnounceHeads(t)
	unreachable := formula.NewBox(alice, formula.NewFalse())

	task, err := planning.NewTask(lang, initial, []*action.Action{announce}, unreachable)
	require.NoError(t, err)

	_, err = search.Search(task, search.WithMaxBound(4))
	assert.ErrorIs(t, err, search.ErrNoPlanFound)
}
