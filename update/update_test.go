package update_test

import (
	"testing"

	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/checker"
	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/state"
	"github.com/katalvlaran/epiplan/update"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const heads = language.Atom(0)

var alice = language.Agent(0)

func buildCoinState(t *testing.T) *state.State {
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

func buildAnnouncement(t *testing.T, pre *formula.Formula) *action.Action {
	t.Helper()
	b := action.NewBuilder("announce")
	e, err := b.AddEvent(pre)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(alice, e, e))
	require.NoError(t, b.Designate(e))
	a, err := b.Build()
	require.NoError(t, err)
	return a
}

func TestIsApplicableRequiresEveryDesignatedWorld(t *testing.T) {
	s := buildCoinState(t)
	// Announcing "heads" is applicable: the single designated world (w0)
	// satisfies the precondition.
	a := buildAnnouncement(t, formula.NewAtom(heads))
	assert.True(t, update.IsApplicable(s, a))

	// Announcing something false everywhere is not applicable.
	impossible := buildAnnouncement(t, formula.NewFalse())
	assert.False(t, update.IsApplicable(s, impossible))
}

func TestApplyPublicAnnouncementResolvesUncertainty(t *testing.T) {
	s := buildCoinState(t)
	a := buildAnnouncement(t, formula.NewAtom(heads))

	out, err := update.Apply(s, a)
	require.NoError(t, err)

	// Only the heads world survives the announcement: alice now knows.
	assert.Equal(t, 1, out.NumWorlds())
	assert.Equal(t, 1, out.Designated().Len())
	assert.True(t, checker.Satisfies(out, formula.NewBox(alice, formula.NewAtom(heads))))
}

func TestApplyNotApplicableErrors(t *testing.T) {
	s := buildCoinState(t)
	impossible := buildAnnouncement(t, formula.NewFalse())
	_, err := update.Apply(s, impossible)
	assert.ErrorIs(t, err, update.ErrNotApplicable)
}

func buildFlipAction(t *testing.T) *action.Action {
	t.Helper()
	b := action.NewBuilder("flip")
	e, err := b.AddEvent(formula.NewTrue())
	require.NoError(t, err)
	require.NoError(t, b.SetPostcondition(e, heads, formula.NewNot(formula.NewAtom(heads))))
	require.NoError(t, b.AddEdge(alice, e, e))
	require.NoError(t, b.Designate(e))
	flip, err := b.Build()
	require.NoError(t, err)
	return flip
}

func TestApplyOnticFlipsAtom(t *testing.T) {
	s := buildCoinState(t)
	out, err := update.Apply(s, buildFlipAction(t))
	require.NoError(t, err)

	// heads was true at the designated world before the flip; it must be
	// false after.
	assert.False(t, checker.Satisfies(out, formula.NewAtom(heads)))
}

func TestProductUpdateChainsActionsAndContracts(t *testing.T) {
	s := buildCoinState(t)
	announce := buildAnnouncement(t, formula.NewAtom(heads))
	flip := buildFlipAction(t)

	out, err := update.ProductUpdate(s, []*action.Action{announce, flip}, 2, true)
	require.NoError(t, err)

	// The announcement collapses to the single heads world; the flip then
	// negates it. Contracting after each step must not disturb this.
	assert.Equal(t, 1, out.NumWorlds())
	assert.False(t, checker.Satisfies(out, formula.NewAtom(heads)))
}

func TestProductUpdateEmptySequenceReturnsInputUnchanged(t *testing.T) {
	s := buildCoinState(t)
	out, err := update.ProductUpdate(s, nil, 2, true)
	require.NoError(t, err)
	assert.Equal(t, s.NumWorlds(), out.NumWorlds())
}
