package checker_test

import (
	"testing"

	"github.com/katalvlaran/epiplan/checker"
	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCoinState builds a two-world model: w0 (designated, heads true),
// w1 (tails), with alice unable to tell them apart.
func buildCoinState(t *testing.T) (*state.State, int, int) {
	t.Helper()
	store := label.NewStore()
	b := state.NewBuilder(store)
	var alice language.Agent = 0

	heads := 0
	w0 := b.AddWorld(store.Emplace(label.New(language.Atom(heads))))
	w1 := b.AddWorld(store.Emplace(label.New()))

	require.NoError(t, b.AddEdge(alice, w0, w0))
	require.NoError(t, b.AddEdge(alice, w0, w1))
	require.NoError(t, b.AddEdge(alice, w1, w0))
	require.NoError(t, b.AddEdge(alice, w1, w1))
	require.NoError(t, b.Designate(w0))

	s, err := b.Build()
	require.NoError(t, err)
	return s, w0, w1
}

func TestHoldsPropositional(t *testing.T) {
	s, w0, w1 := buildCoinState(t)
	heads := formula.NewAtom(0)

	assert.True(t, checker.Holds(s, w0, heads))
	assert.False(t, checker.Holds(s, w1, heads))
	assert.True(t, checker.Holds(s, w0, formula.NewOr(heads, formula.NewNot(heads))))
}

func TestHoldsUncertainty(t *testing.T) {
	s, w0, _ := buildCoinState(t)
	var alice language.Agent = 0
	heads := formula.NewAtom(0)

	// Alice does not know whether the coin is heads: neither
	// Box(alice, heads) nor Box(alice, not heads) holds at w0.
	assert.False(t, checker.Holds(s, w0, formula.NewBox(alice, heads)))
	assert.False(t, checker.Holds(s, w0, formula.NewBox(alice, formula.NewNot(heads))))
	// But she considers it possible either way.
	assert.True(t, checker.Holds(s, w0, formula.NewDiamond(alice, heads)))
	assert.True(t, checker.Holds(s, w0, formula.NewDiamond(alice, formula.NewNot(heads))))
}

func TestSatisfiesChecksOnlyDesignated(t *testing.T) {
	s, _, _ := buildCoinState(t)
	heads := formula.NewAtom(0)
	// Only w0 is designated, and heads holds there.
	assert.True(t, checker.Satisfies(s, heads))
}
