package state_test

import (
	"testing"

	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRejectsEmpty(t *testing.T) {
	_, err := state.NewBuilder(label.NewStore()).Build()
	assert.ErrorIs(t, err, state.ErrNoWorlds)
}

func TestBuilderRejectsNoDesignated(t *testing.T) {
	store := label.NewStore()
	b := state.NewBuilder(store)
	b.AddWorld(store.Emplace(label.New()))
	_, err := b.Build()
	assert.ErrorIs(t, err, state.ErrNoDesignatedWorlds)
}

func TestBuilderOutOfRange(t *testing.T) {
	b := state.NewBuilder(label.NewStore())
	assert.ErrorIs(t, b.AddEdge(0, 0, 0), state.ErrWorldOutOfRange)
	assert.ErrorIs(t, b.Designate(0), state.ErrWorldOutOfRange)
}

// w0 --alice--> w1 --alice--> w2, w0 designated.
func TestDepthLinearChain(t *testing.T) {
	store := label.NewStore()
	b := state.NewBuilder(store)
	var alice language.Agent = 0

	w0 := b.AddWorld(store.Emplace(label.New(0)))
	w1 := b.AddWorld(store.Emplace(label.New(1)))
	w2 := b.AddWorld(store.Emplace(label.New(2)))

	require.NoError(t, b.AddEdge(alice, w0, w1))
	require.NoError(t, b.AddEdge(alice, w1, w2))
	require.NoError(t, b.Designate(w0))

	s, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 0, s.Depth(w0))
	assert.Equal(t, 1, s.Depth(w1))
	assert.Equal(t, 2, s.Depth(w2))
	assert.Equal(t, 2, s.MaxDepth())
	assert.True(t, s.HasEdge(alice, w0, w1))
	assert.False(t, s.HasEdge(alice, w1, w0))
	assert.True(t, s.Label(w0).Holds(0))
	assert.False(t, s.Label(w0).Holds(1))
}

func TestDepthUnreachableWorldGetsSentinel(t *testing.T) {
	store := label.NewStore()
	b := state.NewBuilder(store)

	w0 := b.AddWorld(store.Emplace(label.New(0)))
	w1 := b.AddWorld(store.Emplace(label.New(1))) // isolated
	require.NoError(t, b.Designate(w0))

	s, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 0, s.Depth(w0))
	assert.Equal(t, s.MaxDepth()+1, s.Depth(w1))
}

func TestMultipleDesignatedWorldsSeedAtZero(t *testing.T) {
	store := label.NewStore()
	b := state.NewBuilder(store)
	var bob language.Agent = 1

	w0 := b.AddWorld(store.Emplace(label.New(0)))
	w1 := b.AddWorld(store.Emplace(label.New(1)))
	w2 := b.AddWorld(store.Emplace(label.New(2)))

	require.NoError(t, b.AddEdge(bob, w0, w2))
	require.NoError(t, b.Designate(w0))
	require.NoError(t, b.Designate(w1))

	s, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 0, s.Depth(w0))
	assert.Equal(t, 0, s.Depth(w1))
	assert.Equal(t, 1, s.Depth(w2))
}
