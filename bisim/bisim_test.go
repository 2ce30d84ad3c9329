package bisim_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/epiplan/bisim"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = language.Agent(0)

// buildTwin builds a 3-world state where w1 and w2 are duplicates of one
// another (same label, same successors) and should collapse into a
// single block under bisimulation contraction.
func buildTwin(t *testing.T) (*state.State, int, int, int) {
	t.Helper()
	store := label.NewStore()
	b := state.NewBuilder(store)

	w0 := b.AddWorld(store.Emplace(label.New(0)))
	w1 := b.AddWorld(store.Emplace(label.New(1)))
	w2 := b.AddWorld(store.Emplace(label.New(1))) // duplicate of w1
	for _, w := range []int{w0, w1, w2} {
		require.NoError(t, b.AddEdge(alice, w0, w))
	}
	require.NoError(t, b.Designate(w0))

	s, err := b.Build()
	require.NoError(t, err)
	return s, w0, w1, w2
}

func TestRefineCollapsesDuplicateWorlds(t *testing.T) {
	s, w0, w1, w2 := buildTwin(t)
	p := bisim.Full(s)

	assert.NotEqual(t, p.BlockOf(w0), p.BlockOf(w1))
	assert.Equal(t, p.BlockOf(w1), p.BlockOf(w2))
	assert.True(t, p.IsExact())
}

func TestContractProducesSmallerQuotient(t *testing.T) {
	s, _, _, _ := buildTwin(t)
	p := bisim.Full(s)

	out, err := bisim.Contract(s, p)
	require.NoError(t, err)

	assert.Equal(t, p.NumBlocks(), out.NumWorlds())
	assert.Less(t, out.NumWorlds(), s.NumWorlds())
	assert.Equal(t, 1, out.Designated().Len())
}

func TestAreBisimilarIdentifiesBisimilarStates(t *testing.T) {
	storeA := label.NewStore()
	a := state.NewBuilder(storeA)
	wa := a.AddWorld(storeA.Emplace(label.New(0)))
	require.NoError(t, a.AddEdge(alice, wa, wa))
	require.NoError(t, a.Designate(wa))
	sa, err := a.Build()
	require.NoError(t, err)

	storeB := label.NewStore()
	b := state.NewBuilder(storeB)
	wb0 := b.AddWorld(storeB.Emplace(label.New(0)))
	wb1 := b.AddWorld(storeB.Emplace(label.New(0))) // same content, extra world
	require.NoError(t, b.AddEdge(alice, wb0, wb0))
	require.NoError(t, b.AddEdge(alice, wb1, wb1))
	require.NoError(t, b.Designate(wb0))
	sb, err := b.Build()
	require.NoError(t, err)

	assert.True(t, bisim.AreBisimilar(sa, sb))
}

func TestAreBisimilarRejectsDistinctStates(t *testing.T) {
	storeA := label.NewStore()
	a := state.NewBuilder(storeA)
	wa := a.AddWorld(storeA.Emplace(label.New(0)))
	require.NoError(t, a.Designate(wa))
	sa, err := a.Build()
	require.NoError(t, err)

	storeB := label.NewStore()
	b := state.NewBuilder(storeB)
	wb := b.AddWorld(storeB.Emplace(label.New(1)))
	require.NoError(t, b.Designate(wb))
	sb, err := b.Build()
	require.NoError(t, err)

	assert.False(t, bisim.AreBisimilar(sa, sb))
}

func TestSignatureStoreAgreesOnBisimilarStates(t *testing.T) {
	s, _, w1, w2 := buildTwin(t)
	st := bisim.NewSignatureStore()

	idW1 := st.StateID(singleWorldState(t, s, w1), 2)
	idW2 := st.StateID(singleWorldState(t, s, w2), 2)
	assert.Equal(t, idW1, idW2)
}

// TestContractPreservesRepresentativeLabels checks that every world in the
// quotient keeps exactly the atom set of whichever original world it was
// built from, using cmp.Diff so a mismatch reports the precise atom-set
// difference rather than just "not equal".
func TestContractPreservesRepresentativeLabels(t *testing.T) {
	s, w0, _, _ := buildTwin(t)
	p := bisim.Full(s)

	out, err := bisim.Contract(s, p)
	require.NoError(t, err)

	gotBlockAtoms := make([][]language.Atom, out.NumWorlds())
	for w := 0; w < out.NumWorlds(); w++ {
		gotBlockAtoms[w] = out.Label(w).TrueAtoms()
	}

	wantBlockOf0 := s.Label(w0).TrueAtoms()
	found := false
	for _, atoms := range gotBlockAtoms {
		if cmp.Diff(wantBlockOf0, atoms) == "" {
			found = true
			break
		}
	}
	assert.True(t, found, "quotient must retain a world with w0's exact atom set, got %v", gotBlockAtoms)
}

// singleWorldState builds a fresh, independent designated-at-w copy of a
// single world of src, isolated from the rest of src's structure, so
// StateID can be compared on just that world's content.
func singleWorldState(t *testing.T, src *state.State, w int) *state.State {
	t.Helper()
	store := label.NewStore()
	b := state.NewBuilder(store)
	idx := b.AddWorld(store.Emplace(src.Label(w)))
	require.NoError(t, b.Designate(idx))
	out, err := b.Build()
	require.NoError(t, err)
	return out
}
