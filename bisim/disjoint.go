package bisim

import (
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/state"
)

// AreBisimilar decides whether s and t are bisimilar by the disjoint
// union technique: merge both states into one, refine it to a fixed
// point, and check that every designated world of s shares a block with
// some designated world of t (and vice versa). s and t need not share a
// label.Store.
func AreBisimilar(s, t *state.State) bool {
	union, offset := disjointUnion(s, t)
	p := Full(union)

	sBlocks := make(map[int]bool)
	s.Designated().ForEach(func(w int) { sBlocks[p.BlockOf(w)] = true })

	tBlocks := make(map[int]bool)
	t.Designated().ForEach(func(w int) { tBlocks[p.BlockOf(w + offset)] = true })

	if len(sBlocks) != len(tBlocks) {
		return false
	}
	for b := range sBlocks {
		if !tBlocks[b] {
			return false
		}
	}
	return true
}

// disjointUnion merges s and t into a single state over a fresh
// label.Store, offsetting t's world indices by s.NumWorlds() so the two
// original state's worlds never collide. Every world of the union is
// designated, so Build accepts it; the union is only scratch input to
// Full, which ignores designation.
func disjointUnion(s, t *state.State) (*state.State, int) {
	store := label.NewStore()
	b := state.NewBuilder(store)

	sIdx := remapInto(b, store, s, 0)
	offset := s.NumWorlds()
	tIdx := remapInto(b, store, t, offset)

	for w := 0; w < s.NumWorlds(); w++ {
		_ = b.Designate(sIdx(w))
	}
	for w := 0; w < t.NumWorlds(); w++ {
		_ = b.Designate(tIdx(w))
	}

	union, err := b.Build()
	if err != nil {
		// Both inputs are valid, non-empty, already-designated states, so
		// the union always has worlds and designated worlds too.
		panic("bisim: disjoint union: " + err.Error())
	}
	return union, offset
}

// remapInto copies every world and edge of src into b under a fresh
// store, returning a function mapping src's original world index to its
// new index in b.
func remapInto(b *state.Builder, store *label.Store, src *state.State, base int) func(int) int {
	for w := 0; w < src.NumWorlds(); w++ {
		b.AddWorld(store.Emplace(src.Label(w)))
	}
	for w := 0; w < src.NumWorlds(); w++ {
		for _, ag := range src.Agents(w) {
			src.Possible(ag, w).ForEach(func(v int) {
				_ = b.AddEdge(ag, base+w, base+v)
			})
		}
	}
	return func(w int) int { return base + w }
}
