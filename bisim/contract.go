package bisim

import "github.com/katalvlaran/epiplan/state"

// Contract builds the quotient state induced by p: one world per block,
// labeled and related as its representative (the block member with the
// smallest Depth, i.e. nearest to a designated world, ties broken by
// lowest world index — the member with the most remaining budget to
// still be distinguished from other blocks). A quotient world is
// designated iff some original member of its block was designated.
//
// Contract is sound as an exact minimization only when p.IsExact(); for a
// partition from a bounded Refine, the quotient is a k-bisimulation
// contraction that callers must track alongside the bound it was built
// with (see planning search's bound bookkeeping).
func Contract(s *state.State, p *Partition) (*state.State, error) {
	reps := representatives(s, p)

	b := state.NewBuilder(s.Store())
	blockWorld := make([]int, p.NumBlocks())
	for block, rep := range reps {
		blockWorld[block] = b.AddWorld(s.LabelID(rep))
	}

	agents := allAgents(s)
	for block, rep := range reps {
		from := blockWorld[block]
		for _, ag := range agents {
			seen := make(map[int]bool)
			s.Possible(ag, rep).ForEach(func(v int) {
				toBlock := p.BlockOf(v)
				if !seen[toBlock] {
					seen[toBlock] = true
					_ = b.AddEdge(ag, from, blockWorld[toBlock])
				}
			})
		}
	}

	designatedBlocks := make(map[int]bool)
	s.Designated().ForEach(func(w int) {
		designatedBlocks[p.BlockOf(w)] = true
	})
	for block := range designatedBlocks {
		_ = b.Designate(blockWorld[block])
	}

	return b.Build()
}

// representatives picks, for each block, the member world closest to a
// designated world of s.
func representatives(s *state.State, p *Partition) []int {
	reps := make([]int, p.NumBlocks())
	bestDepth := make([]int, p.NumBlocks())
	seen := make([]bool, p.NumBlocks())

	for w := 0; w < s.NumWorlds(); w++ {
		block := p.BlockOf(w)
		d := s.Depth(w)
		if !seen[block] || d < bestDepth[block] {
			reps[block] = w
			bestDepth[block] = d
			seen[block] = true
		}
	}
	return reps
}
