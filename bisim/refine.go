package bisim

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/state"
)

// Partition assigns every world of a state to a block. Worlds in the same
// block agree on their label and, once the partition is stable, on the
// block-level successors of every agent.
type Partition struct {
	blockOf    []int
	numBlocks  int
	rounds     int
	stableAt   int
	stabilized bool
}

// BlockOf returns the block id of world w.
func (p *Partition) BlockOf(w int) int { return p.blockOf[w] }

// NumBlocks returns the number of blocks in p.
func (p *Partition) NumBlocks() int { return p.numBlocks }

// Rounds returns the number of refinement rounds actually run.
func (p *Partition) Rounds() int { return p.rounds }

// IsExact reports whether refinement reached a fixed point (no block split
// in the final round), i.e. whether p is an exact bisimulation partition
// rather than merely a k-bisimulation approximation.
func (p *Partition) IsExact() bool { return p.stabilized }

// Refine runs up to k rounds of partition refinement over s, starting
// from the trivial partition by label and splitting blocks whenever two
// worlds in the same block disagree, for some agent, on which blocks
// their successors land in. It stops early if the partition stabilizes
// before round k. The returned Partition is exact k-bisimulation: worlds
// sharing a block satisfy the same formulas of modal depth <= k.
func Refine(s *state.State, k int) *Partition {
	blockOf, numBlocks := initialPartition(s)
	p := &Partition{blockOf: blockOf, numBlocks: numBlocks}

	for round := 0; round < k; round++ {
		next, nextN, changed := refineOnce(s, blockOf, numBlocks)
		p.rounds++
		if !changed {
			p.stabilized = true
			break
		}
		blockOf, numBlocks = next, nextN
	}
	p.blockOf, p.numBlocks = blockOf, numBlocks
	return p
}

// Full runs Refine to a genuine fixed point, with no depth cap: the
// result is an exact bisimulation partition regardless of s's modal
// structure. Partition refinement can split at most NumWorlds-1 times, so
// that bound is always sufficient.
func Full(s *state.State) *Partition {
	return Refine(s, s.NumWorlds())
}

// initialPartition groups worlds solely by label id: the base case of
// bisimulation (0-bisimilar worlds agree on propositional content).
func initialPartition(s *state.State) ([]int, int) {
	n := s.NumWorlds()
	blockOf := make([]int, n)
	seen := make(map[label.ID]int)
	next := 0
	for w := 0; w < n; w++ {
		id := s.LabelID(w)
		b, ok := seen[id]
		if !ok {
			b = next
			seen[id] = b
			next++
		}
		blockOf[w] = b
	}
	return blockOf, next
}

// refineOnce splits blocks by comparing, for every agent, the set of
// current-round blocks each world's successors land in. Worlds agreeing
// on their old block and on every agent's successor-block-set keep
// sharing a block; any disagreement forces a split.
func refineOnce(s *state.State, blockOf []int, numBlocks int) ([]int, int, bool) {
	n := len(blockOf)
	agents := allAgents(s)

	keys := make([]string, n)
	for w := 0; w < n; w++ {
		keys[w] = refinementKey(s, blockOf, w, agents)
	}

	next := make([]int, n)
	seen := make(map[string]int, numBlocks)
	nextN := 0
	for w := 0; w < n; w++ {
		b, ok := seen[keys[w]]
		if !ok {
			b = nextN
			seen[keys[w]] = b
			nextN++
		}
		next[w] = b
	}

	return next, nextN, nextN != numBlocks
}

// refinementKey encodes (old block, per-agent sorted successor block
// set) into a string suitable as a map key.
func refinementKey(s *state.State, blockOf []int, w int, agents []language.Agent) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(blockOf[w]))
	for _, ag := range agents {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(int(ag)))
		sb.WriteByte(':')
		succBlocks := make([]int, 0)
		s.Possible(ag, w).ForEach(func(v int) {
			succBlocks = append(succBlocks, blockOf[v])
		})
		sort.Ints(succBlocks)
		for i, b := range succBlocks {
			if i > 0 && b == succBlocks[i-1] {
				continue
			}
			sb.WriteByte(',')
			sb.WriteString(strconv.Itoa(b))
		}
	}
	return sb.String()
}

// allAgents collects every agent with an outgoing edge from some world of
// s, sorted ascending so refinementKey is deterministic.
func allAgents(s *state.State) []language.Agent {
	seen := make(map[language.Agent]struct{})
	for w := 0; w < s.NumWorlds(); w++ {
		for _, ag := range s.Agents(w) {
			seen[ag] = struct{}{}
		}
	}
	out := make([]language.Agent, 0, len(seen))
	for ag := range seen {
		out = append(out, ag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
