package bisim

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/epiplan/state"
)

// SignatureStore interns per-world, per-depth signatures behind stable
// uint64 ids, letting StateID compute a canonical identifier for a state
// up to a depth budget: two states (even built independently, over
// different label.Stores) that are k-bisimilar receive the same id.
//
// A world's depth-h signature is (label, {(agent, sorted set of
// depth-(h-1) signatures of its agent-successors)}); depth-0 is just the
// label, written as its true atoms rather than its store-local id. This recursive definition is what makes StateID cheap to compare
// — an O(1) integer equality — in exchange for paying the recursive
// signature computation once per state. SignatureStore is safe for
// concurrent use.
type SignatureStore struct {
	mu       sync.RWMutex
	interned map[string]uint64
	next     uint64
}

// NewSignatureStore returns an empty SignatureStore.
func NewSignatureStore() *SignatureStore {
	return &SignatureStore{interned: make(map[string]uint64)}
}

// intern returns the stable id for key, assigning a fresh one on first
// sight.
func (st *SignatureStore) intern(key string) uint64 {
	st.mu.RLock()
	id, ok := st.interned[key]
	st.mu.RUnlock()
	if ok {
		return id
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if id, ok := st.interned[key]; ok {
		return id
	}
	id = st.next
	st.next++
	st.interned[key] = id
	return id
}

// StateID computes a canonical id for s up to depth budget k: worlds
// further apart than k relation-hops in their signature computation are
// not distinguished beyond depth k, matching the resolving power of a
// k-bounded bisimulation contraction. The id is the interned signature of
// the sorted set of s's designated worlds' depth-k signatures.
func (st *SignatureStore) StateID(s *state.State, k int) uint64 {
	cache := make([]map[int]uint64, k+1)
	for h := range cache {
		cache[h] = make(map[int]uint64, s.NumWorlds())
	}
	agents := allAgents(s)

	var sigAt func(w, h int) uint64
	sigAt = func(w, h int) uint64 {
		if id, ok := cache[h][w]; ok {
			return id
		}
		var sb strings.Builder
		for i, a := range s.Label(w).TrueAtoms() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(a)))
		}
		if h > 0 {
			for _, ag := range agents {
				sb.WriteByte('|')
				sb.WriteString(strconv.Itoa(int(ag)))
				sb.WriteByte(':')
				succ := make([]uint64, 0)
				s.Possible(ag, w).ForEach(func(v int) {
					succ = append(succ, sigAt(v, h-1))
				})
				sort.Slice(succ, func(i, j int) bool { return succ[i] < succ[j] })
				for i, id := range succ {
					if i > 0 && id == succ[i-1] {
						continue
					}
					sb.WriteByte(',')
					sb.WriteString(strconv.FormatUint(id, 10))
				}
			}
		}
		id := st.intern(sb.String())
		cache[h][w] = id
		return id
	}

	designated := make([]uint64, 0)
	s.Designated().ForEach(func(w int) {
		designated = append(designated, sigAt(w, k))
	})
	sort.Slice(designated, func(i, j int) bool { return designated[i] < designated[j] })

	var sb strings.Builder
	sb.WriteString("state:")
	for i, id := range designated {
		if i > 0 && id == designated[i-1] {
			continue
		}
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatUint(id, 10))
	}
	return st.intern(sb.String())
}
