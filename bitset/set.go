package bitset

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is an immutable-by-convention collection of non-negative int ids.
// Callers are expected to build a Set with Empty/Of and then only read from
// it; all mutating methods return a new Set rather than modifying in
// place, matching the "immutable after construction" discipline the rest
// of the planner core follows for labels, relations, and formulas.
type Set struct {
	bm *roaring.Bitmap
}

// Empty returns a Set with no members.
func Empty() Set {
	return Set{bm: roaring.New()}
}

// Of returns a Set containing exactly the given ids.
func Of(ids ...int) Set {
	s := Set{bm: roaring.New()}
	for _, id := range ids {
		s.bm.Add(uint32(id))
	}
	return s
}

// Contains reports whether id is a member of s.
func (s Set) Contains(id int) bool {
	if s.bm == nil {
		return false
	}
	return s.bm.Contains(uint32(id))
}

// Add returns a new Set equal to s with id inserted.
func (s Set) Add(id int) Set {
	out := s.clone()
	out.bm.Add(uint32(id))
	return out
}

// Remove returns a new Set equal to s with id removed.
func (s Set) Remove(id int) Set {
	out := s.clone()
	out.bm.Remove(uint32(id))
	return out
}

// Len returns the number of members of s.
func (s Set) Len() int {
	if s.bm == nil {
		return 0
	}
	return int(s.bm.GetCardinality())
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return s.bm == nil || s.bm.IsEmpty()
}

// Items returns the members of s in ascending order. The returned slice is
// owned by the caller.
func (s Set) Items() []int {
	if s.bm == nil {
		return nil
	}
	raw := s.bm.ToArray()
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = int(v)
	}
	return out
}

// ForEach calls f for every member of s in ascending order.
func (s Set) ForEach(f func(id int)) {
	if s.bm == nil {
		return
	}
	it := s.bm.Iterator()
	for it.HasNext() {
		f(int(it.Next()))
	}
}

// And returns the intersection of s and t.
func (s Set) And(t Set) Set {
	return Set{bm: roaring.And(orEmpty(s), orEmpty(t))}
}

// Or returns the union of s and t.
func (s Set) Or(t Set) Set {
	return Set{bm: roaring.Or(orEmpty(s), orEmpty(t))}
}

// AndNot returns the members of s that are not members of t.
func (s Set) AndNot(t Set) Set {
	return Set{bm: roaring.AndNot(orEmpty(s), orEmpty(t))}
}

// Equal reports whether s and t have the same members.
func (s Set) Equal(t Set) bool {
	return orEmpty(s).Equals(orEmpty(t))
}

// Min returns the smallest member of s and true, or (0, false) if s is empty.
func (s Set) Min() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return int(s.bm.Minimum()), true
}

func (s Set) clone() Set {
	if s.bm == nil {
		return Set{bm: roaring.New()}
	}
	return Set{bm: s.bm.Clone()}
}

func orEmpty(s Set) *roaring.Bitmap {
	if s.bm == nil {
		return roaring.New()
	}
	return s.bm
}

// SortedInts sorts ints ascending in place; a small helper used wherever a
// deterministic iteration order over a plain []int is needed without the
// overhead of constructing a Set.
func SortedInts(ids []int) []int {
	sort.Ints(ids)
	return ids
}
