package label

import (
	"github.com/katalvlaran/epiplan/bitset"
	"github.com/katalvlaran/epiplan/language"
)

// ID is a dense, store-assigned identifier for an interned Label. ID 0 is
// the reserved null label.
type ID int

// NullID is the sentinel meaning "not yet computed".
const NullID ID = 0

// Label is a propositional valuation: the set of atoms that hold true.
// Labels are immutable; Store.Emplace is the only supported way to produce
// a Label with a stable id.
type Label struct {
	bits bitset.Set
}

// New returns the Label in which exactly the given atoms hold.
func New(trueAtoms ...language.Atom) Label {
	ids := make([]int, len(trueAtoms))
	for i, a := range trueAtoms {
		ids[i] = int(a)
	}
	return Label{bits: bitset.Of(ids...)}
}

// Holds reports whether atom a is true under l.
func (l Label) Holds(a language.Atom) bool {
	return l.bits.Contains(int(a))
}

// With returns a new Label equal to l but with atom a set to value.
func (l Label) With(a language.Atom, value bool) Label {
	if value {
		return Label{bits: l.bits.Add(int(a))}
	}
	return Label{bits: l.bits.Remove(int(a))}
}

// Equal reports whether l and m hold exactly the same atoms.
func (l Label) Equal(m Label) bool {
	return l.bits.Equal(m.bits)
}

// TrueAtoms returns the atoms that hold under l, in ascending order.
func (l Label) TrueAtoms() []language.Atom {
	items := l.bits.Items()
	out := make([]language.Atom, len(items))
	for i, v := range items {
		out[i] = language.Atom(v)
	}
	return out
}

// Store interns Labels behind dense, stable ids: structurally equal
// labels always resolve to the same id, for the lifetime of the Store.
type Store struct {
	byKey []Label
	index map[string]ID
}

// NewStore returns an empty Store. Id 0 is reserved before any label is
// emplaced.
func NewStore() *Store {
	return &Store{
		byKey: make([]Label, 1), // index 0 reserved for NullID
		index: make(map[string]ID),
	}
}

// Emplace interns l and returns its id, reusing the existing id if an
// equal label was already interned.
func (s *Store) Emplace(l Label) ID {
	key := labelKey(l)
	if id, ok := s.index[key]; ok {
		return id
	}
	id := ID(len(s.byKey))
	s.byKey = append(s.byKey, l)
	s.index[key] = id
	return id
}

// Get returns the Label interned at id. Panics if id is out of range or
// NullID — callers must only pass ids previously returned by Emplace.
func (s *Store) Get(id ID) Label {
	if id == NullID {
		panic("label: Get(NullID)")
	}
	return s.byKey[id]
}

func labelKey(l Label) string {
	// A label's bit-vector items are exactly its identity; the ascending
	// item list serializes to a stable, collision-free map key.
	items := l.bits.Items()
	buf := make([]byte, 0, len(items)*5)
	for _, v := range items {
		buf = appendVarint(buf, v)
	}
	return string(buf)
}

func appendVarint(buf []byte, v int) []byte {
	u := uint32(v)
	for u >= 0x80 {
		buf = append(buf, byte(u)|0x80)
		u >>= 7
	}
	return append(buf, byte(u))
}
