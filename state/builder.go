package state

import (
	"fmt"

	"github.com/katalvlaran/epiplan/bitset"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
)

// Builder incrementally assembles a State. The zero value is not usable;
// construct one with NewBuilder.
type Builder struct {
	store      *label.Store
	labels     []label.ID
	relations  []map[language.Agent]bitset.Set
	designated bitset.Set
}

// NewBuilder returns an empty Builder whose worlds will resolve their
// labels against store. Every State built from states that must be
// compared or fed into the same product update should share one Store.
func NewBuilder(store *label.Store) *Builder {
	return &Builder{store: store, designated: bitset.Empty()}
}

// AddWorld appends a new world labeled lbl and returns its index.
func (b *Builder) AddWorld(lbl label.ID) int {
	idx := len(b.labels)
	b.labels = append(b.labels, lbl)
	b.relations = append(b.relations, nil)
	return idx
}

// AddEdge records that agent ag considers v possible from w. Both indices
// must already have been returned by AddWorld.
func (b *Builder) AddEdge(ag language.Agent, w, v int) error {
	if w < 0 || w >= len(b.labels) {
		return fmt.Errorf("%w: from=%d", ErrWorldOutOfRange, w)
	}
	if v < 0 || v >= len(b.labels) {
		return fmt.Errorf("%w: to=%d", ErrWorldOutOfRange, v)
	}
	if b.relations[w] == nil {
		b.relations[w] = make(map[language.Agent]bitset.Set, 1)
	}
	b.relations[w][ag] = b.relations[w][ag].Add(v)
	return nil
}

// Designate marks w as an actually possible (designated) world.
func (b *Builder) Designate(w int) error {
	if w < 0 || w >= len(b.labels) {
		return fmt.Errorf("%w: %d", ErrWorldOutOfRange, w)
	}
	b.designated = b.designated.Add(w)
	return nil
}

// Build freezes the builder into an immutable State, deriving each world's
// epistemic depth from the designated set. Returns ErrNoWorlds if no world
// was added, or ErrNoDesignatedWorlds if none was designated.
func (b *Builder) Build() (*State, error) {
	if len(b.labels) == 0 {
		return nil, ErrNoWorlds
	}
	if b.designated.IsEmpty() {
		return nil, ErrNoDesignatedWorlds
	}

	s := &State{
		store:      b.store,
		relations:  b.relations,
		labelIDs:   b.labels,
		designated: b.designated,
	}
	s.depth, s.maxDepth = computeDepth(s)
	return s, nil
}
