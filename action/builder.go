package action

import (
	"fmt"

	"github.com/katalvlaran/epiplan/bitset"
	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/language"
)

// Builder incrementally assembles an Action. The zero value is not usable;
// construct one with NewBuilder.
type Builder struct {
	name       string
	pre        []*formula.Formula
	post       []map[language.Atom]*formula.Formula
	relations  []map[language.Agent]bitset.Set
	designated bitset.Set
}

// NewBuilder returns an empty Builder named name, used only for display
// and logging.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, designated: bitset.Empty()}
}

// AddEvent appends a new event guarded by precondition pre and returns its
// index. Returns ErrNilPrecondition if pre is nil.
func (b *Builder) AddEvent(pre *formula.Formula) (int, error) {
	if pre == nil {
		return 0, ErrNilPrecondition
	}
	idx := len(b.pre)
	b.pre = append(b.pre, pre)
	b.post = append(b.post, nil)
	b.relations = append(b.relations, nil)
	return idx, nil
}

// SetPostcondition marks event e as ontic, setting atom to the truth value
// of guard (evaluated against the pre-update world) once e is applied.
func (b *Builder) SetPostcondition(e int, atom language.Atom, guard *formula.Formula) error {
	if e < 0 || e >= len(b.pre) {
		return fmt.Errorf("%w: %d", ErrEventOutOfRange, e)
	}
	if guard == nil {
		return ErrNilPrecondition
	}
	if b.post[e] == nil {
		b.post[e] = make(map[language.Atom]*formula.Formula, 1)
	}
	b.post[e][atom] = guard
	return nil
}

// AddEdge records that agent ag considers f possible from event e.
func (b *Builder) AddEdge(ag language.Agent, e, f int) error {
	if e < 0 || e >= len(b.pre) {
		return fmt.Errorf("%w: from=%d", ErrEventOutOfRange, e)
	}
	if f < 0 || f >= len(b.pre) {
		return fmt.Errorf("%w: to=%d", ErrEventOutOfRange, f)
	}
	if b.relations[e] == nil {
		b.relations[e] = make(map[language.Agent]bitset.Set, 1)
	}
	b.relations[e][ag] = b.relations[e][ag].Add(f)
	return nil
}

// Designate marks e as an event that actually occurs.
func (b *Builder) Designate(e int) error {
	if e < 0 || e >= len(b.pre) {
		return fmt.Errorf("%w: %d", ErrEventOutOfRange, e)
	}
	b.designated = b.designated.Add(e)
	return nil
}

// Build freezes the builder into an immutable Action. Returns ErrNoEvents
// if no event was added, or ErrNoDesignatedEvents if none was designated.
func (b *Builder) Build() (*Action, error) {
	if len(b.pre) == 0 {
		return nil, ErrNoEvents
	}
	if b.designated.IsEmpty() {
		return nil, ErrNoDesignatedEvents
	}

	ontic := make([]bool, len(b.pre))
	maxDepth := 0
	for e, pre := range b.pre {
		if pre.ModalDepth() > maxDepth {
			maxDepth = pre.ModalDepth()
		}
		if len(b.post[e]) > 0 {
			ontic[e] = true
			for _, guard := range b.post[e] {
				if guard.ModalDepth() > maxDepth {
					maxDepth = guard.ModalDepth()
				}
			}
		}
	}

	return &Action{
		name:       b.name,
		relations:  b.relations,
		pre:        b.pre,
		post:       b.post,
		designated: b.designated,
		ontic:      ontic,
		maxDepth:   maxDepth,
	}, nil
}
