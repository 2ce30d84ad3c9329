package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/epiplan/action"
	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/label"
	"github.com/katalvlaran/epiplan/language"
	"github.com/katalvlaran/epiplan/state"
)

// ErrTooFewChildren is returned by MuddyChildren when n < 1.
var ErrTooFewChildren = errors.New("scenario: muddy children needs at least one child")

// ErrActualOutOfRange is returned by MuddyChildren when actual encodes a
// status for a child beyond [0, n).
var ErrActualOutOfRange = errors.New("scenario: actual assignment out of range")

// MuddyChildren builds the classic DEL benchmark: n children, each
// either muddy or clean, where child i can see every other child's
// forehead but not their own. actual is a bitmask of which children are
// actually muddy (bit i set means child i is muddy); it is encoded as
// the sole designated world.
//
// Every possible assignment is represented as its own world (2^n total),
// labeled by which "muddy_i" atoms hold. Child i's accessibility relation
// connects a world to itself and to the one world differing only in
// child i's own status: the standard S5 "can't see your own forehead"
// equivalence.
//
// Returns the state, the language.Registry naming its n agents and n
// "muddy_i" atoms (agent i and atom i share index i), and the label.Store
// the state resolves against, which callers need to build further
// actions or compare states.
func MuddyChildren(n int, actual uint64, opts ...Option) (*state.State, *language.Registry, *label.Store, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 1 {
		return nil, nil, nil, ErrTooFewChildren
	}
	if actual >= (uint64(1) << uint(n)) {
		return nil, nil, nil, ErrActualOutOfRange
	}

	lang := language.New()
	atoms := make([]language.Atom, n)
	agents := make([]language.Agent, n)
	for i := 0; i < n; i++ {
		atoms[i] = lang.AddAtom(fmt.Sprintf("muddy_%d", i))
		agents[i] = lang.AddAgent(fmt.Sprintf("%s%d", cfg.namePrefix, i))
	}

	store := label.NewStore()
	b := state.NewBuilder(store)
	numWorlds := uint64(1) << uint(n)
	worldOf := make([]int, numWorlds)
	for w := uint64(0); w < numWorlds; w++ {
		trueAtoms := make([]language.Atom, 0, n)
		for i := 0; i < n; i++ {
			if w&(1<<uint(i)) != 0 {
				trueAtoms = append(trueAtoms, atoms[i])
			}
		}
		worldOf[w] = b.AddWorld(store.Emplace(label.New(trueAtoms...)))
	}

	for w := uint64(0); w < numWorlds; w++ {
		for i := 0; i < n; i++ {
			flipped := w ^ (uint64(1) << uint(i))
			if err := b.AddEdge(agents[i], worldOf[w], worldOf[w]); err != nil {
				return nil, nil, nil, err
			}
			if err := b.AddEdge(agents[i], worldOf[w], worldOf[flipped]); err != nil {
				return nil, nil, nil, err
			}
		}
	}

	if err := b.Designate(worldOf[actual]); err != nil {
		return nil, nil, nil, err
	}

	s, err := b.Build()
	if err != nil {
		return nil, nil, nil, err
	}
	return s, lang, store, nil
}

// AnnounceAtLeastOneMuddy builds the father's public announcement that at
// least one of the n children is muddy: a single, purely epistemic,
// designated event with precondition Or(muddy_0, ..., muddy_{n-1}), where
// lang is the registry MuddyChildren(n, ...) returned.
func AnnounceAtLeastOneMuddy(n int, lang *language.Registry) (*action.Action, error) {
	disjuncts := make([]*formula.Formula, n)
	for i := 0; i < n; i++ {
		atom, err := lang.AtomID(fmt.Sprintf("muddy_%d", i))
		if err != nil {
			return nil, err
		}
		disjuncts[i] = formula.NewAtom(atom)
	}

	b := action.NewBuilder("at least one muddy")
	e, err := b.AddEvent(formula.NewOr(disjuncts...))
	if err != nil {
		return nil, err
	}
	for _, ag := range lang.Agents() {
		if err := b.AddEdge(ag, e, e); err != nil {
			return nil, err
		}
	}
	if err := b.Designate(e); err != nil {
		return nil, err
	}
	return b.Build()
}
