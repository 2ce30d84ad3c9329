package formula

import "github.com/katalvlaran/epiplan/language"

// Kind tags which variant a Formula node is: a single tagged struct with
// exhaustive switch dispatch over Kind, rather than a type hierarchy.
type Kind int

const (
	// True is the formula that holds in every world.
	True Kind = iota
	// False is the formula that holds in no world.
	False
	// Atom holds in a world iff the world's label sets the given atom.
	Atom
	// Not is propositional negation.
	Not
	// And is n-ary propositional conjunction.
	And
	// Or is n-ary propositional disjunction.
	Or
	// Imply is binary propositional implication.
	Imply
	// Box is universal modality: holds at w iff Sub holds at every world
	// Agent considers accessible from w.
	Box
	// Diamond is existential modality: holds at w iff Sub holds at some
	// world Agent considers accessible from w.
	Diamond
)

// Formula is an immutable node in a boolean/modal formula tree. The zero
// value is not meaningful; formulas are built exclusively through the
// constructors in this package, which is what guarantees ModalDepth is
// always precomputed correctly.
type Formula struct {
	kind  Kind
	atom  language.Atom
	agent language.Agent
	sub   *Formula   // Not, Box, Diamond
	lhs   *Formula   // Imply
	rhs   *Formula   // Imply
	args  []*Formula // And, Or

	modalDepth int
}

// Kind returns which variant f is.
func (f *Formula) Kind() Kind { return f.kind }

// ModalDepth returns the maximum nesting of Box/Diamond in f. True, False,
// and Atom formulas have modal depth 0.
func (f *Formula) ModalDepth() int { return f.modalDepth }

// IsPropositional reports whether f has modal depth 0.
func (f *Formula) IsPropositional() bool { return f.modalDepth == 0 }

// AtomID returns the atom of an Atom formula. Only valid when Kind() == Atom.
func (f *Formula) AtomID() language.Atom { return f.atom }

// AgentID returns the agent of a Box or Diamond formula. Only valid when
// Kind() is Box or Diamond.
func (f *Formula) AgentID() language.Agent { return f.agent }

// Sub returns the sole subformula of a Not, Box, or Diamond formula. Only
// valid for those kinds.
func (f *Formula) Sub() *Formula { return f.sub }

// Lhs returns the left side of an Imply formula. Only valid when Kind() == Imply.
func (f *Formula) Lhs() *Formula { return f.lhs }

// Rhs returns the right side of an Imply formula. Only valid when Kind() == Imply.
func (f *Formula) Rhs() *Formula { return f.rhs }

// Args returns the conjuncts/disjuncts of an And/Or formula. Only valid
// for those kinds. The returned slice must not be modified.
func (f *Formula) Args() []*Formula { return f.args }

// NewTrue returns the formula that holds everywhere.
func NewTrue() *Formula { return &Formula{kind: True} }

// NewFalse returns the formula that holds nowhere.
func NewFalse() *Formula { return &Formula{kind: False} }

// NewAtom returns the formula atom(a).
func NewAtom(a language.Atom) *Formula {
	return &Formula{kind: Atom, atom: a}
}

// NewNot returns the formula not(f).
func NewNot(f *Formula) *Formula {
	return &Formula{kind: Not, sub: f, modalDepth: f.modalDepth}
}

// NewAnd returns the formula and(fs). NewAnd() with no arguments is
// equivalent to NewTrue in truth value but retains And's Kind.
func NewAnd(fs ...*Formula) *Formula {
	return &Formula{kind: And, args: fs, modalDepth: maxDepth(fs)}
}

// NewOr returns the formula or(fs). NewOr() with no arguments is
// equivalent to NewFalse in truth value but retains Or's Kind.
func NewOr(fs ...*Formula) *Formula {
	return &Formula{kind: Or, args: fs, modalDepth: maxDepth(fs)}
}

// NewImply returns the formula imply(lhs, rhs).
func NewImply(lhs, rhs *Formula) *Formula {
	d := lhs.modalDepth
	if rhs.modalDepth > d {
		d = rhs.modalDepth
	}
	return &Formula{kind: Imply, lhs: lhs, rhs: rhs, modalDepth: d}
}

// NewBox returns the formula box(ag, f) — universal modality for ag.
func NewBox(ag language.Agent, f *Formula) *Formula {
	return &Formula{kind: Box, agent: ag, sub: f, modalDepth: f.modalDepth + 1}
}

// NewDiamond returns the formula diamond(ag, f) — existential modality for ag.
func NewDiamond(ag language.Agent, f *Formula) *Formula {
	return &Formula{kind: Diamond, agent: ag, sub: f, modalDepth: f.modalDepth + 1}
}

func maxDepth(fs []*Formula) int {
	d := 0
	for _, f := range fs {
		if f.modalDepth > d {
			d = f.modalDepth
		}
	}
	return d
}
