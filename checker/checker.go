package checker

import (
	"fmt"

	"github.com/katalvlaran/epiplan/formula"
	"github.com/katalvlaran/epiplan/state"
)

// Holds reports whether f is true at world w of s.
//
// Box and Diamond recurse over every world ag considers possible from w;
// an empty possibility set makes Box vacuously true and Diamond false,
// matching the usual Kripke semantics.
func Holds(s *state.State, w int, f *formula.Formula) bool {
	switch f.Kind() {
	case formula.True:
		return true
	case formula.False:
		return false
	case formula.Atom:
		return s.Label(w).Holds(f.AtomID())
	case formula.Not:
		return !Holds(s, w, f.Sub())
	case formula.And:
		for _, sub := range f.Args() {
			if !Holds(s, w, sub) {
				return false
			}
		}
		return true
	case formula.Or:
		for _, sub := range f.Args() {
			if Holds(s, w, sub) {
				return true
			}
		}
		return false
	case formula.Imply:
		return !Holds(s, w, f.Lhs()) || Holds(s, w, f.Rhs())
	case formula.Box:
		ok := true
		s.Possible(f.AgentID(), w).ForEach(func(v int) {
			ok = ok && Holds(s, v, f.Sub())
		})
		return ok
	case formula.Diamond:
		found := false
		s.Possible(f.AgentID(), w).ForEach(func(v int) {
			found = found || Holds(s, v, f.Sub())
		})
		return found
	default:
		panic(fmt.Sprintf("checker: unhandled formula kind %d", f.Kind()))
	}
}

// Satisfies reports whether f holds at every designated world of s, the
// standard notion of a formula being true "at" a pointed Kripke model.
func Satisfies(s *state.State, f *formula.Formula) bool {
	ok := true
	s.Designated().ForEach(func(w int) {
		ok = ok && Holds(s, w, f)
	})
	return ok
}
