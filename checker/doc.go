// Package checker evaluates formulas against a Kripke state: Holds reports
// whether a formula is true at a specific world, and Satisfies reports
// whether it is true at every designated world, the standard DEL notion of
// a formula holding "at" a pointed model.
//
// Evaluation is a direct structural recursion over formula.Formula's kinds,
// mirroring the single-dispatch design formula.Formula itself was built
// around, rather than a class hierarchy reached through type assertions.
package checker
