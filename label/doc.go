// Package label interns propositional valuations — fixed-width bit vectors
// over the task's atoms — behind stable, dense numeric ids.
//
// Two labels are equal iff their bit vectors are equal, and the Store
// guarantees structural interning: valuations that compare equal always
// get the same id. Id 0 is reserved as the "null label" sentinel meaning
// "not yet computed" and is never returned by Store.Emplace for a real
// valuation.
package label
