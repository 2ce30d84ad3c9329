// Package bisim computes bisimulation partitions over Kripke states and
// the quotient (contracted) states they induce.
//
// Refine runs the same refine-and-compare-block-count loop as a bounded
// stratified partition refinement, either capped at a depth budget k
// (catching up to k-bisimilarity, cheap and sufficient for a formula of
// modal depth <= k) or run to a fixed point (exact bisimulation, the
// unbounded case). Contract turns a stable partition into a quotient
// State, one world per block, keeping the block member closest to a
// designated world as representative. AreBisimilar decides bisimilarity
// of two states via the disjoint-union technique: merge both states,
// refine to a fixed point, and check each state's designated worlds land
// in blocks shared with the other state. A SignatureStore computes
// canonical, structurally-interned ids for states up to a depth budget,
// letting planning search recognize that two differently-built states are
// the same state without a full bisimilarity check.
package bisim
