// Package epiplan is an epistemic planner built on Dynamic Epistemic Logic
// (DEL): pointed multi-agent Kripke structures, event-model product update,
// bisimulation-based state contraction, and an iterative-bounded BFS search
// over the resulting state space.
//
// 🚀 What is epiplan?
//
//	A modular planner that brings together:
//
//	  • Core epistemic primitives: Kripke states, event models, formulas
//	  • Bisimulation: signature-based partition refinement and contraction
//	  • Search: bound-escalating BFS over product-updated states
//
// ✨ Design goals
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Rock-solid         — an R/W lock guards the SignatureStore; label.Store
//     and the other types are not synchronized
//   - Extensible         — pluggable Printer hooks for search observability
//   - Pure Go            — no cgo
//
// Under the hood, everything is organized under focused subpackages:
//
//	language/   — agent and atom name registries
//	formula/    — propositional + epistemic (Box/Diamond) formula trees
//	label/      — interned valuations (which atoms hold at a world)
//	bitset/     — compressed world-set primitive backing relations
//	state/      — pointed Kripke structures and their Builder
//	action/     — event models (action/announcement templates) and their Builder
//	checker/    — formula evaluation against a state
//	update/     — product update (state ⊗ action -> state)
//	bisim/      — bounded signature refinement, contraction, bisimilarity
//	planning/   — a planning Task: initial state, actions, goal
//	search/     — the iterative-bounded BFS planner
//	scenario/   — ready-made DEL benchmarks (e.g. muddy children)
//
// Dive into SPEC_FULL.md and DESIGN.md for the full design rationale.
package epiplan
