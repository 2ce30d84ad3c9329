// Package bitset wraps a Roaring bitmap as the set representation shared by
// labels, accessibility relations, and designated sets. Bisimulation
// partitions do not use it: their blocks are plain int slices.
//
// The epistemic planner core needs, over and over, a set of small
// non-negative integers (worlds, events, atoms) supporting both O(1)-ish
// membership testing and cheap iteration over members: a bit-deque hybrid,
// part bitset and part sparse index. A Roaring bitmap
// (github.com/RoaringBitmap/roaring/v2) provides both natively, so Set
// wraps one directly rather than maintaining a bitset and a parallel
// sparse slice by hand.
package bitset
