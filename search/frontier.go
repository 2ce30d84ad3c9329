package search

import "sort"

// frontier orders nodes for breadth-first expansion, keyed by graph depth:
// pushes land in the bucket for their depth, and the lowest non-empty
// depth is always served next, so nodes are expanded in non-decreasing
// graph depth regardless of the order they were pushed in.
type frontier struct {
	buckets map[int][]*node
	depths  []int // kept sorted ascending
}

func newFrontier() *frontier {
	return &frontier{buckets: make(map[int][]*node)}
}

func (f *frontier) push(n *node) {
	d := n.graphDepth
	if _, ok := f.buckets[d]; !ok {
		i := sort.SearchInts(f.depths, d)
		f.depths = append(f.depths, 0)
		copy(f.depths[i+1:], f.depths[i:])
		f.depths[i] = d
	}
	f.buckets[d] = append(f.buckets[d], n)
}

func (f *frontier) empty() bool { return len(f.depths) == 0 }

// popFront removes and returns the front node of the lowest non-empty
// depth bucket.
func (f *frontier) popFront() *node {
	d := f.depths[0]
	bucket := f.buckets[d]
	n := bucket[0]
	bucket = bucket[1:]
	if len(bucket) == 0 {
		delete(f.buckets, d)
		f.depths = f.depths[1:]
	} else {
		f.buckets[d] = bucket
	}
	return n
}
