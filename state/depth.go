package state

// queueItem pairs a world with the depth it was discovered at: a plain
// FIFO queue processed level by level.
type queueItem struct {
	world int
	depth int
}

// computeDepth runs a multi-source breadth-first search seeded with every
// designated world at depth 0, following edges of any agent. It returns the
// per-world depth slice and the maximum finite depth observed. Worlds never
// reached from a designated world are assigned sentinel depth maxDepth+1
// once the BFS settles on the true maximum over reachable worlds.
func computeDepth(s *State) ([]int, int) {
	n := s.NumWorlds()
	depth := make([]int, n)
	visited := make([]bool, n)
	for i := range depth {
		depth[i] = -1
	}

	queue := make([]queueItem, 0, n)
	s.designated.ForEach(func(w int) {
		if !visited[w] {
			visited[w] = true
			depth[w] = 0
			queue = append(queue, queueItem{world: w, depth: 0})
		}
	})

	maxDepth := 0
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.depth > maxDepth {
			maxDepth = item.depth
		}

		nextDepth := item.depth + 1
		for _, ag := range s.Agents(item.world) {
			s.Possible(ag, item.world).ForEach(func(v int) {
				if !visited[v] {
					visited[v] = true
					depth[v] = nextDepth
					queue = append(queue, queueItem{world: v, depth: nextDepth})
				}
			})
		}
	}

	for w := 0; w < n; w++ {
		if depth[w] == -1 {
			depth[w] = maxDepth + 1
		}
	}
	return depth, maxDepth
}
