package flownet

// MinCut partitions the vertices into the set reachable from the source in
// the current residual graph and its complement, and reports the total
// original capacity crossing from the source side to the sink side,
// together with the source-side vertex indices in ascending order.
//
// Once FindPath has been driven to exhaustion the sink is unreachable, the
// partition is a valid source–sink cut, and its capacity equals MaxFlow by
// the max-flow min-cut theorem. Called earlier, the sink may still sit on
// the source side and the value is not a cut capacity.
//
// Complexity: O(V² + E): reachability BFS plus a scan of the retained
// original matrix.
func (n *FlowNetwork) MinCut() (int64, []int) {
	reachable := make([]bool, n.vertices)
	reachable[n.source] = true
	queue := []int{n.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range n.graph[u] {
			if !reachable[e.to] {
				reachable[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}

	var cut int64
	side := make([]int, 0, n.vertices)
	for u := 0; u < n.vertices; u++ {
		if !reachable[u] {
			continue
		}
		side = append(side, u)
		for v, c := range n.original[u] {
			if !reachable[v] {
				cut += c
			}
		}
	}

	return cut, side
}
