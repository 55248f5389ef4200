package flownet

import (
	"fmt"
	"math"
)

// FindPath advances the algorithm by one augmentation. It searches the
// residual graph for a shortest (fewest-edges) source→sink path by
// breadth-first search; on success it applies the path to the residual
// graph, grows MaxFlow by the path's bottleneck, and returns true.
// It returns false, with no side effects, when the sink is unreachable,
// and keeps returning false on every call after exhaustion.
//
// Not safe for concurrent use: the adjacency lists are mutated in place.
func (n *FlowNetwork) FindPath() bool {
	parent := make([]int, n.vertices)
	visited := make([]bool, n.vertices)
	queue := make([]int, 0, n.vertices)

	visited[n.source] = true
	queue = append(queue, n.source)

	for len(queue) > 0 {
		if visited[n.sink] {
			break
		}
		for _, e := range n.graph[queue[0]] {
			if visited[e.to] {
				continue
			}
			parent[e.to] = queue[0]
			visited[e.to] = true
			if e.to == n.sink {
				// sink discovered: scanning further edges of this node
				// cannot shorten the path
				break
			}
			queue = append(queue, e.to)
		}
		queue = queue[1:]
	}

	if !visited[n.sink] {
		return false
	}
	n.augment(parent)

	return true
}

// augment walks the parent chain sink→source twice: the first pass computes
// the bottleneck, the second applies it to the residual lists. Both passes
// locate each path edge with the same first-found lookup, so they agree on
// the edge instance within a call.
func (n *FlowNetwork) augment(parent []int) {
	bottleneck := int64(math.MaxInt64)
	for node := n.sink; node != n.source; node = parent[node] {
		p := parent[node]
		if c := n.graph[p][n.findEdge(p, node)].capacity; c < bottleneck {
			bottleneck = c
		}
	}

	for node := n.sink; node != n.source; node = parent[node] {
		p := parent[node]
		i := n.findEdge(p, node)
		e := n.graph[p][i]
		n.graph[p] = append(n.graph[p][:i], n.graph[p][i+1:]...)
		e.capacity -= bottleneck
		// reverse edge carries the pushed amount so later paths can undo it;
		// repeats along the same direction accumulate as separate entries
		n.graph[node] = append(n.graph[node], edge{to: p, capacity: bottleneck})
		if e.capacity != 0 {
			// surviving forward edge re-enters at the tail of the list
			n.graph[p] = append(n.graph[p], e)
		}
	}

	n.maxFlow += bottleneck

	path := n.pathOf(parent)
	if n.opts.verbose {
		fmt.Printf("flownet: augmented by %d along %v, total %d\n", bottleneck, path, n.maxFlow)
	}
	n.opts.onAugment(path, bottleneck)
}

// findEdge returns the index of the first edge u→to in u's residual list.
// The parent array produced by FindPath and the adjacency lists must agree
// on every path edge: a miss here means the flow accounting is already
// corrupt, so fail loudly instead of degrading to a zero-capacity edge.
func (n *FlowNetwork) findEdge(u, to int) int {
	for i, e := range n.graph[u] {
		if e.to == to {
			return i
		}
	}
	panic(fmt.Sprintf("flownet: internal: no residual edge %d→%d on augmenting path", u, to))
}

// pathOf reconstructs the source→sink path recorded in parent.
func (n *FlowNetwork) pathOf(parent []int) []int {
	path := []int{n.sink}
	for node := n.sink; node != n.source; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
