// Package edmondskarp computes the maximum flow of a directed network
// with integer edge capacities, using the Edmonds–Karp refinement of the
// Ford–Fulkerson method: augmenting paths are always the shortest available,
// found by breadth-first search over the residual graph.
//
// 🚀 What lives here?
//
//	A small, focused library built around one aggregate:
//		• flownet/ — the FlowNetwork residual-graph structure, its
//		  augmenting-path search, residual update, and min-cut extraction
//		• cmd/maxflow/ — a demonstration driver for the canonical
//		  six-node network
//
// ✨ Why this shape?
//
//   - Minimal API – construct once from a capacity matrix, then drive
//     FindPath to exhaustion (or call Compute and let it loop for you)
//   - Exact integer arithmetic – no epsilon policy, no float drift
//   - Loud failures – malformed input is a sentinel error, a broken
//     internal invariant is a panic, never a silently wrong flow value
//
// See flownet's package documentation for the full contract, complexity
// notes, and error taxonomy.
//
//	go get github.com/DMabugat/edmonds-karp/flownet
package edmondskarp
