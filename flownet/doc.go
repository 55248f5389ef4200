// Package flownet implements a single-source, single-sink flow network over
// dense integer node indices, and computes its maximum flow with the
// Edmonds–Karp algorithm (Ford–Fulkerson with shortest augmenting paths
// chosen by breadth-first search).
//
// # Model
//
// A network is built once from a square capacity matrix: entry [i][j] is the
// capacity of the directed edge i→j, and a zero entry means "no edge" (zero
// edges are never materialized). The network owns the residual graph, one
// ordered list of outgoing edges per node, and mutates it in place as flow
// is pushed: forward capacity is consumed, exhausted edges are dropped from
// their list, and reverse edges carrying the pushed amount are appended so
// later augmentations may undo flow.
//
// # API
//
// The incremental surface mirrors the algorithm itself:
//
//	net, err := flownet.New(source, sink, capacity)
//	for net.FindPath() {
//	}
//	total := net.MaxFlow()
//
// Each FindPath call performs exactly one augmentation: a BFS over the
// residual graph, then a two-pass walk of the discovered path (bottleneck,
// then apply). It returns false, idempotently and with no side effects, once
// the sink is unreachable. Compute wraps the loop with context cancellation
// for callers that prefer a one-shot call:
//
//	total, net, err := flownet.Compute(ctx, source, sink, capacity)
//
// After exhaustion, MinCut reports the source-side partition and the cut
// capacity, which equals MaxFlow by the max-flow min-cut theorem.
//
// # Options
//
//	WithVerbose()        – print every augmentation
//	WithOnAugment(fn)    – observe each augmenting path and its bottleneck
//
// # Errors
//
//	ErrInvalidNetwork  – umbrella for every construction failure
//	ErrNilMatrix       – nil or empty capacity matrix
//	ErrNonSquare       – ragged or non-square capacity matrix
//	ErrVertexRange     – source or sink outside [0, vertices)
//	ErrSourceIsSink    – source and sink coincide
//	CapacityError      – negative capacity entry (carries From, To, Cap)
//	ErrOptionViolation – invalid functional option
//
// "No augmenting path remains" is a normal boolean result, never an error.
// A residual edge missing mid-update is an internal invariant violation and
// panics rather than corrupting the flow accounting.
//
// # Complexity
//
//	Time:   O(V · E²) total: O(V·E) augmentations, O(V + E) BFS each.
//	Memory: O(V + E) for the residual lists plus O(V²) retained originals
//	        (used only by MinCut).
//
// # Concurrency
//
// A FlowNetwork is owned by one logical caller: FindPath mutates the
// adjacency lists in place and is not safe for concurrent use.
package flownet
