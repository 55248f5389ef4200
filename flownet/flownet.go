package flownet

// edge is one directed residual arc. It is owned exclusively by the
// adjacency list of its origin node; the origin index is implicit in the
// list's position, only the destination and remaining capacity are stored.
type edge struct {
	to       int
	capacity int64
}

// FlowNetwork owns the residual graph of one source→sink max-flow
// computation. It is constructed once from a capacity matrix and then
// driven by FindPath until no augmenting path remains; it is not designed
// for reuse with a different source or sink.
type FlowNetwork struct {
	// graph[u] is the ordered list of residual edges leaving u.
	// Order is insertion order; it only affects BFS tie-breaking.
	graph    [][]edge
	original [][]int64 // construction-time capacities, read by MinCut
	vertices int
	source   int
	sink     int
	maxFlow  int64
	opts     netOptions
}

// New builds a FlowNetwork from a square capacity matrix: capacity[i][j]
// is the capacity of the directed edge i→j, zero meaning no edge.
// Zero entries are never materialized as edges, so every residual edge in
// the network carries strictly positive capacity.
//
// Returns an error wrapping ErrInvalidNetwork when the matrix is nil or
// empty, non-square, holds a negative entry (CapacityError), or when
// source/sink are out of range or equal; ErrOptionViolation on a bad Option.
func New(source, sink int, capacity [][]int64, opts ...Option) (*FlowNetwork, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(capacity)
	if n == 0 {
		return nil, ErrNilMatrix
	}
	for _, row := range capacity {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return nil, ErrVertexRange
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}

	net := &FlowNetwork{
		graph:    make([][]edge, n),
		original: make([][]int64, n),
		vertices: n,
		source:   source,
		sink:     sink,
		opts:     o,
	}
	for u := 0; u < n; u++ {
		net.original[u] = make([]int64, n)
		copy(net.original[u], capacity[u])
		for v, c := range capacity[u] {
			if c < 0 {
				return nil, CapacityError{From: u, To: v, Cap: c}
			}
			if c > 0 {
				net.graph[u] = append(net.graph[u], edge{to: v, capacity: c})
			}
		}
	}

	return net, nil
}

// MaxFlow reports the flow accumulated so far: the sum of the bottlenecks
// of every augmenting path applied. It is the final maximum flow once
// FindPath has been driven to exhaustion.
func (n *FlowNetwork) MaxFlow() int64 { return n.maxFlow }

// Vertices reports the node count of the network.
func (n *FlowNetwork) Vertices() int { return n.vertices }

// Source reports the fixed source index.
func (n *FlowNetwork) Source() int { return n.source }

// Sink reports the fixed sink index.
func (n *FlowNetwork) Sink() int { return n.sink }

// ResidualCapacity reports the total remaining capacity from u to v,
// summing parallel residual entries (reverse edges from repeated
// augmentations accumulate as separate list entries). Out-of-range
// indices report zero.
func (n *FlowNetwork) ResidualCapacity(u, v int) int64 {
	if u < 0 || u >= n.vertices || v < 0 || v >= n.vertices {
		return 0
	}
	var total int64
	for _, e := range n.graph[u] {
		if e.to == v {
			total += e.capacity
		}
	}

	return total
}
