package flownet

import "context"

// Compute constructs a network and drives FindPath to exhaustion, checking
// ctx between augmentations. It returns the accumulated flow together with
// the exhausted network, which stays available for residual and min-cut
// inspection.
//
// On cancellation the flow accumulated so far and the partially augmented
// network are returned alongside ctx.Err(); every applied augmentation was
// atomic, so the network remains internally consistent.
//
// Complexity: O(V · E²) time, O(V + E) memory beyond the network itself.
func Compute(
	ctx context.Context,
	source, sink int,
	capacity [][]int64,
	opts ...Option,
) (int64, *FlowNetwork, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	net, err := New(source, sink, capacity, opts...)
	if err != nil {
		return 0, nil, err
	}

	for net.FindPath() {
		select {
		case <-ctx.Done():
			return net.maxFlow, net, ctx.Err()
		default:
		}
	}

	return net.maxFlow, net, nil
}
