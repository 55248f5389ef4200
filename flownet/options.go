package flownet

import "fmt"

// Option configures a FlowNetwork via functional arguments at construction.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*netOptions)

// netOptions holds the tunables attached to a network for its lifetime.
type netOptions struct {
	// verbose prints every augmentation (path and bottleneck).
	verbose bool

	// onAugment is invoked after each applied augmentation with the
	// source→sink path and the bottleneck pushed along it.
	onAugment func(path []int, bottleneck int64)

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns sane defaults: silent, with a no-op hook.
func defaultOptions() netOptions {
	return netOptions{
		verbose:   false,
		onAugment: func([]int, int64) {},
		err:       nil,
	}
}

// WithVerbose prints each augmentation as it is applied.
func WithVerbose() Option {
	return func(o *netOptions) {
		o.verbose = true
	}
}

// WithOnAugment registers a callback observing every applied augmentation.
// The path slice is freshly allocated per call; the callback may retain it.
// A nil callback is an invalid option → ErrOptionViolation.
func WithOnAugment(fn func(path []int, bottleneck int64)) Option {
	return func(o *netOptions) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnAugment callback must not be nil", ErrOptionViolation)
			return
		}
		o.onAugment = fn
	}
}
