package flownet

import (
	"errors"
	"fmt"
)

// Every construction failure wraps ErrInvalidNetwork, so callers may match
// the whole family with errors.Is(err, ErrInvalidNetwork) or a specific
// cause with the narrower sentinel.
var (
	// ErrInvalidNetwork is the umbrella sentinel for malformed input at
	// construction. The network cannot be repaired; rebuild with valid input.
	ErrInvalidNetwork = errors.New("flownet: invalid network")

	// ErrNilMatrix is returned when the capacity matrix is nil or empty.
	ErrNilMatrix = fmt.Errorf("%w: capacity matrix is nil or empty", ErrInvalidNetwork)

	// ErrNonSquare is returned when the capacity matrix is not square.
	ErrNonSquare = fmt.Errorf("%w: capacity matrix is not square", ErrInvalidNetwork)

	// ErrVertexRange is returned when source or sink lies outside [0, vertices).
	ErrVertexRange = fmt.Errorf("%w: source or sink index out of range", ErrInvalidNetwork)

	// ErrSourceIsSink is returned when source and sink coincide.
	ErrSourceIsSink = fmt.Errorf("%w: source and sink must differ", ErrInvalidNetwork)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flownet: invalid option supplied")
)

// CapacityError reports a negative entry in the capacity matrix.
// It unwraps to ErrInvalidNetwork so the whole taxonomy stays matchable.
type CapacityError struct {
	From, To int
	Cap      int64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("flownet: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

func (e CapacityError) Unwrap() error { return ErrInvalidNetwork }
