package beam

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the stiffness pipeline. Callers match them
// with errors.Is; context is added with fmt.Errorf("...: %w", err).
var (
	// ErrStructuralInconsistency means the segment lengths no longer add up
	// to the beam length. It indicates a defect, not bad input.
	ErrStructuralInconsistency = errors.New("beam: segment lengths do not sum to beam length")

	// ErrSingularSystem means the reduced rotation matrix could not be
	// inverted for the given support configuration.
	ErrSingularSystem = errors.New("beam: cannot solve for this support configuration")

	// ErrUndefinedLoadPlacement means a load sits exactly on an interior
	// support and the placement policy does not resolve the tie.
	ErrUndefinedLoadPlacement = errors.New("beam: load placed exactly on a support")

	// ErrInvalidRequest means a precondition of the request was violated.
	ErrInvalidRequest = errors.New("beam: invalid request")

	// ErrNoElements is returned when assembling an empty element list.
	ErrNoElements = errors.New("beam: no elements to assemble")
)

// PlacementError describes a load that landed on a segment boundary.
type PlacementError struct {
	Position float64 // load position
	Boundary int     // index of the boundary (node) it coincides with
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v: position %g coincides with node %d", ErrUndefinedLoadPlacement, e.Position, e.Boundary)
}

func (e *PlacementError) Unwrap() error {
	return ErrUndefinedLoadPlacement
}
