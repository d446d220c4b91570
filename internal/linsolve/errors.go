package linsolve

import "errors"

var (
	// ErrSingular is returned when the coefficient matrix cannot be
	// factorized or is too ill-conditioned to trust the solution.
	ErrSingular = errors.New("linsolve: singular matrix")

	// ErrDimensionMismatch is returned for non-square or empty matrices
	// and right-hand sides of the wrong length.
	ErrDimensionMismatch = errors.New("linsolve: dimension mismatch")
)
