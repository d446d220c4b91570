package linsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultMaxCond is the largest condition number Dense accepts.
const DefaultMaxCond = 1e12

// Dense solves systems with a partially pivoted LU factorization.
type Dense struct {
	// MaxCond overrides DefaultMaxCond when positive.
	MaxCond float64
}

// Solve factorizes a and solves a·x = b.
func (d Dense) Solve(a mat.Matrix, b mat.Vector) (*mat.VecDense, error) {
	n, err := checkSystem(a, b)
	if err != nil {
		return nil, err
	}

	limit := d.MaxCond
	if limit <= 0 {
		limit = DefaultMaxCond
	}

	var lu mat.LU
	lu.Factorize(a)
	if cond := lu.Cond(); math.IsNaN(cond) || cond > limit {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingular, cond)
	}

	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return x, nil
}
