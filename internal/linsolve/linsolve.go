// Package linsolve provides the linear solver backends used to solve the
// reduced beam stiffness system: a dense LU solver built on gonum and a
// sparse LU solver built on edp1096/sparse.
package linsolve

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Solver solves the square system a·x = b.
type Solver interface {
	Solve(a mat.Matrix, b mat.Vector) (*mat.VecDense, error)
}

// Names lists the backends accepted by New.
var Names = []string{"dense", "sparse"}

// New returns the backend with the given name.
func New(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dense":
		return Dense{}, nil
	case "sparse":
		return Sparse{}, nil
	}
	return nil, fmt.Errorf("unknown solver %q (want %s)", name, strings.Join(Names, " or "))
}

func checkSystem(a mat.Matrix, b mat.Vector) (int, error) {
	r, c := a.Dims()
	if r == 0 || r != c {
		return 0, fmt.Errorf("%w: coefficient matrix is %dx%d", ErrDimensionMismatch, r, c)
	}
	if b.Len() != r {
		return 0, fmt.Errorf("%w: right-hand side has %d entries, want %d", ErrDimensionMismatch, b.Len(), r)
	}
	return r, nil
}
