package beam

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ReducedSystem is the global system after the zero-displacement boundary
// conditions have been applied. Matrix is scaled by E·I, Load is not.
type ReducedSystem struct {
	Matrix *mat.Dense
	Load   *mat.VecDense
}

// ReduceRotation keeps the rotation DOFs (odd indices) in both rows and
// columns of the global matrix and the load vector, then multiplies the
// matrix by e and i.
func ReduceRotation(global *mat.Dense, load *mat.VecDense, e, i float64) (ReducedSystem, error) {
	n, err := checkSystem(global, load)
	if err != nil {
		return ReducedSystem{}, err
	}
	rot := dofs(n, 1)
	return reduce(global, load, rot, rot, rot, e, i), nil
}

// ReduceReaction keeps the displacement rows (even indices) and the
// rotation columns (odd indices) of the global matrix, giving the
// rectangular map from rotations to support forces. The load vector keeps
// its force entries. The matrix is multiplied by e and i.
func ReduceReaction(global *mat.Dense, load *mat.VecDense, e, i float64) (ReducedSystem, error) {
	n, err := checkSystem(global, load)
	if err != nil {
		return ReducedSystem{}, err
	}
	disp := dofs(n, 0)
	return reduce(global, load, disp, dofs(n, 1), disp, e, i), nil
}

func checkSystem(global *mat.Dense, load *mat.VecDense) (int, error) {
	r, c := global.Dims()
	if r != c || r%2 != 0 {
		return 0, fmt.Errorf("%w: global matrix is %dx%d", ErrInvalidRequest, r, c)
	}
	if load.Len() != r {
		return 0, fmt.Errorf("%w: load vector has %d entries for a %dx%d matrix", ErrInvalidRequest, load.Len(), r, c)
	}
	return r, nil
}

// dofs lists the indices below n with the given parity, in order.
func dofs(n, parity int) []int {
	idx := make([]int, 0, n/2)
	for k := parity; k < n; k += 2 {
		idx = append(idx, k)
	}
	return idx
}

func reduce(global *mat.Dense, load *mat.VecDense, rows, cols, loadRows []int, e, i float64) ReducedSystem {
	m := mat.NewDense(len(rows), len(cols), nil)
	for r, gr := range rows {
		for c, gc := range cols {
			m.Set(r, c, global.At(gr, gc))
		}
	}
	m.Scale(e, m)
	m.Scale(i, m)

	f := mat.NewVecDense(len(loadRows), nil)
	for r, gr := range loadRows {
		f.SetVec(r, load.AtVec(gr))
	}

	return ReducedSystem{Matrix: m, Load: f}
}
