package linsolve

import (
	"fmt"
	"math"

	"github.com/edp1096/sparse"
	"gonum.org/v1/gonum/mat"
)

// Sparse solves systems with the sparse LU factorization of
// github.com/edp1096/sparse. Only non-zero entries of a are loaded.
type Sparse struct{}

func sparseConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// Solve loads a into a sparse matrix, factors it and solves a·x = b.
func (Sparse) Solve(a mat.Matrix, b mat.Vector) (*mat.VecDense, error) {
	n, err := checkSystem(a, b)
	if err != nil {
		return nil, err
	}

	m, err := sparse.Create(int64(n), sparseConfig())
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}
	defer m.Destroy()

	// sparse uses 1-based indices for the matrix and both vectors.
	m.Clear()
	rows := make([]int, n)
	cols := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := a.At(i, j); v != 0 {
				m.GetElement(int64(i+1), int64(j+1)).Real += v
				rows[i]++
				cols[j]++
			}
		}
	}
	for k := 0; k < n; k++ {
		if rows[k] == 0 || cols[k] == 0 {
			return nil, fmt.Errorf("%w: row or column %d is empty", ErrSingular, k+1)
		}
	}

	if err := m.Factor(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	rhs := make([]float64, n+1)
	for i := 0; i < n; i++ {
		rhs[i+1] = b.AtVec(i)
	}

	sol, err := m.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := sol[i+1]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite solution at row %d", ErrSingular, i+1)
		}
		x.SetVec(i, v)
	}
	return x, nil
}
