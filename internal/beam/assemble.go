package beam

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// GlobalSize returns the order of the global stiffness matrix for n
// elements: two DOFs for each of the n+1 nodes.
func GlobalSize(n int) int {
	return 4 + 2*(n-1)
}

// Assemble adds the 4x4 element matrices into the global stiffness matrix.
//
// The result is allocated once at its final size. Element i is added at
// offset 2*i, so the 2x2 block of the node shared by elements i-1 and i
// holds the sum of both contributions.
func Assemble(elements []*mat.Dense) (*mat.Dense, error) {
	if len(elements) == 0 {
		return nil, ErrNoElements
	}

	n := GlobalSize(len(elements))
	global := mat.NewDense(n, n, nil)

	for i, k := range elements {
		r, c := k.Dims()
		if r != 4 || c != 4 {
			return nil, fmt.Errorf("beam: element %d is %dx%d, want 4x4", i, r, c)
		}
		offset := 2 * i
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				global.Set(offset+row, offset+col, global.At(offset+row, offset+col)+k.At(row, col))
			}
		}
	}

	return global, nil
}
