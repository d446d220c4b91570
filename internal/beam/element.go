package beam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ElementStiffness returns the 4x4 Euler-Bernoulli stiffness matrix of an
// element of length l with unit flexural rigidity. Local DOFs are ordered
// [disp_left, rot_left, disp_right, rot_right].
//
// l must be positive; Segments never produces anything else, so a
// non-positive length is a programming error and panics.
func ElementStiffness(l float64) *mat.Dense {
	if !(l > 0) || math.IsInf(l, 0) {
		panic(fmt.Sprintf("beam: element length must be positive, got %g", l))
	}

	l2 := l * l
	l3 := l2 * l

	return mat.NewDense(4, 4, []float64{
		12 / l3, 6 / l2, -12 / l3, 6 / l2,
		6 / l2, 4 / l, -6 / l2, 2 / l,
		-12 / l3, -6 / l2, 12 / l3, -6 / l2,
		6 / l2, 2 / l, -6 / l2, 4 / l,
	})
}

// ElementStiffnesses builds one element matrix per segment length.
func ElementStiffnesses(segments []float64) []*mat.Dense {
	elements := make([]*mat.Dense, len(segments))
	for i, l := range segments {
		elements[i] = ElementStiffness(l)
	}
	return elements
}
