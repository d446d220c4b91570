package beam

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Solver solves the square linear system a·x = b.
type Solver interface {
	Solve(a mat.Matrix, b mat.Vector) (*mat.VecDense, error)
}

// SolveRotations solves the reduced rotation system for the unknown node
// rotations. Any solver failure is reported as ErrSingularSystem.
func SolveRotations(s Solver, sys ReducedSystem) (*mat.VecDense, error) {
	theta, err := s.Solve(sys.Matrix, sys.Load)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}
	return theta, nil
}

// Recovery selects how support reactions are recovered from the rotations.
type Recovery int

const (
	// RecoveryReference computes R = F - K·θ.
	RecoveryReference Recovery = iota
	// RecoveryEquilibrium computes R = F + K·θ, the fixed-end reactions plus
	// the forces the rotations induce. Support moments come out hogging on
	// continuous beams, matching the three-moment equation.
	RecoveryEquilibrium
)

func (r Recovery) String() string {
	if r == RecoveryEquilibrium {
		return "equilibrium"
	}
	return "reference"
}

// ParseRecovery converts "reference" or "equilibrium" to a Recovery.
func ParseRecovery(s string) (Recovery, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reference":
		return RecoveryReference, nil
	case "equilibrium":
		return RecoveryEquilibrium, nil
	}
	return RecoveryReference, fmt.Errorf("unknown reaction recovery %q (want reference or equilibrium)", s)
}

// Reactions computes the support reactions from the reduced reaction system
// and the solved rotations: R = F - K·θ, rounded to Precision.
func Reactions(sys ReducedSystem, theta *mat.VecDense) (*mat.VecDense, error) {
	return recoverReactions(sys, theta, -1)
}

// EquilibriumReactions computes R = F + K·θ, rounded to Precision.
func EquilibriumReactions(sys ReducedSystem, theta *mat.VecDense) (*mat.VecDense, error) {
	return recoverReactions(sys, theta, 1)
}

func recoverReactions(sys ReducedSystem, theta *mat.VecDense, sign float64) (*mat.VecDense, error) {
	r, c := sys.Matrix.Dims()
	if c != theta.Len() || r != sys.Load.Len() {
		return nil, fmt.Errorf("%w: reaction matrix is %dx%d, rotations %d, loads %d",
			ErrInvalidRequest, r, c, theta.Len(), sys.Load.Len())
	}

	internal := mat.NewVecDense(r, nil)
	internal.MulVec(sys.Matrix, theta)

	reactions := mat.NewVecDense(r, nil)
	reactions.AddScaledVec(sys.Load, sign, internal)
	for k := 0; k < r; k++ {
		reactions.SetVec(k, Round(reactions.AtVec(k)))
	}

	return reactions, nil
}
