package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Normal-weight concrete coefficient for Ec (Section 419.2.2.1)
	EcCoefficient = 4700.0
)

// ModulusConcrete returns Ec = 4700√f'c in MPa for normal-weight concrete.
// NSCP 2015 Section 419.2.2.1
func ModulusConcrete(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return EcCoefficient * math.Sqrt(fc)
}
