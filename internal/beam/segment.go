package beam

import (
	"fmt"
	"math"
)

// Precision is the number of decimal places every rounded quantity keeps.
const Precision = 5

// Tolerance is the accepted accumulated rounding error (1e-5).
var Tolerance = math.Pow10(-Precision)

// Round rounds x to Precision decimal places, half away from zero.
func Round(x float64) float64 {
	scale := math.Pow10(Precision)
	return math.Round(x*scale) / scale
}

// Segments returns the element lengths between consecutive nodes of a beam
// of the given length with supports at the given sorted positions.
// The lengths always add up to length within Tolerance; if they don't,
// ErrStructuralInconsistency is returned and the run must be aborted.
// A segment that rounds to zero length yields ErrInvalidRequest.
func Segments(length float64, supports []float64) ([]float64, error) {
	if len(supports) == 0 {
		return []float64{Round(length)}, nil
	}

	result := make([]float64, 0, len(supports)+1)
	for i := 0; i <= len(supports); i++ {
		switch {
		case i == 0:
			result = append(result, Round(supports[0]))
		case i == len(supports):
			result = append(result, Round(length-supports[i-1]))
		default:
			result = append(result, Round(supports[i]-supports[i-1]))
		}
	}

	var sum float64
	for _, l := range result {
		sum += l
	}
	if math.Abs(Round(sum)-length) > Tolerance {
		return nil, fmt.Errorf("%w: sum=%g, length=%g", ErrStructuralInconsistency, Round(sum), length)
	}
	for i, l := range result {
		if l <= 0 {
			return nil, fmt.Errorf("%w: segment %d rounds to length %g", ErrInvalidRequest, i+1, l)
		}
	}

	return result, nil
}

// Boundaries returns the node positions of the beam: 0, every support and
// the beam length. Both ends are always nodes.
func Boundaries(length float64, supports []float64) []float64 {
	b := make([]float64, 0, len(supports)+2)
	b = append(b, 0)
	b = append(b, supports...)
	return append(b, length)
}
