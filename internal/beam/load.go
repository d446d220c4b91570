package beam

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// PointLoad is a concentrated force acting on the beam.
type PointLoad struct {
	Magnitude float64 `json:"magnitude"` // P, positive acts downward
	Position  float64 `json:"position"`  // x measured from the left end
}

// ParsePointLoad parses "P@x", for example "20@3.5".
func ParsePointLoad(s string) (PointLoad, error) {
	mag, pos, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return PointLoad{}, fmt.Errorf("load %q: want P@x", s)
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(mag), 64)
	if err != nil {
		return PointLoad{}, fmt.Errorf("load %q: magnitude: %w", s, err)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
	if err != nil {
		return PointLoad{}, fmt.Errorf("load %q: position: %w", s, err)
	}
	return PointLoad{Magnitude: p, Position: x}, nil
}

// Placement decides which segment owns a load that sits exactly on an
// interior support.
type Placement int

const (
	// PlacementStrict rejects such loads with ErrUndefinedLoadPlacement.
	PlacementStrict Placement = iota
	// PlacementLeft assigns the load to the segment ending at the support.
	PlacementLeft
	// PlacementRight assigns the load to the segment starting at the support.
	PlacementRight
)

func (p Placement) String() string {
	switch p {
	case PlacementLeft:
		return "left"
	case PlacementRight:
		return "right"
	default:
		return "strict"
	}
}

// ParsePlacement converts "strict", "left" or "right" to a Placement.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PlacementStrict, nil
	case "left":
		return PlacementLeft, nil
	case "right":
		return PlacementRight, nil
	}
	return PlacementStrict, fmt.Errorf("unknown placement %q (want strict, left or right)", s)
}

// FixedEnd holds the fixed-end forces one load produces on the segment that
// contains it.
type FixedEnd struct {
	Segment int       // index of the containing segment
	Load    PointLoad // the load itself
	Length  float64   // L_e of the containing segment
	A       float64   // distance from the left node
	B       float64   // distance to the right node

	FLeft  float64 // force at the left node
	MLeft  float64 // moment at the left node
	FRight float64 // force at the right node
	MRight float64 // moment at the right node
}

// LocateSegment returns the index of the segment containing x, given the
// ascending node boundaries [0, supports..., L].
//
// The segment is the one whose right boundary is the first boundary strictly
// greater than x. The beam ends belong to their only adjacent segment. A load
// on an interior support is resolved by placement.
func LocateSegment(boundaries []float64, x float64, placement Placement) (int, error) {
	n := len(boundaries)
	if n < 2 {
		return 0, fmt.Errorf("%w: need at least two boundaries, got %d", ErrInvalidRequest, n)
	}
	last := boundaries[n-1]
	if math.IsNaN(x) || x < boundaries[0] || x > last {
		return 0, fmt.Errorf("%w: load position %g outside [%g, %g]", ErrInvalidRequest, x, boundaries[0], last)
	}
	if x == last {
		return n - 2, nil
	}

	j := sort.Search(n, func(i int) bool { return boundaries[i] > x })
	seg := j - 1

	if seg > 0 && boundaries[seg] == x {
		switch placement {
		case PlacementLeft:
			return seg - 1, nil
		case PlacementRight:
			return seg, nil
		default:
			return 0, &PlacementError{Position: x, Boundary: seg}
		}
	}

	return seg, nil
}

// FixedEndForces computes the fixed-end quadruplet of load p on the segment
// [left, right] of length l. Every value is rounded to Precision.
func FixedEndForces(p PointLoad, left, right, l float64) FixedEnd {
	a := Round(p.Position - left)
	b := Round(right - p.Position)
	P := p.Magnitude

	l2 := l * l
	l3 := l2 * l

	return FixedEnd{
		Load:   p,
		Length: l,
		A:      a,
		B:      b,
		FLeft:  Round(P * b * b * (b + 3*a) / l3),
		MLeft:  Round(-(P * a * b * b) / l2),
		FRight: Round(P * a * a * (a + 3*b) / l3),
		MRight: Round(P * b * a * a / l2),
	}
}

// SortLoads returns a copy of loads ordered by ascending position. Loads at
// the same position keep their input order.
func SortLoads(loads []PointLoad) []PointLoad {
	sorted := make([]PointLoad, len(loads))
	copy(sorted, loads)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}

// AssembleLoads computes the fixed-end forces of every load and the global
// load vector [F_0, M_0, F_1, M_1, ...].
//
// Node j receives the right-hand values of the loads in segment j-1 and the
// left-hand values of the loads in segment j. Loads are sorted internally,
// so the input order does not matter.
func AssembleLoads(boundaries, segments []float64, loads []PointLoad, placement Placement) ([]FixedEnd, *mat.VecDense, error) {
	if len(boundaries) != len(segments)+1 {
		return nil, nil, fmt.Errorf("%w: %d boundaries for %d segments", ErrInvalidRequest, len(boundaries), len(segments))
	}

	sorted := SortLoads(loads)
	fixed := make([]FixedEnd, 0, len(sorted))

	for i, p := range sorted {
		seg, err := LocateSegment(boundaries, p.Position, placement)
		if err != nil {
			return nil, nil, fmt.Errorf("load %d: %w", i+1, err)
		}
		fe := FixedEndForces(p, boundaries[seg], boundaries[seg+1], segments[seg])
		fe.Segment = seg
		fixed = append(fixed, fe)
	}

	nodes := len(boundaries)
	vec := mat.NewVecDense(2*nodes, nil)
	for j := 0; j < nodes; j++ {
		var f, m float64
		for _, fe := range fixed {
			if fe.Segment == j-1 {
				f = Round(f + fe.FRight)
				m = Round(m + fe.MRight)
			}
		}
		for _, fe := range fixed {
			if fe.Segment == j {
				f = Round(f + fe.FLeft)
				m = Round(m + fe.MLeft)
			}
		}
		vec.SetVec(2*j, f)
		vec.SetVec(2*j+1, m)
	}

	return fixed, vec, nil
}
