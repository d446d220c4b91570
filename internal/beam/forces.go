package beam

import (
	"math"
	"sort"
)

// Station is the internal shear and bending moment at one position.
type Station struct {
	X      float64 `json:"x"`
	Shear  float64 `json:"shear"`
	Moment float64 `json:"moment"`
}

// Extremes are the governing internal forces along the beam.
type Extremes struct {
	MaxShear, MinShear   Station
	MaxMoment, MinMoment Station
}

// Equilibrium returns ΣR - ΣP, which is zero for a solved beam up to
// rounding.
func (r *Result) Equilibrium() float64 {
	var sum float64
	for k := 0; k < r.Reactions.Len(); k++ {
		sum += r.Reactions.AtVec(k)
	}
	for _, p := range r.Request.Loads {
		sum -= p.Magnitude
	}
	return sum
}

// At returns the shear and moment just right of x. Reactions act upward,
// loads act downward; sagging moment is positive.
func (r *Result) At(x float64) Station {
	s := Station{X: x}
	for k, b := range r.Boundaries {
		if b > x {
			break
		}
		R := r.Reactions.AtVec(k)
		s.Shear += R
		s.Moment += R * (x - b)
	}
	for _, p := range r.Request.Loads {
		if p.Position > x {
			break
		}
		s.Shear -= p.Magnitude
		s.Moment -= p.Magnitude * (x - p.Position)
	}
	s.Shear = Round(s.Shear)
	s.Moment = Round(s.Moment)
	return s
}

// InternalForces samples shear and moment at n evenly spaced stations
// (n >= 2) plus both sides of every support and load, so jumps in the shear
// diagram are kept. Stations are ordered by position.
func (r *Result) InternalForces(n int) []Station {
	if n < 2 {
		n = 2
	}
	length := r.Request.Length
	eps := length * 1e-9

	xs := make([]float64, 0, n+2*(len(r.Boundaries)+len(r.Request.Loads)))
	for k := 0; k < n; k++ {
		xs = append(xs, length*float64(k)/float64(n-1))
	}
	jump := func(x float64) {
		if x-eps > 0 {
			xs = append(xs, x-eps)
		}
		xs = append(xs, x)
	}
	for _, b := range r.Boundaries[1 : len(r.Boundaries)-1] {
		jump(b)
	}
	for _, p := range r.Request.Loads {
		jump(p.Position)
	}
	sort.Float64s(xs)

	stations := make([]Station, 0, len(xs))
	for k, x := range xs {
		if k > 0 && x == xs[k-1] {
			continue
		}
		s := r.At(x)
		// the last station sits on the right end, where the end reaction
		// closes the diagram; report the value just left of it instead
		if x == length {
			s = r.At(length - eps)
			s.X = length
		}
		stations = append(stations, s)
	}
	return stations
}

// FindExtremes returns the largest and smallest shear and moment over the
// given stations.
func FindExtremes(stations []Station) Extremes {
	var e Extremes
	if len(stations) == 0 {
		return e
	}
	e.MaxShear, e.MinShear = stations[0], stations[0]
	e.MaxMoment, e.MinMoment = stations[0], stations[0]
	for _, s := range stations[1:] {
		if s.Shear > e.MaxShear.Shear {
			e.MaxShear = s
		}
		if s.Shear < e.MinShear.Shear {
			e.MinShear = s
		}
		if s.Moment > e.MaxMoment.Moment {
			e.MaxMoment = s
		}
		if s.Moment < e.MinMoment.Moment {
			e.MinMoment = s
		}
	}
	return e
}

// MaxAbsMoment returns the largest bending moment magnitude over stations.
func MaxAbsMoment(stations []Station) float64 {
	e := FindExtremes(stations)
	return math.Max(math.Abs(e.MaxMoment.Moment), math.Abs(e.MinMoment.Moment))
}
