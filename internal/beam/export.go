package beam

import "gonum.org/v1/gonum/mat"

// Summary is a plain-slice view of a Result, suitable for JSON encoding and
// tabular export.
type Summary struct {
	Request    Request     `json:"request"`
	Segments   []float64   `json:"segments"`
	Boundaries []float64   `json:"boundaries"`
	Global     [][]float64 `json:"global_stiffness"`
	FixedEnds  []FixedEnd  `json:"fixed_end_forces"`
	LoadVector []float64   `json:"load_vector"`

	RotationMatrix [][]float64 `json:"rotation_matrix"`
	RotationLoad   []float64   `json:"rotation_load"`
	ReactionMatrix [][]float64 `json:"reaction_matrix"`
	ReactionLoad   []float64   `json:"reaction_load"`

	Rotations   []float64 `json:"rotations"`
	Reactions   []float64 `json:"reactions"`
	Equilibrium float64   `json:"equilibrium_residual"`
}

// Summary converts r to its plain-slice view.
func (r *Result) Summary() Summary {
	return Summary{
		Request:        r.Request,
		Segments:       r.Segments,
		Boundaries:     r.Boundaries,
		Global:         Rows(r.Global),
		FixedEnds:      r.FixedEnds,
		LoadVector:     Floats(r.LoadVector),
		RotationMatrix: Rows(r.Rotation.Matrix),
		RotationLoad:   Floats(r.Rotation.Load),
		ReactionMatrix: Rows(r.Reaction.Matrix),
		ReactionLoad:   Floats(r.Reaction.Load),
		Rotations:      Floats(r.Rotations),
		Reactions:      Floats(r.Reactions),
		Equilibrium:    Round(r.Equilibrium()),
	}
}

// Rows copies m into a row-major slice of slices.
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// Floats copies v into a slice.
func Floats(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
