package beam_test

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/alexiusacademia/gocbeam/internal/linsolve"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func simplySupported() beam.Request {
	return beam.Request{
		Length: 10,
		Loads:  []beam.PointLoad{{Magnitude: 100, Position: 5}},
		E:      1,
		I:      1,
	}
}

func threeSpan() beam.Request {
	return beam.Request{
		Length:   6,
		Supports: []float64{2, 4},
		Loads:    []beam.PointLoad{{10, 1}, {20, 3}, {10, 5}},
		E:        1,
		I:        1,
	}
}

func TestAnalyze_SimplySupported(t *testing.T) {
	res, err := beam.Analyze(simplySupported())
	require.NoError(t, err)

	require.Equal(t, []float64{10}, res.Segments)
	require.Equal(t, 2, res.Nodes())

	fe := res.FixedEnds[0]
	require.Equal(t, 0, fe.Segment)
	require.Equal(t, 50.0, fe.FLeft)
	require.Equal(t, 50.0, fe.FRight)
	require.Equal(t, -fe.MLeft, fe.MRight)

	require.Equal(t, []float64{50, -125, 50, 125}, beam.Floats(res.LoadVector))

	rot := beam.Floats(res.Rotations)
	require.Len(t, rot, 2)
	require.InDelta(t, -625, rot[0], 1e-9)
	require.InDelta(t, 625, rot[1], 1e-9)

	require.Equal(t, []float64{50, 50}, beam.Floats(res.Reactions))
	require.InDelta(t, 0, res.Equilibrium(), beam.Tolerance)
}

func TestAnalyze_ThreeSpan(t *testing.T) {
	res, err := beam.Analyze(threeSpan())
	require.NoError(t, err)

	r, c := res.Global.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 8, c)

	r, c = res.Rotation.Matrix.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	require.Equal(t, [][]float64{
		{2, 1, 0, 0},
		{1, 4, 1, 0},
		{0, 1, 4, 1},
		{0, 0, 1, 2},
	}, beam.Rows(res.Rotation.Matrix))
	require.Equal(t, []float64{-2.5, -2.5, 2.5, 2.5}, beam.Floats(res.Rotation.Load))

	r, c = res.Reaction.Matrix.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	require.Equal(t, []float64{5, 15, 15, 5}, beam.Floats(res.Reaction.Load))

	want := []float64{-1, -0.5, 0.5, 1}
	rot := beam.Floats(res.Rotations)
	require.Len(t, rot, 4)
	for i := range want {
		require.InDelta(t, want[i], rot[i], 1e-9)
	}

	reactions := beam.Floats(res.Reactions)
	require.Equal(t, []float64{7.25, 12.75, 12.75, 7.25}, reactions)

	var sum float64
	for _, v := range reactions {
		sum += v
	}
	require.InDelta(t, 40, sum, beam.Tolerance)
}

func TestAnalyze_FlexuralRigidity(t *testing.T) {
	req := threeSpan()
	req.E = 2
	req.I = 3

	res, err := beam.Analyze(req)
	require.NoError(t, err)

	// rotations scale with 1/EI, reactions do not depend on EI
	want := []float64{-1.0 / 6, -0.5 / 6, 0.5 / 6, 1.0 / 6}
	for i, v := range beam.Floats(res.Rotations) {
		require.InDelta(t, want[i], v, 1e-9)
	}
	require.Equal(t, []float64{7.25, 12.75, 12.75, 7.25}, beam.Floats(res.Reactions))
}

func TestAnalyze_Idempotent(t *testing.T) {
	req := beam.Request{
		Length:   17.3,
		Supports: []float64{12.1, 4.4, 8},
		Loads:    []beam.PointLoad{{12, 16}, {3.3, 0.7}, {40, 9.25}, {18, 6}},
		E:        200e6,
		I:        0.00031,
	}

	first, err := beam.Analyze(req)
	require.NoError(t, err)
	second, err := beam.Analyze(req)
	require.NoError(t, err)

	require.Equal(t, first.Summary(), second.Summary())
	require.InDelta(t, 0, first.Equilibrium(), 1e-4)

	// the request is not mutated, the result holds a sorted copy
	require.Equal(t, []float64{12.1, 4.4, 8}, req.Supports)
	require.Equal(t, []float64{4.4, 8, 12.1}, first.Request.Supports)
}

func TestAnalyze_SolversAgree(t *testing.T) {
	req := beam.Request{
		Length:   20,
		Supports: []float64{3, 7.5, 11, 16},
		Loads:    []beam.PointLoad{{10, 1}, {22, 5}, {7, 9.9}, {15, 13.5}, {4, 19}},
		E:        30000,
		I:        0.0036,
	}

	dense, err := beam.Analyze(req, beam.WithSolver(linsolve.Dense{}))
	require.NoError(t, err)
	sparse, err := beam.Analyze(req, beam.WithSolver(linsolve.Sparse{}))
	require.NoError(t, err)

	require.True(t, mat.EqualApprox(dense.Rotations, sparse.Rotations, 1e-9))
	require.InDeltaSlice(t, beam.Floats(dense.Reactions), beam.Floats(sparse.Reactions), 2*beam.Tolerance)
}

func TestAnalyze_Placement(t *testing.T) {
	req := threeSpan()
	req.Loads = append(req.Loads, beam.PointLoad{Magnitude: 30, Position: 4})

	_, err := beam.Analyze(req)
	require.ErrorIs(t, err, beam.ErrUndefinedLoadPlacement)

	left, err := beam.Analyze(req, beam.WithPlacement(beam.PlacementLeft))
	require.NoError(t, err)
	right, err := beam.Analyze(req, beam.WithPlacement(beam.PlacementRight))
	require.NoError(t, err)

	require.Equal(t, beam.Floats(left.Reactions), beam.Floats(right.Reactions))
	require.Equal(t, []float64{7.25, 12.75, 42.75, 7.25}, beam.Floats(left.Reactions))
}

type failingSolver struct{}

func (failingSolver) Solve(mat.Matrix, mat.Vector) (*mat.VecDense, error) {
	return nil, linsolve.ErrSingular
}

func TestAnalyze_SingularSystem(t *testing.T) {
	_, err := beam.Analyze(simplySupported(), beam.WithSolver(failingSolver{}))
	require.ErrorIs(t, err, beam.ErrSingularSystem)
	require.ErrorIs(t, err, linsolve.ErrSingular)
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*beam.Request)
	}{
		{"zero length", func(r *beam.Request) { r.Length = 0 }},
		{"negative E", func(r *beam.Request) { r.E = -1 }},
		{"zero I", func(r *beam.Request) { r.I = 0 }},
		{"support at left end", func(r *beam.Request) { r.Supports = []float64{0, 2} }},
		{"support at right end", func(r *beam.Request) { r.Supports = []float64{2, 6} }},
		{"support outside", func(r *beam.Request) { r.Supports = []float64{2, 7} }},
		{"duplicate support", func(r *beam.Request) { r.Supports = []float64{2, 4, 2} }},
		{"support near left end", func(r *beam.Request) { r.Supports = []float64{1e-6} }},
		{"support near right end", func(r *beam.Request) { r.Supports = []float64{2, 5.999999} }},
		{"supports closer than precision", func(r *beam.Request) { r.Supports = []float64{2.000004, 2.000006} }},
		{"load outside", func(r *beam.Request) { r.Loads = []beam.PointLoad{{1, 6.5}} }},
		{"negative load position", func(r *beam.Request) { r.Loads = []beam.PointLoad{{1, -1}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := threeSpan()
			tt.modify(&req)
			_, err := beam.Analyze(req)
			require.True(t, errors.Is(err, beam.ErrInvalidRequest), "got %v", err)
		})
	}

	require.NoError(t, threeSpan().Validate())
}

func TestAnalyze_NoLoads(t *testing.T) {
	req := threeSpan()
	req.Loads = nil

	res, err := beam.Analyze(req)
	require.NoError(t, err)
	for _, v := range beam.Floats(res.Rotations) {
		require.Equal(t, 0.0, v)
	}
	for _, v := range beam.Floats(res.Reactions) {
		require.Equal(t, 0.0, v)
	}
}
