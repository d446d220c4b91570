package beam_test

import (
	"testing"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLocateSegment(t *testing.T) {
	boundaries := []float64{0, 2, 4, 6}

	tests := []struct {
		name      string
		x         float64
		placement beam.Placement
		want      int
	}{
		{"left end", 0, beam.PlacementStrict, 0},
		{"inside first", 1, beam.PlacementStrict, 0},
		{"inside middle", 3.999, beam.PlacementStrict, 1},
		{"inside last", 5, beam.PlacementStrict, 2},
		{"right end", 6, beam.PlacementStrict, 2},
		{"support, left policy", 2, beam.PlacementLeft, 0},
		{"support, right policy", 2, beam.PlacementRight, 1},
		{"second support, left policy", 4, beam.PlacementLeft, 1},
		{"second support, right policy", 4, beam.PlacementRight, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := beam.LocateSegment(boundaries, tt.x, tt.placement)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLocateSegment_Errors(t *testing.T) {
	boundaries := []float64{0, 2, 4, 6}

	_, err := beam.LocateSegment(boundaries, 4, beam.PlacementStrict)
	require.ErrorIs(t, err, beam.ErrUndefinedLoadPlacement)
	var perr *beam.PlacementError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 4.0, perr.Position)
	require.Equal(t, 2, perr.Boundary)

	_, err = beam.LocateSegment(boundaries, -0.1, beam.PlacementStrict)
	require.ErrorIs(t, err, beam.ErrInvalidRequest)

	_, err = beam.LocateSegment(boundaries, 6.1, beam.PlacementStrict)
	require.ErrorIs(t, err, beam.ErrInvalidRequest)

	_, err = beam.LocateSegment([]float64{0}, 0, beam.PlacementStrict)
	require.ErrorIs(t, err, beam.ErrInvalidRequest)
}

func TestParsePlacement(t *testing.T) {
	for in, want := range map[string]beam.Placement{
		"":        beam.PlacementStrict,
		"strict":  beam.PlacementStrict,
		"Left":    beam.PlacementLeft,
		" right ": beam.PlacementRight,
	} {
		got, err := beam.ParsePlacement(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NotEmpty(t, got.String())
	}

	_, err := beam.ParsePlacement("middle")
	require.Error(t, err)
}

func TestFixedEndForces_Midspan(t *testing.T) {
	fe := beam.FixedEndForces(beam.PointLoad{Magnitude: 100, Position: 5}, 0, 10, 10)

	require.Equal(t, 5.0, fe.A)
	require.Equal(t, 5.0, fe.B)
	require.Equal(t, 50.0, fe.FLeft)
	require.Equal(t, 50.0, fe.FRight)
	require.Equal(t, -125.0, fe.MLeft)
	require.Equal(t, 125.0, fe.MRight)
}

func TestFixedEndForces_Offset(t *testing.T) {
	// P=12 at a=1, b=3 on a 4 long segment
	fe := beam.FixedEndForces(beam.PointLoad{Magnitude: 12, Position: 3}, 2, 6, 4)

	require.Equal(t, 1.0, fe.A)
	require.Equal(t, 3.0, fe.B)
	require.Equal(t, 10.125, fe.FLeft)  // 12*9*6/64
	require.Equal(t, -6.75, fe.MLeft)   // -12*1*9/16
	require.Equal(t, 1.875, fe.FRight)  // 12*1*10/64
	require.Equal(t, 2.25, fe.MRight)   // 12*3*1/16
	require.InDelta(t, 12, fe.FLeft+fe.FRight, 1e-12)
}

func TestAssembleLoads_Scenario(t *testing.T) {
	boundaries := []float64{0, 2, 4, 6}
	segments := []float64{2, 2, 2}
	loads := []beam.PointLoad{{10, 1}, {20, 3}, {10, 5}}

	fixed, vec, err := beam.AssembleLoads(boundaries, segments, loads, beam.PlacementStrict)
	require.NoError(t, err)
	require.Len(t, fixed, 3)
	for i, fe := range fixed {
		require.Equal(t, i, fe.Segment)
	}

	want := []float64{5, -2.5, 15, -2.5, 15, 2.5, 5, 2.5}
	require.Equal(t, want, beam.Floats(vec))
}

func TestAssembleLoads_MultipleLoadsInOneSegment(t *testing.T) {
	boundaries := []float64{0, 10}
	segments := []float64{10}
	loads := []beam.PointLoad{{100, 5}, {40, 2.5}, {40, 7.5}}

	fixed, vec, err := beam.AssembleLoads(boundaries, segments, loads, beam.PlacementStrict)
	require.NoError(t, err)
	require.Len(t, fixed, 3)

	// sorted by position
	require.Equal(t, 2.5, fixed[0].Load.Position)
	require.Equal(t, 7.5, fixed[2].Load.Position)

	var fl, ml, fr, mr float64
	for _, fe := range fixed {
		fl += fe.FLeft
		ml += fe.MLeft
		fr += fe.FRight
		mr += fe.MRight
	}
	require.InDelta(t, fl, vec.AtVec(0), 1e-9)
	require.InDelta(t, ml, vec.AtVec(1), 1e-9)
	require.InDelta(t, fr, vec.AtVec(2), 1e-9)
	require.InDelta(t, mr, vec.AtVec(3), 1e-9)
	require.InDelta(t, 180, vec.AtVec(0)+vec.AtVec(2), 1e-9)
}

func TestAssembleLoads_OrderInvariant(t *testing.T) {
	boundaries := []float64{0, 3, 7.5, 12}
	segments := []float64{3, 4.5, 4.5}
	loads := []beam.PointLoad{{10, 1}, {25, 4.2}, {7, 11}, {3, 1}, {12.5, 8.8}}

	_, want, err := beam.AssembleLoads(boundaries, segments, loads, beam.PlacementStrict)
	require.NoError(t, err)

	permutations := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}
	for _, perm := range permutations {
		shuffled := make([]beam.PointLoad, len(loads))
		for i, j := range perm {
			shuffled[i] = loads[j]
		}
		_, got, err := beam.AssembleLoads(boundaries, segments, shuffled, beam.PlacementStrict)
		require.NoError(t, err)
		require.True(t, mat.Equal(want, got), "permutation %v", perm)
	}

	// the caller's slice is not reordered
	require.Equal(t, 25.0, loads[1].Magnitude)
}

func TestAssembleLoads_OnSupport(t *testing.T) {
	boundaries := []float64{0, 2, 4, 6}
	segments := []float64{2, 2, 2}
	loads := []beam.PointLoad{{30, 2}}

	_, _, err := beam.AssembleLoads(boundaries, segments, loads, beam.PlacementStrict)
	require.ErrorIs(t, err, beam.ErrUndefinedLoadPlacement)

	// both tie-breaks put the whole load onto the support's force DOF
	for _, p := range []beam.Placement{beam.PlacementLeft, beam.PlacementRight} {
		_, vec, err := beam.AssembleLoads(boundaries, segments, loads, p)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0, 30, 0, 0, 0, 0, 0}, beam.Floats(vec), "placement %v", p)
	}
}

func TestAssembleLoads_BeamEnds(t *testing.T) {
	boundaries := []float64{0, 4, 10}
	segments := []float64{4, 6}
	loads := []beam.PointLoad{{8, 0}, {5, 10}}

	fixed, vec, err := beam.AssembleLoads(boundaries, segments, loads, beam.PlacementStrict)
	require.NoError(t, err)
	require.Equal(t, 0, fixed[0].Segment)
	require.Equal(t, 1, fixed[1].Segment)
	require.Equal(t, []float64{8, 0, 0, 0, 5, 0}, beam.Floats(vec))
}

func TestParsePointLoad(t *testing.T) {
	p, err := beam.ParsePointLoad(" 20 @ 3.5")
	require.NoError(t, err)
	require.Equal(t, beam.PointLoad{Magnitude: 20, Position: 3.5}, p)

	for _, bad := range []string{"20", "x@1", "20@", "@1"} {
		_, err := beam.ParsePointLoad(bad)
		require.Error(t, err, bad)
	}
}
