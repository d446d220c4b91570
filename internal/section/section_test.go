package section_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/alexiusacademia/gocbeam/internal/section"
	"github.com/stretchr/testify/require"
)

func TestRectangle(t *testing.T) {
	s := section.Rectangle(2, 4)
	require.NoError(t, s.Validate())

	p := s.CalculateProperties()
	require.Equal(t, 8.0, p.Area)
	require.Equal(t, 2.0, p.Width)
	require.Equal(t, 4.0, p.Height)
	require.InDelta(t, 1, p.CentroidX, 1e-12)
	require.InDelta(t, 2, p.CentroidY, 1e-12)
	require.InDelta(t, 2*64/12.0, p.Ixx, 1e-9)
	require.InDelta(t, 4*8/12.0, p.Iyy, 1e-9)

	require.Equal(t, section.RectangleInertia(2, 4), s.MomentOfInertia())
	require.Equal(t, 10.66667, s.MomentOfInertia())
}

func TestCalculateProperties_Triangle(t *testing.T) {
	s := &section.Section{Vertices: []section.Point{{0, 0}, {3, 0}, {0, 6}}}
	p := s.CalculateProperties()

	require.InDelta(t, 9, p.Area, 1e-12)
	require.InDelta(t, 1, p.CentroidX, 1e-12)
	require.InDelta(t, 2, p.CentroidY, 1e-12)
	require.InDelta(t, 18, p.Ixx, 1e-9) // b·h³/36
	require.InDelta(t, 4.5, p.Iyy, 1e-9)
}

func TestCalculateProperties_TeeClockwise(t *testing.T) {
	tee := []section.Point{
		{1.5, 0}, {2.5, 0}, {2.5, 3}, {4, 3}, {4, 4}, {0, 4}, {0, 3}, {1.5, 3},
	}
	ccw := &section.Section{Vertices: tee}
	cw := &section.Section{Vertices: slices.Clone(tee)}
	slices.Reverse(cw.Vertices)

	for _, s := range []*section.Section{ccw, cw} {
		p := s.CalculateProperties()
		require.InDelta(t, 7, p.Area, 1e-12)
		require.InDelta(t, 18.5/7, p.CentroidY, 1e-12)
		require.InDelta(t, 9.440476, p.Ixx, 1e-5)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    section.Section
	}{
		{"too few vertices", section.Section{Vertices: []section.Point{{0, 0}, {1, 0}}}},
		{"collinear", section.Section{Vertices: []section.Point{{0, 0}, {1, 0}, {2, 0}}}},
		{"repeated vertex", section.Section{Vertices: []section.Point{{0, 0}, {1, 0}, {1, 0}, {0, 1}}}},
		{"negative E", section.Section{E: -1, Vertices: section.Rectangle(1, 1).Vertices}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			var verr *section.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rect.json")
	body := `{
  "name": "R300x500",
  "e": 25000,
  "vertices": [{"x": 0, "y": 0}, {"x": 300, "y": 0}, {"x": 300, "y": 500}, {"x": 0, "y": 500}]
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := section.LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "R300x500", s.Name)
	require.Equal(t, 25000.0, s.E)
	require.Equal(t, section.RectangleInertia(300, 500), s.MomentOfInertia())

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"vertices": [{"x": 0, "y": 0}]}`), 0o644))
	_, err = section.LoadFromFile(bad)
	require.Error(t, err)

	_, err = section.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
