package diagram_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/alexiusacademia/gocbeam/internal/diagram"
	"github.com/stretchr/testify/require"
)

func threeSpan(t *testing.T) *beam.Result {
	t.Helper()
	res, err := beam.Analyze(beam.Request{
		Length:   6,
		Supports: []float64{2, 4},
		Loads:    []beam.PointLoad{{Magnitude: 10, Position: 1}, {Magnitude: 20, Position: 3}, {Magnitude: 10, Position: 5}},
		E:        1,
		I:        1,
	})
	require.NoError(t, err)
	return res
}

func TestDrawASCIIBeamDiagram(t *testing.T) {
	res := threeSpan(t)
	out := diagram.DrawASCIIBeamDiagram(diagram.BeamDiagramData{
		Length:   res.Request.Length,
		Supports: res.Boundaries,
		Loads:    res.Request.Loads,
		Width:    61,
	})

	require.Equal(t, 4, strings.Count(out, "▲"))
	require.Equal(t, 3, strings.Count(out, "↓"))
	require.Contains(t, out, strings.Repeat("═", 61))
	require.Contains(t, out, "20")
}

func TestDrawForceCharts(t *testing.T) {
	res := threeSpan(t)
	out := diagram.DrawForceCharts(res.InternalForces(41), 50, 8)
	require.Contains(t, out, "Shear V(x)")
	require.Contains(t, out, "Moment M(x)")

	require.Empty(t, diagram.DrawForceCharts(nil, 50, 8))
}

func TestDrawSummaryBox(t *testing.T) {
	out := diagram.DrawSummaryBox("REACTIONS", []string{"R1 = 7.25", "R2 = 12.75"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	require.Contains(t, lines[1], "REACTIONS")
}

func TestExportForceDiagram(t *testing.T) {
	res := threeSpan(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "forces.png")
	require.NoError(t, diagram.ExportForceDiagram(res.InternalForces(41), res.Boundaries, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	// unknown extensions get .png appended
	require.NoError(t, diagram.ExportForceDiagram(res.InternalForces(11), nil, filepath.Join(dir, "sub", "forces")))
	_, err = os.Stat(filepath.Join(dir, "sub", "forces.png"))
	require.NoError(t, err)

	require.Error(t, diagram.ExportForceDiagram(nil, nil, path))
}

func TestExportSectionOutline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "section.svg")
	vertices := []diagram.Point{{0, 0}, {300, 0}, {300, 500}, {0, 500}}
	require.NoError(t, diagram.ExportSectionOutline(vertices, 150, 250, path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	require.Error(t, diagram.ExportSectionOutline(vertices[:2], 0, 0, path))
}
