package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/alexiusacademia/gocbeam/internal/diagram"
	"github.com/alexiusacademia/gocbeam/internal/report"
	"github.com/stretchr/testify/require"
)

func analysis(t *testing.T) *beam.Result {
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

func TestWrite(t *testing.T) {
	res := analysis(t)

	var buf bytes.Buffer
	err := report.Write(&buf, report.Input{
		Project:  "Test",
		Author:   "QA",
		Date:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Result:   res,
		Stations: res.InternalForces(25),
		Notes:    "Three equal spans.",
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteFile_WithDiagram(t *testing.T) {
	res := analysis(t)
	dir := t.TempDir()

	png := filepath.Join(dir, "forces.png")
	stations := res.InternalForces(25)
	require.NoError(t, diagram.ExportForceDiagram(stations, res.Boundaries, png))

	out := filepath.Join(dir, "report.pdf")
	require.NoError(t, report.WriteFile(out, report.Input{Result: res, Stations: stations, Diagram: png}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, report.Write(&buf, report.Input{}))

	err := report.Write(&buf, report.Input{
		Result:  analysis(t),
		Diagram: filepath.Join(t.TempDir(), "missing.png"),
	})
	require.Error(t, err)
}
