package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/guptarohit/asciigraph"
)

// BeamDiagramData holds data for drawing a beam schematic
type BeamDiagramData struct {
	Length   float64
	Supports []float64 // every node, ends included
	Loads    []beam.PointLoad
	Width    int // characters across the beam, 60 if zero
}

// DrawASCIIBeamDiagram creates an ASCII schematic of the beam with its
// supports and point loads.
func DrawASCIIBeamDiagram(data BeamDiagramData) string {
	var sb strings.Builder

	width := data.Width
	if width <= 0 {
		width = 60
	}
	column := func(x float64) int {
		if data.Length <= 0 {
			return 0
		}
		c := int(math.Round(x / data.Length * float64(width-1)))
		return min(max(c, 0), width-1)
	}

	loadRow := blankRow(width)
	labelRow := blankRow(width)
	for _, p := range data.Loads {
		c := column(p.Position)
		loadRow[c] = '↓'
		place(labelRow, c, fmt.Sprintf("%g", p.Magnitude))
	}

	supportRow := blankRow(width)
	posRow := blankRow(width)
	for _, s := range data.Supports {
		c := column(s)
		supportRow[c] = '▲'
		place(posRow, c, fmt.Sprintf("%g", s))
	}

	sb.WriteString("\n")
	sb.WriteString("  BEAM\n")
	sb.WriteString("  ────\n")
	sb.WriteString("  " + strings.TrimRight(string(labelRow), " ") + "\n")
	sb.WriteString("  " + strings.TrimRight(string(loadRow), " ") + "\n")
	sb.WriteString("  " + strings.Repeat("═", width) + "\n")
	sb.WriteString("  " + strings.TrimRight(string(supportRow), " ") + "\n")
	sb.WriteString("  " + strings.TrimRight(string(posRow), " ") + "\n")

	return sb.String()
}

// DrawForceCharts plots shear and bending moment along the beam as ASCII
// line charts.
func DrawForceCharts(stations []beam.Station, width, height int) string {
	if len(stations) == 0 {
		return ""
	}

	shear := make([]float64, len(stations))
	moment := make([]float64, len(stations))
	for i, s := range stations {
		shear[i] = s.Shear
		moment[i] = s.Moment
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(shear,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption("Shear V(x)")))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(moment,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption("Moment M(x)")))
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func blankRow(width int) []rune {
	return []rune(strings.Repeat(" ", width+8))
}

// place writes text into row starting at column c unless it would overwrite
// an earlier label.
func place(row []rune, c int, text string) {
	r := []rune(text)
	if c+len(r) > len(row) {
		c = len(row) - len(r)
	}
	for i := c; i < c+len(r); i++ {
		if row[i] != ' ' {
			return
		}
	}
	if c > 0 && row[c-1] != ' ' {
		return
	}
	copy(row[c:], r)
}
