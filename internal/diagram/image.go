package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point represents a 2D coordinate for section vertices
type Point struct {
	X float64
	Y float64
}

// ExportForceDiagram exports the shear and bending moment diagrams to an
// image file. The format follows the extension (.png, .svg or .pdf), other
// names get .png appended.
func ExportForceDiagram(stations []beam.Station, supports []float64, filename string) error {
	if len(stations) == 0 {
		return fmt.Errorf("no stations to plot")
	}

	p := plot.New()
	p.Title.Text = "Shear and Moment Diagrams"
	p.X.Label.Text = "Position along beam"
	p.Y.Label.Text = "Shear / Moment"
	p.Add(plotter.NewGrid())

	shearPts := make(plotter.XYs, len(stations))
	momentPts := make(plotter.XYs, len(stations))
	for i, s := range stations {
		shearPts[i] = plotter.XY{X: s.X, Y: s.Shear}
		momentPts[i] = plotter.XY{X: s.X, Y: s.Moment}
	}

	shearLine, err := plotter.NewLine(shearPts)
	if err != nil {
		return err
	}
	shearLine.LineStyle.Width = vg.Points(2)
	shearLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(shearLine)

	momentLine, err := plotter.NewLine(momentPts)
	if err != nil {
		return err
	}
	momentLine.LineStyle.Width = vg.Points(2)
	momentLine.LineStyle.Color = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	p.Add(momentLine)

	// Zero reference line
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: stations[0].X, Y: 0},
		{X: stations[len(stations)-1].X, Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	// Supports
	if len(supports) > 0 {
		pts := make(plotter.XYs, len(supports))
		for i, s := range supports {
			pts[i] = plotter.XY{X: s, Y: 0}
		}
		marks, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		marks.GlyphStyle.Shape = draw.TriangleGlyph{}
		marks.GlyphStyle.Radius = vg.Points(5)
		marks.GlyphStyle.Color = color.Black
		p.Add(marks)
	}

	p.Legend.Add("Shear", shearLine)
	p.Legend.Add("Moment", momentLine)
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSectionOutline exports a cross-section outline with its centroid
// marked.
func ExportSectionOutline(vertices []Point, cx, cy float64, filename string) error {
	if len(vertices) < 3 {
		return fmt.Errorf("section needs at least 3 vertices, got %d", len(vertices))
	}

	p := plot.New()
	p.Title.Text = "Beam Section"
	p.X.Label.Text = "Width"
	p.Y.Label.Text = "Height"

	outline := make(plotter.XYs, len(vertices)+1)
	for i, v := range vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	outline[len(vertices)] = outline[0]

	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	poly.LineStyle.Width = vg.Points(2)
	poly.LineStyle.Color = color.Black
	p.Add(poly)

	centroid, err := plotter.NewScatter(plotter.XYs{{X: cx, Y: cy}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: cx, Y: cy}},
		Labels: []string{fmt.Sprintf("  C (%.1f, %.1f)", cx, cy)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
