// Package report renders an analysis as a PDF calculation sheet.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/phpdave11/gofpdf"
)

// Input carries the header fields and the analysis to print.
type Input struct {
	Project string
	Author  string
	Title   string
	Notes   string
	Date    time.Time

	Result   *beam.Result
	Stations []beam.Station // optional, adds an internal forces table
	Diagram  string         // optional PNG to embed
}

// Write renders in as a PDF to w.
func Write(w io.Writer, in Input) error {
	pdf, err := build(in)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// WriteFile renders in as a PDF file.
func WriteFile(filename string, in Input) error {
	pdf, err := build(in)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(filename)
}

func build(in Input) (*gofpdf.Fpdf, error) {
	if in.Result == nil {
		return nil, fmt.Errorf("report: no analysis result")
	}
	if in.Title == "" {
		in.Title = "Continuous Beam Analysis"
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	res := in.Result

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")))
	pdf.Ln(10)

	heading(pdf, "Input")
	req := res.Request
	pdf.Cell(0, 6, fmt.Sprintf("Length L = %g", req.Length))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Supports: %s", joinFloats(res.Boundaries)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("E = %g    I = %g    EI = %g", req.E, req.I, req.E*req.I))
	pdf.Ln(8)

	table(pdf, []string{"Load", "P", "x", "Segment", "F left", "M left", "F right", "M right"},
		fixedEndRows(res.FixedEnds))

	heading(pdf, "Results")
	rows := make([][]string, res.Nodes())
	for k := range rows {
		rows[k] = []string{
			fmt.Sprintf("%d", k+1),
			fmt.Sprintf("%g", res.Boundaries[k]),
			fmt.Sprintf("%.5g", res.Rotations.AtVec(k)),
			fmt.Sprintf("%.5f", res.Reactions.AtVec(k)),
		}
	}
	table(pdf, []string{"Node", "x", "Rotation", "Reaction"}, rows)
	pdf.Cell(0, 6, fmt.Sprintf("Sum of reactions minus sum of loads: %.5f", res.Equilibrium()))
	pdf.Ln(8)

	if len(in.Stations) > 0 {
		ext := beam.FindExtremes(in.Stations)
		heading(pdf, "Internal Forces")
		table(pdf, []string{"", "x", "Value"}, [][]string{
			{"Max shear", fmt.Sprintf("%g", ext.MaxShear.X), fmt.Sprintf("%.5f", ext.MaxShear.Shear)},
			{"Min shear", fmt.Sprintf("%g", ext.MinShear.X), fmt.Sprintf("%.5f", ext.MinShear.Shear)},
			{"Max moment", fmt.Sprintf("%g", ext.MaxMoment.X), fmt.Sprintf("%.5f", ext.MaxMoment.Moment)},
			{"Min moment", fmt.Sprintf("%g", ext.MinMoment.X), fmt.Sprintf("%.5f", ext.MinMoment.Moment)},
		})
	}

	if in.Diagram != "" {
		pdf.AddPage()
		heading(pdf, "Shear and Moment Diagrams")
		pdf.ImageOptions(in.Diagram, 15, pdf.GetY(), 180, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if in.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}

	return pdf, pdf.Error()
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func table(pdf *gofpdf.Fpdf, header []string, rows [][]string) {
	width := 180 / float64(len(header))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range header {
		pdf.CellFormat(width, 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(width, 6, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func fixedEndRows(fes []beam.FixedEnd) [][]string {
	rows := make([][]string, len(fes))
	for i, fe := range fes {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%g", fe.Load.Magnitude),
			fmt.Sprintf("%g", fe.Load.Position),
			fmt.Sprintf("%d", fe.Segment+1),
			fmt.Sprintf("%.5f", fe.FLeft),
			fmt.Sprintf("%.5f", fe.MLeft),
			fmt.Sprintf("%.5f", fe.FRight),
			fmt.Sprintf("%.5f", fe.MRight),
		}
	}
	return rows
}

func joinFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return strings.Join(parts, ", ")
}
