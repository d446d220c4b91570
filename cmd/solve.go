package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/alexiusacademia/gocbeam/internal/diagram"
	"github.com/alexiusacademia/gocbeam/internal/report"
	"github.com/alexiusacademia/gocbeam/internal/workbook"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var (
	// Beam inputs
	solveLength   float64
	solveSupports []float64
	solveLoads    []string
	solveStiff    stiffnessFlags

	// Output options
	solveDiagram  bool
	solveStations int
	solveOutput   string
	solvePDF      string
	solveXLSX     string
	solveJSON     bool
	solveProject  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve rotations and reactions of a continuous beam",
	Long: `Analyze a straight beam on multiple supports under point loads with
the direct stiffness method.

Both ends of the beam are supported. Interior supports are given with
--supports, point loads with --load P@x (P positive downward, x from the
left end). Every intermediate artifact is printed: segments, element and
global stiffness matrices, fixed-end forces, the load vector, the reduced
systems, rotations and reactions.

Examples:
  # Three equal spans
  gocbeam solve --length 6 --supports 2,4 --load 10@1 --load 20@3 --load 10@5 --E 1 --I 1

  # Concrete beam 300x500 mm, f'c = 28 MPa, with diagrams
  gocbeam solve --length 12000 --supports 6000 --load 50000@3000 --fc 28 --b 300 --h 500 --diagram

  # Physically consistent reactions and a PDF report
  gocbeam solve --length 10 --supports 5 --load 16@2.5 --load 16@7.5 --E 1 --I 1 \
      --reactions equilibrium --output forces.png --pdf report.pdf`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	// Geometry and loads
	solveCmd.Flags().Float64VarP(&solveLength, "length", "L", 0, "Total beam length [required]")
	solveCmd.Flags().Float64SliceVarP(&solveSupports, "supports", "s", nil, "Interior support positions, comma separated")
	solveCmd.Flags().StringArrayVarP(&solveLoads, "load", "p", nil, "Point load P@x, repeatable")

	// Stiffness
	solveStiff.register(solveCmd)

	// Output
	solveCmd.Flags().BoolVarP(&solveDiagram, "diagram", "d", false, "Show ASCII beam, shear and moment diagrams")
	solveCmd.Flags().IntVar(&solveStations, "stations", 0, "Evenly spaced internal force stations (default from GOCBEAM_STATIONS)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Export shear and moment diagram image (png, svg, pdf)")
	solveCmd.Flags().StringVar(&solvePDF, "pdf", "", "Write a PDF calculation report")
	solveCmd.Flags().StringVar(&solveXLSX, "xlsx", "", "Write the results to an Excel workbook")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print the results as JSON")
	solveCmd.Flags().StringVar(&solveProject, "project", "", "Project name for the PDF report")

	solveCmd.MarkFlagRequired("length")
}

// solveOutputJSON is the --json document.
type solveOutputJSON struct {
	beam.Summary
	Stations []beam.Station `json:"stations"`
	Extremes beam.Extremes  `json:"extremes"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	loads, err := parsePointLoads(solveLoads)
	if err != nil {
		return err
	}
	e, i, err := solveStiff.resolve(cmd)
	if err != nil {
		return err
	}
	opts, err := analysisOptions()
	if err != nil {
		return err
	}

	req := beam.Request{
		Length:   solveLength,
		Supports: solveSupports,
		Loads:    loads,
		E:        e,
		I:        i,
	}
	res, err := beam.Analyze(req, opts...)
	if err != nil {
		return err
	}

	stations := solveStations
	if stations == 0 {
		stations = cfg.Stations
	}
	forces := res.InternalForces(stations)

	if solveJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutputJSON{
			Summary:  res.Summary(),
			Stations: forces,
			Extremes: beam.FindExtremes(forces),
		})
	}

	printResult(out, res, forces)

	if solveDiagram {
		fmt.Fprint(out, diagram.DrawASCIIBeamDiagram(diagram.BeamDiagramData{
			Length:   res.Request.Length,
			Supports: res.Boundaries,
			Loads:    res.Request.Loads,
		}))
		fmt.Fprint(out, diagram.DrawForceCharts(forces, 60, 10))
		fmt.Fprintln(out)
	}

	if solveOutput != "" {
		if err := diagram.ExportForceDiagram(forces, res.Boundaries, solveOutput); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Fprintf(out, "  Diagram exported to: %s\n", solveOutput)
	}

	if solvePDF != "" {
		in := report.Input{Project: solveProject, Result: res, Stations: forces}
		if strings.EqualFold(filepath.Ext(solveOutput), ".png") {
			in.Diagram = solveOutput
		}
		if err := report.WriteFile(solvePDF, in); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(out, "  Report written to: %s\n", solvePDF)
	}

	if solveXLSX != "" {
		outcome := workbook.Outcome{
			Case:      workbook.Case{Row: 1, Name: "Beam", Request: res.Request},
			Result:    res,
			MaxMoment: beam.MaxAbsMoment(forces),
		}
		if err := workbook.SaveResults(solveXLSX, []workbook.Outcome{outcome}); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Fprintf(out, "  Workbook written to: %s\n", solveXLSX)
	}

	return nil
}

func printResult(out io.Writer, res *beam.Result, forces []beam.Station) {
	req := res.Request

	printBanner(out, "CONTINUOUS BEAM ANALYSIS - DIRECT STIFFNESS METHOD")

	// Input summary
	printHeading(out, "INPUT DATA:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length (L):\t%g\n", req.Length)
	fmt.Fprintf(w, "  Supports:\t%s\n", joinFloats(res.Boundaries))
	fmt.Fprintf(w, "  Modulus of Elasticity (E):\t%g\n", req.E)
	fmt.Fprintf(w, "  Second Moment of Area (I):\t%g\n", req.I)
	for k, p := range req.Loads {
		fmt.Fprintf(w, "  Load P%d:\t%g at x = %g\n", k+1, p.Magnitude, p.Position)
	}
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "SEGMENTS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tFrom\tTo\tLength\n")
	for k, l := range res.Segments {
		fmt.Fprintf(w, "  %d\t%g\t%g\t%g\n", k+1, res.Boundaries[k], res.Boundaries[k+1], l)
	}
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "ELEMENT STIFFNESS MATRICES (unit EI):")
	for k, el := range res.Elements {
		fmt.Fprintf(out, "  Element %d (L = %g):\n", k+1, res.Segments[k])
		printMatrix(out, el)
	}
	fmt.Fprintln(out)

	printHeading(out, "GLOBAL STIFFNESS MATRIX (unit EI):")
	printMatrix(out, res.Global)
	fmt.Fprintln(out)

	printHeading(out, "FIXED-END FORCES:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  P\tx\tSegment\ta\tb\tF left\tM left\tF right\tM right\n")
	for _, fe := range res.FixedEnds {
		fmt.Fprintf(w, "  %g\t%g\t%d\t%g\t%g\t%.5f\t%.5f\t%.5f\t%.5f\n",
			fe.Load.Magnitude, fe.Load.Position, fe.Segment+1, fe.A, fe.B,
			fe.FLeft, fe.MLeft, fe.FRight, fe.MRight)
	}
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "LOAD VECTOR:")
	printMatrix(out, res.LoadVector)
	fmt.Fprintln(out)

	printHeading(out, "REDUCED ROTATION SYSTEM (E·I·K θ = F):")
	printMatrix(out, res.Rotation.Matrix)
	fmt.Fprintln(out, "  F =")
	printMatrix(out, res.Rotation.Load)
	fmt.Fprintln(out)

	printHeading(out, "REDUCED REACTION SYSTEM:")
	printMatrix(out, res.Reaction.Matrix)
	fmt.Fprintln(out, "  F =")
	printMatrix(out, res.Reaction.Load)
	fmt.Fprintln(out)

	printHeading(out, "RESULTS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Node\tx\tRotation\tReaction\n")
	for k := 0; k < res.Nodes(); k++ {
		fmt.Fprintf(w, "  %d\t%g\t%.6g\t%.5f\n", k+1, res.Boundaries[k], res.Rotations.AtVec(k), res.Reactions.AtVec(k))
	}
	w.Flush()
	fmt.Fprintln(out)

	ext := beam.FindExtremes(forces)
	fmt.Fprint(out, diagram.DrawSummaryBox("INTERNAL FORCES", []string{
		fmt.Sprintf("Max shear  = %10.4f at x = %g", ext.MaxShear.Shear, ext.MaxShear.X),
		fmt.Sprintf("Min shear  = %10.4f at x = %g", ext.MinShear.Shear, ext.MinShear.X),
		fmt.Sprintf("Max moment = %10.4f at x = %g", ext.MaxMoment.Moment, ext.MaxMoment.X),
		fmt.Sprintf("Min moment = %10.4f at x = %g", ext.MinMoment.Moment, ext.MinMoment.X),
		fmt.Sprintf("ΣR - ΣP    = %10.5f", res.Equilibrium()),
	}))
	fmt.Fprintln(out)
}

func printMatrix(out io.Writer, m mat.Matrix) {
	fmt.Fprintf(out, "  %v\n", mat.Formatted(m, mat.Prefix("  "), mat.Squeeze()))
}
