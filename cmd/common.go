package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/alexiusacademia/gocbeam/internal/linsolve"
	"github.com/alexiusacademia/gocbeam/internal/nscp"
	"github.com/alexiusacademia/gocbeam/internal/section"
	"github.com/spf13/cobra"
)

const rule = "───────────────────────────────────────────────────────────────"

// stiffnessFlags are the inputs that decide E and I.
type stiffnessFlags struct {
	E       float64
	I       float64
	Fc      float64 // MPa, gives E = 4700√f'c
	B       float64
	H       float64
	Section string
}

func (f *stiffnessFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.E, "E", 0, "Modulus of elasticity (default from GOCBEAM_E)")
	cmd.Flags().Float64Var(&f.I, "I", 0, "Second moment of area")
	cmd.Flags().Float64Var(&f.Fc, "fc", 0, "Concrete strength f'c (MPa), sets E = 4700√f'c")
	cmd.Flags().Float64Var(&f.B, "b", 0, "Rectangular section width, sets I = b·h³/12")
	cmd.Flags().Float64Var(&f.H, "h", 0, "Rectangular section depth, sets I = b·h³/12")
	cmd.Flags().StringVar(&f.Section, "section", "", "Section JSON file, sets I (and E if given)")
}

// resolve returns E and I. E comes from --E, then --fc, then the section
// file, then the configuration. I comes from --I, then --b/--h, then the
// section file.
func (f *stiffnessFlags) resolve(cmd *cobra.Command) (e, i float64, err error) {
	var sec *section.Section
	if f.Section != "" {
		if sec, err = section.LoadFromFile(f.Section); err != nil {
			return 0, 0, fmt.Errorf("section %s: %w", f.Section, err)
		}
	}

	switch {
	case cmd.Flags().Changed("E"):
		e = f.E
	case f.Fc > 0:
		e = nscp.ModulusConcrete(f.Fc)
	case sec != nil && sec.E > 0:
		e = sec.E
	default:
		e = cfg.E
	}
	if e <= 0 {
		return 0, 0, fmt.Errorf("modulus of elasticity is required (--E, --fc, section file or GOCBEAM_E)")
	}

	switch {
	case cmd.Flags().Changed("I"):
		i = f.I
	case f.B > 0 || f.H > 0:
		if f.B <= 0 || f.H <= 0 {
			return 0, 0, fmt.Errorf("both --b and --h are required for a rectangular section")
		}
		i = section.RectangleInertia(f.B, f.H)
	case sec != nil:
		i = sec.MomentOfInertia()
	default:
		return 0, 0, fmt.Errorf("second moment of area is required (--I, --b/--h or --section)")
	}
	return e, i, nil
}

// analysisOptions builds beam options from the shared flags and the
// configuration.
func analysisOptions() ([]beam.Option, error) {
	name := solverName
	if name == "" {
		name = cfg.Solver
	}
	solver, err := linsolve.New(name)
	if err != nil {
		return nil, err
	}

	placement := cfg.Placement
	if placementName != "" {
		if placement, err = beam.ParsePlacement(placementName); err != nil {
			return nil, err
		}
	}

	recovery := cfg.Recovery
	if reactionsName != "" {
		if recovery, err = beam.ParseRecovery(reactionsName); err != nil {
			return nil, err
		}
	}

	return []beam.Option{
		beam.WithSolver(solver),
		beam.WithPlacement(placement),
		beam.WithRecovery(recovery),
		beam.WithLogger(logger),
	}, nil
}

func parsePointLoads(specs []string) ([]beam.PointLoad, error) {
	loads := make([]beam.PointLoad, 0, len(specs))
	for _, s := range specs {
		p, err := beam.ParsePointLoad(s)
		if err != nil {
			return nil, err
		}
		loads = append(loads, p)
	}
	return loads, nil
}

func printBanner(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "%*s\n", (63+len(title))/2, title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printHeading(out io.Writer, title string) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, rule)
}

func joinFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return strings.Join(parts, ", ")
}
