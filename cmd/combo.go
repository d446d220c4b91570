package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/alexiusacademia/gocbeam/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	// Beam inputs
	comboLength   float64
	comboSupports []float64
	comboLoads    []string
	comboStiff    stiffnessFlags

	// Options
	showAll       bool
	useSimplified bool
)

var comboCmd = &cobra.Command{
	Use:   "combo",
	Short: "Envelope of reactions and moments over NSCP load combinations",
	Long: `Analyze the beam once per NSCP 2015 load combination and report the
governing support reactions and bending moment.

Loads are given as T:P@x where T is the load type:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Loads of different types at the same position are combined into one
factored point load.

Examples:
  # Two spans with dead and live loads
  gocbeam combo --length 6 --supports 3 --load D:10@1.5 --load L:5@4.5 --E 1 --I 1

  # Gravity combinations only, show every combination
  gocbeam combo --length 6 --supports 3 --load D:10@1.5 --load L:5@1.5 --E 1 --I 1 --simplified --all`,
	RunE: runCombo,
}

func init() {
	rootCmd.AddCommand(comboCmd)

	comboCmd.Flags().Float64VarP(&comboLength, "length", "L", 0, "Total beam length [required]")
	comboCmd.Flags().Float64SliceVarP(&comboSupports, "supports", "s", nil, "Interior support positions, comma separated")
	comboCmd.Flags().StringArrayVarP(&comboLoads, "load", "p", nil, "Typed point load T:P@x, repeatable [required]")
	comboStiff.register(comboCmd)

	// Options
	comboCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	comboCmd.Flags().BoolVar(&useSimplified, "simplified", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")

	comboCmd.MarkFlagRequired("length")
	comboCmd.MarkFlagRequired("load")
}

func runCombo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	loads := make([]nscp.TypedLoad, 0, len(comboLoads))
	for _, s := range comboLoads {
		l, err := nscp.ParseTypedLoad(s)
		if err != nil {
			return err
		}
		loads = append(loads, l)
	}

	e, i, err := comboStiff.resolve(cmd)
	if err != nil {
		return err
	}
	opts, err := analysisOptions()
	if err != nil {
		return err
	}

	// Select which combinations to use
	combinations := nscp.LoadCombinations
	if useSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	req := beam.Request{Length: comboLength, Supports: comboSupports, E: e, I: i}
	env, err := nscp.Envelope(req, loads, combinations, cfg.Stations, opts...)
	if err != nil {
		return err
	}
	nodes := env.Outcomes[0].Result.Boundaries

	// Print header
	printBanner(out, "NSCP 2015 LOAD COMBINATION ENVELOPE")

	// Print input loads
	printHeading(out, "UNFACTORED LOADS:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, l := range loads {
		fmt.Fprintf(w, "  %s:\t%g at x = %g\n", l.Type, l.Magnitude, l.Position)
	}
	w.Flush()
	fmt.Fprintf(out, "  Supports: %s\n", joinFloats(nodes))
	fmt.Fprintln(out)

	if showAll {
		// Show all combinations
		printHeading(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tMax |M|")
		for k := range nodes {
			fmt.Fprintf(w, "\tR%d", k+1)
		}
		fmt.Fprintln(w)

		for _, o := range env.Outcomes {
			marker := ""
			if o.Combination.ID == env.Moment.Combination.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.4f", o.Combination.ID, o.Combination.Description, o.MaxMoment)
			for _, r := range beam.Floats(o.Result.Reactions) {
				fmt.Fprintf(w, "\t%.4f", r)
			}
			fmt.Fprintf(w, "%s\n", marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	// Print result
	printHeading(out, "GOVERNING REACTIONS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for k, g := range env.Reactions {
		fmt.Fprintf(w, "  R%d (x = %g):\t%.4f\t%s (%s)\n", k+1, nodes[k], g.Value, g.Combination.ID, g.Combination.Description)
	}
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "RESULT:")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", env.Moment.Combination.ID, env.Moment.Combination.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  FACTORED MOMENT (Mu) = %.4f  \n", env.Moment.Value)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(out)

	return nil
}
