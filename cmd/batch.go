package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gocbeam/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	batchFile string
	batchOut  string
	batchE    float64
	batchI    float64
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every beam listed in an Excel workbook",
	Long: `Read beam cases from the first sheet of an Excel workbook, analyze each
one and write a results workbook.

Input columns, after a header row:
  name | length | supports | loads | E | I

Supports are separated by ";" (2;4), loads are P@x pairs separated by ";"
(10@1;20@3). Empty E and I cells take --E and --I.

The results workbook has a Summary sheet (name, status, max |M|, sum of
reactions, error) and one sheet per solved case.

Example:
  gocbeam batch --file cases.xlsx --out results.xlsx --E 200000`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Input workbook [required]")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "results.xlsx", "Results workbook")
	batchCmd.Flags().Float64Var(&batchE, "E", 0, "Default modulus of elasticity (default from GOCBEAM_E)")
	batchCmd.Flags().Float64Var(&batchI, "I", 0, "Default second moment of area")

	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	defaults := workbook.Defaults{E: batchE, I: batchI}
	if defaults.E == 0 {
		defaults.E = cfg.E
	}

	cases, err := workbook.ReadFile(batchFile, defaults)
	if err != nil {
		return fmt.Errorf("read %s: %w", batchFile, err)
	}
	opts, err := analysisOptions()
	if err != nil {
		return err
	}

	outcomes := workbook.Solve(cases, cfg.Stations, opts...)
	if err := workbook.SaveResults(batchOut, outcomes); err != nil {
		return fmt.Errorf("write %s: %w", batchOut, err)
	}

	printBanner(out, "BATCH ANALYSIS")
	printHeading(out, "CASES:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Row\tName\tStatus\tMax |M|\n")
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "  %d\t%s\t✗ %v\t\n", o.Case.Row, o.Case.Name, o.Err)
			logger.Debug("case failed", "row", o.Case.Row, "name", o.Case.Name, "err", o.Err)
			continue
		}
		fmt.Fprintf(w, "  %d\t%s\t✓\t%.4f\n", o.Case.Row, o.Case.Name, o.MaxMoment)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %d solved, %d failed\n", len(outcomes)-failed, failed)
	fmt.Fprintf(out, "  Results written to: %s\n", batchOut)
	fmt.Fprintln(out)

	return nil
}
