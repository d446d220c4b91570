package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gocbeam/internal/config"
	"github.com/alexiusacademia/gocbeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global options
	verbose bool
	envFile string

	// Analysis options shared by solve, combo and batch. Empty values fall
	// back to the environment configuration.
	solverName    string
	placementName string
	reactionsName string

	cfg    = config.Default()
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "gocbeam",
	Short: "Continuous Beam Stiffness Solver",
	Long: `gocbeam - Go Continuous Beam Solver

A CLI tool for the analysis of straight beams on multiple supports
under point loads, using the direct stiffness method.

This tool computes:
  - Element and global stiffness matrices
  - Fixed-end forces and the assembled load vector
  - Support rotations and reactions
  - Shear and bending moment diagrams
  - NSCP 2015 load combination envelopes

Defaults can be set in a .env file or the environment:
  GOCBEAM_SOLVER     dense | sparse
  GOCBEAM_PLACEMENT  strict | left | right
  GOCBEAM_REACTIONS  reference | equilibrium
  GOCBEAM_E          modulus of elasticity
  GOCBEAM_STATIONS   internal force stations`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", "solver", cfg.Solver, "placement", cfg.Placement,
			"reactions", cfg.Recovery, "stations", cfg.Stations)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gocbeam v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Continuous Beam Solver                               ║")
		fmt.Fprintf(out, "  ║   %s ©  %-38s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the analysis of continuous beams")
		fmt.Fprintln(out, "  with the direct stiffness method.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Rotations and support reactions of multi-span beams")
		fmt.Fprintln(out, "    • Shear and moment diagrams (ASCII, PNG, SVG, PDF)")
		fmt.Fprintln(out, "    • NSCP 2015 load combination envelopes")
		fmt.Fprintln(out, "    • Batch analysis from Excel workbooks")
		fmt.Fprintln(out, "    • Section properties of polygonal sections")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gocbeam --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log analysis stages to stderr")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Environment file with defaults (default .env)")

	rootCmd.PersistentFlags().StringVar(&solverName, "solver", "", "Linear solver: dense or sparse")
	rootCmd.PersistentFlags().StringVar(&placementName, "placement", "", "Load exactly on a support: strict, left or right")
	rootCmd.PersistentFlags().StringVar(&reactionsName, "reactions", "", "Reaction recovery: reference or equilibrium")
}
