package main

import "github.com/spf13/cobra"

var (
	configPath   string
	maxSolutions int
	allSolutions bool
	serveAddr    string
	serveDataDir string

	rootCmd = &cobra.Command{
		Use:   "sudokuctl",
		Short: "Solve, hint, rate and serve sudoku puzzles",
		Long: `sudokuctl drives the sudoku engine from the command line: exhaustive
solving, human-style hints and difficulty rating, plus an HTTP server
exposing the same operations as a JSON API.

Puzzles are given as flat strings, one character per cell, with any
non-digit character standing for an empty cell:

  sudokuctl solve "..53.....8......2..7..1.5..4....53...1..7...6..32...8..6.5....9..4....3......97.."`,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [puzzle...]",
		Short: "Solve one or more puzzles with the exhaustive solver",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	hintCmd = &cobra.Command{
		Use:   "hint [puzzle]",
		Short: "Show the easiest deductive move for a board state",
		Args:  cobra.ExactArgs(1),
		RunE:  runHint, // Defined in cmd_solve.go
	}

	rateCmd = &cobra.Command{
		Use:   "rate [puzzle...]",
		Short: "Grade puzzles by the hardest technique a human solve needs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRate, // Defined in cmd_solve.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe, // Defined in cmd_serve.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	solveCmd.Flags().BoolVar(&allSolutions, "all", false, "print every solution instead of requiring a unique one")
	solveCmd.Flags().IntVar(&maxSolutions, "max-solutions", 0, "solution cap for the search (0 = config default)")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "puzzle storage directory (overrides config)")

	rootCmd.AddCommand(solveCmd, hintCmd, rateCmd, serveCmd)
}
