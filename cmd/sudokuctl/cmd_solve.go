package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"svw.info/sudoku-engine/internal/puzzle"
)

// runSolve solves every puzzle argument concurrently and prints the
// results in argument order.
func runSolve(cmd *cobra.Command, args []string) error {
	max := maxSolutions
	if max == 0 {
		max = cfg.Solver.MaxSolutions
	}

	results := make([][]string, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			lines, err := solveOne(ctx, arg, max, allSolutions)
			if err != nil {
				return fmt.Errorf("puzzle %d: %w", i+1, err)
			}
			results[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, lines := range results {
		if len(args) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "puzzle %d:\n", i+1)
		}
		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	return nil
}

func solveOne(ctx context.Context, input string, max int, all bool) ([]string, error) {
	var opts []puzzle.Option
	if max > 0 {
		opts = append(opts, puzzle.WithMaxSolutions(max))
	}
	p, err := puzzle.Parse(input, opts...)
	if err != nil {
		return nil, err
	}
	sols, _, err := p.SolveAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(sols) == 0 {
		return nil, puzzle.ErrNoSolution
	}
	if all {
		lines := make([]string, 0, len(sols)+1)
		lines = append(lines, fmt.Sprintf("%d solution(s)", len(sols)))
		for _, s := range sols {
			lines = append(lines, gridString(s))
		}
		return lines, nil
	}
	if len(sols) > 1 {
		return nil, &puzzle.MultipleSolutionError{Count: len(sols)}
	}
	return []string{gridString(sols[0])}, nil
}

// gridString renders a full value slice the way puzzles print.
func gridString(values []int) string {
	p, err := puzzle.New(values)
	if err != nil {
		return fmt.Sprint(values)
	}
	return p.String()
}

func runHint(cmd *cobra.Command, args []string) error {
	uc := newService()
	move, found, err := uc.Hint(cmd.Context(), parseGridArg(args[0]))
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), "no deductive move available")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", move.Method, move)
	return nil
}

func runRate(cmd *cobra.Command, args []string) error {
	uc := newService()
	for i, arg := range args {
		grade, rating, err := uc.Rate(cmd.Context(), parseGridArg(arg))
		if err != nil {
			return fmt.Errorf("puzzle %d: %w", i+1, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%.1f)\n", grade, rating)
	}
	return nil
}

// parseGridArg converts a flat puzzle string to cell values without
// validating them; the engine reports conflicts itself.
func parseGridArg(input string) []int {
	runes := []rune(input)
	values := make([]int, len(runes))
	for i, r := range runes {
		if r >= '0' && r <= '9' {
			values[i] = int(r - '0')
		}
	}
	return values
}
