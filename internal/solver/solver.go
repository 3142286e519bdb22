// Package solver exposes the exhaustive candidate search behind the
// ports.Solver interface.
package solver

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/puzzle"
)

type Brute struct {
	maxSolutions int
}

// New returns a solver that stops counting at maxSolutions. Zero
// keeps the default cap.
func New(maxSolutions int) *Brute {
	return &Brute{maxSolutions: maxSolutions}
}

func (s *Brute) options() []puzzle.Option {
	if s.maxSolutions > 0 {
		return []puzzle.Option{puzzle.WithMaxSolutions(s.maxSolutions)}
	}
	return nil
}

func (s *Brute) Solve(ctx context.Context, givens []int) ([]int, ports.Stats, error) {
	start := time.Now()
	p, err := puzzle.New(givens, s.options()...)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	sols, nodes, err := p.SolveAll(ctx)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	switch len(sols) {
	case 0:
		return nil, st, puzzle.ErrNoSolution
	case 1:
		return sols[0], st, nil
	default:
		return nil, st, &puzzle.MultipleSolutionError{Count: len(sols)}
	}
}

func (s *Brute) Count(ctx context.Context, givens []int) (int, ports.Stats, error) {
	start := time.Now()
	p, err := puzzle.New(givens, s.options()...)
	if err != nil {
		return 0, ports.Stats{Duration: time.Since(start)}, err
	}
	sols, nodes, err := p.SolveAll(ctx)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return 0, st, err
	}
	return len(sols), st, nil
}
