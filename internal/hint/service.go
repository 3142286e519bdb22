package hint

import (
	"context"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/puzzle"
)

// Service exposes the engine behind the ports interfaces.
type Service struct {
	engine *Engine
}

func NewService() *Service {
	return &Service{engine: NewEngine()}
}

// Hint returns the easiest deductive move for the given board state.
func (s *Service) Hint(ctx context.Context, state []int) (puzzle.Move, bool, error) {
	if err := ctx.Err(); err != nil {
		return puzzle.Move{}, false, err
	}
	p, err := puzzle.New(state)
	if err != nil {
		return puzzle.Move{}, false, err
	}
	m, ok := s.engine.NextHint(p)
	return m, ok, nil
}

// SolveHuman solves the givens with the technique catalogue and
// returns the grid and the ordered moves.
func (s *Service) SolveHuman(ctx context.Context, givens []int) ([]int, []puzzle.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	p, err := puzzle.New(givens)
	if err != nil {
		return nil, nil, err
	}
	return s.engine.SolveHuman(p)
}

// Rate grades the givens by the hardest technique a human solve
// needs.
func (s *Service) Rate(ctx context.Context, givens []int) (domain.Difficulty, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	p, err := puzzle.New(givens)
	if err != nil {
		return 0, 0, err
	}
	tech, err := s.engine.Rate(p)
	if err != nil {
		return 0, 0, err
	}
	rating := tech.Difficulty()
	return domain.GradeRating(rating), rating, nil
}
