package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/puzzle"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs the exhaustive search over a cell list.
type Solver interface {
	// Solve returns the unique solution of the givens.
	Solve(ctx context.Context, givens []int) ([]int, Stats, error)
	// Count returns how many solutions exist, capped by the solver's
	// configured maximum.
	Count(ctx context.Context, givens []int) (int, Stats, error)
}

// Hinter returns the easiest deductive move for a board state.
type Hinter interface {
	Hint(ctx context.Context, state []int) (puzzle.Move, bool, error)
}

// HumanSolver replays the technique catalogue over a board.
type HumanSolver interface {
	SolveHuman(ctx context.Context, givens []int) ([]int, []puzzle.Move, error)
}

// Rater grades a puzzle by the hardest technique needed to solve it.
type Rater interface {
	Rate(ctx context.Context, givens []int) (domain.Difficulty, float64, error)
}

// Validator performs the constraint check on a set of givens.
type Validator interface {
	Validate(ctx context.Context, givens []int) (ok bool, conflicts []domain.Conflict, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.PuzzleRecord) error
	Load(ctx context.Context, id string) (*domain.PuzzleRecord, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	Delete(ctx context.Context, id string) error
}
