package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/puzzle"
)

// Service wires the engine providers behind one facade for the HTTP
// adapter and the CLI.
type Service struct {
	Solver    ports.Solver
	Hinter    ports.Hinter
	Human     ports.HumanSolver
	Rater     ports.Rater
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, h ports.Hinter, hs ports.HumanSolver, r ports.Rater, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Hinter: h, Human: hs, Rater: r, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, givens []int) ([]int, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, givens)
}

func (u *Service) Count(ctx context.Context, givens []int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Count(ctx, givens)
}

func (u *Service) Hint(ctx context.Context, state []int) (puzzle.Move, bool, error) {
	if u.Hinter == nil {
		return puzzle.Move{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, state)
}

func (u *Service) SolveHuman(ctx context.Context, givens []int) ([]int, []puzzle.Move, error) {
	if u.Human == nil {
		return nil, nil, errNotConfigured
	}
	return u.Human.SolveHuman(ctx, givens)
}

func (u *Service) Rate(ctx context.Context, givens []int) (domain.Difficulty, float64, error) {
	if u.Rater == nil {
		return 0, 0, errNotConfigured
	}
	return u.Rater.Rate(ctx, givens)
}

func (u *Service) Validate(ctx context.Context, givens []int) (bool, []domain.Conflict, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, givens)
}

// Save rates unrated records and fills in identity fields before
// handing them to storage.
func (u *Service) Save(ctx context.Context, p *domain.PuzzleRecord) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	if p.Rating == 0 && u.Rater != nil {
		if grade, rating, err := u.Rater.Rate(ctx, p.Givens); err == nil {
			p.Difficulty = grade
			p.Rating = rating
		}
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.PuzzleRecord, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

func (u *Service) Delete(ctx context.Context, id string) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Delete(ctx, id)
}
