// Package validator checks a cell list against the row, column, and
// box constraints without running the full search.
package validator

import (
	"context"

	"svw.info/sudoku-engine/internal/bitset"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/puzzle"
)

type Constraint struct{}

func New() *Constraint { return &Constraint{} }

// Validate reports whether the givens form a legal board. Conflicting
// givens are returned individually; structural problems (bad length,
// out-of-range values) come back as an error.
func (v *Constraint) Validate(ctx context.Context, givens []int) (bool, []domain.Conflict, error) {
	size, err := puzzle.SizeFromLength(len(givens))
	if err != nil {
		return false, nil, err
	}
	hs := size.House()

	rows := make([]bitset.Set, hs)
	cols := make([]bitset.Set, hs)
	boxes := make([]bitset.Set, hs)
	seen := func(marks []bitset.Set, house, val int) bool {
		hit := marks[house].Contains(val)
		marks[house] = marks[house].Insert(val)
		return hit
	}

	var conflicts []domain.Conflict
	for i, val := range givens {
		if val == 0 {
			continue
		}
		if val < 0 || val > hs {
			return false, nil, &puzzle.ValueNotPossibleError{Index: i, Value: val}
		}
		hitRow := seen(rows, size.RowOf(i), val)
		hitCol := seen(cols, size.ColOf(i), val)
		hitBox := seen(boxes, size.BoxOf(i), val)
		if hitRow || hitCol || hitBox {
			conflicts = append(conflicts, domain.Conflict{Index: i, Value: val})
		}
	}
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	return len(conflicts) == 0, conflicts, nil
}
