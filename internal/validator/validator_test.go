package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/puzzle"
)

func TestValidateClean(t *testing.T) {
	givens := make([]int, 81)
	givens[0] = 5
	givens[1] = 3

	ok, conflicts, err := New().Validate(context.Background(), givens)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateConflicts(t *testing.T) {
	givens := make([]int, 81)
	givens[0] = 5
	givens[8] = 5  // same row
	givens[72] = 5 // same column

	ok, conflicts, err := New().Validate(context.Background(), givens)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, conflicts, 2)
	assert.Equal(t, 8, conflicts[0].Index)
	assert.Equal(t, 72, conflicts[1].Index)
	for _, c := range conflicts {
		assert.Equal(t, 5, c.Value)
	}
}

func TestValidateBoxConflict(t *testing.T) {
	givens := make([]int, 81)
	givens[0] = 7
	givens[10] = 7 // same box, different row and column

	ok, conflicts, err := New().Validate(context.Background(), givens)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 10, conflicts[0].Index)
}

func TestValidateStructuralErrors(t *testing.T) {
	_, _, err := New().Validate(context.Background(), make([]int, 80))
	var lenErr *puzzle.InputLengthError
	require.ErrorAs(t, err, &lenErr)

	givens := make([]int, 81)
	givens[40] = 10
	_, _, err = New().Validate(context.Background(), givens)
	var valErr *puzzle.ValueNotPossibleError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 40, valErr.Index)
}

func TestValidateSixteenBySixteen(t *testing.T) {
	givens := make([]int, 256)
	givens[0] = 16
	givens[15] = 16

	ok, conflicts, err := New().Validate(context.Background(), givens)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 15, conflicts[0].Index)
}
