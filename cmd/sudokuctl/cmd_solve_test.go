package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/puzzle"
)

const solveSample = "...15..3.9..4....7.58.9....31....72.4.......8.......5....24...55.......6.71..9..."

// twoSolutions swaps 2/7 in its open corners.
const twoSolutions = "295743861431865900876192543387459216612387495549216738763524189928671354154938600"

func TestSolveOneUnique(t *testing.T) {
	lines, err := solveOne(context.Background(), solveSample, 0, false)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 81)
	assert.NotContains(t, lines[0], ".")
}

func TestSolveOneMultiple(t *testing.T) {
	_, err := solveOne(context.Background(), twoSolutions, 0, false)
	var multiErr *puzzle.MultipleSolutionError
	require.ErrorAs(t, err, &multiErr)
	assert.Equal(t, 2, multiErr.Count)
}

func TestSolveOneAll(t *testing.T) {
	lines, err := solveOne(context.Background(), twoSolutions, 0, true)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "2 solution(s)", lines[0])
	assert.NotEqual(t, lines[1], lines[2])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "2957438"))
	}
}

func TestSolveOneCap(t *testing.T) {
	_, err := solveOne(context.Background(), twoSolutions, 1, true)
	var capErr *puzzle.ExcessiveSolutionsError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 1, capErr.Cap)
}

func TestSolveOneBadLength(t *testing.T) {
	_, err := solveOne(context.Background(), "..53", 0, false)
	var lengthErr *puzzle.InputLengthError
	assert.ErrorAs(t, err, &lengthErr)
}

func TestParseGridArg(t *testing.T) {
	values := parseGridArg("..53.....")
	assert.Equal(t, []int{0, 0, 5, 3, 0, 0, 0, 0, 0}, values)
}
