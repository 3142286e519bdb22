package hint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/puzzle"
)

func mustParse(t *testing.T, input string) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.Parse(input)
	require.NoError(t, err)
	return p
}

func usedIndices(m puzzle.Move) map[int]bool {
	out := make(map[int]bool, len(m.Used))
	for _, u := range m.Used {
		out[u.Index] = true
	}
	return out
}

func removedIndices(m puzzle.Move) map[int]bool {
	out := make(map[int]bool, len(m.Removed))
	for _, r := range m.Removed {
		out[r.Index] = true
	}
	return out
}
