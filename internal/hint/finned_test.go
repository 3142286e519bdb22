package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/puzzle"
)

func TestFinnedXWing(t *testing.T) {
	p := mustParse(t, ".5267.3.8.3...562767..325.128...61.5.6....2.4714523869827314956.9.267483346958712")

	m, ok := finnedFishInKind(p, puzzle.Row, 2, FinnedXWing)
	require.True(t, ok)
	_, err := p.Apply(m)
	require.NoError(t, err)

	used := usedIndices(m)
	for _, i := range []int{9, 11, 13, 29, 31} {
		assert.True(t, used[i], "index %d", i)
	}
	assert.Len(t, used, 5)
	assert.Len(t, m.Removed, 1)
}

func TestFinnedSwordfish(t *testing.T) {
	p := mustParse(t, "2.3.1865.416753982.58.26.1.84.362.9562.8.543.53.14.826.652...483.458.26..826.457.")

	m, ok := finnedFishInKind(p, puzzle.Col, 3, FinnedSwordfish)
	require.True(t, ok)
	_, err := p.Apply(m)
	require.NoError(t, err)

	used := usedIndices(m)
	for _, i := range []int{8, 18, 26, 40, 44, 54, 58} {
		assert.True(t, used[i], "index %d", i)
	}
	assert.Len(t, used, 7)
	assert.Len(t, m.Removed, 1)
}
