package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/bitset"
	"svw.info/sudoku-engine/internal/puzzle"
)

func TestNakedDouble(t *testing.T) {
	p, err := puzzle.New([]int{
		7, 0, 0, 8, 4, 9, 0, 3, 0,
		9, 2, 8, 1, 3, 5, 0, 0, 6,
		4, 0, 0, 2, 6, 7, 0, 8, 9,
		6, 4, 2, 7, 8, 3, 9, 5, 1,
		3, 9, 7, 4, 5, 1, 6, 2, 8,
		8, 1, 5, 6, 9, 2, 3, 0, 0,
		2, 0, 4, 5, 1, 6, 0, 9, 3,
		1, 0, 0, 0, 0, 8, 0, 6, 0,
		5, 0, 0, 0, 0, 4, 0, 1, 0,
	})
	require.NoError(t, err)

	// Cells 65 and 66 share the pair {3 9}; 64 holds {3 7}.
	assert.Equal(t, bitset.New(3, 7), p.Candidates(64))
	assert.Equal(t, bitset.New(3, 9), p.Candidates(65))
	assert.Equal(t, bitset.New(3, 9), p.Candidates(66))

	// Pairs that eliminate nothing are not reported.
	_, ok := nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Box, N: 2}, 2, NakedDouble)
	assert.False(t, ok)
	_, ok = nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Row, N: 1}, 2, NakedDouble)
	assert.False(t, ok)

	m, ok := nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Row, N: 7}, 2, NakedDouble)
	require.True(t, ok)
	_, err = p.Apply(m)
	require.NoError(t, err)

	assert.Equal(t, bitset.New(7), p.Candidates(64))
	assert.Equal(t, bitset.New(3, 9), p.Candidates(65))
	assert.Equal(t, bitset.New(3, 9), p.Candidates(66))

	// Other cells of the box keep their candidates.
	assert.Equal(t, bitset.New(3, 6, 7, 8), p.Candidates(73))
	assert.Equal(t, bitset.New(3, 6, 9), p.Candidates(74))

	_, ok = nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Col, N: 1}, 2, NakedDouble)
	assert.True(t, ok)
}

func TestNakedDoubleInBox(t *testing.T) {
	p := mustParse(t, "687..4523953..261414235697831...724676....3.5.2....7.1.96..1.3223.....57.7.....69")

	m, ok := nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Box, N: 4}, 2, NakedDouble)
	require.True(t, ok)
	_, err := p.Apply(m)
	require.NoError(t, err)

	used := usedIndices(m)
	assert.True(t, used[31])
	assert.True(t, used[41])
	assert.Len(t, used, 2)

	removed := removedIndices(m)
	for _, i := range []int{30, 39, 40, 48, 49, 50} {
		assert.True(t, removed[i], "index %d", i)
	}
	assert.Len(t, removed, 6)

	assert.Equal(t, bitset.New(5), p.Candidates(30))
}

func TestNakedTriple(t *testing.T) {
	p := mustParse(t, "39....7........65.5.7...349.4938.5.66.1.54983853...4..9..8..134..294.8654.....297")

	m, ok := nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Box, N: 1}, 3, NakedTriple)
	require.True(t, ok)
	_, err := p.Apply(m)
	require.NoError(t, err)

	used := usedIndices(m)
	for _, i := range []int{4, 21, 22} {
		assert.True(t, used[i], "index %d", i)
	}

	want := bitset.New(1, 2, 6)
	assert.Equal(t, want, p.Candidates(4))
	assert.Equal(t, want, p.Candidates(21))
	assert.Equal(t, want, p.Candidates(22))
}

func TestNakedTripleUnevenPair(t *testing.T) {
	p := mustParse(t, "...29438....17864.48.3561....48375.1...4157..5..629834953782416126543978.4.961253")

	m, ok := nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Col, N: 1}, 3, NakedTriple)
	require.True(t, ok)
	_, err := p.Apply(m)
	require.NoError(t, err)

	used := usedIndices(m)
	for _, i := range []int{10, 28, 37} {
		assert.True(t, used[i], "index %d", i)
	}

	assert.Equal(t, bitset.New(3, 9), p.Candidates(10))
	assert.Equal(t, bitset.New(6, 9), p.Candidates(28))
	assert.Equal(t, bitset.New(3, 6, 9), p.Candidates(37))

	// Only a fresh triple on row 0 remains.
	for n := 0; n < p.Size().House(); n++ {
		_, ok := nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Row, N: n}, 2, NakedDouble)
		assert.False(t, ok, "row %d", n)
		_, ok = nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Col, N: n}, 2, NakedDouble)
		assert.False(t, ok, "col %d", n)
		_, ok = nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Col, N: n}, 3, NakedTriple)
		assert.False(t, ok, "col %d", n)
		_, ok = nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Box, N: n}, 2, NakedDouble)
		assert.False(t, ok, "box %d", n)
		_, ok = nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Box, N: n}, 3, NakedTriple)
		assert.False(t, ok, "box %d", n)
	}
}

func TestNakedQuad(t *testing.T) {
	p := mustParse(t, ".1.72.563.56.3.247732546189693287415247615938581394........2...........1..587....")

	m, ok := nakedTupleInHouse(p, puzzle.House{Kind: puzzle.Row, N: 7}, 4, NakedQuad)
	require.True(t, ok)
	_, err := p.Apply(m)
	require.NoError(t, err)

	used := usedIndices(m)
	for _, i := range []int{63, 65, 66, 68} {
		assert.True(t, used[i], "index %d", i)
	}
}

func TestHiddenDouble(t *testing.T) {
	p := mustParse(t, ".49132....81479...327685914.96.518...75.28....38.46..5853267...712894563964513...")

	assert.Equal(t, bitset.New(1, 6, 9), p.Candidates(44))
	assert.Equal(t, bitset.New(1, 9), p.Candidates(62))

	m, ok := hiddenTupleInHouse(p, puzzle.House{Kind: puzzle.Col, N: 8}, 2, HiddenDouble)
	require.True(t, ok)
	_, err := p.Apply(m)
	require.NoError(t, err)

	assert.Len(t, m.Removed, 1)
	used := usedIndices(m)
	assert.True(t, used[44])
	assert.True(t, used[62])

	assert.Equal(t, bitset.New(1, 9), p.Candidates(44))
}

func TestHiddenDoubleInBox(t *testing.T) {
	const grid = "....6........42736..673..4..94....68....964.76.7.5.9231......85.6..8.271..5.1..94"
	p := mustParse(t, grid)

	assert.Equal(t, bitset.New(2, 3, 4, 5, 7, 8, 9), p.Candidates(0))
	assert.Equal(t, bitset.New(1, 2, 3, 4, 5, 7, 8), p.Candidates(1))

	m, ok := hiddenTupleInHouse(p, puzzle.House{Kind: puzzle.Box, N: 0}, 2, HiddenDouble)
	require.True(t, ok)
	_, err := p.Apply(m)
	require.NoError(t, err)

	assert.Len(t, m.Removed, 2)
	used := usedIndices(m)
	assert.True(t, used[0])
	assert.True(t, used[1])
	assert.Equal(t, bitset.New(4, 7), p.Candidates(1))

	// The same pair shows up when scanning the row instead.
	p = mustParse(t, grid)
	m, ok = hiddenTupleInHouse(p, puzzle.House{Kind: puzzle.Row, N: 0}, 2, HiddenDouble)
	require.True(t, ok)
	_, err = p.Apply(m)
	require.NoError(t, err)
	assert.Len(t, m.Removed, 2)
	assert.Equal(t, bitset.New(4, 7), p.Candidates(1))
}

func TestHiddenDoubleNoFalsePositive(t *testing.T) {
	p := mustParse(t, ".3.....1...8.9....4..6.8......57694....98352....124...276..519....7.9....95...47.")

	assert.Equal(t, bitset.New(2, 6, 7, 8), p.Candidates(6))
	assert.Equal(t, bitset.New(2, 4, 5, 6, 7, 8, 9), p.Candidates(8))

	_, ok := hiddenTupleInHouse(p, puzzle.House{Kind: puzzle.Row, N: 0}, 2, HiddenDouble)
	assert.False(t, ok)
}

func TestHiddenTriple(t *testing.T) {
	p := mustParse(t, "28....473534827196.71.34.8.3..5...4....34..6.46.79.31..9.2.3654..3..9821....8.937")

	m, ok := hiddenTupleInHouse(p, puzzle.House{Kind: puzzle.Box, N: 6}, 3, HiddenTriple)
	require.True(t, ok)

	used := usedIndices(m)
	assert.True(t, used[73])
	assert.True(t, used[74])
	assert.Len(t, used, 3)
	assert.Len(t, m.Removed, 2)
	assert.Equal(t, HiddenTriple.String(), m.Method)
}

func TestHiddenTripleInColumn(t *testing.T) {
	p := mustParse(t, "5..62..37..489........5....93........2....6.57.......3.....9.........7..68.57...2")

	m, ok := hiddenTupleInHouse(p, puzzle.House{Kind: puzzle.Col, N: 5}, 3, HiddenTriple)
	require.True(t, ok)
	assert.Len(t, m.Used, 3)
	assert.Len(t, m.Removed, 3)
}

func TestHiddenQuad(t *testing.T) {
	p := mustParse(t, ".3.....1...8.9....4..6.8......57694....98352....124...276..519....7.9....95..247.")

	m, ok := hiddenTupleInHouse(p, puzzle.House{Kind: puzzle.Col, N: 8}, 4, HiddenQuad)
	require.True(t, ok)
	assert.Len(t, m.Used, 4)
	assert.Len(t, m.Removed, 4)
	assert.Equal(t, HiddenQuad.String(), m.Method)
}
