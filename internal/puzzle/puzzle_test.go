package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/bitset"
)

// Classic example puzzle with a unique solution.
var sample = []int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

var sampleSolution = []int{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func TestSizeFromLength(t *testing.T) {
	for _, tc := range []struct {
		length int
		size   Size
	}{
		{16, SizeTwo}, {81, SizeThree}, {256, SizeFour}, {10000, SizeTen},
	} {
		s, err := SizeFromLength(tc.length)
		require.NoError(t, err)
		assert.Equal(t, tc.size, s)
	}

	_, err := SizeFromLength(80)
	var lenErr *InputLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 80, lenErr.Actual)
}

func TestGeometry(t *testing.T) {
	s := SizeThree
	assert.Equal(t, 0, s.RowOf(5))
	assert.Equal(t, 5, s.ColOf(5))
	assert.Equal(t, 1, s.BoxOf(5))
	assert.Equal(t, 8, s.RowOf(77))
	assert.Equal(t, 5, s.ColOf(77))
	assert.Equal(t, 7, s.BoxOf(77))

	assert.Equal(t, []int{0, 1, 2, 9, 10, 11, 18, 19, 20}, House{Kind: Box, N: 0}.Cells(s))
	assert.Equal(t, []int{3, 12, 21, 30, 39, 48, 57, 66, 75}, House{Kind: Col, N: 3}.Cells(s))
}

func TestNewComputesCandidates(t *testing.T) {
	p, err := New(sample)
	require.NoError(t, err)

	assert.Equal(t, bitset.New(1, 2, 4), p.Candidates(2))
	assert.Equal(t, bitset.New(2, 6), p.Candidates(3))
	assert.True(t, p.Candidates(0).IsEmpty())
	assert.True(t, p.Fixed(0))
	assert.False(t, p.Fixed(2))
	assert.Equal(t, 51, p.Remaining())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(make([]int, 80))
	var lenErr *InputLengthError
	assert.ErrorAs(t, err, &lenErr)

	// two 5s in the first row
	conflicting := append([]int(nil), sample...)
	conflicting[8] = 5
	_, err = New(conflicting)
	var confErr *ConflictError
	assert.ErrorAs(t, err, &confErr)

	// value above the house size
	bad := append([]int(nil), sample...)
	bad[2] = 10
	_, err = New(bad)
	var vErr *ValueNotPossibleError
	assert.ErrorAs(t, err, &vErr)
}

func TestAssignTransactional(t *testing.T) {
	p, err := Parse("..53.....8......2..7..1.5..4....53...1..7...6..32...8..6.5....9..4....3......97..")
	require.NoError(t, err)

	assert.Equal(t, 0, p.Value(12))
	before := p.Remaining()

	// valid possibilities at index 12 are 4, 6, 7, 9
	_, err = p.Assign(12, 8)
	var vErr *ValueNotPossibleError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, before, p.Remaining())
	assert.Equal(t, bitset.New(4, 6, 7, 9), p.Candidates(12))

	m, err := p.Assign(12, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Value(12))
	assert.Equal(t, before-1, p.Remaining())
	assert.True(t, m.Manual)
	require.NotNil(t, m.Set)
	assert.Equal(t, CellValue{Index: 12, Value: 4}, *m.Set)
}

func TestRemoveCandidate(t *testing.T) {
	p, err := Parse("..53.....8......2..7..1.5..4....53...1..7...6..32...8..6.5....9..4....3......97..")
	require.NoError(t, err)

	// r2c2 is index 20
	assert.Equal(t, bitset.New(2, 6, 9), p.Candidates(20))
	_, err = p.RemoveCandidate(20, 6)
	require.NoError(t, err)
	assert.Equal(t, bitset.New(2, 9), p.Candidates(20))

	_, err = p.RemoveCandidate(20, 6)
	var vErr *ValueNotPossibleError
	assert.ErrorAs(t, err, &vErr)
}

func TestUndoIsExactInverse(t *testing.T) {
	p, err := New(sample)
	require.NoError(t, err)

	cands := make([]bitset.Set, p.Len())
	for i := 0; i < p.Len(); i++ {
		cands[i] = p.Candidates(i)
	}
	before := p.Remaining()

	_, err = p.Assign(2, 4)
	require.NoError(t, err)
	_, err = p.RemoveCandidate(3, 2)
	require.NoError(t, err)

	_, ok := p.Undo()
	require.True(t, ok)
	_, ok = p.Undo()
	require.True(t, ok)

	assert.Equal(t, before, p.Remaining())
	assert.Equal(t, 0, p.Value(2))
	for i := 0; i < p.Len(); i++ {
		assert.Equal(t, cands[i], p.Candidates(i), "candidates differ at index %d", i)
	}

	// a re-assign behaves the same as the first time
	_, err = p.Assign(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Value(2))

	_, ok = p.Undo()
	require.True(t, ok)
	_, ok = p.Undo()
	assert.False(t, ok)
}

func TestCompareWithSolution(t *testing.T) {
	p, err := New(sample)
	require.NoError(t, err)

	ok, err := p.CompareWithSolution()
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.Assign(2, 1) // solution has 4 here
	require.NoError(t, err)
	ok, err = p.CompareWithSolution()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseFormatRoundTrip(t *testing.T) {
	in := "..53.....8......2..7..1.5..4....53...1..7...6..32...8..6.5....9..4....3......97.."
	p, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, in, p.String())

	out, err := p.Format('0', "")
	require.NoError(t, err)
	assert.Equal(t, "005300000800000020070010500400005300010070006003200080060500009004000030000097000", out)

	out, err = p.Format('.', ",")
	require.NoError(t, err)
	assert.Contains(t, out, ".,.,5,3")
}

func TestFourByFour(t *testing.T) {
	p, err := New([]int{1, 0, 2, 0, 2, 0, 3, 0, 3, 0, 4, 0, 4, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, SizeTwo, p.Size())
	n, err := p.Solution().NumSolutions()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}
