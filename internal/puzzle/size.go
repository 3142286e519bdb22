package puzzle

import "fmt"

// Size is the box dimension of a puzzle. A Size of 3 is the classic
// 9x9 grid: houses hold Size*Size cells and the grid holds house^2
// cells in row-major order.
type Size int

const (
	SizeTwo   Size = 2
	SizeThree Size = 3
	SizeFour  Size = 4
	SizeFive  Size = 5
	SizeSix   Size = 6
	SizeSeven Size = 7
	SizeEight Size = 8
	SizeNine  Size = 9
	SizeTen   Size = 10
)

// SizeFromLength maps a flat input length to the box dimension whose
// grid has exactly that many cells (dim^4).
func SizeFromLength(n int) (Size, error) {
	for s := SizeTwo; s <= SizeTen; s++ {
		if s.Total() == n {
			return s, nil
		}
	}
	return 0, &InputLengthError{Actual: n}
}

// House returns the number of cells in a row, column, or box.
func (s Size) House() int { return int(s) * int(s) }

// Total returns the number of cells in the grid.
func (s Size) Total() int { h := s.House(); return h * h }

func (s Size) valid() bool { return s >= SizeTwo && s <= SizeTen }

// RowOf returns the row of the cell at linear index i.
func (s Size) RowOf(i int) int { return i / s.House() }

// ColOf returns the column of the cell at linear index i.
func (s Size) ColOf(i int) int { return i % s.House() }

// BoxOf returns the box of the cell at linear index i.
func (s Size) BoxOf(i int) int {
	d := int(s)
	return (s.RowOf(i)/d)*d + s.ColOf(i)/d
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.House(), s.House()) }
