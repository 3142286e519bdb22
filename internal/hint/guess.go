package hint

import (
	"svw.info/sudoku-engine/internal/puzzle"
)

// findGuess picks the open cell with the fewest candidates and sets
// it to its value in the unique solution. No move is produced when
// the puzzle has no unique solution to draw from.
func findGuess(p *puzzle.Puzzle) (puzzle.Move, bool) {
	sol, err := p.UniqueSolution()
	if err != nil {
		return puzzle.Move{}, false
	}

	best := -1
	bestCount := 0
	for i := 0; i < p.Len(); i++ {
		n := p.Candidates(i).Count()
		if n == 0 {
			continue
		}
		if best < 0 || n < bestCount {
			best = i
			bestCount = n
		}
	}
	if best < 0 {
		return puzzle.Move{}, false
	}

	m := puzzle.Move{Method: Guess.String()}
	m.Set = &puzzle.CellValue{Index: best, Value: sol[best]}
	return m, true
}
