package hint

import (
	"svw.info/sudoku-engine/internal/bitset"
	"svw.info/sudoku-engine/internal/puzzle"
)

// findSingleCandidate finds the first cell with exactly one remaining
// candidate and commits it.
func findSingleCandidate(p *puzzle.Puzzle) (puzzle.Move, bool) {
	for i := 0; i < p.Len(); i++ {
		c := p.Candidates(i)
		if c.Count() == 1 {
			m := puzzle.Move{Method: SingleCandidate.String()}
			m.Set = &puzzle.CellValue{Index: i, Value: c.Min()}
			return m, true
		}
	}
	return puzzle.Move{}, false
}

// findSinglePossibility finds a value that fits only one cell of some
// house. Folding the house candidates into "seen once" and "seen more
// than once" masks leaves the single possibilities as ones \ multi.
func findSinglePossibility(p *puzzle.Puzzle) (puzzle.Move, bool) {
	hs := p.Size().House()
	for n := 0; n < hs; n++ {
		for k := puzzle.Row; k <= puzzle.Box; k++ {
			cells := p.HouseCells(puzzle.House{Kind: k, N: n})

			var multi, ones bitset.Set
			for _, i := range cells {
				c := p.Candidates(i)
				multi = multi.Union(ones.Intersect(c))
				ones = ones.Union(c)
			}
			singles := ones.Difference(multi)
			if singles.IsEmpty() {
				continue
			}

			for _, i := range cells {
				hit := p.Candidates(i).Intersect(singles)
				if hit.Count() == 1 {
					m := puzzle.Move{Method: SinglePossibility.String()}
					m.Set = &puzzle.CellValue{Index: i, Value: hit.Min()}
					return m, true
				}
			}
		}
	}
	return puzzle.Move{}, false
}
