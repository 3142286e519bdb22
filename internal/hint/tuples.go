package hint

import "svw.info/sudoku-engine/internal/puzzle"

func houseCounter(p *puzzle.Puzzle, cells []int) *tupleCounter {
	t := newTupleCounter(p.Size().House())
	for pos, i := range cells {
		t.insert(pos, p.Candidates(i))
	}
	return t
}

// nakedTupleInHouse looks for size cells of the house whose combined
// candidates are exactly size values.
func nakedTupleInHouse(p *puzzle.Puzzle, h puzzle.House, size int, tech Technique) (puzzle.Move, bool) {
	cells := p.HouseCells(h)
	tups := houseCounter(p, cells).combos(size, removeIndices)

	for _, tup := range tups {
		if tup.count == 0 || tup.values.Count() != tup.count {
			continue
		}
		inTuple := make(map[int]bool, size)
		for _, pos := range tup.indexList() {
			inTuple[pos] = true
		}

		m := puzzle.Move{Method: tech.String()}
		for pos, i := range cells {
			if inTuple[pos] {
				m.AddUsed(i, tup.values.Intersect(p.Candidates(i)))
				continue
			}
			if rm := p.Candidates(i).Intersect(tup.values); !rm.IsEmpty() {
				m.AddRemoved(i, rm)
			}
		}
		if len(m.Removed) > 0 {
			return m, true
		}
	}
	return puzzle.Move{}, false
}

// hiddenTupleInHouse looks for size values of the house confined to
// exactly size cells.
func hiddenTupleInHouse(p *puzzle.Puzzle, h puzzle.House, size int, tech Technique) (puzzle.Move, bool) {
	cells := p.HouseCells(h)
	tups := houseCounter(p, cells).combos(size, removeValues)

	for _, tup := range tups {
		if tup.count == 0 || tup.values.Count() != tup.count {
			continue
		}

		m := puzzle.Move{Method: tech.String()}
		for _, pos := range tup.indexList() {
			i := cells[pos]
			m.AddUsed(i, tup.values.Intersect(p.Candidates(i)))
			if rm := p.Candidates(i).Difference(tup.values); !rm.IsEmpty() {
				m.AddRemoved(i, rm)
			}
		}
		if len(m.Removed) > 0 {
			return m, true
		}
	}
	return puzzle.Move{}, false
}

// findNakedTuple finds size cells of one house whose candidates are
// confined to the same size values, eliminating those values from the
// rest of the house.
func findNakedTuple(p *puzzle.Puzzle, size int, tech Technique) (puzzle.Move, bool) {
	hs := p.Size().House()
	if size < 2 || size > hs/2 {
		return puzzle.Move{}, false
	}
	for n := 0; n < hs; n++ {
		for k := puzzle.Row; k <= puzzle.Box; k++ {
			if m, ok := nakedTupleInHouse(p, puzzle.House{Kind: k, N: n}, size, tech); ok {
				return m, true
			}
		}
	}
	return puzzle.Move{}, false
}

// findHiddenTuple finds size values of one house confined to the same
// size cells, stripping every other candidate from those cells.
func findHiddenTuple(p *puzzle.Puzzle, size int, tech Technique) (puzzle.Move, bool) {
	hs := p.Size().House()
	if size < 2 || size > hs/2 {
		return puzzle.Move{}, false
	}
	for n := 0; n < hs; n++ {
		for k := puzzle.Row; k <= puzzle.Box; k++ {
			if m, ok := hiddenTupleInHouse(p, puzzle.House{Kind: k, N: n}, size, tech); ok {
				return m, true
			}
		}
	}
	return puzzle.Move{}, false
}
