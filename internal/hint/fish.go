package hint

import (
	"svw.info/sudoku-engine/internal/bitset"
	"svw.info/sudoku-engine/internal/puzzle"
)

// lineCell returns the linear index of position secondary along the
// primary-th line of the given orientation.
func lineCell(p *puzzle.Puzzle, kind puzzle.HouseKind, primary, secondary int) int {
	hs := p.Size().House()
	if kind == puzzle.Row {
		return primary*hs + secondary
	}
	return secondary*hs + primary
}

func crossKind(kind puzzle.HouseKind) puzzle.HouseKind {
	if kind == puzzle.Row {
		return puzzle.Col
	}
	return puzzle.Row
}

// fishCounter builds one bucket per primary line for the given value:
// bucket n records the cross-line positions where the value is still
// a candidate on line n.
func fishCounter(p *puzzle.Puzzle, kind puzzle.HouseKind, val int) *tupleCounter {
	hs := p.Size().House()
	t := newTupleCounter(hs)
	for primary := 0; primary < hs; primary++ {
		cells := p.HouseCells(puzzle.House{Kind: kind, N: primary})
		for secondary, i := range cells {
			if p.Candidates(i).Contains(val) {
				t.buckets[primary].insertIndex(secondary)
			}
		}
	}
	return t
}

// basicCombos enumerates size-subsets of occupied primary lines whose
// merged cross positions number exactly size.
func basicCombos(t *tupleCounter, size int) []ctr {
	var out []ctr
	var rec func(cur ctr, chosen, lastInd int)
	rec = func(cur ctr, chosen, lastInd int) {
		if chosen == size {
			if cur.count == size {
				out = append(out, cur)
			}
			return
		}
		ind := lastInd + 1
		for ind < len(t.buckets) && t.buckets[ind].count == 0 {
			ind++
		}
		if ind >= len(t.buckets) {
			return
		}
		rec(cur.merge(t.buckets[ind]), chosen+1, ind)
		rec(cur, chosen, ind)
	}
	rec(ctr{}, 0, -1)
	return out
}

// basicFishInKind looks for a basic fish with its defining lines in
// the given orientation.
func basicFishInKind(p *puzzle.Puzzle, kind puzzle.HouseKind, size int, tech Technique) (puzzle.Move, bool) {
	hs := p.Size().House()
	for val := 1; val <= hs; val++ {
		t := fishCounter(p, kind, val)
		for _, item := range basicCombos(t, size) {
			m := puzzle.Move{Method: tech.String()}

			for _, primary := range item.values.Digits() {
				for _, secondary := range item.indexList() {
					i := lineCell(p, kind, primary-1, secondary)
					if p.Candidates(i).Contains(val) {
						m.AddUsed(i, bitset.New(val))
					}
				}
			}

			for _, secondary := range item.indexList() {
				cross := p.HouseCells(puzzle.House{Kind: crossKind(kind), N: secondary})
				for pos, i := range cross {
					if p.Candidates(i).Contains(val) && !item.containsValue(pos) {
						m.AddRemoved(i, bitset.New(val))
					}
				}
			}

			if len(m.Removed) > 0 {
				return m, true
			}
		}
	}
	return puzzle.Move{}, false
}

// findBasicFish finds size primary lines on which a value's candidate
// positions collapse onto the same size cross lines, eliminating the
// value from the rest of those cross lines.
func findBasicFish(p *puzzle.Puzzle, size int, tech Technique) (puzzle.Move, bool) {
	if size < 2 || size > p.Size().House()/2 {
		return puzzle.Move{}, false
	}
	for _, kind := range []puzzle.HouseKind{puzzle.Row, puzzle.Col} {
		if m, ok := basicFishInKind(p, kind, size, tech); ok {
			return m, true
		}
	}
	return puzzle.Move{}, false
}
