package hint

import (
	"svw.info/sudoku-engine/internal/bitset"
	"svw.info/sudoku-engine/internal/puzzle"
)

// lineBoxCands splits the candidates around a line/box intersection:
// values on the line inside the box, values elsewhere in the box, and
// values elsewhere on the line.
type lineBoxCands struct {
	boxBoth    bitset.Set
	boxOutside bitset.Set
	outside    bitset.Set
}

func intersectionCands(p *puzzle.Puzzle, line, box []int) lineBoxCands {
	inLine := make(map[int]bool, len(line))
	boxN := p.Size().BoxOf(box[0])

	var c lineBoxCands
	for _, i := range line {
		inLine[i] = true
		if p.Size().BoxOf(i) == boxN {
			c.boxBoth = c.boxBoth.Union(p.Candidates(i))
		} else {
			c.outside = c.outside.Union(p.Candidates(i))
		}
	}
	for _, i := range box {
		if !inLine[i] {
			c.boxOutside = c.boxOutside.Union(p.Candidates(i))
		}
	}
	return c
}

// lineBoxes returns the boxes a line crosses, in line order.
func lineBoxes(p *puzzle.Puzzle, line []int) []int {
	d := int(p.Size())
	out := make([]int, 0, d)
	for step := 0; step < d; step++ {
		out = append(out, p.Size().BoxOf(line[step*d]))
	}
	return out
}

// pointingInLine checks each box crossed by the line for a value
// whose only spots in the box lie on the line.
func pointingInLine(p *puzzle.Puzzle, h puzzle.House) (puzzle.Move, bool) {
	line := p.HouseCells(h)
	for _, boxN := range lineBoxes(p, line) {
		box := p.HouseCells(puzzle.House{Kind: puzzle.Box, N: boxN})
		c := intersectionCands(p, line, box)

		pointing := c.boxBoth.Difference(c.boxOutside).Intersect(c.outside)
		if pointing.IsEmpty() {
			continue
		}

		m := puzzle.Move{Method: Pointing.String()}
		for _, i := range line {
			values := p.Candidates(i).Intersect(pointing)
			if values.IsEmpty() {
				continue
			}
			if p.Size().BoxOf(i) == boxN {
				m.AddUsed(i, values)
			} else {
				m.AddRemoved(i, values)
			}
		}
		return m, true
	}
	return puzzle.Move{}, false
}

// findPointing finds a value whose only spots in a box lie on one
// line, eliminating it from the rest of that line.
func findPointing(p *puzzle.Puzzle) (puzzle.Move, bool) {
	hs := p.Size().House()
	for n := 0; n < hs; n++ {
		for _, k := range []puzzle.HouseKind{puzzle.Row, puzzle.Col} {
			if m, ok := pointingInLine(p, puzzle.House{Kind: k, N: n}); ok {
				return m, true
			}
		}
	}
	return puzzle.Move{}, false
}

// claimingInLine checks each box crossed by the line for a value
// whose only spots on the line lie in the box.
func claimingInLine(p *puzzle.Puzzle, h puzzle.House) (puzzle.Move, bool) {
	line := p.HouseCells(h)
	inLine := make(map[int]bool, len(line))
	for _, i := range line {
		inLine[i] = true
	}
	for _, boxN := range lineBoxes(p, line) {
		box := p.HouseCells(puzzle.House{Kind: puzzle.Box, N: boxN})
		c := intersectionCands(p, line, box)

		claiming := c.boxBoth.Difference(c.outside).Intersect(c.boxOutside)
		if claiming.IsEmpty() {
			continue
		}

		m := puzzle.Move{Method: Claiming.String()}
		for _, i := range box {
			values := p.Candidates(i).Intersect(claiming)
			if values.IsEmpty() {
				continue
			}
			if inLine[i] {
				m.AddUsed(i, values)
			} else {
				m.AddRemoved(i, values)
			}
		}
		return m, true
	}
	return puzzle.Move{}, false
}

// findClaiming finds a value whose only spots on a line lie in one
// box, eliminating it from the rest of that box.
func findClaiming(p *puzzle.Puzzle) (puzzle.Move, bool) {
	hs := p.Size().House()
	for n := 0; n < hs; n++ {
		for _, k := range []puzzle.HouseKind{puzzle.Row, puzzle.Col} {
			if m, ok := claimingInLine(p, puzzle.House{Kind: k, N: n}); ok {
				return m, true
			}
		}
	}
	return puzzle.Move{}, false
}
