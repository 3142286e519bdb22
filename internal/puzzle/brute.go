package puzzle

import (
	"context"

	"svw.info/sudoku-engine/internal/bitset"
)

// bruteCell is the solver's working view of one cell: the candidate
// set to iterate and the last trial digit, so each increment resumes
// after the previous attempt.
type bruteCell struct {
	fixed bool
	value int
	cands bitset.Set
	trial int
}

// inc advances the cell to its next candidate. Returns false when the
// candidates are exhausted; the trial cursor then rewinds so a later
// increment starts over.
func (c *bruteCell) inc() bool {
	if c.fixed {
		return false
	}
	next := c.cands.NextAfter(c.trial)
	if next == 0 {
		c.trial = 0
		return false
	}
	c.value = next
	c.trial = next
	return true
}

// reset clears the trial value.
func (c *bruteCell) reset() {
	if !c.fixed {
		c.value = 0
		c.trial = 0
	}
}

type bruteState struct {
	size   Size
	cells  []bruteCell
	houses *[3][][]int
	nodes  int
}

// valid reports whether the value at index i occurs exactly once in
// each of its houses. The cell itself shows up once per house scan,
// so a clean placement is counted exactly three times. An open cell
// left empty means its candidates were exhausted before entry, which
// is a dead end.
func (b *bruteState) valid(i int) bool {
	v := b.cells[i].value
	if v == 0 {
		return b.cells[i].fixed
	}
	count := 0
	for k := Row; k <= Box; k++ {
		var n int
		switch k {
		case Row:
			n = b.size.RowOf(i)
		case Col:
			n = b.size.ColOf(i)
		default:
			n = b.size.BoxOf(i)
		}
		for _, j := range b.houses[k][n] {
			if b.cells[j].value == v {
				count++
			}
		}
	}
	return count == 3
}

// moveRight returns the next non-fixed index after i, or -1 at the end.
func (b *bruteState) moveRight(i int) int {
	max := len(b.cells)
	for cur := i + 1; cur < max; cur++ {
		if !b.cells[cur].fixed {
			return cur
		}
	}
	return -1
}

// bruteForce enumerates solutions by assigning candidates to open
// cells in index order, up to the configured cap. A back marker
// tracks where enumeration must resume after each recorded solution.
func (p *Puzzle) bruteForce(ctx context.Context) (Solution, int, error) {
	b := &bruteState{
		size:   p.size,
		cells:  make([]bruteCell, len(p.cells)),
		houses: &p.houses,
	}
	for i, c := range p.cells {
		b.cells[i] = bruteCell{fixed: c.value != 0, value: c.value, cands: c.cands}
	}

	var found [][]int
	last := len(b.cells) - 1

	position := 0
	if b.cells[position].fixed {
		if next := b.moveRight(position); next >= 0 {
			position = next
		} else {
			position = last
		}
	}
	b.cells[position].inc()
	b.nodes++
	backMarker := last

	finish := func() (Solution, int, error) {
		switch n := len(found); {
		case n == 0:
			return Solution{kind: SolutionNone}, b.nodes, nil
		case n == 1:
			return Solution{kind: SolutionOne, grids: found}, b.nodes, nil
		default:
			return Solution{kind: SolutionMulti, grids: found}, b.nodes, nil
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return Solution{}, b.nodes, err
		}
		if !b.valid(position) {
			// Dead end: advance this cell, or rewind until a cell
			// still has candidates left.
			for !b.cells[position].inc() {
				b.cells[position].reset()
				position--
				if position < 0 {
					return finish()
				}
			}
			b.nodes++
			continue
		}
		if position != last {
			if next := b.moveRight(position); next >= 0 {
				position = next
				b.cells[position].inc()
				b.nodes++
			} else {
				// Trailing cells are fixed: validity of the last
				// cell decides on the next pass.
				position = last
			}
			continue
		}

		// Grid complete: record the solution.
		sol := make([]int, len(b.cells))
		for i := range b.cells {
			sol[i] = b.cells[i].value
		}
		found = append(found, sol)
		if len(found) > p.maxSol {
			return Solution{}, b.nodes, &ExcessiveSolutionsError{Cap: p.maxSol}
		}

		// Rewind to the back marker, then resume the search for
		// further solutions from there.
		for position > backMarker {
			b.cells[position].reset()
			position--
		}
		for !b.cells[position].inc() {
			b.cells[position].reset()
			position--
			if position < 0 {
				return finish()
			}
			backMarker = position
		}
		b.nodes++
	}
}

// SolveAll re-runs the backtracking solver under the given context
// and returns every solution found along with the node count.
func (p *Puzzle) SolveAll(ctx context.Context) ([][]int, int, error) {
	sol, nodes, err := p.bruteForce(ctx)
	if err != nil {
		return nil, nodes, err
	}
	return sol.grids, nodes, nil
}
