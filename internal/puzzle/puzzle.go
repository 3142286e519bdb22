// Package puzzle implements the grid model: cells with candidate sets,
// the move ledger with undo, the backtracking solver, and input
// parsing and formatting. Grids are square with square boxes, box
// dimensions 2 through 10.
package puzzle

import (
	"context"

	"svw.info/sudoku-engine/internal/bitset"
)

// DefaultMaxSolutions caps brute-force enumeration. Finding one more
// solution than the cap aborts with ExcessiveSolutionsError.
const DefaultMaxSolutions = 5

type cell struct {
	value int
	fixed bool
	cands bitset.Set
}

// Puzzle is a grid under play: given values are fixed, open cells
// carry candidate sets, and every mutation is recorded in a move
// ledger so it can be undone. The brute-force solution is computed at
// construction and cached.
type Puzzle struct {
	size      Size
	cells     []cell
	rows      []bitset.Set
	cols      []bitset.Set
	boxes     []bitset.Set
	houses    [3][][]int
	remaining int
	moves     []Move
	solution  Solution
	maxSol    int
}

// Option configures construction.
type Option func(*Puzzle)

// WithMaxSolutions overrides the brute-force solution cap.
func WithMaxSolutions(n int) Option {
	return func(p *Puzzle) {
		if n > 0 {
			p.maxSol = n
		}
	}
}

// New builds a puzzle from flat row-major values, 0 meaning empty.
// The grid size is derived from the input length. Construction fails
// on conflicting givens and when the solution count exceeds the cap;
// zero or several solutions are recorded in the cached Solution.
func New(values []int, opts ...Option) (*Puzzle, error) {
	size, err := SizeFromLength(len(values))
	if err != nil {
		return nil, err
	}
	return NewWithSize(values, size, opts...)
}

// NewWithSize builds a puzzle with an explicit box dimension.
func NewWithSize(values []int, size Size, opts ...Option) (*Puzzle, error) {
	if !size.valid() || len(values) != size.Total() {
		return nil, &InputLengthError{Actual: len(values)}
	}
	hs := size.House()

	p := &Puzzle{
		size:      size,
		cells:     make([]cell, size.Total()),
		rows:      make([]bitset.Set, hs),
		cols:      make([]bitset.Set, hs),
		boxes:     make([]bitset.Set, hs),
		remaining: size.Total(),
		maxSol:    DefaultMaxSolutions,
	}
	for _, opt := range opts {
		opt(p)
	}
	for k := Row; k <= Box; k++ {
		p.houses[k] = make([][]int, hs)
		for n := 0; n < hs; n++ {
			p.houses[k][n] = House{Kind: k, N: n}.Cells(size)
		}
	}

	for i, v := range values {
		if v < 0 || v > hs {
			return nil, &ValueNotPossibleError{Index: i, Value: v}
		}
		if v == 0 {
			continue
		}
		p.cells[i] = cell{value: v, fixed: true}
		p.rows[size.RowOf(i)] = p.rows[size.RowOf(i)].Insert(v)
		p.cols[size.ColOf(i)] = p.cols[size.ColOf(i)].Insert(v)
		p.boxes[size.BoxOf(i)] = p.boxes[size.BoxOf(i)].Insert(v)
		p.remaining--
	}

	full := bitset.Full(hs)
	for i := range p.cells {
		if !p.cells[i].fixed {
			p.cells[i].cands = full.Difference(p.taken(i))
		}
	}

	if err := p.checkConflicts(); err != nil {
		return nil, err
	}

	sol, _, err := p.bruteForce(context.Background())
	if err != nil {
		return nil, err
	}
	p.solution = sol
	return p, nil
}

// taken returns the union of values placed in the cell's row, column,
// and box.
func (p *Puzzle) taken(i int) bitset.Set {
	return p.rows[p.size.RowOf(i)].
		Union(p.cols[p.size.ColOf(i)]).
		Union(p.boxes[p.size.BoxOf(i)])
}

// checkConflicts verifies that each given occurs exactly once in each
// of its houses.
func (p *Puzzle) checkConflicts() error {
	for i := range p.cells {
		v := p.cells[i].value
		if v == 0 {
			continue
		}
		// The cell sits in all three scanned houses, so a clean
		// placement is seen exactly three times.
		count := 0
		for _, k := range []HouseKind{Row, Col, Box} {
			for _, j := range p.houseOf(k, i) {
				if p.cells[j].value == v {
					count++
				}
			}
		}
		if count != 3 {
			return &ConflictError{Index: i, Value: v}
		}
	}
	return nil
}

func (p *Puzzle) houseOf(k HouseKind, i int) []int {
	switch k {
	case Row:
		return p.houses[Row][p.size.RowOf(i)]
	case Col:
		return p.houses[Col][p.size.ColOf(i)]
	default:
		return p.houses[Box][p.size.BoxOf(i)]
	}
}

// Size returns the box dimension.
func (p *Puzzle) Size() Size { return p.size }

// Len returns the number of cells.
func (p *Puzzle) Len() int { return len(p.cells) }

// Value returns the digit at index i, 0 when open.
func (p *Puzzle) Value(i int) int { return p.cells[i].value }

// Fixed reports whether the cell at index i is a given.
func (p *Puzzle) Fixed(i int) bool { return p.cells[i].fixed }

// Candidates returns the current candidate set of the cell at index i.
// Filled cells have an empty set.
func (p *Puzzle) Candidates(i int) bitset.Set { return p.cells[i].cands }

// HouseCells returns the linear indices of the named house.
func (p *Puzzle) HouseCells(h House) []int { return p.houses[h.Kind][h.N] }

// Remaining returns the number of unsolved cells.
func (p *Puzzle) Remaining() int { return p.remaining }

// Solved reports whether every cell holds a value.
func (p *Puzzle) Solved() bool { return p.remaining == 0 }

// Values returns the current grid values, 0 for open cells.
func (p *Puzzle) Values() []int {
	out := make([]int, len(p.cells))
	for i := range p.cells {
		out[i] = p.cells[i].value
	}
	return out
}

// Givens returns the fixed values only, 0 elsewhere.
func (p *Puzzle) Givens() []int {
	out := make([]int, len(p.cells))
	for i := range p.cells {
		if p.cells[i].fixed {
			out[i] = p.cells[i].value
		}
	}
	return out
}

// Solution returns the cached brute-force solution.
func (p *Puzzle) Solution() Solution { return p.solution }

// UniqueSolution returns the single solution grid, or an error when
// there is none or more than one.
func (p *Puzzle) UniqueSolution() ([]int, error) { return p.solution.Unique() }

// Moves returns the ledger of applied moves, oldest first.
func (p *Puzzle) Moves() []Move { return p.moves }

// Clone returns a deep copy sharing no mutable state.
func (p *Puzzle) Clone() *Puzzle {
	cp := *p
	cp.cells = append([]cell(nil), p.cells...)
	cp.rows = append([]bitset.Set(nil), p.rows...)
	cp.cols = append([]bitset.Set(nil), p.cols...)
	cp.boxes = append([]bitset.Set(nil), p.boxes...)
	cp.moves = append([]Move(nil), p.moves...)
	return &cp
}

// Assign places value v at index i as a manual move. The value must
// be a current candidate; otherwise ValueNotPossibleError is returned
// and the puzzle is left unchanged.
func (p *Puzzle) Assign(i, v int) (Move, error) {
	return p.place(i, v, Move{Manual: true})
}

// place commits a value, recording the cell's prior candidates and
// every peer elimination in the executed move.
func (p *Puzzle) place(i, v int, plan Move) (Move, error) {
	if i < 0 || i >= len(p.cells) || !p.cells[i].cands.Contains(v) {
		return Move{}, &ValueNotPossibleError{Index: i, Value: v}
	}

	executed := Move{Method: plan.Method, Manual: plan.Manual, Used: plan.Used}
	executed.Set = &CellValue{Index: i, Value: v}
	executed.AddRemoved(i, p.cells[i].cands)

	p.cells[i].value = v
	p.cells[i].cands = bitset.Set{}
	p.remaining--

	p.rows[p.size.RowOf(i)] = p.rows[p.size.RowOf(i)].Insert(v)
	p.cols[p.size.ColOf(i)] = p.cols[p.size.ColOf(i)].Insert(v)
	p.boxes[p.size.BoxOf(i)] = p.boxes[p.size.BoxOf(i)].Insert(v)

	for _, k := range []HouseKind{Row, Col, Box} {
		for _, j := range p.houseOf(k, i) {
			if p.cells[j].cands.Contains(v) {
				p.cells[j].cands = p.cells[j].cands.Remove(v)
				executed.AddRemoved(j, bitset.New(v))
			}
		}
	}

	p.moves = append(p.moves, executed)
	return executed, nil
}

// RemoveCandidate removes value v from the candidates at index i as a
// manual move. The value must currently be a candidate; otherwise
// ValueNotPossibleError is returned and the puzzle is left unchanged.
func (p *Puzzle) RemoveCandidate(i, v int) (Move, error) {
	if i < 0 || i >= len(p.cells) || !p.cells[i].cands.Contains(v) {
		return Move{}, &ValueNotPossibleError{Index: i, Value: v}
	}
	executed := Move{Manual: true}
	executed.AddRemoved(i, bitset.New(v))
	p.cells[i].cands = p.cells[i].cands.Remove(v)
	p.moves = append(p.moves, executed)
	return executed, nil
}

// Apply executes a planned move from the technique engine. Placement
// moves run through the same path as Assign; elimination moves
// subtract each listed candidate set, recording only what was
// actually present so Undo restores the exact prior state.
func (p *Puzzle) Apply(plan Move) (Move, error) {
	if plan.Set != nil {
		return p.place(plan.Set.Index, plan.Set.Value, plan)
	}
	executed := Move{Method: plan.Method, Manual: plan.Manual, Used: plan.Used}
	for _, rm := range plan.Removed {
		actual := p.cells[rm.Index].cands.Intersect(rm.Values)
		if actual.IsEmpty() {
			continue
		}
		p.cells[rm.Index].cands = p.cells[rm.Index].cands.Difference(actual)
		executed.AddRemoved(rm.Index, actual)
	}
	p.moves = append(p.moves, executed)
	return executed, nil
}

// Undo reverses the most recent move and returns it. It is an exact
// left inverse of the apply that produced the move.
func (p *Puzzle) Undo() (Move, bool) {
	if len(p.moves) == 0 {
		return Move{}, false
	}
	last := p.moves[len(p.moves)-1]
	p.moves = p.moves[:len(p.moves)-1]

	if last.Set != nil {
		i, v := last.Set.Index, last.Set.Value
		p.cells[i].value = 0
		p.remaining++
		p.rows[p.size.RowOf(i)] = p.rows[p.size.RowOf(i)].Remove(v)
		p.cols[p.size.ColOf(i)] = p.cols[p.size.ColOf(i)].Remove(v)
		p.boxes[p.size.BoxOf(i)] = p.boxes[p.size.BoxOf(i)].Remove(v)
	}
	for _, rm := range last.Removed {
		p.cells[rm.Index].cands = p.cells[rm.Index].cands.Union(rm.Values)
	}
	return last, true
}

// CompareWithSolution reports whether every filled cell matches the
// unique solution; open cells are skipped.
func (p *Puzzle) CompareWithSolution() (bool, error) {
	sol, err := p.solution.Unique()
	if err != nil {
		return false, err
	}
	for i := range p.cells {
		if v := p.cells[i].value; v != 0 && v != sol[i] {
			return false, nil
		}
	}
	return true, nil
}
