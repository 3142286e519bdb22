package hint

import (
	"svw.info/sudoku-engine/internal/puzzle"
)

// Engine tries human solving techniques from easiest to hardest.
type Engine struct {
	methods []Technique
}

// NewEngine returns an engine with the full technique catalogue.
func NewEngine() *Engine {
	return &Engine{methods: catalogue}
}

// Techniques lists the engine's methods from easiest to hardest.
func (e *Engine) Techniques() []Technique {
	out := make([]Technique, len(e.methods))
	copy(out, e.methods)
	return out
}

// NextHint returns the easiest deductive move for the current state.
// Guessing is excluded; a puzzle that resists every deduction yields
// no hint.
func (e *Engine) NextHint(p *puzzle.Puzzle) (puzzle.Move, bool) {
	for _, t := range e.methods[:len(e.methods)-1] {
		if m, ok := t.find(p); ok {
			return m, true
		}
	}
	return puzzle.Move{}, false
}

// hintOrGuess scans the whole catalogue, Guess included.
func (e *Engine) hintOrGuess(p *puzzle.Puzzle) (puzzle.Move, bool) {
	for _, t := range e.methods {
		if m, ok := t.find(p); ok {
			return m, true
		}
	}
	return puzzle.Move{}, false
}

// SolveHuman solves a copy of the puzzle with techniques alone and
// returns the solved grid along with the moves taken, in order. The
// input is not modified. ErrHumanSolve is returned when the engine
// stalls before the grid is complete.
func (e *Engine) SolveHuman(p *puzzle.Puzzle) ([]int, []puzzle.Move, error) {
	work := p.Clone()
	var moves []puzzle.Move
	for !work.Solved() {
		m, ok := e.hintOrGuess(work)
		if !ok {
			return nil, nil, puzzle.ErrHumanSolve
		}
		applied, err := work.Apply(m)
		if err != nil {
			return nil, nil, err
		}
		moves = append(moves, applied)
	}
	return work.Values(), moves, nil
}

// Rate solves a copy of the puzzle with techniques and returns the
// hardest one used. The input is not modified.
func (e *Engine) Rate(p *puzzle.Puzzle) (Technique, error) {
	_, moves, err := e.SolveHuman(p)
	if err != nil {
		return 0, err
	}
	hardest := SingleCandidate
	for _, m := range moves {
		if t, ok := ByName(m.Method); ok && t.Difficulty() > hardest.Difficulty() {
			hardest = t
		}
	}
	return hardest, nil
}

// SolveTo advances the puzzle in place until the named technique is
// the easiest applicable one, leaving that move unapplied.
func (e *Engine) SolveTo(p *puzzle.Puzzle, tech Technique) error {
	for !p.Solved() {
		m, ok := e.hintOrGuess(p)
		if !ok {
			return puzzle.ErrHumanSolve
		}
		if m.Method == tech.String() {
			return nil
		}
		if _, err := p.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

// SolveUpTo advances the puzzle in place using only techniques up to
// and including the named one, stopping when none of them applies.
func (e *Engine) SolveUpTo(p *puzzle.Puzzle, tech Technique) error {
	limit := len(e.methods)
	for i, t := range e.methods {
		if t == tech {
			limit = i + 1
			break
		}
	}
	for !p.Solved() {
		var (
			m  puzzle.Move
			ok bool
		)
		for _, t := range e.methods[:limit] {
			if m, ok = t.find(p); ok {
				break
			}
		}
		if !ok {
			return nil
		}
		if _, err := p.Apply(m); err != nil {
			return err
		}
	}
	return nil
}
