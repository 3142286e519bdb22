package puzzle

// SolutionKind discriminates the result of a solving run.
type SolutionKind int

const (
	// SolutionNotSet means no solving method has been applied.
	SolutionNotSet SolutionKind = iota
	// SolutionNone means the puzzle has no solution.
	SolutionNone
	// SolutionOne means exactly one solution exists.
	SolutionOne
	// SolutionMulti means several solutions exist, all enumerated.
	SolutionMulti
	// SolutionHuman means the grid was filled by technique escalation.
	// Human solving finds one solution and never enumerates others.
	SolutionHuman
)

func (k SolutionKind) String() string {
	switch k {
	case SolutionNone:
		return "none"
	case SolutionOne:
		return "one"
	case SolutionMulti:
		return "multi"
	case SolutionHuman:
		return "human-solved"
	}
	return "not-set"
}

// Solution holds the outcome of the backtracking solver or of a human
// solve, including the solved grid(s) when any exist.
type Solution struct {
	kind  SolutionKind
	grids [][]int
	moves []Move
}

// Kind returns the solution discriminator.
func (s Solution) Kind() SolutionKind { return s.kind }

// NumSolutions returns how many solutions were found.
func (s Solution) NumSolutions() (int, error) {
	switch s.kind {
	case SolutionNone:
		return 0, nil
	case SolutionOne, SolutionHuman:
		return 1, nil
	case SolutionMulti:
		return len(s.grids), nil
	}
	return 0, ErrHasNotBeenSolved
}

// Unique returns the single solution grid. It fails when there is no
// solution, several solutions, or no solving run has happened.
func (s Solution) Unique() ([]int, error) {
	switch s.kind {
	case SolutionOne, SolutionHuman:
		return s.grids[0], nil
	case SolutionNone:
		return nil, ErrNoSolution
	case SolutionMulti:
		return nil, &MultipleSolutionError{Count: len(s.grids)}
	}
	return nil, ErrHasNotBeenSolved
}

// All returns every enumerated solution grid.
func (s Solution) All() [][]int { return s.grids }

// Moves returns the move ledger of a human solve, nil otherwise.
func (s Solution) Moves() []Move { return s.moves }
