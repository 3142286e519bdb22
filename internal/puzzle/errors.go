package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSolution is returned when a unique solution is requested
	// for a puzzle that has none.
	ErrNoSolution = errors.New("there is no solution for the given input")

	// ErrHasNotBeenSolved is returned when a solution is queried
	// before any solving method has run.
	ErrHasNotBeenSolved = errors.New("the puzzle has not been solved yet")

	// ErrHumanSolve is returned when technique escalation, including
	// the guess fallback, cannot make progress.
	ErrHumanSolve = errors.New("human solve could not proceed")
)

// InputLengthError reports a flat input whose length matches no
// supported grid size.
type InputLengthError struct {
	Actual int
}

func (e *InputLengthError) Error() string {
	return fmt.Sprintf("input length %d does not match any supported grid size", e.Actual)
}

// ConflictError reports a given value that violates row, column, or
// box uniqueness at construction.
type ConflictError struct {
	Index int
	Value int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting value %d at index %d", e.Value, e.Index)
}

// ValueNotPossibleError reports an assignment or candidate removal
// whose target is not in the cell's candidate set.
type ValueNotPossibleError struct {
	Index int
	Value int
}

func (e *ValueNotPossibleError) Error() string {
	return fmt.Sprintf("value %d is not a possibility at index %d", e.Value, e.Index)
}

// MultipleSolutionError reports a unique-solution query against a
// puzzle with several solutions.
type MultipleSolutionError struct {
	Count int
}

func (e *MultipleSolutionError) Error() string {
	return fmt.Sprintf("there is not a unique solution: %d solutions exist", e.Count)
}

// ExcessiveSolutionsError reports that brute-force enumeration was
// halted after exceeding the solution cap.
type ExcessiveSolutionsError struct {
	Cap int
}

func (e *ExcessiveSolutionsError) Error() string {
	return fmt.Sprintf("more than %d solutions exist and solution calculation was halted", e.Cap)
}
