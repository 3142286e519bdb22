// Package hint implements the human solving techniques and the
// escalation engine that applies them from easiest to hardest.
package hint

import "svw.info/sudoku-engine/internal/puzzle"

// Technique identifies one human solving method.
type Technique int

const (
	SingleCandidate Technique = iota
	SinglePossibility
	Pointing
	Claiming
	NakedDouble
	NakedTriple
	NakedQuad
	HiddenDouble
	HiddenTriple
	HiddenQuad
	XWing
	Swordfish
	Jellyfish
	FinnedXWing
	FinnedSwordfish
	FinnedJellyfish
	Guess
)

// Difficulty returns the technique's weight. The catalogue is ordered
// by these, so relative values matter more than the absolute scale.
func (t Technique) Difficulty() float64 {
	switch t {
	case SingleCandidate:
		return 0.2
	case SinglePossibility:
		return 1.3
	case Pointing:
		return 1.8
	case Claiming:
		return 2.1
	case NakedDouble:
		return 1.0
	case NakedTriple:
		return 1.7
	case NakedQuad:
		return 2.2
	case HiddenDouble:
		return 2.1
	case HiddenTriple:
		return 2.9
	case HiddenQuad:
		return 3.7
	case XWing:
		return 3.4
	case Swordfish:
		return 4.0
	case Jellyfish:
		return 5.0
	case FinnedXWing:
		return 4.1
	case FinnedSwordfish:
		return 4.9
	case FinnedJellyfish:
		return 5.9
	case Guess:
		return 8.0
	}
	return 0
}

func (t Technique) String() string {
	switch t {
	case SingleCandidate:
		return "Single Candidate"
	case SinglePossibility:
		return "Single Possibility"
	case Pointing:
		return "Pointing Candidates"
	case Claiming:
		return "Claiming Candidates"
	case NakedDouble:
		return "Naked Double"
	case NakedTriple:
		return "Naked Triple"
	case NakedQuad:
		return "Naked Quadruple"
	case HiddenDouble:
		return "Hidden Double"
	case HiddenTriple:
		return "Hidden Triple"
	case HiddenQuad:
		return "Hidden Quadruple"
	case XWing:
		return "X-Wing"
	case Swordfish:
		return "Swordfish"
	case Jellyfish:
		return "Jellyfish"
	case FinnedXWing:
		return "Finned X-Wing"
	case FinnedSwordfish:
		return "Finned Swordfish"
	case FinnedJellyfish:
		return "Finned Jellyfish"
	case Guess:
		return "Guess"
	}
	return "Unknown"
}

// ByName maps a technique name back to its identifier.
func ByName(name string) (Technique, bool) {
	for t := SingleCandidate; t <= Guess; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// find runs the technique's search against the current grid state and
// returns the first applicable move.
func (t Technique) find(p *puzzle.Puzzle) (puzzle.Move, bool) {
	switch t {
	case SingleCandidate:
		return findSingleCandidate(p)
	case SinglePossibility:
		return findSinglePossibility(p)
	case Pointing:
		return findPointing(p)
	case Claiming:
		return findClaiming(p)
	case NakedDouble, NakedTriple, NakedQuad:
		return findNakedTuple(p, int(t-NakedDouble)+2, t)
	case HiddenDouble, HiddenTriple, HiddenQuad:
		return findHiddenTuple(p, int(t-HiddenDouble)+2, t)
	case XWing, Swordfish, Jellyfish:
		return findBasicFish(p, int(t-XWing)+2, t)
	case FinnedXWing, FinnedSwordfish, FinnedJellyfish:
		return findFinnedFish(p, int(t-FinnedXWing)+2, t)
	case Guess:
		return findGuess(p)
	}
	return puzzle.Move{}, false
}

// catalogue is every technique sorted ascending by difficulty, ties
// kept in declaration order. Guess is last.
var catalogue = []Technique{
	SingleCandidate,
	NakedDouble,
	SinglePossibility,
	NakedTriple,
	Pointing,
	Claiming,
	HiddenDouble,
	NakedQuad,
	HiddenTriple,
	XWing,
	HiddenQuad,
	Swordfish,
	FinnedXWing,
	FinnedSwordfish,
	Jellyfish,
	FinnedJellyfish,
	Guess,
}
