package domain

// Difficulty grades a puzzle by the hardest technique a human solve
// needs.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
	Extreme
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	case Extreme:
		return "extreme"
	}
	return "unknown"
}

// ParseDifficulty maps a label to its grade, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	case "extreme":
		return Extreme
	default:
		return Medium
	}
}

// GradeRating buckets a technique rating into a difficulty grade.
// Singles stay easy, intersections and tuples are medium, basic fish
// are hard, finned fish are expert, and anything needing a guess is
// extreme.
func GradeRating(rating float64) Difficulty {
	switch {
	case rating <= 1.3:
		return Easy
	case rating <= 2.9:
		return Medium
	case rating <= 4.0:
		return Hard
	case rating < 8.0:
		return Expert
	default:
		return Extreme
	}
}
