package domain

// PuzzleRecord is a persisted puzzle with metadata. Givens is the
// flat cell list in row order, zero for open cells, so records stay
// valid for any board size.
type PuzzleRecord struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Givens     []int      `json:"givens"`
	Difficulty Difficulty `json:"difficulty"`
	Rating     float64    `json:"rating,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// Conflict reports a given that collides with another cell in one of
// its houses.
type Conflict struct {
	Index int `json:"index"`
	Value int `json:"value"`
}
