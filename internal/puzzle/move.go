package puzzle

import (
	"fmt"
	"strings"

	"svw.info/sudoku-engine/internal/bitset"
)

// CellValues pairs a cell index with a set of digits, typically the
// candidates involved in or removed by a move.
type CellValues struct {
	Index  int        `json:"index"`
	Values bitset.Set `json:"-"`
}

// CellValue pairs a cell index with a single placed digit.
type CellValue struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// Move documents one change to the puzzle: a manual edit or a
// technique application. Used lists the cells whose candidates
// justified the move; Removed lists the candidates eliminated per
// cell; Set is the placement, if the move makes one.
type Move struct {
	Method  string
	Manual  bool
	Used    []CellValues
	Removed []CellValues
	Set     *CellValue
}

// HasSet reports whether the move places a value.
func (m Move) HasSet() bool { return m.Set != nil }

// AddUsed appends a justifying cell/candidate pair.
func (m *Move) AddUsed(index int, values bitset.Set) {
	m.Used = append(m.Used, CellValues{Index: index, Values: values})
}

// AddRemoved appends a cell/candidate pair to eliminate.
func (m *Move) AddRemoved(index int, values bitset.Set) {
	m.Removed = append(m.Removed, CellValues{Index: index, Values: values})
}

func (m Move) String() string {
	var b strings.Builder
	if m.Set != nil {
		fmt.Fprintf(&b, "set %d at index %d", m.Set.Value, m.Set.Index)
	}
	if len(m.Used) > 0 {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		idx := make([]string, len(m.Used))
		for i, u := range m.Used {
			idx[i] = fmt.Sprint(u.Index)
		}
		fmt.Fprintf(&b, "indexes %s used to solve", strings.Join(idx, ","))
	}
	if m.Method != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%s)", m.Method)
	}
	return b.String()
}
