package puzzle

import (
	"fmt"
	"strings"
)

// Parse builds a puzzle from a flat string, one character per cell.
// Decimal digits are cell values and any other character is an empty
// cell, so "..53....." and "005300000" describe the same row. The
// string length must match a supported grid size.
func Parse(input string, opts ...Option) (*Puzzle, error) {
	runes := []rune(input)
	values := make([]int, len(runes))
	for i, r := range runes {
		if r >= '0' && r <= '9' {
			values[i] = int(r - '0')
		}
	}
	return New(values, opts...)
}

// Format renders the current grid values as a string. Open cells
// print as the empty rune; filled cells print their decimal value.
// Grids with house sizes above 9 have multi-character values and
// require a non-empty delimiter.
func (p *Puzzle) Format(empty rune, delim string) (string, error) {
	if p.size.House() > 9 && delim == "" {
		return "", fmt.Errorf("grids larger than 9x9 require a delimiter")
	}
	var b strings.Builder
	for i, c := range p.cells {
		if i > 0 {
			b.WriteString(delim)
		}
		if c.value == 0 {
			b.WriteRune(empty)
		} else {
			fmt.Fprintf(&b, "%d", c.value)
		}
	}
	return b.String(), nil
}

// String renders the grid with '.' for open cells and no delimiter.
// Larger grids fall back to a space delimiter.
func (p *Puzzle) String() string {
	delim := ""
	if p.size.House() > 9 {
		delim = " "
	}
	s, _ := p.Format('.', delim)
	return s
}
