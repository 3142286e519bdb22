package puzzle

// HouseKind identifies one of the three house orientations.
type HouseKind int

const (
	Row HouseKind = iota
	Col
	Box
)

func (k HouseKind) String() string {
	switch k {
	case Row:
		return "row"
	case Col:
		return "col"
	case Box:
		return "box"
	}
	return "unknown"
}

// House names a single row, column, or box of the grid.
type House struct {
	Kind HouseKind
	N    int
}

// Cells returns the linear indices of the house members, ascending.
func (h House) Cells(s Size) []int {
	hs := s.House()
	out := make([]int, 0, hs)
	switch h.Kind {
	case Row:
		base := h.N * hs
		for c := 0; c < hs; c++ {
			out = append(out, base+c)
		}
	case Col:
		for r := 0; r < hs; r++ {
			out = append(out, r*hs+h.N)
		}
	case Box:
		d := int(s)
		baseRow := (h.N / d) * d
		baseCol := (h.N % d) * d
		for r := baseRow; r < baseRow+d; r++ {
			for c := baseCol; c < baseCol+d; c++ {
				out = append(out, r*hs+c)
			}
		}
	}
	return out
}
