package hint

import (
	"svw.info/sudoku-engine/internal/bitset"
	"svw.info/sudoku-engine/internal/puzzle"
)

// fishCtr tracks a group of primary lines and the cross-line
// positions they cover. Both sets are stored 1-based.
type fishCtr struct {
	primary bitset.Set
	indices bitset.Set
}

func (c fishCtr) merge(o fishCtr) fishCtr {
	return fishCtr{primary: c.primary.Union(o.primary), indices: c.indices.Union(o.indices)}
}

// dropIndices keeps the primaries and removes the positions shared
// with o.
func (c fishCtr) dropIndices(o fishCtr) fishCtr {
	return fishCtr{primary: c.primary, indices: c.indices.Difference(o.indices)}
}

// primaryIntersectIndices unites the primaries but keeps only the
// positions common to both: the positions seen at least twice.
func (c fishCtr) primaryIntersectIndices(o fishCtr) fishCtr {
	return fishCtr{primary: c.primary.Union(o.primary), indices: c.indices.Intersect(o.indices)}
}

func (c *fishCtr) insertIndex(i int) { c.indices = c.indices.Insert(i + 1) }

func (c fishCtr) icount() int { return c.indices.Count() }

func zeroBased(s bitset.Set) []int {
	ds := s.Digits()
	for i := range ds {
		ds[i]--
	}
	return ds
}

// finnedCounter is the per-value fish counter with line identities
// kept in primary, so a covering line can be recovered from a
// position.
type finnedCounter struct {
	buckets []fishCtr
}

func newFinnedCounter(p *puzzle.Puzzle, kind puzzle.HouseKind, val int) *finnedCounter {
	hs := p.Size().House()
	f := &finnedCounter{buckets: make([]fishCtr, hs)}
	for primary := 0; primary < hs; primary++ {
		f.buckets[primary].primary = bitset.New(primary + 1)
		cells := p.HouseCells(puzzle.House{Kind: kind, N: primary})
		for secondary, i := range cells {
			if p.Candidates(i).Contains(val) {
				f.buckets[primary].insertIndex(secondary)
			}
		}
	}
	return f
}

// primaryFromIndices returns the union of primaries of every bucket
// touching the given positions.
func (f *finnedCounter) primaryFromIndices(indices bitset.Set) bitset.Set {
	var acc bitset.Set
	for _, b := range f.buckets {
		if !b.indices.Disjoint(indices) {
			acc = acc.Union(b.primary)
		}
	}
	return acc
}

// finCand is a finned fish candidate: sets covers the positions seen
// at least twice across the chosen lines, extra covers them all. A
// hit has exactly one position left over, the fin.
type finCand struct {
	sets  fishCtr
	extra fishCtr
}

// finCovered reports whether the fin position lies in the same box
// band as one of the fish positions.
func finCovered(cand finCand, dim int) bool {
	extra := zeroBased(cand.extra.indices)[0]
	for _, cind := range zeroBased(cand.sets.indices) {
		if cind/dim == extra/dim {
			return true
		}
	}
	return false
}

// finSeparate reports that at most one fish line shares a box band
// with the fin's line.
func finSeparate(cand finCand, dim int) bool {
	once := false
	for _, left := range zeroBased(cand.sets.primary) {
		for _, right := range zeroBased(cand.extra.primary) {
			if right/dim == left/dim {
				if once {
					return false
				}
				once = true
			}
		}
	}
	return true
}

func finnedComboRec(f *finnedCounter, size int, cur finCand, chosen, lastInd, dim int) (finCand, bool) {
	if chosen == size {
		if cur.sets.icount() != size || cur.extra.icount() != size+1 {
			return finCand{}, false
		}
		newExtra := cur.extra.dropIndices(cur.sets)
		newExtra.primary = f.primaryFromIndices(newExtra.indices).Intersect(newExtra.primary)
		fin := finCand{sets: cur.sets, extra: newExtra}
		if finCovered(fin, dim) && finSeparate(fin, dim) {
			return fin, true
		}
		return finCand{}, false
	}

	ind := lastInd + 1
	for ind < len(f.buckets) && f.buckets[ind].icount() == 0 {
		ind++
	}
	if ind >= len(f.buckets) {
		return finCand{}, false
	}

	// Positions already seen once move into sets when seen again.
	twice := cur.extra.primaryIntersectIndices(f.buckets[ind])
	next := finCand{
		sets:  cur.sets.merge(twice),
		extra: cur.extra.merge(f.buckets[ind]),
	}
	if fin, ok := finnedComboRec(f, size, next, chosen+1, ind, dim); ok {
		return fin, true
	}
	return finnedComboRec(f, size, cur, chosen, ind, dim)
}

// finnedFishInKind looks for a finned fish with its defining lines in
// the given orientation.
func finnedFishInKind(p *puzzle.Puzzle, kind puzzle.HouseKind, size int, tech Technique) (puzzle.Move, bool) {
	hs := p.Size().House()
	dim := int(p.Size())
	for val := 1; val <= hs; val++ {
		f := newFinnedCounter(p, kind, val)
		fin, ok := finnedComboRec(f, size, finCand{}, 0, -1, dim)
		if !ok {
			continue
		}

		m := puzzle.Move{Method: tech.String()}

		finIdx := lineCell(p, kind, zeroBased(fin.extra.primary)[0], zeroBased(fin.extra.indices)[0])
		finBox := p.Size().BoxOf(finIdx)

		involved := make(map[int]bool)
		secondaries := make(map[int]bool)

		for _, primary := range zeroBased(fin.sets.primary) {
			for _, secondary := range zeroBased(fin.sets.indices) {
				i := lineCell(p, kind, primary, secondary)
				if p.Candidates(i).Contains(val) {
					m.AddUsed(i, bitset.New(val))
				}
				involved[i] = true
				for _, j := range p.HouseCells(puzzle.House{Kind: crossKind(kind), N: secondary}) {
					secondaries[j] = true
				}
			}
		}
		for _, primary := range zeroBased(fin.extra.primary) {
			for _, secondary := range zeroBased(fin.extra.indices) {
				i := lineCell(p, kind, primary, secondary)
				if p.Candidates(i).Contains(val) {
					m.AddUsed(i, bitset.New(val))
				}
				involved[i] = true
			}
		}

		for _, i := range p.HouseCells(puzzle.House{Kind: puzzle.Box, N: finBox}) {
			if !involved[i] && secondaries[i] && p.Candidates(i).Contains(val) {
				m.AddRemoved(i, bitset.New(val))
			}
		}

		if len(m.Removed) > 0 {
			return m, true
		}
	}
	return puzzle.Move{}, false
}

// findFinnedFish finds a basic fish broken by one extra candidate
// position, the fin. Eliminations are confined to the fin's box, on
// the fish's cross lines.
func findFinnedFish(p *puzzle.Puzzle, size int, tech Technique) (puzzle.Move, bool) {
	if size < 2 || size > p.Size().House()/2 {
		return puzzle.Move{}, false
	}
	for _, kind := range []puzzle.HouseKind{puzzle.Row, puzzle.Col} {
		if m, ok := finnedFishInKind(p, kind, size, tech); ok {
			return m, true
		}
	}
	return puzzle.Move{}, false
}
