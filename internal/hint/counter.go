package hint

import "svw.info/sudoku-engine/internal/bitset"

// ctr counts where a group of values occurs within a house. Indices
// are stored 1-based because position 0 would be indistinguishable
// from an empty set.
type ctr struct {
	values  bitset.Set
	indices bitset.Set
	count   int
}

func (c ctr) merge(o ctr) ctr {
	ind := c.indices.Union(o.indices)
	return ctr{values: c.values.Union(o.values), indices: ind, count: ind.Count()}
}

func (c *ctr) insertIndex(i int) {
	next := c.indices.Insert(i + 1)
	if next != c.indices {
		c.indices = next
		c.count++
	}
}

// indexList returns the stored positions, 0-based and ascending.
func (c ctr) indexList() []int {
	ds := c.indices.Digits()
	for i := range ds {
		ds[i]--
	}
	return ds
}

// containsValue reports whether 0-based position/value i is in the
// values set.
func (c ctr) containsValue(i int) bool { return c.values.Contains(i + 1) }

// removeValues keeps lhs indices and drops the values shared with rhs.
func removeValues(lhs, rhs ctr) ctr {
	return ctr{values: lhs.values.Difference(rhs.values), indices: lhs.indices, count: lhs.count}
}

// removeIndices keeps lhs values and drops the indices shared with rhs.
func removeIndices(lhs, rhs ctr) ctr {
	diff := lhs.indices.Difference(rhs.indices)
	return ctr{values: lhs.values, indices: diff, count: diff.Count()}
}

// tupleCounter holds one ctr per digit of a house. Inserting a cell's
// candidate set records the cell position under every digit it holds.
type tupleCounter struct {
	buckets []ctr
}

func newTupleCounter(houseSize int) *tupleCounter {
	t := &tupleCounter{buckets: make([]ctr, houseSize)}
	for d := 0; d < houseSize; d++ {
		t.buckets[d] = ctr{values: bitset.New(d + 1)}
	}
	return t
}

func (t *tupleCounter) insert(pos int, cands bitset.Set) {
	for d := range t.buckets {
		if !cands.Disjoint(t.buckets[d].values) {
			t.buckets[d].insertIndex(pos)
		}
	}
}

// combos enumerates every size-subset of non-empty buckets, merges the
// complement into rhs, and keeps the diff when it still spans exactly
// size positions.
func (t *tupleCounter) combos(size int, diff func(lhs, rhs ctr) ctr) []ctr {
	var out []ctr
	t.comboRec(&out, diff, ctr{}, ctr{}, -1, 0, size)
	return out
}

func (t *tupleCounter) comboRec(out *[]ctr, diff func(lhs, rhs ctr) ctr, lhs, rhs ctr, lastInd, chosen, size int) {
	ind := lastInd + 1
	// Buckets without occurrences contribute nothing and would distort
	// the counts.
	for ind < len(t.buckets) && t.buckets[ind].count == 0 {
		ind++
	}

	if chosen == size {
		rRHS := rhs
		for i := ind; i < len(t.buckets); i++ {
			rRHS = rRHS.merge(t.buckets[i])
		}
		// A tuple spanning the entire open house eliminates nothing.
		if rRHS.indices.IsEmpty() {
			return
		}
		d := diff(lhs, rRHS)
		if d.count == size {
			*out = append(*out, d)
		}
		return
	}
	if ind >= len(t.buckets) {
		return
	}

	t.comboRec(out, diff, t.buckets[ind].merge(lhs), rhs, ind, chosen+1, size)
	t.comboRec(out, diff, lhs, t.buckets[ind].merge(rhs), ind, chosen, size)
}
