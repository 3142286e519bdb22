// Package bitset provides the fixed-width candidate set used throughout
// the engine. A Set holds digits 1..128, which covers every supported
// house size (box dimensions 2 through 10, so at most 100 digits).
package bitset

import (
	"math/bits"
	"strconv"
	"strings"
)

// Set is an immutable set of candidate digits. The zero value is the
// empty set. Digit d occupies bit d-1; digit 0 is never a member.
type Set struct {
	lo, hi uint64
}

// New returns a set containing the given digits. Digits outside 1..128
// are ignored.
func New(digits ...int) Set {
	var s Set
	for _, d := range digits {
		s = s.Insert(d)
	}
	return s
}

// Full returns the set of all digits 1..n.
func Full(n int) Set {
	switch {
	case n <= 0:
		return Set{}
	case n < 64:
		return Set{lo: 1<<uint(n) - 1}
	case n == 64:
		return Set{lo: ^uint64(0)}
	case n < 128:
		return Set{lo: ^uint64(0), hi: 1<<uint(n-64) - 1}
	default:
		return Set{lo: ^uint64(0), hi: ^uint64(0)}
	}
}

// Insert returns s with digit d added.
func (s Set) Insert(d int) Set {
	switch {
	case d >= 1 && d <= 64:
		s.lo |= 1 << uint(d-1)
	case d > 64 && d <= 128:
		s.hi |= 1 << uint(d-65)
	}
	return s
}

// Remove returns s with digit d removed.
func (s Set) Remove(d int) Set {
	switch {
	case d >= 1 && d <= 64:
		s.lo &^= 1 << uint(d-1)
	case d > 64 && d <= 128:
		s.hi &^= 1 << uint(d-65)
	}
	return s
}

// Contains reports whether digit d is a member.
func (s Set) Contains(d int) bool {
	switch {
	case d >= 1 && d <= 64:
		return s.lo&(1<<uint(d-1)) != 0
	case d > 64 && d <= 128:
		return s.hi&(1<<uint(d-65)) != 0
	}
	return false
}

// Count returns the number of members.
func (s Set) Count() int {
	return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi)
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool { return s.lo == 0 && s.hi == 0 }

// Union returns the members of either set.
func (s Set) Union(o Set) Set { return Set{lo: s.lo | o.lo, hi: s.hi | o.hi} }

// Intersect returns the members common to both sets.
func (s Set) Intersect(o Set) Set { return Set{lo: s.lo & o.lo, hi: s.hi & o.hi} }

// Difference returns the members of s not in o.
func (s Set) Difference(o Set) Set { return Set{lo: s.lo &^ o.lo, hi: s.hi &^ o.hi} }

// SymmetricDifference returns the members in exactly one of the sets.
func (s Set) SymmetricDifference(o Set) Set { return Set{lo: s.lo ^ o.lo, hi: s.hi ^ o.hi} }

// Disjoint reports whether the sets share no members.
func (s Set) Disjoint(o Set) bool { return s.lo&o.lo == 0 && s.hi&o.hi == 0 }

// Min returns the smallest member, or 0 if the set is empty.
func (s Set) Min() int {
	if s.lo != 0 {
		return bits.TrailingZeros64(s.lo) + 1
	}
	if s.hi != 0 {
		return bits.TrailingZeros64(s.hi) + 65
	}
	return 0
}

// NextAfter returns the smallest member strictly greater than d, or 0
// if there is none. NextAfter(0) is equivalent to Min.
func (s Set) NextAfter(d int) int {
	if d < 0 {
		d = 0
	}
	var masked Set
	switch {
	case d < 64:
		masked = Set{lo: s.lo &^ (1<<uint(d) - 1), hi: s.hi}
	case d < 128:
		masked = Set{hi: s.hi &^ (1<<uint(d-64) - 1)}
	}
	return masked.Min()
}

// Digits returns the members in ascending order.
func (s Set) Digits() []int {
	out := make([]int, 0, s.Count())
	for d := s.Min(); d != 0; d = s.NextAfter(d) {
		out = append(out, d)
	}
	return out
}

func (s Set) String() string {
	ds := s.Digits()
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = strconv.Itoa(d)
	}
	return "{" + strings.Join(parts, " ") + "}"
}
