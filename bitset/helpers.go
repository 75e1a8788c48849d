package bitset

import (
	"iter"
	"strconv"
	"strings"
)

// All returns an iterator over the one bits of v in ascending order.
func All(v Vector) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		c := v.NewCursor()
		for c.SetToFirstOne(); c.Valid(); c.SetToNextOne() {
			if !yield(c.Index()) {
				return
			}
		}
	}
}

// Collect returns the one bits of v in ascending order.
func Collect(v Vector) []uint32 {
	var out []uint32
	for i := range All(v) {
		out = append(out, i)
	}
	return out
}

// PopulationCount counts the one bits of v by walking its cursor.
func PopulationCount(v Vector) int {
	n := 0
	c := v.NewCursor()
	for c.SetToFirstOne(); c.Valid(); c.SetToNextOne() {
		n++
	}
	return n
}

// Equal reports whether a and b contain the same indices.
func Equal(a, b Vector) bool {
	ca, cb := a.NewCursor(), b.NewCursor()
	ca.SetToFirstOne()
	cb.SetToFirstOne()
	for ca.Valid() && cb.Valid() {
		if ca.Index() != cb.Index() {
			return false
		}
		ca.SetToNextOne()
		cb.SetToNextOne()
	}
	return ca.Valid() == cb.Valid()
}

// IsSubset reports whether every index of a is in b.
func IsSubset(a, b Vector) bool {
	if b.HasFastRandomLookup() {
		c := a.NewCursor()
		for c.SetToFirstOne(); c.Valid(); c.SetToNextOne() {
			if !b.ValueAt(c.Index()) {
				return false
			}
		}
		return true
	}

	ca, cb := a.NewCursor(), b.NewCursor()
	cb.SetToFirstOne()
	for ca.SetToFirstOne(); ca.Valid(); ca.SetToNextOne() {
		for cb.Valid() && cb.Index() < ca.Index() {
			cb.SetToNextOne()
		}
		if !cb.Valid() || cb.Index() != ca.Index() {
			return false
		}
	}
	return true
}

// Intersects reports whether a and b share an index.
func Intersects(a, b Vector) bool {
	ca, cb := a.NewCursor(), b.NewCursor()
	ca.SetToFirstOne()
	cb.SetToFirstOne()
	for ca.Valid() && cb.Valid() {
		switch {
		case ca.Index() == cb.Index():
			return true
		case ca.Index() < cb.Index():
			ca.SetToNextOne()
		default:
			cb.SetToNextOne()
		}
	}
	return false
}

// Format renders the one bits of v as "( a b c )".
func Format(v Vector) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i := range All(v) {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	sb.WriteString(" )")
	return sb.String()
}
