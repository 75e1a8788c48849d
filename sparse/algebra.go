package sparse

import (
	"slices"

	"github.com/hupe1980/bitvec/bitset"
)

type opKind uint8

const (
	opAnd opKind = iota
	opOr
	opAndc
	opXor
)

// keepsLeft reports whether segments only present in the receiver survive.
func (k opKind) keepsLeft() bool { return k != opAnd }

// takesRight reports whether segments only present in the operand are copied.
func (k opKind) takesRight() bool { return k == opOr || k == opXor }

func (k opKind) apply(s, in *Segment) bool {
	switch k {
	case opAnd:
		return s.And(in)
	case opOr:
		return s.Or(in)
	case opAndc:
		return s.Andc(in)
	default:
		return s.Xor(in)
	}
}

// And performs b &= o and reports whether b changed.
func (b *BitSet) And(o *BitSet) bool { return b.combine(o, b, opAnd) }

// Or performs b |= o and reports whether b changed.
func (b *BitSet) Or(o *BitSet) bool { return b.combine(o, b, opOr) }

// Andc performs b &^= o and reports whether b changed.
func (b *BitSet) Andc(o *BitSet) bool { return b.combine(o, b, opAndc) }

// Xor performs b ^= o and reports whether b changed.
func (b *BitSet) Xor(o *BitSet) bool { return b.combine(o, b, opXor) }

// AndTo stores b & in into out and reports whether the result differs from
// b. out may alias b or in.
func (b *BitSet) AndTo(in, out *BitSet) bool { return b.combine(in, out, opAnd) }

// OrTo stores b | in into out and reports whether the result differs from b.
func (b *BitSet) OrTo(in, out *BitSet) bool { return b.combine(in, out, opOr) }

// AndcTo stores b &^ in into out and reports whether the result differs from
// b.
func (b *BitSet) AndcTo(in, out *BitSet) bool { return b.combine(in, out, opAndc) }

// XorTo stores b ^ in into out and reports whether the result differs from
// b.
func (b *BitSet) XorTo(in, out *BitSet) bool { return b.combine(in, out, opXor) }

// combine merge-joins the segment tables of b and in by high bits and
// writes the result to out. Segments of an operand that out aliases are
// moved instead of copied.
func (b *BitSet) combine(in, out *BitSet, kind opKind) bool {
	left, right := b.segments, in.segments
	res := make([]Segment, 0, len(left)+len(right))
	changed := false

	take := func(owner *BitSet, s *Segment) Segment {
		if owner == out {
			return *s
		}
		return s.clone()
	}

	i, j := 0, 0
	for i < len(left) || j < len(right) {
		switch {
		case j == len(right) || (i < len(left) && left[i].highBits < right[j].highBits):
			if kind.keepsLeft() {
				res = append(res, take(b, &left[i]))
			} else {
				changed = true
			}
			i++
		case i == len(left) || right[j].highBits < left[i].highBits:
			if kind.takesRight() {
				res = append(res, take(in, &right[j]))
				changed = true
			}
			j++
		default:
			seg := take(b, &left[i])
			if kind.apply(&seg, &right[j]) {
				changed = true
			}
			if !seg.IsZero() {
				res = append(res, seg)
			}
			i++
			j++
		}
	}

	if len(res) == 0 {
		res = nil
	}
	out.segments = res
	out.allocated = true
	return changed
}

// OrValues unions sorted, unique low halves into the segment for highBits
// and reports whether b changed. values is not retained.
func (b *BitSet) OrValues(highBits uint16, values []uint16) bool {
	if len(values) == 0 {
		return false
	}
	b.allocated = true
	in := Segment{highBits: highBits, values: values}
	idx, found := b.find(highBits)
	if !found {
		b.segments = slices.Insert(b.segments, idx, in.clone())
		return true
	}
	return b.segments[idx].Or(&in)
}

// OrMask performs b |= in & mask and reports whether b changed.
func (b *BitSet) OrMask(in, mask *BitSet) bool {
	if in.IsZero() || mask.IsZero() {
		return false
	}
	if b.IsZero() {
		in.AndTo(mask, b)
		return !b.IsZero()
	}

	changed := false
	for k := range in.segments {
		is := &in.segments[k]
		ms := mask.segment(is.highBits)
		if ms == nil {
			continue
		}
		idx, found := b.find(is.highBits)
		if found {
			if b.segments[idx].OrMasked(is, ms) {
				changed = true
			}
			continue
		}
		seg := Segment{highBits: is.highBits}
		if seg.OrMasked(is, ms) {
			b.segments = slices.Insert(b.segments, idx, seg)
			changed = true
		}
	}
	return changed
}

// OrVector performs b |= v for any vector and reports whether b changed.
// Cursor values are buffered per high-bits run, up to 1024 at a time.
func (b *BitSet) OrVector(v bitset.Vector) bool {
	if s, ok := v.(*BitSet); ok {
		return b.Or(s)
	}
	if v.IsZero() {
		return false
	}

	changed := false
	buf := make([]uint16, 0, growthChunk)
	c := v.NewCursor()
	c.SetToFirstOne()
	for c.Valid() {
		hb := uint16(c.Index() >> segmentShift)
		buf = buf[:0]
		for c.Valid() && len(buf) < growthChunk && uint16(c.Index()>>segmentShift) == hb {
			buf = append(buf, uint16(c.Index()))
			c.SetToNextOne()
		}
		if b.OrValues(hb, buf) {
			changed = true
		}
	}
	return changed
}

// AndVector performs b &= v for any vector and reports whether b changed.
func (b *BitSet) AndVector(v bitset.Vector) bool {
	if s, ok := v.(*BitSet); ok {
		return b.And(s)
	}
	if b.IsZero() {
		return false
	}
	if v.IsZero() {
		b.Clear()
		return true
	}

	if v.HasFastRandomLookup() {
		return b.filter(func(i uint32) bool { return v.ValueAt(i) })
	}
	c := v.NewCursor()
	c.SetToFirstOne()
	return b.filter(func(i uint32) bool {
		for c.Valid() && c.Index() < i {
			c.SetToNextOne()
		}
		return c.Valid() && c.Index() == i
	})
}

// AndcVector performs b &^= v for any vector and reports whether b changed.
func (b *BitSet) AndcVector(v bitset.Vector) bool {
	if s, ok := v.(*BitSet); ok {
		return b.Andc(s)
	}
	if b.IsZero() || v.IsZero() {
		return false
	}

	if v.HasFastRandomLookup() {
		return b.filter(func(i uint32) bool { return !v.ValueAt(i) })
	}
	c := v.NewCursor()
	c.SetToFirstOne()
	return b.filter(func(i uint32) bool {
		for c.Valid() && c.Index() < i {
			c.SetToNextOne()
		}
		return !c.Valid() || c.Index() != i
	})
}

// filter keeps the members for which keep returns true, visiting them in
// ascending order, and drops segments left empty.
func (b *BitSet) filter(keep func(i uint32) bool) bool {
	changed := false
	n := 0
	for k := range b.segments {
		s := &b.segments[k]
		base := s.Base()
		kept := s.values[:0]
		for _, v := range s.values {
			if keep(base | uint32(v)) {
				kept = append(kept, v)
			}
		}
		if len(kept) < len(s.values) {
			changed = true
		}
		s.values = kept
		if len(kept) > 0 {
			b.segments[n] = *s
			n++
		}
	}
	clear(b.segments[n:])
	b.segments = b.segments[:n]
	if n == 0 {
		b.segments = nil
	}
	return changed
}
