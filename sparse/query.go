package sparse

import (
	"sort"

	"github.com/hupe1980/bitvec/bitset"
)

// PopulationCount returns the number of members.
func (b *BitSet) PopulationCount() int {
	n := 0
	for i := range b.segments {
		n += len(b.segments[i].values)
	}
	return n
}

// PopulationCountLimit returns the number of members below numBits.
func (b *BitSet) PopulationCountLimit(numBits int) int {
	n := 0
	for i := range b.segments {
		s := &b.segments[i]
		base := int(s.Base())
		switch {
		case base+segmentSize <= numBits:
			n += len(s.values)
		case base < numBits:
			limit := numBits - base
			n += sort.Search(len(s.values), func(k int) bool { return int(s.values[k]) >= limit })
			return n
		default:
			return n
		}
	}
	return n
}

// PopulationCountMasked returns the number of members also in mask.
func (b *BitSet) PopulationCountMasked(mask bitset.Vector) int {
	n := 0
	c := MaskCursor(b.NewCursor(), mask)
	for c.SetToFirstOne(); c.Valid(); c.SetToNextOne() {
		n++
	}
	return n
}

// FirstOne returns the smallest member. An empty set returns 0; check IsZero
// first or use FirstOneOK.
func (b *BitSet) FirstOne() uint32 {
	i, ok := b.FirstOneOK()
	if !ok && bitset.Debug {
		bitset.Violation("FirstOne", bitset.ErrEmptySet)
	}
	return i
}

// FirstOneOK returns the smallest member and whether one exists.
func (b *BitSet) FirstOneOK() (uint32, bool) {
	if len(b.segments) == 0 {
		return 0, false
	}
	return b.segments[0].FirstOne(), true
}

// LastOne returns the largest member, or 0 for an empty set.
func (b *BitSet) LastOne() uint32 {
	i, ok := b.LastOneOK()
	if !ok && bitset.Debug {
		bitset.Violation("LastOne", bitset.ErrEmptySet)
	}
	return i
}

// LastOneOK returns the largest member and whether one exists.
func (b *BitSet) LastOneOK() (uint32, bool) {
	if len(b.segments) == 0 {
		return 0, false
	}
	return b.segments[len(b.segments)-1].LastOne(), true
}

// LowestZero returns the smallest non-member, 0 for an empty set. Unlike
// dense.BitSet.LowestZero it never reports past-capacity sentinels.
func (b *BitSet) LowestZero() int {
	next := 0
	for i := range b.segments {
		s := &b.segments[i]
		if int(s.Base()) != next {
			return next
		}
		// Values are unique and sorted, so values[k] > k at the first gap.
		gap := sort.Search(len(s.values), func(k int) bool { return int(s.values[k]) > k })
		if gap < segmentSize {
			return next + gap
		}
		next += segmentSize
	}
	return next
}

// ClearLastOneIfThereIsOneInRange clears the largest member in [low, high]
// and returns it. It returns bitset.NotFound, false when the range holds no
// member.
func (b *BitSet) ClearLastOneIfThereIsOneInRange(low, high uint32) (uint32, bool) {
	if low > high {
		return bitset.NotFound, false
	}
	hb := uint16(high >> segmentShift)
	idx, found := b.find(hb)
	if !found {
		idx--
	}
	for ; idx >= 0; idx-- {
		s := &b.segments[idx]
		limit := segmentMask
		if s.highBits == hb {
			limit = int(high & segmentMask)
		}
		k := sort.Search(len(s.values), func(k int) bool { return int(s.values[k]) > limit }) - 1
		if k < 0 {
			if s.Base() <= low {
				break
			}
			continue
		}
		i := s.Base() | uint32(s.values[k])
		if i < low {
			break
		}
		s.values = append(s.values[:k], s.values[k+1:]...)
		if s.IsZero() {
			b.removeAt(idx)
		}
		return i, true
	}
	return bitset.NotFound, false
}

// Intersects reports whether b and o share a member.
func (b *BitSet) Intersects(o *BitSet) bool {
	i, j := 0, 0
	for i < len(b.segments) && j < len(o.segments) {
		switch x, y := &b.segments[i], &o.segments[j]; {
		case x.highBits < y.highBits:
			i++
		case x.highBits > y.highBits:
			j++
		default:
			if x.Intersects(y) {
				return true
			}
			i++
			j++
		}
	}
	return false
}

// IntersectsVector reports whether b and v share a member.
func (b *BitSet) IntersectsVector(v bitset.Vector) bool {
	if s, ok := v.(*BitSet); ok {
		return b.Intersects(s)
	}
	if v.HasFastRandomLookup() {
		for i := range b.All() {
			if v.ValueAt(i) {
				return true
			}
		}
		return false
	}
	return bitset.Intersects(b, v)
}

// IntersectsWithMask reports whether b, in and mask share a member.
func (b *BitSet) IntersectsWithMask(in, mask *BitSet) bool {
	for k := range b.segments {
		s := &b.segments[k]
		is, ms := in.segment(s.highBits), mask.segment(s.highBits)
		if is == nil || ms == nil {
			continue
		}
		both := Segment{highBits: s.highBits, values: intersect(nil, s.values, is.values)}
		if both.Intersects(ms) {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every member of b is also in o.
func (b *BitSet) IsSubsetOf(o *BitSet) bool {
	if len(b.segments) > len(o.segments) {
		return false
	}
	j := 0
	for i := range b.segments {
		s := &b.segments[i]
		for j < len(o.segments) && o.segments[j].highBits < s.highBits {
			j++
		}
		if j == len(o.segments) || o.segments[j].highBits != s.highBits || !s.IsSubsetOf(&o.segments[j]) {
			return false
		}
		j++
	}
	return true
}

// IsSubsetOfVector reports whether every member of b is also in v.
func (b *BitSet) IsSubsetOfVector(v bitset.Vector) bool {
	if s, ok := v.(*BitSet); ok {
		return b.IsSubsetOf(s)
	}
	return bitset.IsSubset(b, v)
}

// Equal reports whether b and o hold the same members. State is ignored.
func (b *BitSet) Equal(o *BitSet) bool {
	if len(b.segments) != len(o.segments) {
		return false
	}
	for i := range b.segments {
		if !b.segments[i].Equal(&o.segments[i]) {
			return false
		}
	}
	return true
}

// EqualVector reports whether b and v hold the same members.
func (b *BitSet) EqualVector(v bitset.Vector) bool {
	if s, ok := v.(*BitSet); ok {
		return b.Equal(s)
	}
	return bitset.Equal(b, v)
}
