package sparse

import (
	"slices"
	"sort"
	"unsafe"

	"github.com/hupe1980/bitvec/bitmanip"
)

const (
	segmentShift = 16
	segmentSize  = 1 << segmentShift
	segmentMask  = segmentSize - 1

	// growthChunk is the threshold below which segment capacity grows in
	// powers of two and the linear step above it.
	growthChunk = 1024
)

// Segment holds the members of a BitSet that share the same high 16 bits,
// as a sorted slice of unique low halves.
type Segment struct {
	highBits uint16
	values   []uint16
}

// NewSegment returns a segment for highBits holding values. The values are
// copied, sorted and deduplicated.
func NewSegment(highBits uint16, values ...uint16) *Segment {
	vs := make([]uint16, len(values), segmentCapacity(len(values)))
	copy(vs, values)
	slices.Sort(vs)
	return &Segment{highBits: highBits, values: slices.Compact(vs)}
}

// HighBits returns the shared high 16 bits.
func (s *Segment) HighBits() uint16 { return s.highBits }

// Base returns the smallest index the segment can hold.
func (s *Segment) Base() uint32 { return uint32(s.highBits) << segmentShift }

// Len returns the number of members.
func (s *Segment) Len() int { return len(s.values) }

// Cap returns the allocated capacity in values.
func (s *Segment) Cap() int { return cap(s.values) }

// IsZero reports whether the segment holds no value.
func (s *Segment) IsZero() bool { return len(s.values) == 0 }

// Values returns the sorted low halves. The slice must not be modified.
func (s *Segment) Values() []uint16 { return s.values[:len(s.values):len(s.values)] }

// Contains reports whether low is a member.
func (s *Segment) Contains(low uint16) bool {
	_, found := slices.BinarySearch(s.values, low)
	return found
}

// FirstOne returns the smallest full index in the segment. s must not be
// empty.
func (s *Segment) FirstOne() uint32 { return s.Base() | uint32(s.values[0]) }

// LastOne returns the largest full index in the segment. s must not be
// empty.
func (s *Segment) LastOne() uint32 { return s.Base() | uint32(s.values[len(s.values)-1]) }

// Grow ensures capacity for numValues values, keeping the current ones.
//
// Up to 1024 values the capacity is the next power of two; above, it is
// rounded up to a multiple of 1024. Capacity never exceeds 65535 unless the
// segment is to hold all 65536 values.
func (s *Segment) Grow(numValues int) {
	if numValues <= cap(s.values) {
		return
	}
	grown := make([]uint16, len(s.values), segmentCapacity(numValues))
	copy(grown, s.values)
	s.values = grown
}

// Compact trims capacity to the current length.
func (s *Segment) Compact() {
	if cap(s.values) == len(s.values) {
		return
	}
	if len(s.values) == 0 {
		s.values = nil
		return
	}
	trimmed := make([]uint16, len(s.values))
	copy(trimmed, s.values)
	s.values = trimmed
}

// MemoryUsage returns the number of bytes held by s.
func (s *Segment) MemoryUsage() int {
	return int(unsafe.Sizeof(*s)) + cap(s.values)*2
}

// Or performs s |= in and reports whether s changed.
func (s *Segment) Or(in *Segment) bool { return s.OrTo(in, s) }

// And performs s &= in and reports whether s changed.
func (s *Segment) And(in *Segment) bool { return s.AndTo(in, s) }

// Andc performs s &^= in and reports whether s changed.
func (s *Segment) Andc(in *Segment) bool { return s.AndcTo(in, s) }

// Xor performs s ^= in and reports whether s changed.
func (s *Segment) Xor(in *Segment) bool { return s.XorTo(in, s) }

// OrTo stores s | in into out and reports whether the result differs from s.
// Both operands must share the same high bits. out may alias either operand.
func (s *Segment) OrTo(in, out *Segment) bool {
	switch {
	case in.IsZero():
		out.assign(s)
		return false
	case s.IsZero():
		out.assign(in)
		out.highBits = s.highBits
		return true
	case out == s && s.values[len(s.values)-1] < in.values[0]:
		s.Grow(len(s.values) + len(in.values))
		s.values = append(s.values, in.values...)
		return true
	}

	res := union(make([]uint16, 0, segmentCapacity(len(s.values)+len(in.values))), s.values, in.values)
	if len(res) == len(s.values) {
		out.assign(s)
		return false
	}
	out.highBits, out.values = s.highBits, res
	return true
}

// AndTo stores s & in into out and reports whether the result differs from
// s. out may alias either operand.
func (s *Segment) AndTo(in, out *Segment) bool {
	n := len(s.values)
	if out == s {
		s.values = intersect(s.values[:0], s.values, in.values)
		return len(s.values) < n
	}
	res := intersect(make([]uint16, 0, segmentCapacity(min(n, len(in.values)))), s.values, in.values)
	out.highBits, out.values = s.highBits, res
	return len(res) < n
}

// AndcTo stores s &^ in into out and reports whether the result differs from
// s. out may alias either operand.
func (s *Segment) AndcTo(in, out *Segment) bool {
	n := len(s.values)
	if out == s {
		s.values = difference(s.values[:0], s.values, in.values)
		return len(s.values) < n
	}
	res := difference(make([]uint16, 0, segmentCapacity(n)), s.values, in.values)
	out.highBits, out.values = s.highBits, res
	return len(res) < n
}

// XorTo stores s ^ in into out and reports whether the result differs from
// s. out may alias either operand.
func (s *Segment) XorTo(in, out *Segment) bool {
	if in.IsZero() {
		out.assign(s)
		return false
	}
	res := symmetric(make([]uint16, 0, segmentCapacity(len(s.values)+len(in.values))), s.values, in.values)
	out.highBits, out.values = s.highBits, res
	return true
}

// OrMasked performs s |= in & mask and reports whether s changed.
func (s *Segment) OrMasked(in, mask *Segment) bool {
	if in.IsZero() || mask.IsZero() {
		return false
	}
	masked := Segment{
		highBits: s.highBits,
		values:   intersect(make([]uint16, 0, min(len(in.values), len(mask.values))), in.values, mask.values),
	}
	return s.Or(&masked)
}

// IsSubsetOf reports whether every value of s is also in o.
func (s *Segment) IsSubsetOf(o *Segment) bool {
	if len(s.values) > len(o.values) {
		return false
	}
	j := 0
	for _, v := range s.values {
		j = advance(o.values, v, j)
		if j == len(o.values) || o.values[j] != v {
			return false
		}
		j++
	}
	return true
}

// Intersects reports whether s and o share a value.
func (s *Segment) Intersects(o *Segment) bool {
	i, j := 0, 0
	for i < len(s.values) && j < len(o.values) {
		switch a, b := s.values[i], o.values[j]; {
		case a == b:
			return true
		case a < b:
			i = advance(s.values, b, i)
		default:
			j = advance(o.values, a, j)
		}
	}
	return false
}

// Equal reports whether s and o hold the same index set.
func (s *Segment) Equal(o *Segment) bool {
	return s.highBits == o.highBits && slices.Equal(s.values, o.values)
}

// assign makes s a copy of src.
func (s *Segment) assign(src *Segment) {
	if s == src {
		return
	}
	s.highBits = src.highBits
	s.values = append(make([]uint16, 0, segmentCapacity(len(src.values))), src.values...)
}

func (s *Segment) clone() Segment {
	var c Segment
	c.assign(s)
	return c
}

// insert adds low and reports whether it was missing.
func (s *Segment) insert(low uint16) bool {
	i, found := slices.BinarySearch(s.values, low)
	if found {
		return false
	}
	s.Grow(len(s.values) + 1)
	s.values = slices.Insert(s.values, i, low)
	return true
}

// remove deletes low and reports whether it was present.
func (s *Segment) remove(low uint16) bool {
	i, found := slices.BinarySearch(s.values, low)
	if !found {
		return false
	}
	s.values = slices.Delete(s.values, i, i+1)
	return true
}

func segmentCapacity(numValues int) int {
	switch {
	case numValues <= 0:
		return 0
	case numValues <= growthChunk:
		return int(bitmanip.CeilingPowerOfTwo32(uint32(numValues)))
	case numValues >= segmentSize:
		return segmentSize
	default:
		return min(growthChunk+growthChunk*((numValues-1)/growthChunk), segmentMask)
	}
}

// advance returns the first position at or after from whose value is >=
// target, galloping before the binary search.
func advance(values []uint16, target uint16, from int) int {
	if from >= len(values) || values[from] >= target {
		return from
	}
	step := 1
	lo, hi := from, from+1
	for hi < len(values) && values[hi] < target {
		lo = hi
		step <<= 1
		hi = from + step
	}
	hi = min(hi, len(values))
	return lo + 1 + sort.Search(hi-lo-1, func(k int) bool { return values[lo+1+k] >= target })
}

func union(dst, a, b []uint16) []uint16 {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case a[i] > b[j]:
			dst = append(dst, b[j])
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}

// intersect appends a & b to dst. dst may share storage with a.
func intersect(dst, a, b []uint16) []uint16 {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			dst = append(dst, a[i])
			i++
			j++
		case a[i] < b[j]:
			i = advance(a, b[j], i)
		default:
			j = advance(b, a[i], j)
		}
	}
	return dst
}

// difference appends a &^ b to dst. dst may share storage with a.
func difference(dst, a, b []uint16) []uint16 {
	j := 0
	for _, v := range a {
		j = advance(b, v, j)
		if j < len(b) && b[j] == v {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

func symmetric(dst, a, b []uint16) []uint16 {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case a[i] > b[j]:
			dst = append(dst, b[j])
			j++
		default:
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}
