package sparse

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/hupe1980/bitvec/bitset"
)

// BitSet is a sparse bit set. The zero value is a Null set ready to use.
type BitSet struct {
	segments  []Segment
	allocated bool
}

var (
	_ bitset.Vector   = (*BitSet)(nil)
	_ bitset.Nullable = (*BitSet)(nil)
)

// New returns a Null set.
func New() *BitSet {
	return &BitSet{}
}

// Of returns a set containing exactly ids.
func Of(ids ...uint32) *BitSet {
	b := &BitSet{allocated: true}
	for _, id := range ids {
		b.Set(id, true)
	}
	return b
}

// Clone returns a deep copy of b, preserving its State.
func (b *BitSet) Clone() *BitSet {
	c := &BitSet{allocated: b.allocated}
	if len(b.segments) > 0 {
		c.segments = make([]Segment, len(b.segments))
		for i := range b.segments {
			c.segments[i] = b.segments[i].clone()
		}
	}
	return c
}

// Assign makes b a deep copy of src, propagating Null and Empty.
func (b *BitSet) Assign(src *BitSet) {
	if b == src {
		return
	}
	*b = *src.Clone()
}

// AssignVector makes b hold exactly the members of v. Null is propagated for
// vectors that implement bitset.Nullable.
func (b *BitSet) AssignVector(v bitset.Vector) {
	if s, ok := v.(*BitSet); ok {
		b.Assign(s)
		return
	}
	if bitset.IsNull(v) {
		b.ClearToNull()
		return
	}
	b.Clear()
	b.OrVector(v)
}

// Swap exchanges the contents of a and b.
func Swap(a, b *BitSet) {
	*a, *b = *b, *a
}

// State returns the lifecycle state of b.
func (b *BitSet) State() bitset.State {
	switch {
	case !b.allocated:
		return bitset.Null
	case len(b.segments) == 0:
		return bitset.Empty
	default:
		return bitset.Populated
	}
}

// IsNull reports whether b was never allocated (or was reset by ClearToNull).
func (b *BitSet) IsNull() bool { return !b.allocated }

// IsZero reports whether no bit is set.
func (b *BitSet) IsZero() bool { return len(b.segments) == 0 }

// Clear frees storage and leaves b Empty.
func (b *BitSet) Clear() {
	b.segments = nil
	b.allocated = true
}

// ClearToNull frees storage and leaves b Null.
func (b *BitSet) ClearToNull() {
	b.segments = nil
	b.allocated = false
}

// GrowTo exists for parity with dense sets: a sparse set has no capacity,
// so it only makes b non-null.
func (b *BitSet) GrowTo(int) {
	b.allocated = true
}

// Get reports whether i is a member.
func (b *BitSet) Get(i uint32) bool {
	s := b.segment(uint16(i >> segmentShift))
	return s != nil && s.Contains(uint16(i))
}

// ValueAt is Get, satisfying bitset.Vector.
func (b *BitSet) ValueAt(i uint32) bool { return b.Get(i) }

// Set writes bit i. Writing false never allocates, and a segment left empty
// is dropped.
func (b *BitSet) Set(i uint32, value bool) {
	hb, low := uint16(i>>segmentShift), uint16(i)
	idx, found := b.find(hb)
	if !value {
		if found && b.segments[idx].remove(low) && b.segments[idx].IsZero() {
			b.removeAt(idx)
		}
		return
	}

	b.allocated = true
	if !found {
		b.segments = slices.Insert(b.segments, idx, Segment{highBits: hb})
	}
	b.segments[idx].insert(low)
}

// HasFastRandomLookup returns false: membership costs two binary searches.
func (b *BitSet) HasFastRandomLookup() bool { return false }

// SizeInBits returns the index range covered by the segments: 65536 times
// the last segment's high bits plus one, or 0 for an empty set.
func (b *BitSet) SizeInBits() int {
	if len(b.segments) == 0 {
		return 0
	}
	return (int(b.segments[len(b.segments)-1].highBits) + 1) * segmentSize
}

// NumSegments returns the number of non-empty segments.
func (b *BitSet) NumSegments() int { return len(b.segments) }

// Segments returns the segments in ascending order as (highBits, values)
// pairs. The value slices must not be modified.
func (b *BitSet) Segments() iter.Seq2[uint16, []uint16] {
	return func(yield func(uint16, []uint16) bool) {
		for i := range b.segments {
			if !yield(b.segments[i].highBits, b.segments[i].Values()) {
				return
			}
		}
	}
}

// All returns an iterator over the members of b in ascending order.
func (b *BitSet) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := range b.segments {
			base := b.segments[i].Base()
			for _, v := range b.segments[i].values {
				if !yield(base | uint32(v)) {
					return
				}
			}
		}
	}
}

// MemoryUsage returns the number of bytes held by b.
func (b *BitSet) MemoryUsage() int {
	n := int(unsafe.Sizeof(*b)) + (cap(b.segments)-len(b.segments))*int(unsafe.Sizeof(Segment{}))
	for i := range b.segments {
		n += b.segments[i].MemoryUsage()
	}
	return n
}

// Compact trims every segment, and the segment table, to its length.
func (b *BitSet) Compact() {
	for i := range b.segments {
		b.segments[i].Compact()
	}
	switch {
	case len(b.segments) == 0:
		b.segments = nil
	case cap(b.segments) > len(b.segments):
		trimmed := make([]Segment, len(b.segments))
		copy(trimmed, b.segments)
		b.segments = trimmed
	}
}

// String renders b as "( a b c )", or "0" for a Null set.
func (b *BitSet) String() string {
	if !b.allocated {
		return "0"
	}
	return bitset.Format(b)
}

// find returns the position of the segment for hb, or where it would be
// inserted.
func (b *BitSet) find(hb uint16) (int, bool) {
	return slices.BinarySearchFunc(b.segments, hb, func(s Segment, t uint16) int {
		return int(s.highBits) - int(t)
	})
}

func (b *BitSet) segment(hb uint16) *Segment {
	if i, ok := b.find(hb); ok {
		return &b.segments[i]
	}
	return nil
}

func (b *BitSet) removeAt(i int) {
	b.segments = slices.Delete(b.segments, i, i+1)
}
