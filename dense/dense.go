package dense

import (
	"slices"
	"unsafe"

	"github.com/hupe1980/bitvec/bitmanip"
	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/internal/wordops"
)

const (
	// WordBits is the width of a native word in bits.
	WordBits = 64

	wordShift = 6
	wordMask  = WordBits - 1
	highBit   = uint64(1) << wordMask
	fullMask  = ^uint64(0)

	// growthChunk is the threshold below which geometric growth applies and
	// the linear growth step above it.
	growthChunk = 1024
)

// BitSet is a dense bit set. The zero value is a Null set ready to use.
type BitSet struct {
	words     []uint64
	allocated bool
}

var (
	_ bitset.WordVector = (*BitSet)(nil)
	_ bitset.Nullable   = (*BitSet)(nil)
)

// New returns a Null set.
func New() *BitSet {
	return &BitSet{}
}

// NewWithSize returns an Empty set with room for at least numBits bits.
func NewWithSize(numBits int) *BitSet {
	b := &BitSet{}
	b.GrowTo(numBits, false, false)
	return b
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
	return &BitSet{words: slices.Clone(b.words), allocated: b.allocated}
}

// Assign makes b a deep copy of src. A Null src yields a Null b and an Empty
// src yields an Empty b.
func (b *BitSet) Assign(src *BitSet) {
	if b == src {
		return
	}
	if !src.allocated {
		b.ClearToNull()
		return
	}
	b.words = slices.Clone(src.words)
	b.allocated = true
}

// AssignVector makes b hold exactly the members of v. Null is propagated for
// vectors that implement bitset.Nullable.
func (b *BitSet) AssignVector(v bitset.Vector) {
	if d, ok := v.(*BitSet); ok {
		b.Assign(d)
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
	a.words, b.words = b.words, a.words
	a.allocated, b.allocated = b.allocated, a.allocated
}

// State returns the lifecycle state of b.
func (b *BitSet) State() bitset.State {
	switch {
	case !b.allocated:
		return bitset.Null
	case b.IsZero():
		return bitset.Empty
	default:
		return bitset.Populated
	}
}

// IsNull reports whether b was never allocated (or was reset by ClearToNull).
func (b *BitSet) IsNull() bool {
	return !b.allocated
}

// IsZero reports whether no bit is set.
func (b *BitSet) IsZero() bool {
	return wordops.IsZero(b.words)
}

// Clear frees storage and leaves b Empty.
func (b *BitSet) Clear() {
	b.words = nil
	b.allocated = true
}

// ClearToNull frees storage and leaves b Null.
func (b *BitSet) ClearToNull() {
	b.words = nil
	b.allocated = false
}

// Get returns bit i. Bits beyond the capacity read false.
func (b *BitSet) Get(i uint32) bool {
	w := int(i >> wordShift)
	return w < len(b.words) && b.words[w]&bitMask(i) != 0
}

// ValueAt is Get, satisfying bitset.Vector.
func (b *BitSet) ValueAt(i uint32) bool {
	return b.Get(i)
}

// Set writes bit i. Writing true grows the set as needed; writing false never
// grows or allocates.
func (b *BitSet) Set(i uint32, value bool) {
	w := int(i >> wordShift)
	if !value {
		if w < len(b.words) {
			b.words[w] &^= bitMask(i)
		}
		return
	}
	if w >= len(b.words) {
		b.GrowTo(int(i)+1, true, false)
	}
	b.words[w] |= bitMask(i)
}

// SetAll grows b to numBits and sets bits 0..numBits-1.
func (b *BitSet) SetAll(numBits int) {
	b.GrowTo(numBits, false, false)
	full := numBits >> wordShift
	wordops.Fill(b.words[:full], fullMask)
	if r := numBits & wordMask; r != 0 {
		b.words[full] |= fullMask << (WordBits - r)
	}
}

// GrowTo ensures room for newBits bits, zero-filling new storage.
//
// When geometric is set and either forceGeometric is set or newBits is below
// 1024, the capacity is rounded up to a power of two; otherwise it is rounded
// up past the next 1024-bit boundary. GrowTo on a Null set always leaves it
// non-null, even when no growth is needed.
func (b *BitSet) GrowTo(newBits int, geometric, forceGeometric bool) {
	b.allocated = true
	if newBits <= b.SizeInBits() {
		return
	}

	if geometric && (forceGeometric || newBits < growthChunk) {
		newBits = int(bitmanip.CeilingPowerOfTwo64(uint64(newBits)))
	} else {
		newBits = newBits + growthChunk - newBits%growthChunk
	}

	grown := make([]uint64, (newBits+wordMask)>>wordShift)
	copy(grown, b.words)
	b.words = grown
}

// SizeInBits returns the capacity in bits.
func (b *BitSet) SizeInBits() int {
	return len(b.words) * WordBits
}

// SizeInWords returns the capacity in words.
func (b *BitSet) SizeInWords() int {
	return len(b.words)
}

// WordSize returns WordBits.
func (b *BitSet) WordSize() int {
	return WordBits
}

// WordAt returns word w, or 0 past the end.
func (b *BitSet) WordAt(w int) uint64 {
	if w < 0 || w >= len(b.words) {
		return 0
	}
	return b.words[w]
}

// FirstOneWordIndex returns the first non-zero word, or SizeInWords if none.
func (b *BitSet) FirstOneWordIndex() int {
	for i, w := range b.words {
		if w != 0 {
			return i
		}
	}
	return len(b.words)
}

// LastOneWordIndex returns the last non-zero word, or -1 if none.
func (b *BitSet) LastOneWordIndex() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if b.words[i] != 0 {
			return i
		}
	}
	return -1
}

// HasFastRandomLookup returns true.
func (b *BitSet) HasFastRandomLookup() bool {
	return true
}

// MemoryUsage returns the number of bytes held by b.
func (b *BitSet) MemoryUsage() int {
	return int(unsafe.Sizeof(*b)) + cap(b.words)*8
}

// String renders b as "( a b c )", or "0" for a Null set.
func (b *BitSet) String() string {
	if !b.allocated {
		return "0"
	}
	return bitset.Format(b)
}

func bitMask(i uint32) uint64 {
	return highBit >> (i & wordMask)
}
