package dense

import (
	"math/bits"

	"github.com/hupe1980/bitvec/bitmanip"
	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/internal/wordops"
)

// PopulationCount returns the number of one bits.
func (b *BitSet) PopulationCount() int {
	return wordops.Popcount(b.words)
}

// PopulationCountLimit returns the number of one bits among the first
// numBits positions.
func (b *BitSet) PopulationCountLimit(numBits int) int {
	if numBits <= 0 {
		return 0
	}
	full := min(numBits>>wordShift, len(b.words))
	count := wordops.Popcount(b.words[:full])
	if r := numBits & wordMask; r != 0 && full < len(b.words) {
		count += bitmanip.PopulationCount64(b.words[full] >> (WordBits - r))
	}
	return count
}

// PopulationCountMasked returns the number of one bits also set in mask.
func (b *BitSet) PopulationCountMasked(mask bitset.Vector) int {
	if wv, ok := bitset.Words(mask, WordBits); ok {
		if d, ok := wv.(*BitSet); ok {
			n := min(len(b.words), len(d.words))
			return wordops.PopcountAnd(b.words[:n], d.words[:n])
		}
		count := 0
		for i, w := range b.words {
			count += bits.OnesCount64(w & wv.WordAt(i))
		}
		return count
	}

	count := 0
	c := mask.NewCursor()
	for c.SetToFirstOne(); c.Valid(); c.SetToNextOne() {
		if b.Get(c.Index()) {
			count++
		}
	}
	return count
}

// FirstOne returns the lowest set index. An empty set returns 0, which is
// indistinguishable from a set holding only bit 0; check IsZero first or use
// FirstOneOK.
func (b *BitSet) FirstOne() uint32 {
	i, ok := b.FirstOneOK()
	if !ok && bitset.Debug {
		bitset.Violation("FirstOne", bitset.ErrEmptySet)
	}
	return i
}

// FirstOneOK returns the lowest set index and whether one exists.
func (b *BitSet) FirstOneOK() (uint32, bool) {
	w := b.FirstOneWordIndex()
	if w == len(b.words) {
		return 0, false
	}
	return uint32(w*WordBits + bitmanip.LeadingZeroes64(b.words[w])), true
}

// LastOne returns the highest set index, or 0 for an empty set (see
// FirstOne).
func (b *BitSet) LastOne() uint32 {
	i, ok := b.LastOneOK()
	if !ok && bitset.Debug {
		bitset.Violation("LastOne", bitset.ErrEmptySet)
	}
	return i
}

// LastOneOK returns the highest set index and whether one exists.
func (b *BitSet) LastOneOK() (uint32, bool) {
	w := b.LastOneWordIndex()
	if w < 0 {
		return 0, false
	}
	return uint32(w*WordBits + WordBits - bitmanip.TrailingZeroes64(b.words[w]) - 1), true
}

// LowestZero returns the lowest clear index. When every bit of the capacity
// is set, or there is no capacity, it returns SizeInBits()+1, so a new set
// reports 1. sparse.BitSet.LowestZero reports 0 for an empty set.
func (b *BitSet) LowestZero() int {
	for i, w := range b.words {
		if w != fullMask {
			return i*WordBits + bitmanip.LeadingOnes64(w)
		}
	}
	return b.SizeInBits() + 1
}

// ClearLastOneIfThereIsOneInRange clears the highest set bit in [low, high]
// and returns it. It returns bitset.NotFound, false when the range holds no
// set bit.
func (b *BitSet) ClearLastOneIfThereIsOneInRange(low, high uint32) (uint32, bool) {
	if low > high || int(low) >= b.SizeInBits() {
		return bitset.NotFound, false
	}
	if int(high) >= b.SizeInBits() {
		high = uint32(b.SizeInBits() - 1)
	}

	lowWord, highWord := int(low>>wordShift), int(high>>wordShift)
	for w := highWord; w >= lowWord; w-- {
		word := b.words[w]
		if w == highWord {
			// Drop bits above high (lower significance in this layout).
			word &= fullMask << (wordMask - (high & wordMask))
		}
		if w == lowWord {
			word &= fullMask >> (low & wordMask)
		}
		if word == 0 {
			continue
		}
		i := uint32(w*WordBits + WordBits - bitmanip.TrailingZeroes64(word) - 1)
		b.words[w] &^= bitMask(i)
		return i, true
	}
	return bitset.NotFound, false
}

// Intersects reports whether b and o share a set bit.
func (b *BitSet) Intersects(o *BitSet) bool {
	n := min(len(b.words), len(o.words))
	return wordops.Intersects(b.words[:n], o.words[:n])
}

// IntersectsVector reports whether b and v share a set bit.
func (b *BitSet) IntersectsVector(v bitset.Vector) bool {
	if d, ok := v.(*BitSet); ok {
		return b.Intersects(d)
	}
	if wv, ok := bitset.Words(v, WordBits); ok {
		high := min(wv.LastOneWordIndex(), len(b.words)-1)
		for i := wv.FirstOneWordIndex(); i <= high; i++ {
			if b.words[i]&wv.WordAt(i) != 0 {
				return true
			}
		}
		return false
	}
	c := v.NewCursor()
	for c.SetToFirstOne(); c.Valid(); c.SetToNextOne() {
		if int(c.Index()>>wordShift) >= len(b.words) {
			return false
		}
		if b.Get(c.Index()) {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every bit set in b is also set in o.
func (b *BitSet) IsSubsetOf(o *BitSet) bool {
	n := min(len(b.words), len(o.words))
	return wordops.IsSubset(b.words[:n], o.words[:n]) && wordops.IsZero(b.words[n:])
}

// IsSubsetOfVector reports whether every bit set in b is also set in v.
func (b *BitSet) IsSubsetOfVector(v bitset.Vector) bool {
	if d, ok := v.(*BitSet); ok {
		return b.IsSubsetOf(d)
	}
	if wv, ok := bitset.Words(v, WordBits); ok {
		for i, w := range b.words {
			if w&^wv.WordAt(i) != 0 {
				return false
			}
		}
		return true
	}
	return bitset.IsSubset(b, v)
}

// Equal reports whether b and o hold the same bits. Capacity is ignored.
func (b *BitSet) Equal(o *BitSet) bool {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		if b.words[i] != o.words[i] {
			return false
		}
	}
	return wordops.IsZero(b.words[n:]) && wordops.IsZero(o.words[n:])
}

// EqualVector reports whether b and v hold the same bits.
func (b *BitSet) EqualVector(v bitset.Vector) bool {
	if d, ok := v.(*BitSet); ok {
		return b.Equal(d)
	}
	if wv, ok := bitset.Words(v, WordBits); ok {
		n := max(len(b.words), wv.LastOneWordIndex()+1)
		for i := 0; i < n; i++ {
			if b.WordAt(i) != wv.WordAt(i) {
				return false
			}
		}
		return true
	}
	return bitset.Equal(b, v)
}
