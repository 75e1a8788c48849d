package dense

import (
	"iter"

	"github.com/hupe1980/bitvec/bitmanip"
	"github.com/hupe1980/bitvec/bitset"
)

// Cursor walks the set bits of a BitSet in ascending order. It has no
// backward traversal.
type Cursor struct {
	b     *BitSet
	index int
}

var _ bitset.Cursor = (*Cursor)(nil)

// NewCursor returns an unpositioned cursor over b. Call SetToFirstOne before
// use.
func (b *BitSet) NewCursor() bitset.Cursor {
	return b.Cursor()
}

// Cursor returns the concrete cursor type, positioned nowhere.
func (b *BitSet) Cursor() *Cursor {
	return &Cursor{b: b, index: b.SizeInBits()}
}

// SetToFirstOne positions c at the lowest set bit.
func (c *Cursor) SetToFirstOne() {
	c.seek(0)
}

// SetToNextOne advances c to the next set bit. c must be Valid.
func (c *Cursor) SetToNextOne() {
	if !c.Valid() {
		bitset.Violation("Cursor.SetToNextOne", bitset.ErrInvalidCursor)
	}
	c.seek(c.index + 1)
}

// SetToNextOneAfter positions c at the first set bit >= i.
func (c *Cursor) SetToNextOneAfter(i uint32) {
	c.seek(int(i))
}

// Valid reports whether c is positioned on a set bit.
func (c *Cursor) Valid() bool {
	return c.index < c.b.SizeInBits()
}

// Index returns the current position.
func (c *Cursor) Index() uint32 {
	return uint32(c.index)
}

func (c *Cursor) seek(from int) {
	words := c.b.words
	w := from >> wordShift
	if w >= len(words) {
		c.index = len(words) * WordBits
		return
	}

	// Shift out the bits below from within the first word.
	off := from & wordMask
	if word := words[w] << off; word != 0 {
		c.index = from + bitmanip.LeadingZeroes64(word)
		return
	}
	for w++; w < len(words); w++ {
		if words[w] != 0 {
			c.index = w*WordBits + bitmanip.LeadingZeroes64(words[w])
			return
		}
	}
	c.index = len(words) * WordBits
}

// Iterator adapts Cursor to begin/end iteration:
//
//	for it, end := b.Begin(), b.End(); !it.Equal(end); it.Next() {
//		use(it.Index())
//	}
type Iterator struct {
	c   Cursor
	end int
}

// Begin returns an iterator at the lowest set bit, or End for an empty set.
func (b *BitSet) Begin() Iterator {
	it := Iterator{c: Cursor{b: b}, end: b.endIndex()}
	it.c.SetToFirstOne()
	it.normalize()
	return it
}

// End returns the iterator positioned at LastOne()+1 (0 for an empty set).
func (b *BitSet) End() Iterator {
	end := b.endIndex()
	return Iterator{c: Cursor{b: b, index: end}, end: end}
}

func (b *BitSet) endIndex() int {
	last, ok := b.LastOneOK()
	if !ok {
		return 0
	}
	return int(last) + 1
}

// Next advances to the next set bit.
func (it *Iterator) Next() {
	if it.c.index >= it.end {
		return
	}
	it.c.seek(it.c.index + 1)
	it.normalize()
}

// Index returns the current position.
func (it *Iterator) Index() uint32 {
	return uint32(it.c.index)
}

// Equal reports whether two iterators over the same set are at the same
// position.
func (it Iterator) Equal(o Iterator) bool {
	return it.c.b == o.c.b && it.c.index == o.c.index
}

func (it *Iterator) normalize() {
	if it.c.index > it.end {
		it.c.index = it.end
	}
}

// All returns an iterator over the set bits of b in ascending order.
func (b *BitSet) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for w, word := range b.words {
			for word != 0 {
				lz := bitmanip.LeadingZeroes64(word)
				if !yield(uint32(w*WordBits + lz)) {
					return
				}
				word &^= highBit >> lz
			}
		}
	}
}
