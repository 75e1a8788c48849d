package sparse

import (
	"github.com/hupe1980/bitvec/bitmanip"
	"github.com/hupe1980/bitvec/bitset"
)

// CopyToMemory writes the first numBits bits of b into dst as 32-bit words,
// MSB-first within each word: dst[k] holds bits 32k..32k+31. Bits with no
// member are zero. dst must hold at least ceil(numBits/32) words.
func (b *BitSet) CopyToMemory(dst []uint32, numBits int) {
	bitset.CheckLength("CopyToMemory", len(dst), numBits)
	memWords := shortWords(numBits)
	clear(dst[:memWords])

	limit := memWords * 32
	for i := range b.All() {
		if int(i) >= limit {
			return
		}
		dst[i>>5] |= 0x80000000 >> (i & 31)
	}
}

// CopyFromMemory loads bits from src in the CopyToMemory layout. A sparse
// set has no fixed size, so every bit of the first ceil(numBits/32) words
// replaces the corresponding bit of b; members past them are kept.
func (b *BitSet) CopyFromMemory(src []uint32, numBits int) {
	bitset.CheckLength("CopyFromMemory", len(src), numBits)
	memWords := shortWords(numBits)

	loaded := New()
	buf := make([]uint16, 0, growthChunk)
	flush := func(hb uint16) {
		if len(buf) > 0 {
			loaded.OrValues(hb, buf)
			buf = buf[:0]
		}
	}
	var hb uint16
	for k, w := range src[:memWords] {
		for w != 0 {
			lz := bitmanip.LeadingZeroes32(w)
			i := uint32(k)*32 + uint32(lz)
			if h := uint16(i >> segmentShift); h != hb || len(buf) == growthChunk {
				flush(hb)
				hb = h
			}
			buf = append(buf, uint16(i))
			w &^= 0x80000000 >> lz
		}
	}
	flush(hb)

	b.clearBelow(memWords * 32)
	b.Or(loaded)
}

// clearBelow removes every member below limit.
func (b *BitSet) clearBelow(limit int) {
	if limit == 0 {
		return
	}
	b.filter(func(i uint32) bool { return int(i) >= limit })
}

func shortWords(numBits int) int {
	return (numBits + 31) / 32
}
