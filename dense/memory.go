package dense

import "github.com/hupe1980/bitvec/bitset"

// CopyToMemory writes the first numBits bits of b into dst as 32-bit words,
// MSB-first within each word: dst[k] holds bits 32k..32k+31. Words past the
// capacity of b are zero. dst must hold at least ceil(numBits/32) words.
func (b *BitSet) CopyToMemory(dst []uint32, numBits int) {
	bitset.CheckLength("CopyToMemory", len(dst), numBits)
	memWords := shortWords(numBits)
	n := min(shortWords(b.SizeInBits()), memWords)

	for k := 0; k < n; k++ {
		w := b.words[k>>1]
		if k&1 == 0 {
			dst[k] = uint32(w >> 32)
		} else {
			dst[k] = uint32(w)
		}
	}
	for k := n; k < memWords; k++ {
		dst[k] = 0
	}
}

// CopyFromMemory loads bits from src in the CopyToMemory layout. Only
// min(numBits, SizeInBits()) bits, rounded up to whole 32-bit words, are
// copied; b does not grow. src must hold at least ceil(numBits/32) words.
func (b *BitSet) CopyFromMemory(src []uint32, numBits int) {
	bitset.CheckLength("CopyFromMemory", len(src), numBits)
	n := min(shortWords(b.SizeInBits()), shortWords(numBits))

	for k := 0; k < n; k += 2 {
		w := uint64(src[k]) << 32
		if k+1 < n {
			w |= uint64(src[k+1])
		}
		b.words[k>>1] = w
	}
}

func shortWords(numBits int) int {
	return (numBits + 31) / 32
}
