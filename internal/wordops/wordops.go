package wordops

import (
	"math/bits"

	"github.com/hupe1980/bitvec/bitmanip"
)

// Kernel function pointers. Generic implementations are the default; init
// switches popcount to the portable primitive when bitmanip runs portable.
var (
	kernelAnd      = andGeneric
	kernelAndNot   = andNotGeneric
	kernelOr       = orGeneric
	kernelXor      = xorGeneric
	kernelAndTo    = andToGeneric
	kernelAndNotTo = andNotToGeneric
	kernelOrTo     = orToGeneric
	kernelXorTo    = xorToGeneric
	kernelPopcount = popcountGeneric
)

func init() {
	if bitmanip.Active() == bitmanip.Portable {
		kernelPopcount = popcountPortable
	}
}

// And performs dst[i] &= src[i].
func And(dst, src []uint64) bool { return kernelAnd(dst, src) }

// AndNot performs dst[i] &= ^src[i].
func AndNot(dst, src []uint64) bool { return kernelAndNot(dst, src) }

// Or performs dst[i] |= src[i].
func Or(dst, src []uint64) bool { return kernelOr(dst, src) }

// Xor performs dst[i] ^= src[i].
func Xor(dst, src []uint64) bool { return kernelXor(dst, src) }

// AndTo stores a[i] & b[i] into dst[i].
func AndTo(dst, a, b []uint64) bool { return kernelAndTo(dst, a, b) }

// AndNotTo stores a[i] &^ b[i] into dst[i].
func AndNotTo(dst, a, b []uint64) bool { return kernelAndNotTo(dst, a, b) }

// OrTo stores a[i] | b[i] into dst[i].
func OrTo(dst, a, b []uint64) bool { return kernelOrTo(dst, a, b) }

// XorTo stores a[i] ^ b[i] into dst[i].
func XorTo(dst, a, b []uint64) bool { return kernelXorTo(dst, a, b) }

// Popcount counts all set bits across words.
func Popcount(words []uint64) int { return kernelPopcount(words) }

// PopcountAnd counts the bits set in both a and b.
func PopcountAnd(a, b []uint64) int {
	b = b[:len(a)]
	count := 0
	for i := range a {
		count += bits.OnesCount64(a[i] & b[i])
	}
	return count
}

// Intersects reports whether a and b share a set bit.
func Intersects(a, b []uint64) bool {
	b = b[:len(a)]
	for i := range a {
		if a[i]&b[i] != 0 {
			return true
		}
	}
	return false
}

// IsSubset reports whether every bit set in a is also set in b.
func IsSubset(a, b []uint64) bool {
	b = b[:len(a)]
	for i := range a {
		if a[i]&^b[i] != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether all words are zero.
func IsZero(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Fill sets every word to w.
func Fill(words []uint64, w uint64) {
	for i := range words {
		words[i] = w
	}
}

// ZeroChanged clears dst and reports whether any bit was set.
func ZeroChanged(dst []uint64) bool {
	var diff uint64
	for i := range dst {
		diff |= dst[i]
		dst[i] = 0
	}
	return diff != 0
}
