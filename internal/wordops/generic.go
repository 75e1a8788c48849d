package wordops

import (
	"math/bits"

	"github.com/hupe1980/bitvec/bitmanip"
)

func andGeneric(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		a0, a1, a2, a3 := dst[i], dst[i+1], dst[i+2], dst[i+3]
		dst[i] = a0 & src[i]
		dst[i+1] = a1 & src[i+1]
		dst[i+2] = a2 & src[i+2]
		dst[i+3] = a3 & src[i+3]
		diff |= (a0 ^ dst[i]) | (a1 ^ dst[i+1]) | (a2 ^ dst[i+2]) | (a3 ^ dst[i+3])
	}
	for ; i < len(dst); i++ {
		a := dst[i]
		dst[i] = a & src[i]
		diff |= a ^ dst[i]
	}
	return diff != 0
}

func andNotGeneric(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		// Bits cleared are exactly dst & src.
		diff |= (dst[i] & src[i]) | (dst[i+1] & src[i+1]) | (dst[i+2] & src[i+2]) | (dst[i+3] & src[i+3])
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		diff |= dst[i] & src[i]
		dst[i] &^= src[i]
	}
	return diff != 0
}

func orGeneric(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		// Bits added are exactly src &^ dst.
		diff |= (src[i] &^ dst[i]) | (src[i+1] &^ dst[i+1]) | (src[i+2] &^ dst[i+2]) | (src[i+3] &^ dst[i+3])
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		diff |= src[i] &^ dst[i]
		dst[i] |= src[i]
	}
	return diff != 0
}

func xorGeneric(dst, src []uint64) bool {
	src = src[:len(dst)]
	var diff uint64
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		diff |= src[i] | src[i+1] | src[i+2] | src[i+3]
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		diff |= src[i]
		dst[i] ^= src[i]
	}
	return diff != 0
}

func andToGeneric(dst, a, b []uint64) bool {
	a, b = a[:len(dst)], b[:len(dst)]
	var diff uint64
	for i := range dst {
		w := a[i] & b[i]
		diff |= a[i] ^ w
		dst[i] = w
	}
	return diff != 0
}

func andNotToGeneric(dst, a, b []uint64) bool {
	a, b = a[:len(dst)], b[:len(dst)]
	var diff uint64
	for i := range dst {
		w := a[i] &^ b[i]
		diff |= a[i] ^ w
		dst[i] = w
	}
	return diff != 0
}

func orToGeneric(dst, a, b []uint64) bool {
	a, b = a[:len(dst)], b[:len(dst)]
	var diff uint64
	for i := range dst {
		w := a[i] | b[i]
		diff |= a[i] ^ w
		dst[i] = w
	}
	return diff != 0
}

func xorToGeneric(dst, a, b []uint64) bool {
	a, b = a[:len(dst)], b[:len(dst)]
	var diff uint64
	for i := range dst {
		w := a[i] ^ b[i]
		diff |= a[i] ^ w
		dst[i] = w
	}
	return diff != 0
}

func popcountGeneric(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

func popcountPortable(words []uint64) int {
	count := 0
	for _, w := range words {
		count += bitmanip.Portable64.PopulationCount(w)
	}
	return count
}
