package bitmanip

// leadingZeroTable[b] is the number of leading zero bits in the byte b.
var leadingZeroTable = func() (t [256]uint8) {
	t[0] = 8
	for b := 1; b < 256; b++ {
		n := uint8(0)
		for v := b; v&0x80 == 0; v <<= 1 {
			n++
		}
		t[b] = n
	}
	return t
}()

func leadingZeroes32Portable(x uint32) int {
	switch {
	case x>>24 != 0:
		return int(leadingZeroTable[x>>24])
	case x>>16 != 0:
		return 8 + int(leadingZeroTable[x>>16])
	case x>>8 != 0:
		return 16 + int(leadingZeroTable[x>>8])
	default:
		return 24 + int(leadingZeroTable[x&0xff])
	}
}

func leadingZeroes64Portable(x uint64) int {
	if hi := uint32(x >> 32); hi != 0 {
		return leadingZeroes32Portable(hi)
	}
	return 32 + leadingZeroes32Portable(uint32(x))
}

func trailingZeroes32Portable(x uint32) int {
	if x == 0 {
		return 32
	}
	// Isolate the lowest one bit, then count from the top.
	return 31 - leadingZeroes32Portable(x&-x)
}

func trailingZeroes64Portable(x uint64) int {
	if x == 0 {
		return 64
	}
	return 63 - leadingZeroes64Portable(x&-x)
}

func popcount32Portable(x uint32) int {
	x -= (x >> 1) & 0x55555555
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f
	return int((x * 0x01010101) >> 24)
}

func popcount64Portable(x uint64) int {
	x -= (x >> 1) & 0x5555555555555555
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((x * 0x0101010101010101) >> 56)
}

func byteReverse32Portable(x uint32) uint32 {
	return x<<24 | (x&0xff00)<<8 | (x>>8)&0xff00 | x>>24
}

func byteReverse64Portable(x uint64) uint64 {
	return uint64(byteReverse32Portable(uint32(x)))<<32 | uint64(byteReverse32Portable(uint32(x>>32)))
}
