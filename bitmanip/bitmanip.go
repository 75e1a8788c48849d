package bitmanip

import "math/bits"

// Funcs32 is the set of width-specific kernels for 32-bit words. All other
// 32-bit primitives are derived from these.
type Funcs32 struct {
	PopulationCount func(uint32) int
	LeadingZeroes   func(uint32) int
	TrailingZeroes  func(uint32) int
	ByteReverse     func(uint32) uint32
}

// Funcs64 is the 64-bit counterpart of Funcs32.
type Funcs64 struct {
	PopulationCount func(uint64) int
	LeadingZeroes   func(uint64) int
	TrailingZeroes  func(uint64) int
	ByteReverse     func(uint64) uint64
}

var (
	// Intrinsic32 is backed by math/bits.
	Intrinsic32 = Funcs32{
		PopulationCount: bits.OnesCount32,
		LeadingZeroes:   bits.LeadingZeros32,
		TrailingZeroes:  bits.TrailingZeros32,
		ByteReverse:     bits.ReverseBytes32,
	}
	// Intrinsic64 is backed by math/bits.
	Intrinsic64 = Funcs64{
		PopulationCount: bits.OnesCount64,
		LeadingZeroes:   bits.LeadingZeros64,
		TrailingZeroes:  bits.TrailingZeros64,
		ByteReverse:     bits.ReverseBytes64,
	}
	// Portable32 is the table-driven emulation.
	Portable32 = Funcs32{
		PopulationCount: popcount32Portable,
		LeadingZeroes:   leadingZeroes32Portable,
		TrailingZeroes:  trailingZeroes32Portable,
		ByteReverse:     byteReverse32Portable,
	}
	// Portable64 is the table-driven emulation.
	Portable64 = Funcs64{
		PopulationCount: popcount64Portable,
		LeadingZeroes:   leadingZeroes64Portable,
		TrailingZeroes:  trailingZeroes64Portable,
		ByteReverse:     byteReverse64Portable,
	}
)

// Active kernels. Platform init selects them before any other code runs.
var (
	funcs32 = Intrinsic32
	funcs64 = Intrinsic64
)

// PopulationCount32 returns the number of one bits in x.
func PopulationCount32(x uint32) int { return funcs32.PopulationCount(x) }

// PopulationCount64 returns the number of one bits in x.
func PopulationCount64(x uint64) int { return funcs64.PopulationCount(x) }

// LeadingZeroes32 returns the number of leading zero bits in x; 32 for x == 0.
func LeadingZeroes32(x uint32) int { return funcs32.LeadingZeroes(x) }

// LeadingZeroes64 returns the number of leading zero bits in x; 64 for x == 0.
func LeadingZeroes64(x uint64) int { return funcs64.LeadingZeroes(x) }

// TrailingZeroes32 returns the number of trailing zero bits in x; 32 for x == 0.
func TrailingZeroes32(x uint32) int { return funcs32.TrailingZeroes(x) }

// TrailingZeroes64 returns the number of trailing zero bits in x; 64 for x == 0.
func TrailingZeroes64(x uint64) int { return funcs64.TrailingZeroes(x) }

// LeadingOnes32 returns the number of leading one bits in x.
func LeadingOnes32(x uint32) int { return funcs32.LeadingZeroes(^x) }

// LeadingOnes64 returns the number of leading one bits in x.
func LeadingOnes64(x uint64) int { return funcs64.LeadingZeroes(^x) }

// TrailingOnes32 returns the number of trailing one bits in x.
func TrailingOnes32(x uint32) int { return funcs32.TrailingZeroes(^x) }

// TrailingOnes64 returns the number of trailing one bits in x.
func TrailingOnes64(x uint64) int { return funcs64.TrailingZeroes(^x) }

// ByteReverse32 returns x with its bytes in reverse order.
func ByteReverse32(x uint32) uint32 { return funcs32.ByteReverse(x) }

// ByteReverse64 returns x with its bytes in reverse order.
func ByteReverse64(x uint64) uint64 { return funcs64.ByteReverse(x) }

// CeilingPowerOfTwo32 returns the smallest power of two >= x.
// x must be >= 1; 0 yields 1. Values above 1<<31 wrap to 0.
func CeilingPowerOfTwo32(x uint32) uint32 {
	if x <= 1 {
		return 1
	}
	shift := 32 - funcs32.LeadingZeroes(x-1)
	if shift >= 32 {
		return 0
	}
	return 1 << shift
}

// CeilingPowerOfTwo64 returns the smallest power of two >= x.
// x must be >= 1; 0 yields 1. Values above 1<<63 wrap to 0.
func CeilingPowerOfTwo64(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	shift := 64 - funcs64.LeadingZeroes(x-1)
	if shift >= 64 {
		return 0
	}
	return 1 << shift
}

// FloorPowerOfTwo32 returns the largest power of two <= x, or 0 for x == 0.
func FloorPowerOfTwo32(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return 1 << (31 - funcs32.LeadingZeroes(x))
}

// FloorPowerOfTwo64 returns the largest power of two <= x, or 0 for x == 0.
func FloorPowerOfTwo64(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return 1 << (63 - funcs64.LeadingZeroes(x))
}

// ContiguousOnes32 reports whether the one bits of x form a single run.
// Values with the sign bit set are negated first, so runs that wrap through
// bit 31 also count. Zero is contiguous.
func ContiguousOnes32(x uint32) bool {
	if x&(1<<31) != 0 {
		x = -x
	}
	if x == 0 {
		return true
	}
	x >>= uint(funcs32.TrailingZeroes(x))
	return x&(x+1) == 0
}

// ContiguousOnes64 is the 64-bit variant of ContiguousOnes32.
func ContiguousOnes64(x uint64) bool {
	if x&(1<<63) != 0 {
		x = -x
	}
	if x == 0 {
		return true
	}
	x >>= uint(funcs64.TrailingZeroes(x))
	return x&(x+1) == 0
}
