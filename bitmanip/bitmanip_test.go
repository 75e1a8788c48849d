package bitmanip

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulationCount(t *testing.T) {
	assert.Equal(t, 0, PopulationCount32(0))
	assert.Equal(t, 32, PopulationCount32(^uint32(0)))
	assert.Equal(t, 4, PopulationCount32(0xF0))
	assert.Equal(t, 64, PopulationCount64(^uint64(0)))
	assert.Equal(t, 2, PopulationCount64(1<<63|1))
}

func TestLeadingTrailing(t *testing.T) {
	tests := []struct {
		name string
		x    uint32
		lz   int
		tz   int
		lo   int
		to   int
	}{
		{"zero", 0, 32, 32, 0, 0},
		{"all ones", ^uint32(0), 0, 0, 32, 32},
		{"one", 1, 31, 0, 0, 1},
		{"high bit", 1 << 31, 0, 31, 1, 0},
		{"mixed", 0xF000000F, 0, 0, 4, 4},
		{"middle", 0x00FF0000, 8, 16, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lz, LeadingZeroes32(tt.x))
			assert.Equal(t, tt.tz, TrailingZeroes32(tt.x))
			assert.Equal(t, tt.lo, LeadingOnes32(tt.x))
			assert.Equal(t, tt.to, TrailingOnes32(tt.x))

			if tt.x != 0 {
				wide := uint64(tt.x) << 32
				assert.Equal(t, tt.lz, LeadingZeroes64(wide))
				assert.Equal(t, tt.tz+32, TrailingZeroes64(wide))
			}
		})
	}

	assert.Equal(t, 64, LeadingZeroes64(0))
	assert.Equal(t, 64, TrailingZeroes64(0))
	assert.Equal(t, 64, LeadingOnes64(^uint64(0)))
	assert.Equal(t, 64, TrailingOnes64(^uint64(0)))
}

func TestPowerOfTwo(t *testing.T) {
	assert.Equal(t, uint32(1), CeilingPowerOfTwo32(0))
	assert.Equal(t, uint32(1), CeilingPowerOfTwo32(1))
	assert.Equal(t, uint32(2), CeilingPowerOfTwo32(2))
	assert.Equal(t, uint32(4), CeilingPowerOfTwo32(3))
	assert.Equal(t, uint32(1024), CeilingPowerOfTwo32(1000))
	assert.Equal(t, uint32(1<<31), CeilingPowerOfTwo32(1<<31))
	assert.Equal(t, uint32(0), CeilingPowerOfTwo32(1<<31+1))
	assert.Equal(t, uint64(1<<40), CeilingPowerOfTwo64(1<<39+7))

	assert.Equal(t, uint32(0), FloorPowerOfTwo32(0))
	assert.Equal(t, uint32(1), FloorPowerOfTwo32(1))
	assert.Equal(t, uint32(512), FloorPowerOfTwo32(1000))
	assert.Equal(t, uint32(1<<31), FloorPowerOfTwo32(^uint32(0)))
	assert.Equal(t, uint64(1<<63), FloorPowerOfTwo64(^uint64(0)))
}

func TestByteReverse(t *testing.T) {
	assert.Equal(t, uint32(0x78563412), ByteReverse32(0x12345678))
	assert.Equal(t, uint64(0xEFCDAB8967452301), ByteReverse64(0x0123456789ABCDEF))
}

func TestContiguousOnes(t *testing.T) {
	tests := []struct {
		x    uint32
		want bool
	}{
		{0, true},
		{1, true},
		{0x0FF0, true},
		{0x0F0F, false},
		{0x80000000, true},
		{0xFFFFFF00, true},
		{0x80000001, true}, // wraps through the sign bit
		{0x80000101, false},
		{^uint32(0), true},
		{0b1011, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContiguousOnes32(tt.x), "x=%#x", tt.x)
		assert.Equal(t, tt.want, ContiguousOnes64(uint64(int64(int32(tt.x)))), "x=%#x sign-extended", tt.x)
	}
}

func TestPortableMatchesIntrinsic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	edge := []uint64{0, 1, 1 << 63, ^uint64(0), 0xFF, 0xFF00000000000000}
	for i := 0; i < 10000; i++ {
		x := rng.Uint64()
		// Sparse words exercise the byte-by-byte table walk.
		if i%3 == 0 {
			x &= rng.Uint64() & rng.Uint64()
		}
		if i%5 == 0 {
			x >>= uint(rng.Intn(64))
		}
		edge = append(edge, x)
	}

	for _, x := range edge {
		lo := uint32(x)
		require.Equal(t, Intrinsic64.PopulationCount(x), Portable64.PopulationCount(x), "popcount64 %#x", x)
		require.Equal(t, Intrinsic64.LeadingZeroes(x), Portable64.LeadingZeroes(x), "lz64 %#x", x)
		require.Equal(t, Intrinsic64.TrailingZeroes(x), Portable64.TrailingZeroes(x), "tz64 %#x", x)
		require.Equal(t, Intrinsic64.ByteReverse(x), Portable64.ByteReverse(x), "rev64 %#x", x)
		require.Equal(t, Intrinsic32.PopulationCount(lo), Portable32.PopulationCount(lo), "popcount32 %#x", lo)
		require.Equal(t, Intrinsic32.LeadingZeroes(lo), Portable32.LeadingZeroes(lo), "lz32 %#x", lo)
		require.Equal(t, Intrinsic32.TrailingZeroes(lo), Portable32.TrailingZeroes(lo), "tz32 %#x", lo)
		require.Equal(t, Intrinsic32.ByteReverse(lo), Portable32.ByteReverse(lo), "rev32 %#x", lo)
	}
}

func TestUseSwitchesKernels(t *testing.T) {
	prev := Active()
	defer use(prev)

	use(Portable)
	assert.Equal(t, Portable, Active())
	assert.Equal(t, bits.LeadingZeros64(12345), LeadingZeroes64(12345))

	use(Intrinsic)
	assert.Equal(t, Intrinsic, Active())
	assert.Equal(t, bits.TrailingZeros32(96), TrailingZeroes32(96))
}

func TestParseImplementation(t *testing.T) {
	impl, ok := ParseImplementation(" Portable ")
	require.True(t, ok)
	assert.Equal(t, Portable, impl)
	assert.Equal(t, "portable", impl.String())

	_, ok = ParseImplementation("avx9000")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Implementation(99).String())
}
