package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndices(t *testing.T) {
	rng := NewRNG(4711)

	ids := rng.Indices(100, 50)
	assert.Len(t, ids, 100)
	for _, id := range ids {
		assert.Less(t, id, uint32(50))
	}
}

func TestClusteredIndices(t *testing.T) {
	rng := NewRNG(4711)

	ids := rng.ClusteredIndices(500, 3, 64, 1<<28)
	segments := map[uint32]struct{}{}
	for _, id := range ids {
		segments[id>>16] = struct{}{}
	}
	// A cluster may straddle a segment boundary.
	assert.LessOrEqual(t, len(segments), 6)
}

func TestReset(t *testing.T) {
	rng := NewRNG(1)
	a := rng.Uint64()
	rng.Reset()
	assert.Equal(t, a, rng.Uint64())
	assert.Equal(t, int64(1), rng.Seed())
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []uint32{1, 2, 5}, SortedUnique([]uint32{5, 1, 2, 5, 1}))
}

func TestShortWords(t *testing.T) {
	rng := NewRNG(3)
	assert.Equal(t, []uint32{0, 0}, rng.ShortWords(2, 0))
	assert.Equal(t, []uint32{^uint32(0)}, rng.ShortWords(1, 1.1))
}

func TestOp(t *testing.T) {
	rng := NewRNG(9)
	seen := map[Op]bool{}
	for i := 0; i < 200; i++ {
		seen[rng.Op()] = true
	}
	assert.Len(t, seen, int(numOps))
	assert.Equal(t, "xor", OpXor.String())
}
