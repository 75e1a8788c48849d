package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/testutil"
)

func sequentialOr(vs ...*BitSet) *BitSet {
	out := New()
	for _, v := range vs {
		out.Or(v)
	}
	return out
}

func TestOrManyScenario(t *testing.T) {
	vs := []*BitSet{Of(1, 100000), Of(2, 100000), Of(3)}

	b := New()
	b.OrMany(vs...)
	assert.Equal(t, []uint32{1, 2, 3, 100000}, bitset.Collect(b))
	assert.True(t, b.Equal(sequentialOr(vs...)))
}

func TestOrManyMaskedScenario(t *testing.T) {
	vs := []*BitSet{Of(1, 100000), Of(2, 100000), Of(3)}

	b := New()
	b.OrManyMasked(Of(2, 3), vs...)
	assert.Equal(t, []uint32{2, 3}, bitset.Collect(b))
}

func TestOrManyDegenerateInputs(t *testing.T) {
	b := Of(7)
	b.OrMany()
	assert.Equal(t, []uint32{7}, bitset.Collect(b))

	b.OrMany(Of(8))
	assert.Equal(t, []uint32{7, 8}, bitset.Collect(b))

	b.OrMany(New(), New())
	assert.Equal(t, []uint32{7, 8}, bitset.Collect(b))

	b.OrManyMasked(New(), Of(1), Of(2))
	assert.Equal(t, []uint32{7, 8}, bitset.Collect(b))

	b.OrManyMasked(Of(9), Of(9, 10))
	assert.Equal(t, []uint32{7, 8, 9}, bitset.Collect(b))
}

func TestOrManyAcrossTiles(t *testing.T) {
	// Values straddle tile boundaries and one input outlives the others.
	a := New()
	for i := uint32(0); i < 3000; i += 2 {
		a.Set(i, true)
	}
	b := Of(1023, 1024, 1025, 2047)
	c := New()
	for i := uint32(5000); i < 65536; i += 97 {
		c.Set(i, true)
	}

	got := Of(4)
	got.OrMany(a, b, c)
	want := sequentialOr(Of(4), a, b, c)
	assert.True(t, got.Equal(want))
}

func TestOrManyIncludingReceiver(t *testing.T) {
	b := Of(1, 70000)
	b.OrMany(b, Of(2, 70001))
	assert.Equal(t, []uint32{1, 2, 70000, 70001}, bitset.Collect(b))
}

func TestOrManyMatchesSequentialOr(t *testing.T) {
	rng := testutil.NewRNG(42)

	for round := 0; round < 40; round++ {
		vs := make([]*BitSet, 2+rng.Intn(5))
		for i := range vs {
			vs[i] = New()
			testutil.Fill(vs[i], rng.ClusteredIndices(rng.Intn(3000), 3, 1<<14, 1<<20))
		}
		mask := New()
		testutil.Fill(mask, rng.ClusteredIndices(rng.Intn(4000), 3, 1<<15, 1<<20))

		got := New()
		got.OrMany(vs...)
		require.True(t, got.Equal(sequentialOr(vs...)), "round %d", round)

		masked := New()
		masked.OrManyMasked(mask, vs...)
		want := New()
		for _, v := range vs {
			want.OrMask(v, mask)
		}
		require.True(t, masked.Equal(want), "round %d", round)
	}
}
