package sparse_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/dense"
	"github.com/hupe1980/bitvec/sparse"
	"github.com/hupe1980/bitvec/testutil"
)

func TestScenarioMatchesDense(t *testing.T) {
	ids := []uint32{3, 1000, 1000000}
	d, s := dense.Of(ids...), sparse.Of(ids...)

	assert.Equal(t, d.PopulationCount(), s.PopulationCount())
	assert.Equal(t, d.FirstOne(), s.FirstOne())
	assert.Equal(t, d.LastOne(), s.LastOne())
	assert.Equal(t, 2, s.NumSegments())
	assert.True(t, d.EqualVector(s))
	assert.True(t, s.EqualVector(d))
	assert.Equal(t, d.String(), s.String())

	// Empty sets disagree by contract.
	assert.Equal(t, 1, dense.New().LowestZero())
	assert.Equal(t, 0, sparse.New().LowestZero())
}

// TestDifferentialAgainstDense applies the same random operations to both
// representations and compares them after every step.
func TestDifferentialAgainstDense(t *testing.T) {
	rng := testutil.NewRNG(1)

	d, s := dense.New(), sparse.New()
	for step := 0; step < 1500; step++ {
		op := rng.Op()
		ids := rng.ClusteredIndices(1+rng.Intn(40), 4, 3000, 1<<19)

		switch op {
		case testutil.OpSet:
			testutil.Fill(d, ids)
			testutil.Fill(s, ids)
		case testutil.OpClear:
			for _, id := range ids {
				d.Set(id, false)
				s.Set(id, false)
			}
		case testutil.OpAnd:
			for k, id := range bitset.Collect(s) {
				if k%3 != 0 {
					ids = append(ids, id)
				}
			}
			d.And(dense.Of(ids...))
			s.And(sparse.Of(ids...))
		case testutil.OpOr:
			d.Or(dense.Of(ids...))
			s.Or(sparse.Of(ids...))
		case testutil.OpAndc:
			d.Andc(dense.Of(ids...))
			s.Andc(sparse.Of(ids...))
		case testutil.OpXor:
			d.Xor(dense.Of(ids...))
			s.Xor(sparse.Of(ids...))
		}

		require.True(t, s.EqualVector(d), "seed %d step %d op %s", rng.Seed(), step, op)
		require.Equal(t, d.PopulationCount(), s.PopulationCount(), "seed %d step %d op %s", rng.Seed(), step, op)
		if !d.IsZero() {
			require.Equal(t, d.FirstOne(), s.FirstOne())
			require.Equal(t, d.LastOne(), s.LastOne())
		}
		if lz := d.LowestZero(); lz <= d.SizeInBits() {
			require.Equal(t, lz, s.LowestZero(), "step %d op %s", step, op)
		}
	}
}

func TestCrossRepresentationOperands(t *testing.T) {
	rng := testutil.NewRNG(5)

	for round := 0; round < 30; round++ {
		base := rng.ClusteredIndices(rng.Intn(500), 3, 4000, 1<<20)
		other := rng.ClusteredIndices(rng.Intn(500), 3, 4000, 1<<20)
		operands := []bitset.Vector{dense.Of(other...), sparse.Of(other...)}

		var ors, ands, andcs []*dense.BitSet
		var sors, sands, sandcs []*sparse.BitSet
		for _, v := range operands {
			d := dense.Of(base...)
			d.OrVector(v)
			ors = append(ors, d)
			d = dense.Of(base...)
			d.AndVector(v)
			ands = append(ands, d)
			d = dense.Of(base...)
			d.AndcVector(v)
			andcs = append(andcs, d)

			s := sparse.Of(base...)
			s.OrVector(v)
			sors = append(sors, s)
			s = sparse.Of(base...)
			s.AndVector(v)
			sands = append(sands, s)
			s = sparse.Of(base...)
			s.AndcVector(v)
			sandcs = append(sandcs, s)
		}

		for k := range operands {
			require.True(t, ors[0].Equal(ors[k]))
			require.True(t, ands[0].Equal(ands[k]))
			require.True(t, andcs[0].Equal(andcs[k]))
			require.True(t, sors[k].EqualVector(ors[0]))
			require.True(t, sands[k].EqualVector(ands[0]))
			require.True(t, sandcs[k].EqualVector(andcs[0]))
		}

		d, s := dense.Of(base...), sparse.Of(base...)
		for _, v := range operands {
			require.Equal(t, d.IntersectsVector(v), s.IntersectsVector(v))
			require.Equal(t, d.IsSubsetOfVector(v), s.IsSubsetOfVector(v))
			require.Equal(t, d.PopulationCountMasked(v), s.PopulationCountMasked(v))
		}
	}
}

func TestCopyMemoryMatchesDense(t *testing.T) {
	rng := testutil.NewRNG(9)
	words := rng.ShortWords(64, 0.2)
	numBits := len(words) * 32

	d := dense.NewWithSize(numBits)
	d.CopyFromMemory(words, numBits)

	// Replay the same words for the sparse side.
	rng.Reset()
	s := sparse.New()
	s.CopyFromMemory(rng.ShortWords(64, 0.2), numBits)
	require.True(t, s.EqualVector(d))

	fromDense, fromSparse := make([]uint32, len(words)), make([]uint32, len(words))
	d.CopyToMemory(fromDense, numBits)
	s.CopyToMemory(fromSparse, numBits)
	assert.Equal(t, words, fromSparse)
	assert.Equal(t, fromDense, fromSparse)
}

func roaringOf(ids []uint32) *roaring.Bitmap {
	rb := roaring.New()
	rb.AddMany(ids)
	return rb
}

func TestDifferentialAgainstRoaring(t *testing.T) {
	rng := testutil.NewRNG(17)

	s := sparse.New()
	rb := roaring.New()
	for step := 0; step < 1000; step++ {
		op := rng.Op()
		ids := rng.ClusteredIndices(1+rng.Intn(64), 6, 1<<13, 1<<30)

		switch op {
		case testutil.OpSet:
			testutil.Fill(s, ids)
			rb.AddMany(ids)
		case testutil.OpClear:
			for _, id := range ids {
				s.Set(id, false)
				rb.Remove(id)
			}
		case testutil.OpAnd:
			for k, id := range bitset.Collect(s) {
				if k%2 == 0 {
					ids = append(ids, id)
				}
			}
			s.And(sparse.Of(ids...))
			rb.And(roaringOf(ids))
		case testutil.OpOr:
			s.Or(sparse.Of(ids...))
			rb.Or(roaringOf(ids))
		case testutil.OpAndc:
			s.Andc(sparse.Of(ids...))
			rb.AndNot(roaringOf(ids))
		case testutil.OpXor:
			s.Xor(sparse.Of(ids...))
			rb.Xor(roaringOf(ids))
		}

		require.Equal(t, rb.ToArray(), collectOrEmpty(s), "step %d op %s", step, op)
		require.Equal(t, int(rb.GetCardinality()), s.PopulationCount())
	}
}

func collectOrEmpty(v bitset.Vector) []uint32 {
	out := bitset.Collect(v)
	if out == nil {
		return []uint32{}
	}
	return out
}

func TestAlgebraLaws(t *testing.T) {
	rng := testutil.NewRNG(23)

	for round := 0; round < 50; round++ {
		a := sparse.Of(rng.ClusteredIndices(rng.Intn(300), 3, 5000, 1<<22)...)
		b := sparse.Of(rng.ClusteredIndices(rng.Intn(300), 3, 5000, 1<<22)...)

		ab, ba := sparse.New(), sparse.New()
		a.OrTo(b, ab)
		b.OrTo(a, ba)
		require.True(t, ab.Equal(ba))

		a.AndTo(b, ab)
		b.AndTo(a, ba)
		require.True(t, ab.Equal(ba))

		x, u, i := sparse.New(), sparse.New(), sparse.New()
		a.XorTo(b, x)
		a.OrTo(b, u)
		a.AndTo(b, i)
		u.Andc(i)
		require.True(t, x.Equal(u))

		d := sparse.New()
		a.AndcTo(b, d)
		require.True(t, d.IsSubsetOf(a))
		require.False(t, d.Intersects(b))
		require.Equal(t, a.PopulationCount(), d.PopulationCount()+i.PopulationCount())
	}
}
