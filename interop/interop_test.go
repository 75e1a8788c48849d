package interop

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	bb "github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/dense"
	"github.com/hupe1980/bitvec/sparse"
	"github.com/hupe1980/bitvec/testutil"
)

func TestRoaringRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(99)
	ids := testutil.SortedUnique(rng.ClusteredIndices(5000, 5, 1<<12, 1<<22))

	rb := ToRoaring(sparse.Of(ids...))
	assert.Equal(t, ids, rb.ToArray())

	d := FromRoaring(rb)
	assert.Equal(t, ids, bitset.Collect(d))
	assert.GreaterOrEqual(t, d.SizeInBits(), int(rb.Maximum())+1)

	s := SparseFromRoaring(rb)
	assert.Equal(t, ids, bitset.Collect(s))
	assert.True(t, s.EqualVector(d))
}

func TestFromEmptyRoaring(t *testing.T) {
	d := FromRoaring(roaring.New())
	assert.Equal(t, bitset.Empty, d.State())
	s := SparseFromRoaring(roaring.New())
	assert.Equal(t, bitset.Empty, s.State())
	assert.True(t, ToRoaring(dense.New()).IsEmpty())
}

func TestRoaringVectorOperand(t *testing.T) {
	rb := roaring.BitmapOf(2, 64, 70000)
	v := Roaring(rb)
	assert.True(t, v.ValueAt(64))
	assert.False(t, v.ValueAt(65))
	assert.Equal(t, uint32(70000), v.LastOne())

	d := dense.Of(1, 2, 3)
	d.AndcVector(v)
	assert.Equal(t, []uint32{1, 3}, bitset.Collect(d))

	s := sparse.Of(2, 70000, 9)
	s.AndVector(v)
	assert.Equal(t, []uint32{2, 70000}, bitset.Collect(s))

	assert.True(t, d.IsSubsetOfVector(Roaring(roaring.BitmapOf(1, 3, 5))))
}

func TestBitsAndBloomsRoundTrip(t *testing.T) {
	ids := []uint32{0, 1, 63, 64, 1000, 4095}
	b := ToBitsAndBlooms(dense.Of(ids...))
	assert.Equal(t, uint(len(ids)), b.Count())
	for _, id := range ids {
		assert.True(t, b.Test(uint(id)))
	}

	d := DenseFromBitsAndBlooms(b)
	assert.Equal(t, ids, bitset.Collect(d))
	assert.GreaterOrEqual(t, d.SizeInBits(), int(b.Len()))

	s := SparseFromBitsAndBlooms(b)
	assert.Equal(t, ids, bitset.Collect(s))

	assert.Equal(t, ids, bitset.Collect(BitsAndBlooms(ToBitsAndBlooms(sparse.Of(ids...)))))
}

func TestBitsAndBloomsVectorOperand(t *testing.T) {
	b := bb.New(128)
	b.Set(3).Set(100)
	v := BitsAndBlooms(b)

	d := dense.Of(3, 4)
	d.OrVector(v)
	assert.Equal(t, []uint32{3, 4, 100}, bitset.Collect(d))

	s := sparse.Of(3, 4, 100)
	s.AndcVector(v)
	assert.Equal(t, []uint32{4}, bitset.Collect(s))

	assert.True(t, BitsAndBlooms(bb.New(64)).IsZero())
}

func TestForeignCursorsPanicWhenInvalid(t *testing.T) {
	for name, v := range map[string]bitset.Vector{
		"roaring":         Roaring(roaring.New()),
		"bits-and-blooms": BitsAndBlooms(bb.New(8)),
	} {
		t.Run(name, func(t *testing.T) {
			c := v.NewCursor()
			c.SetToFirstOne()
			require.False(t, c.Valid())
			assert.Panics(t, c.SetToNextOne)
		})
	}
}
