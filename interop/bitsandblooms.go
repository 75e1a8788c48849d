package interop

import (
	bb "github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/dense"
	"github.com/hupe1980/bitvec/sparse"
)

// ToBitsAndBlooms returns a bits-and-blooms set holding the members of v.
func ToBitsAndBlooms(v bitset.Vector) *bb.BitSet {
	var out *bb.BitSet
	if d, ok := v.(*dense.BitSet); ok {
		out = bb.New(uint(d.SizeInBits()))
	} else {
		out = bb.New(0)
	}
	for i := range bitset.All(v) {
		out.Set(uint(i))
	}
	return out
}

// DenseFromBitsAndBlooms returns a dense set holding the members of b.
func DenseFromBitsAndBlooms(b *bb.BitSet) *dense.BitSet {
	d := dense.NewWithSize(int(b.Len()))
	d.OrVector(BitsAndBlooms(b))
	return d
}

// SparseFromBitsAndBlooms returns a sparse set holding the members of b.
func SparseFromBitsAndBlooms(b *bb.BitSet) *sparse.BitSet {
	s := sparse.New()
	s.Clear()
	s.OrVector(BitsAndBlooms(b))
	return s
}

// BitsAndBloomsVector adapts a bits-and-blooms set to bitset.Vector.
type BitsAndBloomsVector struct {
	b *bb.BitSet
}

var _ bitset.Vector = BitsAndBloomsVector{}

// BitsAndBlooms wraps b without copying it.
func BitsAndBlooms(b *bb.BitSet) BitsAndBloomsVector {
	return BitsAndBloomsVector{b: b}
}

// IsZero reports whether no bit is set.
func (v BitsAndBloomsVector) IsZero() bool { return v.b.None() }

// ValueAt reports whether bit i is set.
func (v BitsAndBloomsVector) ValueAt(i uint32) bool { return v.b.Test(uint(i)) }

// HasFastRandomLookup returns true.
func (v BitsAndBloomsVector) HasFastRandomLookup() bool { return true }

// NewCursor returns a cursor over the set bits.
func (v BitsAndBloomsVector) NewCursor() bitset.Cursor {
	return &bbCursor{b: v.b}
}

type bbCursor struct {
	b     *bb.BitSet
	cur   uint
	valid bool
}

func (c *bbCursor) SetToFirstOne() {
	c.cur, c.valid = c.b.NextSet(0)
}

func (c *bbCursor) SetToNextOne() {
	if !c.valid {
		bitset.Violation("BitsAndBloomsCursor.SetToNextOne", bitset.ErrInvalidCursor)
	}
	c.cur, c.valid = c.b.NextSet(c.cur + 1)
}

func (c *bbCursor) Valid() bool { return c.valid }

func (c *bbCursor) Index() uint32 { return uint32(c.cur) }
