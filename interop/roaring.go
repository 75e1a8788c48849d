package interop

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/dense"
	"github.com/hupe1980/bitvec/sparse"
)

const batchSize = 4096

// ToRoaring returns a roaring bitmap holding the members of v.
func ToRoaring(v bitset.Vector) *roaring.Bitmap {
	rb := roaring.New()
	buf := make([]uint32, 0, batchSize)
	for i := range bitset.All(v) {
		buf = append(buf, i)
		if len(buf) == batchSize {
			rb.AddMany(buf)
			buf = buf[:0]
		}
	}
	rb.AddMany(buf)
	return rb
}

// FromRoaring returns a dense set holding the members of rb. An empty rb
// yields an Empty set.
func FromRoaring(rb *roaring.Bitmap) *dense.BitSet {
	d := dense.NewWithSize(0)
	d.OrVector(Roaring(rb))
	return d
}

// SparseFromRoaring returns a sparse set holding the members of rb.
func SparseFromRoaring(rb *roaring.Bitmap) *sparse.BitSet {
	s := sparse.New()
	s.Clear()
	s.OrVector(Roaring(rb))
	return s
}

// RoaringVector adapts a roaring bitmap to bitset.Vector.
type RoaringVector struct {
	rb *roaring.Bitmap
}

var _ bitset.Vector = RoaringVector{}

// Roaring wraps rb without copying it.
func Roaring(rb *roaring.Bitmap) RoaringVector {
	return RoaringVector{rb: rb}
}

// IsZero reports whether the bitmap is empty.
func (r RoaringVector) IsZero() bool { return r.rb.IsEmpty() }

// ValueAt reports whether i is in the bitmap.
func (r RoaringVector) ValueAt(i uint32) bool { return r.rb.Contains(i) }

// HasFastRandomLookup returns true: Contains is a container lookup.
func (r RoaringVector) HasFastRandomLookup() bool { return true }

// LastOne returns the maximum, letting dense OrVector pre-size its words.
func (r RoaringVector) LastOne() uint32 {
	if r.rb.IsEmpty() {
		return 0
	}
	return r.rb.Maximum()
}

// NewCursor returns a cursor over the bitmap.
func (r RoaringVector) NewCursor() bitset.Cursor {
	return &roaringCursor{rb: r.rb}
}

type roaringCursor struct {
	rb    *roaring.Bitmap
	it    roaring.IntPeekable
	cur   uint32
	valid bool
}

func (c *roaringCursor) SetToFirstOne() {
	c.it = c.rb.Iterator()
	c.step()
}

func (c *roaringCursor) SetToNextOne() {
	if !c.valid {
		bitset.Violation("RoaringCursor.SetToNextOne", bitset.ErrInvalidCursor)
	}
	c.step()
}

func (c *roaringCursor) Valid() bool { return c.valid }

func (c *roaringCursor) Index() uint32 { return c.cur }

func (c *roaringCursor) step() {
	c.valid = c.it.HasNext()
	if c.valid {
		c.cur = c.it.Next()
	}
}
