package sparse

import (
	"slices"

	"github.com/hupe1980/bitvec/bitset"
)

// Cursor walks the members of a BitSet in either direction.
type Cursor struct {
	b   *BitSet
	seg int // -1 when not positioned
	pos int
}

var _ bitset.Cursor = (*Cursor)(nil)

// NewCursor returns an unpositioned cursor over b.
func (b *BitSet) NewCursor() bitset.Cursor {
	return b.Cursor()
}

// Cursor returns the concrete cursor type, positioned nowhere.
func (b *BitSet) Cursor() *Cursor {
	return &Cursor{b: b, seg: -1}
}

// SetToFirstOne positions c at the smallest member.
func (c *Cursor) SetToFirstOne() {
	c.seg, c.pos = 0, 0
	c.settle()
}

// SetToLastOne positions c at the largest member.
func (c *Cursor) SetToLastOne() {
	c.seg = len(c.b.segments) - 1
	if c.seg >= 0 {
		c.pos = len(c.b.segments[c.seg].values) - 1
	}
}

// SetToNextOne advances c to the next larger member. c must be Valid.
func (c *Cursor) SetToNextOne() {
	if !c.Valid() {
		bitset.Violation("Cursor.SetToNextOne", bitset.ErrInvalidCursor)
	}
	c.pos++
	if c.pos == len(c.b.segments[c.seg].values) {
		c.seg++
		c.pos = 0
	}
	c.settle()
}

// SetToPreviousOne moves c to the next smaller member. c must be Valid.
func (c *Cursor) SetToPreviousOne() {
	if !c.Valid() {
		bitset.Violation("Cursor.SetToPreviousOne", bitset.ErrInvalidCursor)
	}
	c.pos--
	if c.pos < 0 {
		c.seg--
		if c.seg >= 0 {
			c.pos = len(c.b.segments[c.seg].values) - 1
		}
	}
}

// SetToNextOneAfter positions c at the smallest member strictly greater
// than n.
func (c *Cursor) SetToNextOneAfter(n uint32) {
	if n == bitset.NotFound {
		c.seg = -1
		return
	}
	hb, low := uint16(n>>segmentShift), uint16(n)
	idx, found := c.b.find(hb)
	c.seg, c.pos = idx, 0
	if found {
		values := c.b.segments[idx].values
		pos, hit := slices.BinarySearch(values, low)
		if hit {
			pos++
		}
		if pos == len(values) {
			c.seg++
		} else {
			c.pos = pos
		}
	}
	c.settle()
}

// Valid reports whether c is positioned on a member.
func (c *Cursor) Valid() bool {
	return c.seg >= 0 && c.seg < len(c.b.segments)
}

// Index returns the current member.
func (c *Cursor) Index() uint32 {
	s := &c.b.segments[c.seg]
	return s.Base() | uint32(s.values[c.pos])
}

// settle marks c unpositioned once it runs past the last segment.
func (c *Cursor) settle() {
	if c.seg >= len(c.b.segments) {
		c.seg = -1
	}
}

type intersectionCursor struct {
	a, b bitset.Cursor
}

// IntersectionCursor returns a cursor over the indices both c1 and c2
// visit. Both must enumerate in ascending order; they are advanced lazily.
func IntersectionCursor(c1, c2 bitset.Cursor) bitset.Cursor {
	return &intersectionCursor{a: c1, b: c2}
}

func (c *intersectionCursor) SetToFirstOne() {
	c.a.SetToFirstOne()
	c.b.SetToFirstOne()
	c.align()
}

func (c *intersectionCursor) SetToNextOne() {
	if !c.Valid() {
		bitset.Violation("IntersectionCursor.SetToNextOne", bitset.ErrInvalidCursor)
	}
	c.a.SetToNextOne()
	c.align()
}

func (c *intersectionCursor) Valid() bool { return c.a.Valid() && c.b.Valid() }

func (c *intersectionCursor) Index() uint32 { return c.a.Index() }

func (c *intersectionCursor) align() {
	for c.a.Valid() && c.b.Valid() {
		switch x, y := c.a.Index(), c.b.Index(); {
		case x == y:
			return
		case x < y:
			c.a.SetToNextOne()
		default:
			c.b.SetToNextOne()
		}
	}
}

type maskCursor struct {
	c    bitset.Cursor
	mask bitset.Vector
}

// MaskCursor returns a cursor over the indices of c that are members of
// mask. Masks with fast random lookup are probed directly; others are
// walked alongside c.
func MaskCursor(c bitset.Cursor, mask bitset.Vector) bitset.Cursor {
	if !mask.HasFastRandomLookup() {
		return IntersectionCursor(c, mask.NewCursor())
	}
	return &maskCursor{c: c, mask: mask}
}

func (m *maskCursor) SetToFirstOne() {
	m.c.SetToFirstOne()
	m.skip()
}

func (m *maskCursor) SetToNextOne() {
	if !m.Valid() {
		bitset.Violation("MaskCursor.SetToNextOne", bitset.ErrInvalidCursor)
	}
	m.c.SetToNextOne()
	m.skip()
}

func (m *maskCursor) Valid() bool { return m.c.Valid() }

func (m *maskCursor) Index() uint32 { return m.c.Index() }

func (m *maskCursor) skip() {
	for m.c.Valid() && !m.mask.ValueAt(m.c.Index()) {
		m.c.SetToNextOne()
	}
}
