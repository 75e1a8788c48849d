package bitset

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listVector is a minimal Vector backed by a sorted slice; it has no fast
// random lookup so helpers take their cursor paths.
type listVector struct{ ids []uint32 }

func newList(ids ...uint32) *listVector {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return &listVector{ids: ids}
}

func (l *listVector) IsZero() bool              { return len(l.ids) == 0 }
func (l *listVector) HasFastRandomLookup() bool { return false }
func (l *listVector) NewCursor() Cursor         { return &listCursor{l: l, pos: len(l.ids)} }
func (l *listVector) ValueAt(i uint32) bool {
	n := sort.Search(len(l.ids), func(k int) bool { return l.ids[k] >= i })
	return n < len(l.ids) && l.ids[n] == i
}

type listCursor struct {
	l   *listVector
	pos int
}

func (c *listCursor) SetToFirstOne() { c.pos = 0 }
func (c *listCursor) SetToNextOne()  { c.pos++ }
func (c *listCursor) Valid() bool    { return c.pos < len(c.l.ids) }
func (c *listCursor) Index() uint32  { return c.l.ids[c.pos] }

// lookupVector is a listVector that claims fast lookup.
type lookupVector struct{ *listVector }

func (lookupVector) HasFastRandomLookup() bool { return true }

func TestHelpers(t *testing.T) {
	a := newList(1, 2, 3)
	b := newList(2, 3, 4)

	assert.Equal(t, []uint32{1, 2, 3}, Collect(a))
	assert.Nil(t, Collect(newList()))
	assert.Equal(t, 3, PopulationCount(a))
	assert.True(t, Equal(a, newList(3, 2, 1)))
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(a, newList(1, 2)))
	assert.True(t, Intersects(a, b))
	assert.False(t, Intersects(a, newList(7, 9)))
	assert.True(t, IsSubset(newList(2, 3), a))
	assert.False(t, IsSubset(b, a))
	assert.True(t, IsSubset(newList(2, 3), lookupVector{a}))
	assert.False(t, IsSubset(b, lookupVector{a}))
	assert.True(t, IsSubset(newList(), a))

	assert.Equal(t, "( 1 2 3 )", Format(a))
	assert.Equal(t, "( )", Format(newList()))
}

func TestAllStopsEarly(t *testing.T) {
	var seen []uint32
	for i := range All(newList(5, 6, 7, 8)) {
		seen = append(seen, i)
		if i == 6 {
			break
		}
	}
	assert.Equal(t, []uint32{5, 6}, seen)
}

func TestWordsRequiresFastLookup(t *testing.T) {
	_, ok := Words(newList(1), 64)
	assert.False(t, ok)
	_, ok = Words(lookupVector{newList(1)}, 64)
	assert.False(t, ok, "lookupVector does not expose words")
}

func TestContractError(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*ContractError)
		require.True(t, ok)
		assert.Equal(t, "CopyToMemory", err.Op)
		assert.True(t, errors.Is(err, ErrBadLength))
		assert.Contains(t, err.Error(), "buffer too short")
	}()
	CheckLength("CopyToMemory", 1, 33)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "populated", Populated.String())
	assert.Equal(t, "unknown", State(9).String())
}
