package bitset

import "math"

// NotFound is the index returned alongside ok == false by lookups that can
// miss, such as ClearLastOneIfThereIsOneInRange.
const NotFound uint32 = math.MaxUint32

// State is the lifecycle state of a set.
type State uint8

const (
	// Null means never allocated.
	Null State = iota
	// Empty means allocated with population 0.
	Empty
	// Populated means at least one bit is set.
	Populated
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case Null:
		return "null"
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// Cursor is a read-only, forward positioning value over the one bits of a
// single set. It must not outlive its set, and the set must not change while
// the cursor is in use.
type Cursor interface {
	// SetToFirstOne positions the cursor at the lowest one bit.
	SetToFirstOne()
	// SetToNextOne advances to the next higher one bit.
	SetToNextOne()
	// Valid reports whether the cursor is positioned on a one bit.
	Valid() bool
	// Index returns the current position. Only meaningful when Valid.
	Index() uint32
}

// Vector is the capability contract for the right-hand operand of any
// algebra method.
type Vector interface {
	IsZero() bool
	ValueAt(i uint32) bool
	NewCursor() Cursor
	// HasFastRandomLookup reports O(1) ValueAt. Only such vectors are
	// considered for the WordVector fast path.
	HasFastRandomLookup() bool
}

// WordVector exposes the word-granular layout of a Vector. Word w holds bits
// w*WordSize() .. (w+1)*WordSize()-1 with the lowest index in the
// most-significant bit.
type WordVector interface {
	Vector
	// WordSize returns the word width in bits.
	WordSize() int
	// WordAt returns word w, or 0 past the end.
	WordAt(w int) uint64
	// FirstOneWordIndex returns the index of the first non-zero word, or the
	// number of words if there is none.
	FirstOneWordIndex() int
	// LastOneWordIndex returns the index of the last non-zero word, or -1.
	LastOneWordIndex() int
}

// Nullable is implemented by vectors that distinguish Null from Empty.
type Nullable interface {
	IsNull() bool
}

// Words returns v as a WordVector when it qualifies for the word path with
// the given width.
func Words(v Vector, wordSize int) (WordVector, bool) {
	if !v.HasFastRandomLookup() {
		return nil, false
	}
	wv, ok := v.(WordVector)
	if !ok || wv.WordSize() != wordSize {
		return nil, false
	}
	return wv, true
}

// IsNull reports whether v is a Nullable in the Null state.
func IsNull(v Vector) bool {
	n, ok := v.(Nullable)
	return ok && n.IsNull()
}
