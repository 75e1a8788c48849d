package dense

import (
	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/internal/wordops"
)

// And performs b &= o and reports whether b changed.
func (b *BitSet) And(o *BitSet) bool {
	b.GrowTo(o.SizeInBits(), false, false)
	n := len(o.words)
	changed := wordops.And(b.words[:n], o.words)
	if wordops.ZeroChanged(b.words[n:]) {
		changed = true
	}
	return changed
}

// Or performs b |= o and reports whether b changed.
func (b *BitSet) Or(o *BitSet) bool {
	b.GrowTo(o.SizeInBits(), false, false)
	return wordops.Or(b.words[:len(o.words)], o.words)
}

// Xor performs b ^= o and reports whether b changed.
func (b *BitSet) Xor(o *BitSet) bool {
	b.GrowTo(o.SizeInBits(), false, false)
	return wordops.Xor(b.words[:len(o.words)], o.words)
}

// Andc performs b &^= o and reports whether b changed.
func (b *BitSet) Andc(o *BitSet) bool {
	b.GrowTo(o.SizeInBits(), false, false)
	return wordops.AndNot(b.words[:len(o.words)], o.words)
}

// AndTo stores b & in into out and reports whether the result differs from
// b. out is grown to the larger operand; words past the shorter operand are
// zero. out may alias b or in.
func (b *BitSet) AndTo(in, out *BitSet) bool {
	small, large := spans(b, in)
	thisWords := len(b.words)
	out.GrowTo(large*WordBits, false, false)

	changed := wordops.AndTo(out.words[:small], b.words[:small], in.words[:small])
	if thisWords > small && !wordops.IsZero(b.words[small:thisWords]) {
		changed = true
	}
	wordops.Fill(out.words[small:], 0)
	return changed
}

// OrTo stores b | in into out and reports whether the result differs from b.
// The longer operand's tail is copied through. out may alias b or in.
func (b *BitSet) OrTo(in, out *BitSet) bool {
	return b.mergeTo(in, out, wordops.OrTo)
}

// XorTo stores b ^ in into out and reports whether the result differs from
// b. The longer operand's tail is copied through. out may alias b or in.
func (b *BitSet) XorTo(in, out *BitSet) bool {
	return b.mergeTo(in, out, wordops.XorTo)
}

// AndcTo stores b &^ in into out and reports whether the result differs from
// b. b's tail past in is kept; in's tail past b contributes nothing. out may
// alias b or in.
func (b *BitSet) AndcTo(in, out *BitSet) bool {
	small, large := spans(b, in)
	thisWords := len(b.words)
	out.GrowTo(large*WordBits, false, false)

	changed := wordops.AndNotTo(out.words[:small], b.words[:small], in.words[:small])
	if thisWords > small {
		copy(out.words[small:thisWords], b.words[small:thisWords])
		wordops.Fill(out.words[thisWords:], 0)
	} else {
		wordops.Fill(out.words[small:], 0)
	}
	return changed
}

// mergeTo implements the Or/Xor shape: op over the overlap, longer tail
// copied through, rest of out zeroed.
func (b *BitSet) mergeTo(in, out *BitSet, op func(dst, a, c []uint64) bool) bool {
	small, large := spans(b, in)
	thisWords, inWords := len(b.words), len(in.words)
	out.GrowTo(large*WordBits, false, false)

	changed := op(out.words[:small], b.words[:small], in.words[:small])
	if thisWords > inWords {
		copy(out.words[small:thisWords], b.words[small:thisWords])
	} else if inWords > small {
		if !wordops.IsZero(in.words[small:inWords]) {
			changed = true
		}
		copy(out.words[small:inWords], in.words[small:inWords])
	}
	wordops.Fill(out.words[large:], 0)
	return changed
}

func spans(a, b *BitSet) (small, large int) {
	return min(len(a.words), len(b.words)), max(len(a.words), len(b.words))
}

// OrVector performs b |= v for any vector and reports whether b changed.
func (b *BitSet) OrVector(v bitset.Vector) bool {
	if d, ok := v.(*BitSet); ok {
		return b.Or(d)
	}
	if v.IsZero() {
		return false
	}

	if wv, ok := bitset.Words(v, WordBits); ok {
		low, high := wv.FirstOneWordIndex(), wv.LastOneWordIndex()
		b.GrowTo((high+1)*WordBits, false, false)
		changed := false
		for i := low; i <= high; i++ {
			w := wv.WordAt(i)
			if w&^b.words[i] != 0 {
				changed = true
				b.words[i] |= w
			}
		}
		return changed
	}

	if last, ok := v.(interface{ LastOne() uint32 }); ok {
		b.GrowTo(int(last.LastOne())+1, false, false)
	}

	changed := false
	flush := func(w int, bits uint64) {
		if w >= len(b.words) {
			b.GrowTo((w+1)*WordBits, true, false)
		}
		if bits&^b.words[w] != 0 {
			changed = true
			b.words[w] |= bits
		}
	}
	cursorWords(v, flush)
	return changed
}

// AndVector performs b &= v for any vector and reports whether b changed.
// A result with no bits set leaves b Empty.
func (b *BitSet) AndVector(v bitset.Vector) bool {
	if d, ok := v.(*BitSet); ok {
		return b.And(d)
	}
	if b.IsZero() {
		return false
	}
	if v.IsZero() {
		b.Clear()
		return true
	}

	changed := false
	if wv, ok := bitset.Words(v, WordBits); ok {
		low, high := wv.FirstOneWordIndex(), wv.LastOneWordIndex()
		for i := range b.words {
			var w uint64
			if i >= low && i <= high {
				w = b.words[i] & wv.WordAt(i)
			}
			if w != b.words[i] {
				changed = true
				b.words[i] = w
			}
		}
	} else {
		next := 0
		cursorWords(v, func(w int, bits uint64) {
			if w >= len(b.words) {
				return
			}
			for ; next < w; next++ {
				if b.words[next] != 0 {
					changed = true
					b.words[next] = 0
				}
			}
			if nw := b.words[w] & bits; nw != b.words[w] {
				changed = true
				b.words[w] = nw
			}
			next = w + 1
		})
		if next < len(b.words) && wordops.ZeroChanged(b.words[next:]) {
			changed = true
		}
	}

	if b.IsZero() {
		b.Clear()
	}
	return changed
}

// AndcVector performs b &^= v for any vector and reports whether b changed.
// A result with no bits set leaves b Empty.
func (b *BitSet) AndcVector(v bitset.Vector) bool {
	if v.IsZero() || b.IsZero() {
		return false
	}

	changed := false
	if wv, ok := bitset.Words(v, WordBits); ok {
		low := wv.FirstOneWordIndex()
		high := min(wv.LastOneWordIndex(), len(b.words)-1)
		for i := low; i <= high; i++ {
			if w := wv.WordAt(i); w&b.words[i] != 0 {
				changed = true
				b.words[i] &^= w
			}
		}
	} else {
		cursorWords(v, func(w int, bits uint64) {
			if w < len(b.words) && bits&b.words[w] != 0 {
				changed = true
				b.words[w] &^= bits
			}
		})
	}

	if b.IsZero() {
		b.Clear()
	}
	return changed
}

// cursorWords walks v's cursor and calls fn once per non-empty word with the
// word's bits assembled in dense layout, in ascending word order.
func cursorWords(v bitset.Vector, fn func(w int, bits uint64)) {
	c := v.NewCursor()
	cur := -1
	var acc uint64
	for c.SetToFirstOne(); c.Valid(); c.SetToNextOne() {
		i := c.Index()
		w := int(i >> wordShift)
		if w != cur {
			if cur >= 0 {
				fn(cur, acc)
			}
			cur, acc = w, 0
		}
		acc |= bitMask(i)
	}
	if cur >= 0 {
		fn(cur, acc)
	}
}
