package sparse

import "slices"

const (
	tileLen   = 1024
	tileCount = segmentSize / tileLen
)

// OrMany unions every set in vs into b. It gives the same result as calling
// Or once per input but builds each segment in 1024-value tiles gathered
// across all inputs sharing its high bits.
func (b *BitSet) OrMany(vs ...*BitSet) {
	switch len(vs) {
	case 0:
		return
	case 1:
		b.Or(vs[0])
		return
	}
	b.allocated = true

	var (
		marks [tileLen]bool
		buf   = make([]uint16, 0, tileLen)
		runs  = make([][]uint16, 0, len(vs))
	)
	for _, hb := range highBitsOf(vs, nil) {
		runs = segmentRuns(runs[:0], vs, hb)

		for tile := 0; tile < tileCount && len(runs) > 1; tile++ {
			low := tile * tileLen
			high := low + tileLen
			found := false

			live := runs[:0]
			for _, r := range runs {
				k := 0
				for k < len(r) && int(r[k]) < high {
					marks[int(r[k])-low] = true
					k++
				}
				if k > 0 {
					found = true
				}
				if k < len(r) {
					live = append(live, r[k:])
				}
			}
			runs = live

			if found {
				buf = collectMarks(buf[:0], &marks, low)
				b.OrValues(hb, buf)
			}
		}
		// A single remaining input is merged without tiling.
		if len(runs) == 1 {
			b.OrValues(hb, runs[0])
		}
	}
}

// OrManyMasked unions in & mask for every in of vs into b. Only segments
// present in mask are visited.
func (b *BitSet) OrManyMasked(mask *BitSet, vs ...*BitSet) {
	if len(vs) == 0 || mask.IsZero() {
		return
	}
	if len(vs) == 1 {
		b.OrMask(vs[0], mask)
		return
	}

	const (
		inMask = 2
		hit    = 1
	)
	var (
		marks [tileLen]uint8
		buf   = make([]uint16, 0, tileLen)
		runs  = make([][]uint16, 0, len(vs))
	)
	for _, hb := range highBitsOf(vs, mask) {
		mvals := mask.segment(hb).values
		runs = segmentRuns(runs[:0], vs, hb)

		for tile := 0; tile < tileCount && len(mvals) > 0 && len(runs) > 0; tile++ {
			low := tile * tileLen
			high := low + tileLen

			for len(mvals) > 0 && int(mvals[0]) < high {
				marks[int(mvals[0])-low] = inMask
				mvals = mvals[1:]
			}

			live := runs[:0]
			for _, r := range runs {
				k := 0
				for k < len(r) && int(r[k]) < high {
					if m := &marks[int(r[k])-low]; *m == inMask {
						*m = hit
					}
					k++
				}
				if k < len(r) {
					live = append(live, r[k:])
				}
			}
			runs = live

			buf = buf[:0]
			for i, m := range marks {
				if m == hit {
					buf = append(buf, uint16(low+i))
				}
			}
			clear(marks[:])
			if len(buf) > 0 {
				b.OrValues(hb, buf)
			}
		}
	}
}

// highBitsOf returns the sorted, unique high bits of all segments in vs,
// restricted to those also present in mask when mask is not nil.
func highBitsOf(vs []*BitSet, mask *BitSet) []uint16 {
	var hbs []uint16
	for _, v := range vs {
		for i := range v.segments {
			hb := v.segments[i].highBits
			if mask != nil && mask.segment(hb) == nil {
				continue
			}
			hbs = append(hbs, hb)
		}
	}
	slices.Sort(hbs)
	return slices.Compact(hbs)
}

// segmentRuns appends the value slices of every input holding a segment for
// hb.
func segmentRuns(dst [][]uint16, vs []*BitSet, hb uint16) [][]uint16 {
	for _, v := range vs {
		if s := v.segment(hb); s != nil {
			dst = append(dst, s.values)
		}
	}
	return dst
}

// collectMarks appends the marked positions of a tile starting at low, in
// ascending order, and resets the marks.
func collectMarks(dst []uint16, marks *[tileLen]bool, low int) []uint16 {
	for i, m := range marks {
		if m {
			marks[i] = false
			dst = append(dst, uint16(low+i))
		}
	}
	return dst
}
