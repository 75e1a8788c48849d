// Package interop converts bit sets to and from the RoaringBitmap and
// bits-and-blooms representations.
//
// Both foreign types can also be wrapped as a bitset.Vector, so dense and
// sparse sets combine with them directly:
//
//	d.OrVector(interop.Roaring(rb))
//	s.AndcVector(interop.BitsAndBlooms(bs))
//
// bits-and-blooms stores bit 0 in the least significant bit of a word, the
// opposite of the dense layout, so conversions go index by index.
package interop
