// Package sparse implements a segmented bit set for large, thinly populated
// index spaces.
//
// An index is split into its high 16 bits, which select a Segment, and its
// low 16 bits, which are stored in the segment's sorted value slice. Only
// segments holding at least one value are kept, so a set containing
// {3, 1000, 1000000} costs two segments regardless of the index range.
//
// The zero BitSet is Null. BitSet satisfies bitset.Vector and combines with
// dense sets, or any other bitset.Vector, through the ...Vector methods.
package sparse
