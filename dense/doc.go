// Package dense implements a word-packed bit set.
//
// A BitSet stores bit i in word i/64 at mask 1<<(63-i%64), so the lowest
// index of a word is its most-significant bit. Capacity is always a multiple
// of 64 and only grows: writing true past the end grows geometrically below
// 1024 bits and in 1024-bit chunks above; writing false never grows.
//
// Algebra methods come in three flavours:
//
//	a.Or(b)          in place, b is a *BitSet
//	a.OrTo(b, out)   out = a | b
//	a.OrVector(v)    in place, v is any bitset.Vector
//
// The generic forms use a word-parallel path when v exposes 64-bit words
// (bitset.WordVector with fast random lookup) and a cursor-driven path
// otherwise.
package dense
