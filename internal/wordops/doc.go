// Package wordops provides the word-array kernels behind the dense bit-set
// algebra.
//
// All kernels operate over len(dst) words (or len(a) for read-only kernels);
// the other operands must be at least that long. In-place kernels report
// whether any destination word changed; three-operand kernels report whether
// the result differs from a, so dst may alias either operand.
package wordops
