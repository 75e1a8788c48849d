// Package bitmanip provides word-level bit manipulation primitives shared by
// the dense and sparse bit-set representations.
//
// Every primitive exists for 32- and 64-bit words. Two interchangeable
// implementations back them:
//
//   - Intrinsic: math/bits, which the compiler lowers to POPCNT/LZCNT/TZCNT
//     (amd64) or CNT/CLZ/RBIT (arm64).
//   - Portable: table and shift based emulation that produces identical
//     results on any CPU.
//
// The implementation is selected once at package init from CPU features. It
// can be forced with the BITVEC_BITMANIP environment variable:
//
//	BITVEC_BITMANIP=portable go test ./...
package bitmanip
