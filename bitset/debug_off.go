//go:build !bitvec_debug

package bitset

// Debug enables fail-fast checks on empty-set queries.
const Debug = false
