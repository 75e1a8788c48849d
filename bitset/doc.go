// Package bitset defines the capability contract shared by the dense and
// sparse bit-set representations.
//
// Algebra methods on either concrete representation accept any Vector as the
// right-hand operand. A Vector that reports HasFastRandomLookup and also
// implements WordVector gets a word-parallel fast path; every other Vector is
// consumed through its Cursor. Both paths produce bit-identical results.
//
// Sets track an explicit State:
//
//	Null      never allocated (zero value, or after ClearToNull)
//	Empty     allocated, population 0 (after Clear)
//	Populated at least one bit set
//
// Contract violations, such as advancing an invalid cursor, panic with a
// *ContractError. Building with the bitvec_debug tag additionally panics on
// FirstOne/LastOne of an empty set instead of returning 0.
package bitset
