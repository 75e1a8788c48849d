// Package bitvec provides dense and sparse bit sets over 32-bit indices with
// snapshot persistence.
//
// # Representations
//
// The dense package stores a contiguous array of 64-bit words and grows on
// demand. The sparse package stores only the populated 65536-bit segments as
// sorted 16-bit offsets. Both implement bitset.Vector, so every algebra
// operation accepts the other representation (or any foreign vector, see the
// interop package) as its right-hand operand:
//
//	d := dense.Of(1, 2, 3)
//	s := sparse.Of(2, 3, 100000)
//	d.AndVector(s) // d = {2, 3}
//
// # Snapshots
//
// A Store persists named sets in any blobstore.BlobStore using the snapshot
// frame format:
//
//	store := bitvec.NewStore(blobstore.NewLocalStore("./data"),
//	    bitvec.WithCompression(snapshot.CompressionZSTD),
//	    bitvec.WithLogger(bitvec.NewTextLogger(slog.LevelDebug)),
//	)
//	if err := store.SaveDense(ctx, "users/active", d); err != nil {
//	    return err
//	}
//	active, err := store.LoadDense(ctx, "users/active")
//
// # Primitives
//
// The bitmanip package exposes the word primitives (population count, leading
// and trailing zeros, power-of-two rounding). Hardware intrinsics are used
// when the CPU supports them; set BITVEC_BITMANIP=portable to force the table
// driven fallbacks.
package bitvec
