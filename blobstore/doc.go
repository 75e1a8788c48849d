// Package blobstore provides storage backends for encoded bit set snapshots.
//
// BlobStore is a flat namespace of immutable blobs addressed by slash
// separated names. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and caches
//   - LocalStore: local filesystem with atomic rename on Put
//   - minio.Store: MinIO and other S3-compatible services
//   - s3.Store: Amazon S3 with multipart uploads for large blobs
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Put(ctx, name, data) error           // Atomic write
//	    Get(ctx, name) ([]byte, error)       // ErrNotFound when missing
//	    Delete(ctx, name) error              // Missing blobs are not an error
//	    List(ctx, prefix) ([]string, error)  // Sorted names
//	}
package blobstore
