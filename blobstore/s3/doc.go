// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.NewStoreFromConfig(ctx, "my-bucket", "bitsets/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := bitvec.NewStore(store)
//
// # Features
//
//   - CRC32C-checked single-request puts for small blobs
//   - Multipart uploads for blobs at or above the part size
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
