// Package snapshot encodes bit sets in their raw 32-bit interchange image.
//
// The payload is exactly what CopyToMemory produces: ceil(bitCount/32)
// words, MSB-first within each word, stored little-endian. It is framed
// with a small header, optionally compressed and closed by a checksum:
//
//	offset  size  field
//	0       4     magic "BVS1"
//	4       1     version (1)
//	5       1     kind (generic, dense, sparse)
//	6       1     compression (none, lz4, zstd)
//	7       1     reserved, zero
//	8       8     bitCount, little-endian
//	16      4     uncompressed payload size
//	20      4     compressed payload size (0 means stored)
//	24      n     payload
//	24+n    4     CRC32-C of bytes 0 .. 24+n
//
// Compression falls back to storing the payload when it saves less than
// ten percent.
package snapshot
