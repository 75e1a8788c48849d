package snapshot

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the algorithm name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("snapshot: unknown compression %q", s)
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

const blockHeaderSize = 8

// appendBlock appends [uncompressed u32][compressed u32][data] to dst. The
// payload is stored when compression does not get below 90% of its size.
func appendBlock(dst, data []byte, c Compression) ([]byte, error) {
	var compressed []byte
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: lz4: %w", err)
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("snapshot: unknown compression %d", uint8(c))
	}

	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(data)))
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		dst = binary.LittleEndian.AppendUint32(dst, 0)
		return append(dst, data...), nil
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(compressed)))
	return append(dst, compressed...), nil
}

// readBlock decodes a block written by appendBlock and returns the payload
// and the number of bytes consumed. The declared payload size must equal want
// before anything is allocated.
func readBlock(data []byte, c Compression, want uint64) ([]byte, int, error) {
	if len(data) < blockHeaderSize {
		return nil, 0, formatError("block header truncated", ErrCorrupt)
	}
	size := binary.LittleEndian.Uint32(data[0:])
	stored := binary.LittleEndian.Uint32(data[4:])
	body := data[blockHeaderSize:]

	if uint64(size) != want {
		return nil, 0, formatError(fmt.Sprintf("payload of %d bytes, want %d", size, want), ErrCorrupt)
	}

	if stored == 0 {
		if uint64(len(body)) < uint64(size) {
			return nil, 0, formatError("stored block truncated", ErrCorrupt)
		}
		return body[:size], blockHeaderSize + int(size), nil
	}
	if uint64(len(body)) < uint64(stored) {
		return nil, 0, formatError("compressed block truncated", ErrCorrupt)
	}
	body = body[:stored]
	out := make([]byte, size)

	switch c {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, 0, formatError("lz4", err)
		}
		if uint32(n) != size {
			return nil, 0, formatError("lz4 size mismatch", ErrCorrupt)
		}
	case CompressionZSTD:
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(body, out[:0])
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, 0, formatError("zstd", err)
		}
		if uint32(len(decoded)) != size {
			return nil, 0, formatError("zstd size mismatch", ErrCorrupt)
		}
		out = decoded
	default:
		return nil, 0, formatError(fmt.Sprintf("compressed block with compression %s", c), ErrCorrupt)
	}
	return out, blockHeaderSize + int(stored), nil
}
