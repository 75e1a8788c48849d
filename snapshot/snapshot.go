package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/dense"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/internal/hash"
	"github.com/hupe1980/bitvec/sparse"
)

// Version is the current frame format version.
const Version uint8 = 1

// MaxBits is the largest bit count a frame can describe.
const MaxBits = 1 << 32

const (
	headerSize  = 16
	trailerSize = 4
)

var magic = [4]byte{'B', 'V', 'S', '1'}

// Kind records which representation produced a frame.
type Kind uint8

const (
	// KindGeneric is any bitset.Vector.
	KindGeneric Kind = 0
	// KindDense is a *dense.BitSet.
	KindDense Kind = 1
	// KindSparse is a *sparse.BitSet.
	KindSparse Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Encode frames the first bitCount bits of v. Dense and sparse sets are
// copied with CopyToMemory; any other vector is walked with its cursor.
func Encode(v bitset.Vector, bitCount int, c Compression) ([]byte, error) {
	switch s := v.(type) {
	case *dense.BitSet:
		return EncodeDense(s, bitCount, c)
	case *sparse.BitSet:
		return EncodeSparse(s, bitCount, c)
	}
	words, err := newWords(bitCount)
	if err != nil {
		return nil, err
	}
	if !v.IsZero() {
		limit := uint64(len(words)) * 32
		cur := v.NewCursor()
		for cur.SetToFirstOne(); cur.Valid(); cur.SetToNextOne() {
			i := cur.Index()
			if uint64(i) >= limit {
				break
			}
			words[i>>5] |= 0x80000000 >> (i & 31)
		}
	}
	return frame(KindGeneric, bitCount, words, c)
}

// EncodeDense frames the first bitCount bits of b.
func EncodeDense(b *dense.BitSet, bitCount int, c Compression) ([]byte, error) {
	words, err := newWords(bitCount)
	if err != nil {
		return nil, err
	}
	b.CopyToMemory(words, bitCount)
	return frame(KindDense, bitCount, words, c)
}

// EncodeSparse frames the first bitCount bits of b.
func EncodeSparse(b *sparse.BitSet, bitCount int, c Compression) ([]byte, error) {
	words, err := newWords(bitCount)
	if err != nil {
		return nil, err
	}
	b.CopyToMemory(words, bitCount)
	return frame(KindSparse, bitCount, words, c)
}

func newWords(bitCount int) ([]uint32, error) {
	n, err := conv.IntToUint64(bitCount)
	if err != nil {
		return nil, fmt.Errorf("snapshot: bit count: %w", err)
	}
	if n > MaxBits {
		return nil, fmt.Errorf("snapshot: bit count %d exceeds %d", n, uint64(MaxBits))
	}
	return make([]uint32, (n+31)/32), nil
}

func frame(kind Kind, bitCount int, words []uint32, c Compression) ([]byte, error) {
	payload := make([]byte, 0, 4*len(words))
	for _, w := range words {
		payload = binary.LittleEndian.AppendUint32(payload, w)
	}

	buf := make([]byte, 0, headerSize+blockHeaderSize+len(payload)+trailerSize)
	buf = append(buf, magic[:]...)
	buf = append(buf, Version, uint8(kind), uint8(c), 0)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(bitCount))

	buf, err := appendBlock(buf, payload, c)
	if err != nil {
		return nil, err
	}
	return binary.LittleEndian.AppendUint32(buf, hash.CRC32C(buf)), nil
}

// Image is a decoded frame.
type Image struct {
	Kind        Kind
	Compression Compression
	BitCount    int
	words       []uint32
}

// Decode parses and verifies a frame produced by Encode.
func Decode(data []byte) (*Image, error) {
	if len(data) < headerSize+blockHeaderSize+trailerSize {
		return nil, formatError(fmt.Sprintf("frame of %d bytes", len(data)), ErrCorrupt)
	}
	if [4]byte(data[:4]) != magic {
		return nil, formatError("bad magic", ErrCorrupt)
	}

	body := data[:len(data)-trailerSize]
	if want, got := binary.LittleEndian.Uint32(data[len(body):]), hash.CRC32C(body); want != got {
		return nil, formatError(fmt.Sprintf("crc %08x, want %08x", got, want), ErrChecksumMismatch)
	}
	if v := data[4]; v != Version {
		return nil, formatError(fmt.Sprintf("version %d", v), ErrUnsupportedVersion)
	}

	kind := Kind(data[5])
	if kind > KindSparse {
		return nil, formatError(fmt.Sprintf("kind %d", data[5]), ErrCorrupt)
	}
	c := Compression(data[6])
	if c > CompressionZSTD {
		return nil, formatError(fmt.Sprintf("compression %d", data[6]), ErrCorrupt)
	}

	n := binary.LittleEndian.Uint64(data[8:])
	if n > MaxBits {
		return nil, formatError(fmt.Sprintf("bit count %d", n), ErrCorrupt)
	}
	bitCount, err := conv.Uint64ToInt(n)
	if err != nil {
		return nil, formatError("bit count", err)
	}

	numWords := (n + 31) / 32
	payload, used, err := readBlock(body[headerSize:], c, 4*numWords)
	if err != nil {
		return nil, err
	}
	if headerSize+used != len(body) {
		return nil, formatError("trailing bytes after payload", ErrCorrupt)
	}

	words := make([]uint32, numWords)
	for k := range words {
		words[k] = binary.LittleEndian.Uint32(payload[4*k:])
	}
	return &Image{Kind: kind, Compression: c, BitCount: bitCount, words: words}, nil
}

// Words returns the decoded interchange words. The slice is owned by the
// image.
func (img *Image) Words() []uint32 {
	return img.words
}

// Dense restores the image into a new dense set of at least BitCount bits.
func (img *Image) Dense() *dense.BitSet {
	b := dense.NewWithSize(img.BitCount)
	b.CopyFromMemory(img.words, img.BitCount)
	return b
}

// Sparse restores the image into a new sparse set.
func (img *Image) Sparse() *sparse.BitSet {
	b := sparse.New()
	b.CopyFromMemory(img.words, img.BitCount)
	return b
}
