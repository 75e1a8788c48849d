package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Indices returns n uniform indices in [0, limit). Duplicates are possible.
func (r *RNG) Indices(n int, limit uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(r.rand.Int63n(int64(limit)))
	}
	return out
}

// ClusteredIndices returns n indices drawn from the given number of
// clusters. Cluster bases are uniform in [0, limit) and each cluster spans up
// to spread consecutive values.
func (r *RNG) ClusteredIndices(n, clusters int, spread, limit uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	bases := make([]uint32, clusters)
	for i := range bases {
		bases[i] = uint32(r.rand.Int63n(int64(limit)))
	}
	out := make([]uint32, n)
	for i := range out {
		base := bases[r.rand.Intn(clusters)]
		out[i] = base + uint32(r.rand.Int63n(int64(spread)))
	}
	return out
}

// ShortWords returns n random 32-bit words with roughly the given fraction
// of set bits.
func (r *RNG) ShortWords(n int, density float64) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, n)
	for i := range out {
		var w uint32
		for b := 0; b < 32; b++ {
			if r.rand.Float64() < density {
				w |= 1 << b
			}
		}
		out[i] = w
	}
	return out
}

// Setter is implemented by both bit-set representations.
type Setter interface {
	Set(i uint32, value bool)
}

// Fill sets every index in ids.
func Fill(s Setter, ids []uint32) {
	for _, id := range ids {
		s.Set(id, true)
	}
}

// SortedUnique returns a sorted copy of ids without duplicates.
func SortedUnique(ids []uint32) []uint32 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

// Op is a mutating operation in a randomized differential run.
type Op uint8

const (
	OpSet Op = iota
	OpClear
	OpAnd
	OpOr
	OpAndc
	OpXor
	numOps
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpClear:
		return "clear"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpAndc:
		return "andc"
	case OpXor:
		return "xor"
	default:
		return "unknown"
	}
}

// Op returns a random operation. Set is weighted so sets keep growing.
func (r *RNG) Op() Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rand.Intn(3) == 0 {
		return OpSet
	}
	return Op(r.rand.Intn(int(numOps)))
}
