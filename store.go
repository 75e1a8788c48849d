package bitvec

import (
	"context"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/dense"
	"github.com/hupe1980/bitvec/snapshot"
	"github.com/hupe1980/bitvec/sparse"
)

// Ext is the blob name suffix of stored snapshots.
const Ext = ".bvs"

// Store persists named bit set snapshots in a BlobStore.
// It is safe for concurrent use.
type Store struct {
	blobs blobstore.BlobStore
	opts  options
}

// NewStore creates a Store on top of blobs.
func NewStore(blobs blobstore.BlobStore, optFns ...Option) *Store {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{blobs: blobs, opts: opts}
}

func (s *Store) key(name string) (string, error) {
	if err := blobstore.ValidateName(name); err != nil {
		return "", err
	}
	return path.Join(s.opts.prefix, name) + Ext, nil
}

func (s *Store) wait(ctx context.Context) error {
	if s.opts.limiter == nil {
		return nil
	}
	return s.opts.limiter.Wait(ctx)
}

// Save encodes the first bitCount bits of v and stores them under name.
func (s *Store) Save(ctx context.Context, name string, v bitset.Vector, bitCount int) error {
	start := time.Now()
	size, err := s.save(ctx, name, func() ([]byte, error) {
		return snapshot.Encode(v, bitCount, s.opts.compression)
	})
	s.opts.metricsCollector.RecordSave(size, time.Since(start), err)
	s.opts.logger.WithOp("save").WithName(name).LogSave(ctx, bitCount, size, err)
	return err
}

// SaveDense stores the whole capacity of d.
func (s *Store) SaveDense(ctx context.Context, name string, d *dense.BitSet) error {
	return s.Save(ctx, name, d, d.SizeInBits())
}

// SaveSparse stores b up to the end of its last segment.
func (s *Store) SaveSparse(ctx context.Context, name string, b *sparse.BitSet) error {
	return s.Save(ctx, name, b, b.SizeInBits())
}

func (s *Store) save(ctx context.Context, name string, encode func() ([]byte, error)) (int, error) {
	key, err := s.key(name)
	if err != nil {
		return 0, snapshotError("save", name, err)
	}
	data, err := encode()
	if err != nil {
		return 0, snapshotError("save", name, err)
	}
	if err := s.wait(ctx); err != nil {
		return 0, snapshotError("save", name, err)
	}
	if err := s.blobs.Put(ctx, key, data); err != nil {
		return 0, snapshotError("save", name, err)
	}
	return len(data), nil
}

// Load fetches and decodes the snapshot stored under name. A missing
// snapshot satisfies errors.Is(err, ErrNotFound).
func (s *Store) Load(ctx context.Context, name string) (*snapshot.Image, error) {
	start := time.Now()
	img, size, err := s.load(ctx, name)
	s.opts.metricsCollector.RecordLoad(size, time.Since(start), err)
	s.opts.logger.WithOp("load").WithName(name).LogLoad(ctx, size, err)
	return img, err
}

func (s *Store) load(ctx context.Context, name string) (*snapshot.Image, int, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, 0, snapshotError("load", name, err)
	}
	if err := s.wait(ctx); err != nil {
		return nil, 0, snapshotError("load", name, err)
	}
	data, err := s.blobs.Get(ctx, key)
	if err != nil {
		return nil, 0, snapshotError("load", name, err)
	}
	img, err := snapshot.Decode(data)
	if err != nil {
		return nil, len(data), snapshotError("load", name, err)
	}
	return img, len(data), nil
}

// LoadDense loads name into a new dense set.
func (s *Store) LoadDense(ctx context.Context, name string) (*dense.BitSet, error) {
	img, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return img.Dense(), nil
}

// LoadSparse loads name into a new sparse set.
func (s *Store) LoadSparse(ctx context.Context, name string) (*sparse.BitSet, error) {
	img, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return img.Sparse(), nil
}

// LoadAll loads every named snapshot in parallel, bounded by WithConcurrency.
// The first failure cancels the remaining fetches and is returned.
func (s *Store) LoadAll(ctx context.Context, names []string) (map[string]*snapshot.Image, error) {
	var (
		mu     sync.Mutex
		images = make(map[string]*snapshot.Image, len(names))
	)

	g, gctx := errgroup.WithContext(ctx)
	if s.opts.concurrency > 0 {
		g.SetLimit(s.opts.concurrency)
	}
	for _, name := range names {
		g.Go(func() error {
			img, err := s.Load(gctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			images[name] = img
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	s.opts.logger.WithOp("load_all").LogLoadAll(ctx, len(names), err)
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Delete removes the snapshot stored under name. Deleting a missing snapshot
// succeeds.
func (s *Store) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := s.delete(ctx, name)
	s.opts.metricsCollector.RecordDelete(time.Since(start), err)
	s.opts.logger.WithOp("delete").WithName(name).LogDelete(ctx, err)
	return err
}

func (s *Store) delete(ctx context.Context, name string) error {
	key, err := s.key(name)
	if err != nil {
		return snapshotError("delete", name, err)
	}
	if err := s.wait(ctx); err != nil {
		return snapshotError("delete", name, err)
	}
	return snapshotError("delete", name, s.blobs.Delete(ctx, key))
}

// List returns the sorted names of stored snapshots that start with prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	root := ""
	if s.opts.prefix != "" {
		root = strings.TrimSuffix(s.opts.prefix, "/") + "/"
	}

	keys, err := s.blobs.List(ctx, root+prefix)
	if err != nil {
		return nil, snapshotError("list", prefix, err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		name, ok := strings.CutSuffix(strings.TrimPrefix(key, root), Ext)
		if ok && strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
