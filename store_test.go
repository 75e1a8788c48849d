package bitvec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/hupe1980/bitvec/bitset"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/dense"
	"github.com/hupe1980/bitvec/interop"
	"github.com/hupe1980/bitvec/snapshot"
	"github.com/hupe1980/bitvec/sparse"
	"github.com/hupe1980/bitvec/testutil"
)

func blobStores(t *testing.T) map[string]blobstore.BlobStore {
	return map[string]blobstore.BlobStore{
		"memory": blobstore.NewMemoryStore(),
		"local":  blobstore.NewLocalStore(t.TempDir()),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(3)
	ctx := context.Background()

	for storeName, blobs := range blobStores(t) {
		for _, c := range []snapshot.Compression{snapshot.CompressionNone, snapshot.CompressionLZ4, snapshot.CompressionZSTD} {
			t.Run(fmt.Sprintf("%s/%s", storeName, c), func(t *testing.T) {
				store := NewStore(blobs, WithCompression(c), WithPrefix(c.String()))

				d := dense.New()
				testutil.Fill(d, rng.Indices(500, 50000))
				require.NoError(t, store.SaveDense(ctx, "sets/dense", d))

				gotDense, err := store.LoadDense(ctx, "sets/dense")
				require.NoError(t, err)
				assert.True(t, bitset.Equal(d, gotDense))

				s := sparse.New()
				testutil.Fill(s, rng.ClusteredIndices(2000, 6, 2048, 1<<22))
				require.NoError(t, store.SaveSparse(ctx, "sets/sparse", s))

				gotSparse, err := store.LoadSparse(ctx, "sets/sparse")
				require.NoError(t, err)
				assert.True(t, gotSparse.Equal(s))

				rb := roaring.BitmapOf(7, 70000, 700000)
				require.NoError(t, store.Save(ctx, "sets/roaring", interop.Roaring(rb), 1<<20))

				img, err := store.Load(ctx, "sets/roaring")
				require.NoError(t, err)
				assert.Equal(t, snapshot.KindGeneric, img.Kind)
				assert.Equal(t, 1<<20, img.BitCount)
				assert.Equal(t, rb.ToArray(), bitset.Collect(img.Sparse()))
			})
		}
	}
}

func TestStoreNotFound(t *testing.T) {
	store := NewStore(blobstore.NewMemoryStore())

	_, err := store.Load(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var serr *ErrSnapshot
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "load", serr.Op)
	assert.Equal(t, "missing", serr.Name)
	assert.Contains(t, err.Error(), `load "missing"`)

	_, err = store.LoadDense(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.LoadSparse(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCorrupt(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemoryStore()
	store := NewStore(blobs)

	require.NoError(t, store.SaveDense(ctx, "a", dense.Of(1, 2, 3)))
	data, err := blobs.Get(ctx, "a"+Ext)
	require.NoError(t, err)

	data[len(data)-1] ^= 0x01
	require.NoError(t, blobs.Put(ctx, "b"+Ext, data))
	_, err = store.Load(ctx, "b")
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	require.NoError(t, blobs.Put(ctx, "c"+Ext, []byte("not a snapshot")))
	_, err = store.Load(ctx, "c")
	assert.ErrorIs(t, err, ErrCorrupt)

	var ferr *snapshot.ErrFormat
	assert.True(t, errors.As(err, &ferr))
}

func TestStoreInvalidName(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewMemoryStore())

	assert.ErrorIs(t, store.SaveDense(ctx, "../x", dense.Of(1)), ErrInvalidName)
	_, err := store.Load(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.ErrorIs(t, store.Delete(ctx, "/abs"), ErrInvalidName)
}

func TestStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemoryStore()
	store := NewStore(blobs, WithPrefix("tenant"))
	other := NewStore(blobs, WithPrefix("other"))

	for _, name := range []string{"a", "a-b", "a/b", "z"} {
		require.NoError(t, store.SaveSparse(ctx, name, sparse.Of(1)))
	}
	require.NoError(t, other.SaveSparse(ctx, "a", sparse.Of(1)))
	// Foreign blobs without the snapshot suffix are ignored.
	require.NoError(t, blobs.Put(ctx, "tenant/readme.txt", []byte("x")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a-b", "a/b", "z"}, names)

	names, err = store.List(ctx, "a/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b"}, names)

	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Delete(ctx, "a"))

	names, err = store.List(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a-b", "a/b"}, names)

	names, err = other.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)
}

func TestStoreLoadAll(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewMemoryStore(), WithConcurrency(3))

	names := make([]string, 20)
	for i := range names {
		names[i] = fmt.Sprintf("set-%02d", i)
		require.NoError(t, store.SaveDense(ctx, names[i], dense.Of(uint32(i), uint32(i*1000))))
	}

	images, err := store.LoadAll(ctx, names)
	require.NoError(t, err)
	require.Len(t, images, len(names))
	for i, name := range names {
		assert.True(t, images[name].Dense().Get(uint32(i*1000)), name)
	}

	_, err = store.LoadAll(ctx, append(names, "missing"))
	assert.ErrorIs(t, err, ErrNotFound)

	images, err = NewStore(blobstore.NewMemoryStore(), WithConcurrency(0)).LoadAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestStoreMetrics(t *testing.T) {
	ctx := context.Background()
	mc := &BasicMetricsCollector{}
	store := NewStore(blobstore.NewMemoryStore(), WithMetricsCollector(mc))

	require.NoError(t, store.SaveDense(ctx, "a", dense.Of(1, 2, 3)))
	_, err := store.Load(ctx, "a")
	require.NoError(t, err)
	_, err = store.Load(ctx, "missing")
	require.Error(t, err)
	require.NoError(t, store.Delete(ctx, "a"))

	stats := mc.Stats()
	assert.Equal(t, int64(1), stats.SaveCount)
	assert.Zero(t, stats.SaveErrors)
	assert.Positive(t, stats.SaveBytes)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, stats.SaveBytes, stats.LoadBytes)
	assert.Equal(t, int64(1), stats.DeleteCount)
	assert.Zero(t, stats.DeleteErrors)

	// nil falls back to the no-op collector
	store = NewStore(blobstore.NewMemoryStore(), WithMetricsCollector(nil), WithLogger(nil))
	require.NoError(t, store.SaveSparse(ctx, "b", sparse.Of(9)))
}

func TestStoreLogging(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := NewStore(blobstore.NewMemoryStore(), WithLogger(logger))

	require.NoError(t, store.SaveDense(ctx, "a", dense.Of(1)))
	_, _ = store.Load(ctx, "missing")
	require.NoError(t, store.Delete(ctx, "a"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"msg":"snapshot saved"`)
	assert.Contains(t, lines[0], `"op":"save"`)
	assert.Contains(t, lines[0], `"name":"a"`)
	assert.Contains(t, lines[1], `"level":"WARN"`)
	assert.Contains(t, lines[1], `"msg":"snapshot load failed"`)
	assert.Contains(t, lines[1], `"name":"missing"`)
	assert.Contains(t, lines[2], `"msg":"snapshot deleted"`)
	assert.Contains(t, lines[2], `"op":"delete"`)
	assert.Contains(t, lines[2], `"name":"a"`)
}

func TestStoreRateLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("Unlimited", func(t *testing.T) {
		store := NewStore(blobstore.NewMemoryStore(), WithRateLimit(rate.Inf, 1))
		for i := range 10 {
			require.NoError(t, store.SaveDense(ctx, fmt.Sprint(i), dense.Of(1)))
		}
	})

	t.Run("DeadlineExceeded", func(t *testing.T) {
		blobs := blobstore.NewMemoryStore()
		store := NewStore(blobs, WithRateLimit(rate.Every(time.Hour), 1))
		require.NoError(t, store.SaveDense(ctx, "first", dense.Of(1)))

		tctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		err := store.SaveDense(tctx, "second", dense.Of(1))
		require.Error(t, err)

		var serr *ErrSnapshot
		assert.True(t, errors.As(err, &serr))
		assert.Equal(t, 1, blobs.Len())
	})
}

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithName("x").WithOp("test")
	logger.LogLoadAll(context.Background(), 3, nil)

	out := buf.String()
	assert.Contains(t, out, "name=x")
	assert.Contains(t, out, "op=test")
	assert.Contains(t, out, "count=3")

	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
	NoopLogger().Info("discarded")
}
