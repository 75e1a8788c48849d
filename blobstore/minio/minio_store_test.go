package minio

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/blobstore"
)

func TestKey(t *testing.T) {
	s := NewStore(nil, "bucket", "bitsets/")
	assert.Equal(t, "bitsets/a/b.bvs", s.key("a/b.bvs"))
	assert.Equal(t, "bitsets", s.key(""))

	s = NewStore(nil, "bucket", "")
	assert.Equal(t, "x", s.key("x"))
}

func TestRejectsInvalidName(t *testing.T) {
	s := NewStore(nil, "bucket", "")
	ctx := context.Background()
	for _, name := range []string{"../x", "/abs", ""} {
		assert.ErrorIs(t, s.Put(ctx, name, nil), blobstore.ErrInvalidName, name)
		_, err := s.Get(ctx, name)
		assert.ErrorIs(t, err, blobstore.ErrInvalidName, name)
		assert.ErrorIs(t, s.Delete(ctx, name), blobstore.ErrInvalidName, name)
	}
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	bucket := "test-bitvec"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, fmt.Sprintf("run-%d/", time.Now().UnixNano()))

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "sets/a.bvs", data))

	got, err := store.Get(ctx, "sets/a.bvs")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "sets/")
	require.NoError(t, err)
	assert.Equal(t, []string{"sets/a.bvs"}, names)

	require.NoError(t, store.Delete(ctx, "sets/a.bvs"))
	_, err = store.Get(ctx, "sets/a.bvs")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
