package minio

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kcluster/blobstore"
)

func TestStore_Keys(t *testing.T) {
	s := &Store{prefix: "datasets/"}

	assert.Equal(t, "datasets/a.txt", s.key("a.txt"))
	assert.Equal(t, "datasets/sub/a.txt", s.key("sub/a.txt"))
	assert.Equal(t, "sub/a.txt", s.name("datasets/sub/a.txt"))

	bare := &Store{}
	assert.Equal(t, "a.txt", bare.key("a.txt"))
	assert.Equal(t, "a.txt", bare.name("a.txt"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := os.Getenv("KCLUSTER_TEST_MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}
	bucket := "test-kcluster"

	store, err := New(Config{
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    bucket,
		Prefix:    "test-prefix/",
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := store.client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("2 1\n0\n1\n9\n10\n")
	require.NoError(t, store.Put(ctx, "points.txt", data))

	blob, err := store.Open(ctx, "points.txt")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, len(data))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, buf)

	tail := make([]byte, 10)
	n, err = blob.ReadAt(ctx, tail, int64(len(data)-3))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "10\n", string(tail[:n]))
	require.NoError(t, blob.Close())

	got, err := blobstore.ReadAll(ctx, store, "points.txt")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "points.txt")

	require.NoError(t, store.Delete(ctx, "points.txt"))
	_, err = store.Open(ctx, "points.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
