package resource

import (
	"context"

	"github.com/hupe1980/kcluster/blobstore"
)

// ThrottleStore wraps store so that every blob read waits on the controller's
// IO limiter first. Writes are not throttled.
func ThrottleStore(store blobstore.BlobStore, rc *Controller) blobstore.BlobStore {
	if rc == nil || rc.ioLimiter == nil {
		return store
	}
	return &throttledStore{BlobStore: store, rc: rc}
}

type throttledStore struct {
	blobstore.BlobStore
	rc *Controller
}

func (s *throttledStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	b, err := s.BlobStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{Blob: b, rc: s.rc}, nil
}

// throttledBlob hides Mappable so that readers go through ReadAt.
type throttledBlob struct {
	blobstore.Blob
	rc *Controller
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	n := int64(len(p))
	if remaining := b.Size() - off; remaining < n {
		n = max(remaining, 0)
	}
	if err := b.rc.AcquireIO(ctx, int(n)); err != nil {
		return 0, err
	}
	return b.Blob.ReadAt(ctx, p, off)
}
