package imagestore

import (
	"context"
	"io"
)

// ImageStore keeps the uploaded crop photos. The storage key doubles as the
// public path component of the scan's image_url.
type ImageStore interface {
	Save(ctx context.Context, mimeType string, r io.Reader) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, storageKey string) error
}
