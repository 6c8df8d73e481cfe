package object

import (
	"context"
	"io"
)

// ObjectStore stages uploaded binaries before extraction. Staged objects
// are short-lived: callers delete them once the text has been pulled out.
type ObjectStore interface {
	Save(ctx context.Context, userId string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}
