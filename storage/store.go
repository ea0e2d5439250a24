package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/anand7670/portfolio-backend/errs"
)

// Kind distinguishes the two asset classes and selects the storage
// subdirectory, the accepted content-type class and the size ceiling.
type Kind string

const (
	KindCV           Kind = "cv"
	KindProjectImage Kind = "projects"
)

// Upload limits per asset kind
const (
	MaxCVSize          = 10 << 20 // 10 MiB
	MaxImageSize       = 5 << 20  // 5 MiB per image
	MaxImagesPerUpload = 5
)

// StoredAsset references a persisted binary file. Filename is unique per
// upload; Path locates the backing bytes within the store.
type StoredAsset struct {
	Filename string
	Path     string
}

// Store persists uploaded binaries independent of HTTP. Implementations do
// best-effort cleanup: Remove of missing bytes is a no-op, and Replace never
// fails because the old file is already gone.
type Store interface {
	// Save validates the upload against the kind's content-type class and
	// size ceiling and writes it under a collision-resistant generated name.
	Save(ctx context.Context, kind Kind, originalName, contentType string, size int64, r io.Reader) (StoredAsset, error)

	// Replace stores the new asset first, then removes the old one's backing
	// bytes if it existed. A missing old file is not an error.
	Replace(ctx context.Context, old *StoredAsset, kind Kind, originalName, contentType string, size int64, r io.Reader) (StoredAsset, error)

	// Remove deletes the backing bytes. Missing bytes are a silent no-op.
	Remove(ctx context.Context, asset StoredAsset) error

	// Open returns a sequential read stream and the byte length. The caller
	// is responsible for transfer metadata (content type, disposition).
	Open(ctx context.Context, asset StoredAsset) (io.ReadCloser, int64, error)
}

// sizeLimit returns the byte ceiling for a kind
func sizeLimit(kind Kind) int64 {
	if kind == KindCV {
		return MaxCVSize
	}
	return MaxImageSize
}

// validateUpload enforces the content-type class and size ceiling for a kind
func validateUpload(kind Kind, contentType string, size int64) error {
	switch kind {
	case KindCV:
		if contentType != "application/pdf" {
			return errs.NewInvalidFileTypeError(contentType, "application/pdf")
		}
	default:
		if !strings.HasPrefix(contentType, "image/") {
			return errs.NewInvalidFileTypeError(contentType, "image/*")
		}
	}

	if limit := sizeLimit(kind); size > limit {
		return errs.NewFileTooLargeError(size, limit)
	}
	return nil
}

// newFilename generates a collision-resistant name: millisecond timestamp
// plus a random suffix, preserving the original extension.
func newFilename(kind Kind, originalName string) string {
	prefix := "project"
	if kind == KindCV {
		prefix = "cv"
	}
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s-%d-%d%s", prefix, time.Now().UnixMilli(), rand.Int64N(1_000_000_000), ext)
}
