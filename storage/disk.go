package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anand7670/portfolio-backend/errs"
)

// DiskStore keeps assets on the local filesystem under a base directory,
// one subdirectory per kind.
type DiskStore struct {
	baseDir string
	logger  zerolog.Logger
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{
		baseDir: baseDir,
		logger:  log.With().Str("component", "diskStore").Logger(),
	}
}

func (s *DiskStore) Save(ctx context.Context, kind Kind, originalName, contentType string, size int64, r io.Reader) (StoredAsset, error) {
	if err := validateUpload(kind, contentType, size); err != nil {
		return StoredAsset{}, err
	}

	dir := filepath.Join(s.baseDir, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return StoredAsset{}, errs.NewInternalErrorWithCause("failed to create upload directory", err)
	}

	filename := newFilename(kind, originalName)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return StoredAsset{}, errs.NewInternalErrorWithCause("failed to create asset file", err)
	}

	// The declared size already passed validation; the limit guards against
	// a reader that delivers more bytes than declared.
	limit := sizeLimit(kind)
	written, err := io.Copy(f, io.LimitReader(r, limit+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return StoredAsset{}, errs.NewInternalErrorWithCause("failed to write asset file", err)
	}
	if written > limit {
		os.Remove(path)
		return StoredAsset{}, errs.NewFileTooLargeError(written, limit)
	}

	return StoredAsset{Filename: filename, Path: path}, nil
}

func (s *DiskStore) Replace(ctx context.Context, old *StoredAsset, kind Kind, originalName, contentType string, size int64, r io.Reader) (StoredAsset, error) {
	asset, err := s.Save(ctx, kind, originalName, contentType, size, r)
	if err != nil {
		return StoredAsset{}, err
	}

	if old != nil && old.Path != "" {
		if err := s.Remove(ctx, *old); err != nil {
			// Stale bytes are tolerated; the new asset already landed.
			s.logger.Warn().Err(err).Str("path", old.Path).Msg("failed to remove replaced asset")
		}
	}

	return asset, nil
}

func (s *DiskStore) Remove(ctx context.Context, asset StoredAsset) error {
	if err := os.Remove(asset.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *DiskStore) Open(ctx context.Context, asset StoredAsset) (io.ReadCloser, int64, error) {
	info, err := os.Stat(asset.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errs.NewAssetNotFoundError(asset.Filename)
		}
		return nil, 0, err
	}

	f, err := os.Open(asset.Path)
	if err != nil {
		return nil, 0, err
	}
	return f, info.Size(), nil
}
