package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anand7670/portfolio-backend/errs"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	return NewDiskStore(t.TempDir())
}

func saveTestCV(t *testing.T, store *DiskStore, payload []byte) StoredAsset {
	t.Helper()
	asset, err := store.Save(context.Background(), KindCV, "resume.pdf", "application/pdf", int64(len(payload)), bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	return asset
}

func TestDiskStoreSaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("%PDF-1.4 test document")

	asset := saveTestCV(t, store, payload)

	if asset.Filename == "" {
		t.Fatal("expected a generated filename")
	}
	if !strings.HasSuffix(asset.Filename, ".pdf") {
		t.Errorf("expected preserved .pdf extension, got %q", asset.Filename)
	}
	if filepath.Base(filepath.Dir(asset.Path)) != string(KindCV) {
		t.Errorf("expected asset under the cv subdirectory, got %q", asset.Path)
	}

	stream, size, err := store.Open(context.Background(), asset)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer stream.Close()

	if size != int64(len(payload)) {
		t.Errorf("expected size %d, got %d", len(payload), size)
	}

	got, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("reading stream: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("stored bytes do not match the uploaded payload")
	}
}

func TestDiskStoreGeneratesUniqueFilenames(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("%PDF-1.4")

	first := saveTestCV(t, store, payload)
	second := saveTestCV(t, store, payload)

	if first.Filename == second.Filename {
		t.Errorf("expected unique filenames, both were %q", first.Filename)
	}
}

func TestDiskStoreRejectsWrongContentType(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("not a pdf")

	_, err := store.Save(context.Background(), KindCV, "resume.png", "image/png", int64(len(payload)), bytes.NewReader(payload))
	if !errs.IsInvalidFileType(err) {
		t.Errorf("expected invalid file type error for non-PDF CV, got %v", err)
	}

	_, err = store.Save(context.Background(), KindProjectImage, "notes.txt", "text/plain", int64(len(payload)), bytes.NewReader(payload))
	if !errs.IsInvalidFileType(err) {
		t.Errorf("expected invalid file type error for non-image upload, got %v", err)
	}

	// Any image/* subtype is accepted for project images
	_, err = store.Save(context.Background(), KindProjectImage, "shot.webp", "image/webp", int64(len(payload)), bytes.NewReader(payload))
	if err != nil {
		t.Errorf("expected image/webp to be accepted, got %v", err)
	}
}

func TestDiskStoreRejectsOversizedUpload(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(context.Background(), KindCV, "big.pdf", "application/pdf", MaxCVSize+1, bytes.NewReader(nil))
	if !errs.IsFileTooLarge(err) {
		t.Errorf("expected file too large error, got %v", err)
	}

	_, err = store.Save(context.Background(), KindProjectImage, "big.png", "image/png", MaxImageSize+1, bytes.NewReader(nil))
	if !errs.IsFileTooLarge(err) {
		t.Errorf("expected file too large error for image, got %v", err)
	}
}

func TestDiskStoreReplaceRemovesOldBytes(t *testing.T) {
	store := newTestStore(t)
	old := saveTestCV(t, store, []byte("%PDF-1.4 old"))

	payload := []byte("%PDF-1.4 new")
	replacement, err := store.Replace(context.Background(), &old, KindCV, "resume.pdf", "application/pdf", int64(len(payload)), bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}

	if _, err := os.Stat(old.Path); !os.IsNotExist(err) {
		t.Errorf("expected old file to be removed, stat err: %v", err)
	}
	if _, err := os.Stat(replacement.Path); err != nil {
		t.Errorf("expected replacement file to exist: %v", err)
	}
}

func TestDiskStoreReplaceToleratesMissingOld(t *testing.T) {
	store := newTestStore(t)
	old := saveTestCV(t, store, []byte("%PDF-1.4 old"))

	// Simulate drift: bytes already gone before the replace runs
	if err := os.Remove(old.Path); err != nil {
		t.Fatalf("removing old file: %v", err)
	}

	payload := []byte("%PDF-1.4 new")
	if _, err := store.Replace(context.Background(), &old, KindCV, "resume.pdf", "application/pdf", int64(len(payload)), bytes.NewReader(payload)); err != nil {
		t.Fatalf("Replace should tolerate a missing old file, got %v", err)
	}
}

func TestDiskStoreRemoveIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	asset := saveTestCV(t, store, []byte("%PDF-1.4"))

	if err := store.Remove(context.Background(), asset); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := store.Remove(context.Background(), asset); err != nil {
		t.Fatalf("Remove of missing file should be a no-op, got %v", err)
	}
}

func TestDiskStoreOpenMissing(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Open(context.Background(), StoredAsset{Filename: "gone.pdf", Path: filepath.Join(t.TempDir(), "gone.pdf")})
	if !errs.IsAssetNotFound(err) {
		t.Errorf("expected asset not found error, got %v", err)
	}
}
