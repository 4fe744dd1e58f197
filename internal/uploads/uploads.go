// Package uploads writes accepted résumé files to durable disk storage.
// Stored names are assigned by the server (uuid plus the original
// extension), so concurrent uploads of identically named files never
// collide and storage naming is decoupled from wall-clock time. The
// original filename and media type survive as metadata on the record.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"formsubmit/internal/models"

	"github.com/google/uuid"
)

// DiskStore saves uploads under a single directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store
// rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the file part to disk and returns its reference. The byte
// size recorded is the number actually written.
func (s *DiskStore) Save(fh *multipart.FileHeader) (*models.FileRef, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	return &models.FileRef{
		Path:         path,
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Size:         written,
	}, nil
}
