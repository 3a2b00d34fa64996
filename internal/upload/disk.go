// Package upload persists multipart file parts to local disk before a
// submission row references them. Files are served back through the
// static /uploads mount, so locators stay relative to the server root.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"
)

// PublicPrefix is where the static file server mounts the upload
// directory; locators are built against it, not the physical dir.
const PublicPrefix = "uploads"

type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStorage{dir: dir}, nil
}

// Save writes one uploaded part under a name derived from the current
// time plus the original filename and returns its storage-relative
// locator, e.g. "uploads/1735689600000-notes.pdf".
func (s *DiskStorage) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Base strips any directory components a client may smuggle in.
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join(PublicPrefix, name), nil
}

// SaveAll persists every part in order and returns the locators in the
// same order. On failure the already-written files are left on disk;
// nothing references them and the caller reports the error.
func (s *DiskStorage) SaveAll(fhs []*multipart.FileHeader) ([]string, error) {
	locators := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		locator, err := s.Save(fh)
		if err != nil {
			return nil, err
		}
		locators = append(locators, locator)
	}
	return locators, nil
}
