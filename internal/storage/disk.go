package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskStore persists uploaded file content as named blobs under a public
// static-asset directory. Stored names carry a millisecond timestamp prefix so
// repeated uploads of the same file name do not collide.
type DiskStore struct {
	dir      string
	basePath string
}

// NewDiskStore creates a disk store rooted at dir, serving files under basePath
func NewDiskStore(dir, basePath string) *DiskStore {
	return &DiskStore{
		dir:      dir,
		basePath: strings.TrimSuffix(basePath, "/"),
	}
}

// EnsureDir creates the blob directory if it does not exist
func (s *DiskStore) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Dir returns the blob directory, for wiring the static file route
func (s *DiskStore) Dir() string {
	return s.dir
}

// BasePath returns the URL path prefix files are served under
func (s *DiskStore) BasePath() string {
	return s.basePath
}

// Save writes content under a storage-unique name derived from originalName and
// returns the URL the blob is addressable by.
func (s *DiskStore) Save(originalName string, content []byte) (string, error) {
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
	if err := os.WriteFile(filepath.Join(s.dir, storedName), content, 0o644); err != nil {
		return "", err
	}
	return s.basePath + "/" + storedName, nil
}

// Remove deletes the blob a previously returned URL points at
func (s *DiskStore) Remove(fileURL string) error {
	storedName := strings.TrimPrefix(fileURL, s.basePath+"/")
	return os.Remove(filepath.Join(s.dir, filepath.Base(storedName)))
}
