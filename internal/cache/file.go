// Package cache implements the backing stores ResultCache reads and writes
// through, plus the ResultCache orchestration logic itself.
//
// FileCacheStore writes to a sibling temp path and renames it into place,
// so a reader never observes a partially written file. Concurrent writes of
// the same key are safe because every writer computes an identical blob for
// a given key and os.Rename is atomic within a filesystem; the last rename
// to land simply wins with no torn state.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rhymetrace/rhymecore/common"
)

// FileCacheStore persists cache blobs as one `<key>.json` file per entry
// under Dir.
type FileCacheStore struct {
	Dir string
}

func NewFileCacheStore(dir string) *FileCacheStore {
	return &FileCacheStore{Dir: dir}
}

func (f *FileCacheStore) Get(key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: reading %s: %w", key, err)
	}
	return blob, true, nil
}

func (f *FileCacheStore) Put(key string, blob []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("cache: creating %s: %w", f.Dir, err)
	}

	final := f.path(key)

	tmpFile, err := os.CreateTemp(f.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("cache: creating temp file for %s: %w", key, err)
	}
	tmp := tmpFile.Name()

	_, writeErr := tmpFile.Write(blob)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cache: writing temp file for %s: %w", key, writeErr)
	}
	if closeErr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cache: closing temp file for %s: %w", key, closeErr)
	}

	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cache: renaming temp file for %s: %w", key, err)
	}
	return nil
}

func (f *FileCacheStore) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

var _ common.CacheStore = (*FileCacheStore)(nil)
var _ common.CacheStore = (*MemoryCacheStore)(nil)
