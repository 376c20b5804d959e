package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/scribble/internal/concurrency"
	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/utils"
)

// FileStore keeps each collection in <dir>/<collection>.json. Reads and
// writes of the same collection never overlap within a process.
type FileStore struct {
	dir   string
	locks *concurrency.LockManager[domain.CollectionID]
}

// NewFileStore creates a FileStore rooted at dir. The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, locks: concurrency.NewLockManager[domain.CollectionID]()}
}

// Dir returns the data directory
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the backing file path for a collection
func (s *FileStore) Path(id domain.CollectionID) string {
	return filepath.Join(s.dir, id.FileName())
}

// Read returns the raw collection file, or ErrBlobNotFound if it does not exist
func (s *FileStore) Read(_ context.Context, id domain.CollectionID) ([]byte, error) {
	defer s.locks.Lock(id)()

	data, err := os.ReadFile(s.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCollectionFailed, id, err)
	}
	return data, nil
}

// Write replaces the collection file via temp file and rename
func (s *FileStore) Write(_ context.Context, id domain.CollectionID, data []byte) error {
	defer s.locks.Lock(id)()

	if err := utils.WriteFileAtomic(s.Path(id), data); err != nil {
		return fmt.Errorf(ErrMsgWriteCollectionFailed, id, err)
	}
	return nil
}
