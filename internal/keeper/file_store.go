package keeper

import (
	"clarity/internal/keeper/interfaces"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) interfaces.SnapshotStoreInterface {
	return &FileStore{path: path}
}

func (f *FileStore) Name() string {
	return "file " + f.path
}

// Save replaces the snapshot file atomically: the data goes to a temp file
// that is synced and then renamed over the previous snapshot.
func (f *FileStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}

func (f *FileStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (f *FileStore) Close() error {
	return nil
}
