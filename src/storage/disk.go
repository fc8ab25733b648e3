package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

// DiskStore is a flat filename -> bytes mapping under a single directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating upload dir: %v", m.ErrStorage, err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Put(ctx context.Context, suggestedName string, data []byte) (string, error) {
	name := storedName(suggestedName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: writing image: %v", m.ErrStorage, err)
	}
	return name, nil
}

func (s *DiskStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	// The name comes straight from the URL path; never let it escape the dir.
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(storedName)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, m.ErrNotFound
		}
		return nil, fmt.Errorf("%w: opening image: %v", m.ErrStorage, err)
	}
	return f, nil
}

func (s *DiskStore) Remove(ctx context.Context, storedName string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(storedName)))
	if err != nil {
		if os.IsNotExist(err) {
			return m.ErrNotFound
		}
		return fmt.Errorf("%w: removing image: %v", m.ErrStorage, err)
	}
	return nil
}
