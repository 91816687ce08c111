package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrTooLarge = errors.New("file exceeds the size limit")

// StoredFile identifies a persisted upload. Id doubles as the stored
// filename so lookups never need an index.
type StoredFile struct {
	Id   string
	Path string
	Size int64
}

// Store persists uploads under one directory with collision-free
// names. Writes go to a temp file first and land with a rename, so a
// crashed upload never leaves a half-written file behind.
type Store struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Save(originalFilename string, r io.Reader) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	id := uuid.NewString() + ext
	finalPath := filepath.Join(s.dir, id)
	tmpPath := finalPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("write upload: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(tmpPath)
		return nil, ErrTooLarge
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("finalize upload: %w", err)
	}

	return &StoredFile{Id: id, Path: finalPath, Size: written}, nil
}

func (s *Store) Remove(path string) error {
	// Refuse paths outside the store directory.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir, err := filepath.Abs(s.dir)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(abs, dir+string(os.PathSeparator)) {
		return fmt.Errorf("path %s is outside the upload dir", path)
	}
	return os.Remove(abs)
}
