package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage relocates uploads into a configured directory under a fresh
// unique name, preserving the extension inferred from the sniffed type.
type LocalStorage struct {
	dir string
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates the uploads directory if needed.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Store writes the upload to the uploads directory and returns the stored
// path, recorded verbatim on the content record.
func (s *LocalStorage) Store(_ context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mtype, err := detectMediaType(src)
	if err != nil {
		return "", err
	}

	name := uuid.New().String() + mtype.Extension()
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write media file: %w", err)
	}
	return path, nil
}
