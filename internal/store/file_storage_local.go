package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
)

const defaultContentType = "application/octet-stream"

// localFileStorage keeps blobs as flat files inside a single directory.
type localFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewLocalFileStorage creates root when missing and returns a [FileStorage]
// writing into it.
func NewLocalFileStorage(root string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		logger.Err(err).Str("func", "NewLocalFileStorage").Str("root", root).Msg("error creating upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	return &localFileStorage{
		root:   root,
		logger: logger,
	}, nil
}

// Save writes content to a temporary file first so readers never observe a
// partially written blob.
func (s *localFileStorage) Save(ctx context.Context, key string, content io.Reader, _ int64, _ string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, content); err != nil {
		tmp.Close()
		logger.FromContext(ctx).Err(err).Str("func", "*localFileStorage.Save").Str("key", key).Msg("error writing file")
		return fmt.Errorf("error writing file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error moving file into place: %w", err)
	}
	return nil
}

func (s *localFileStorage) Open(_ context.Context, key string) (models.Blob, error) {
	path, err := s.path(key)
	if err != nil {
		return models.Blob{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Blob{}, ErrFileNotFound
		}
		return models.Blob{}, fmt.Errorf("error opening file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return models.Blob{}, fmt.Errorf("error reading file info: %w", err)
	}

	return models.Blob{
		Content:     file,
		ContentType: contentTypeOf(key),
		Size:        info.Size(),
	}, nil
}

// Delete is a no-op for keys that are already gone.
func (s *localFileStorage) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting file: %w", err)
	}
	return nil
}

func (s *localFileStorage) path(key string) (string, error) {
	if !validFileKey(key) {
		return "", ErrInvalidFileKey
	}
	return filepath.Join(s.root, key), nil
}

// validFileKey accepts single path elements only.
func validFileKey(key string) bool {
	if key == "" || key == "." || key == ".." || strings.HasPrefix(key, ".") {
		return false
	}
	return !strings.ContainsAny(key, `/\`) && filepath.Base(key) == key
}

func contentTypeOf(key string) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return defaultContentType
}
