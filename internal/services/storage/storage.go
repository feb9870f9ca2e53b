package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/annolab/annotator-api/pkg/errors"
)

// ArtifactStore defines the interface for flat-file annotation storage. One
// store manages one directory; filenames are always relative to it.
type ArtifactStore interface {
	// WriteFile writes data to filename, replacing any previous content
	WriteFile(ctx context.Context, filename string, data []byte) error

	// SaveStream streams data into filename and reports the bytes written
	SaveStream(ctx context.Context, filename string, data io.Reader) (int64, error)

	// ReadFile returns the full content of filename
	ReadFile(ctx context.Context, filename string) ([]byte, error)

	// Open opens filename for streaming reads
	Open(ctx context.Context, filename string) (io.ReadCloser, error)

	// Delete removes filename; deleting a missing file is not an error
	Delete(ctx context.Context, filename string) error

	// Exists reports whether filename is present
	Exists(filename string) bool

	// Path returns the full path for filename
	Path(filename string) string

	// List returns the filenames in the store
	List(ctx context.Context) ([]string, error)
}

// LocalArtifactStore implements ArtifactStore on the local filesystem
type LocalArtifactStore struct {
	basePath string
}

// NewLocalArtifactStore creates a filesystem store rooted at basePath
func NewLocalArtifactStore(basePath string) (*LocalArtifactStore, error) {
	// Ensure base path exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	return &LocalArtifactStore{
		basePath: absPath,
	}, nil
}

// WriteFile writes data to filename, replacing any previous content
func (s *LocalArtifactStore) WriteFile(ctx context.Context, filename string, data []byte) error {
	filePath := s.Path(filename)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return apperrors.StorageError(apperrors.ErrCodeStorageWrite, filePath, err)
	}
	return nil
}

// SaveStream streams data into filename
func (s *LocalArtifactStore) SaveStream(ctx context.Context, filename string, data io.Reader) (int64, error) {
	filePath := s.Path(filename)

	file, err := os.Create(filePath)
	if err != nil {
		return 0, apperrors.StorageError(apperrors.ErrCodeStorageWrite, filePath, err)
	}
	defer file.Close()

	written, err := io.Copy(file, data)
	if err != nil {
		os.Remove(filePath) // Clean up on failure
		return 0, apperrors.StorageError(apperrors.ErrCodeStorageWrite, filePath, err)
	}

	return written, nil
}

// ReadFile returns the full content of filename
func (s *LocalArtifactStore) ReadFile(ctx context.Context, filename string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact not found: %s", filename)
		}
		return nil, apperrors.StorageError(apperrors.ErrCodeStorageRead, s.Path(filename), err)
	}
	return data, nil
}

// Open opens filename for streaming reads
func (s *LocalArtifactStore) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	file, err := os.Open(s.Path(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact not found: %s", filename)
		}
		return nil, apperrors.StorageError(apperrors.ErrCodeStorageRead, s.Path(filename), err)
	}
	return file, nil
}

// Delete removes filename from the store
func (s *LocalArtifactStore) Delete(ctx context.Context, filename string) error {
	if err := os.Remove(s.Path(filename)); err != nil && !os.IsNotExist(err) {
		return apperrors.StorageError(apperrors.ErrCodeStorageWrite, s.Path(filename), err)
	}
	return nil
}

// Exists reports whether filename is present
func (s *LocalArtifactStore) Exists(filename string) bool {
	_, err := os.Stat(s.Path(filename))
	return err == nil
}

// Path returns the full path for filename
func (s *LocalArtifactStore) Path(filename string) string {
	return filepath.Join(s.basePath, SanitizeName(filename))
}

// List returns the filenames in the store, directories excluded
func (s *LocalArtifactStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, apperrors.StorageError(apperrors.ErrCodeStorageRead, s.basePath, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// SanitizeName makes a client-supplied filename safe for use inside the
// store: any path component except the last is discarded and problematic
// characters are replaced.
func SanitizeName(name string) string {
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == string(filepath.Separator) {
		return "_"
	}

	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return replacer.Replace(name)
}
