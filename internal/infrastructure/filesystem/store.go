package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// removeFile is swapped in tests to exercise unlink failures.
var removeFile = os.Remove

// Store manages scoped temporary conversion artifacts.
type Store struct {
	TmpDir string
}

// NewStore creates a filesystem adapter rooted at tmpDir. Empty tmpDir
// falls back to the OS temp directory.
func NewStore(tmpDir string) *Store {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &Store{TmpDir: tmpDir}
}

// EnsureDir creates the artifact root used by the pipeline.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.TmpDir, 0o755)
}

// TempPath returns the artifact location for a unique file name.
func (s *Store) TempPath(fileName string) string {
	return filepath.Join(s.TmpDir, fileName)
}

// Collect reads the whole artifact into memory and deletes it. Deletion
// is attempted whether or not the read succeeded; a deletion failure
// after a successful read is an error, since the artifact would
// otherwise outlive the invocation unnoticed.
func (s *Store) Collect(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if removeErr := s.Remove(path); removeErr != nil && err == nil {
		return nil, fmt.Errorf("temp artifact cleanup failed: %w", removeErr)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Remove deletes the artifact if it exists.
func (s *Store) Remove(path string) error {
	err := removeFile(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
