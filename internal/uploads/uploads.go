// Package uploads persists incoming files to a flat local directory. Stored
// names are "<epoch-millis>-<original name>", which keeps them unique in
// practice and doubles as the public photo id.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes uploaded files into a single directory.
type Store struct {
	dir string
}

// New ensures the upload directory exists (creating parents as needed) and
// returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the upload root, for static file serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save copies r into a new file named after the current time and the client's
// original filename, and returns the generated name. A partial file left by a
// failed copy is removed best-effort.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", filename, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close %s: %w", filename, err)
	}

	return filename, nil
}

// Remove deletes a stored file. Used to clean up when the photo record cannot
// be persisted after the file was written.
func (s *Store) Remove(filename string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}

// sanitizeName strips any path components from the client-supplied filename.
// An empty or unusable name is replaced with a random one.
func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return uuid.NewString()
	}
	return name
}
