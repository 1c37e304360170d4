// Package storage implements the profile photo store on the local
// filesystem, mirroring the original clinic's web/images directory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore persists profile images under a single directory. Stored
// references are bare file names, never paths, so a reference can be served
// statically and safely joined back.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the backing directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("photo store: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Store writes the image under a generated name, keeping only the original
// extension. Returns the stored reference.
func (s *DiskStore) Store(_ context.Context, originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}
	return name, nil
}

// Delete removes a stored image. A reference that is already gone is not an
// error; anything resembling a path traversal is rejected.
func (s *DiskStore) Delete(_ context.Context, ref string) error {
	if ref == "" || ref != filepath.Base(ref) {
		return fmt.Errorf("delete photo: invalid reference %q", ref)
	}

	err := os.Remove(filepath.Join(s.dir, ref))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
