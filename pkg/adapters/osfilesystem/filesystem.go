// Package osfilesystem implements ports.FileSystem on the local disk.
package osfilesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/user/storeshots/pkg/ports"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// FileSystem is the os-backed ports.FileSystem.
type FileSystem struct{}

func New() *FileSystem {
	return &FileSystem{}
}

func (FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes reports and debug artifacts, creating their directory.
func (f FileSystem) WriteFile(path string, data []byte) error {
	if err := f.ensureParent(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, filePerm)
}

func (FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// MkdirTemp creates dir first, so the first asset of a profile can stage
// its PNG before the profile directory exists.
func (FileSystem) MkdirTemp(dir, pattern string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return "", err
		}
	}
	return os.MkdirTemp(dir, pattern)
}

func (FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func (FileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (FileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (FileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Glob matches pattern (doublestar syntax, e.g. "0*.png" or "**/*.png")
// against regular files below root.
func (FileSystem) Glob(root, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	sort.Strings(paths)
	return paths, nil
}

func (FileSystem) ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, dirPerm)
}

var _ ports.FileSystem = (*FileSystem)(nil)
