package ports

// FileSystem is the file access the pipeline needs: reading screenshots and
// overlays, publishing PNGs through a temp directory, and discovering
// screenshots by pattern.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)

	// WriteFile creates missing parent directories.
	WriteFile(path string, data []byte) error
	MkdirAll(path string) error

	// MkdirTemp creates a scratch directory inside dir, next to the final
	// output, so that Rename stays on one volume.
	MkdirTemp(dir, pattern string) (string, error)
	// Rename replaces newPath if it exists.
	Rename(oldPath, newPath string) error
	Remove(path string) error
	RemoveAll(path string) error

	Exists(path string) (bool, error)

	// Glob lists regular files under root matching a doublestar pattern
	// such as "0*.png", joined with root and sorted by name.
	Glob(root, pattern string) ([]string, error)
}
