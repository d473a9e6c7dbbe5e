package tables

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// FileReader abstracts where the source tables are read from.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
	// Location describes the source for error messages.
	Location(name string) string
}

// FSReader reads tables from an fs.FS such as the embedded data.
type FSReader struct {
	FS  fs.FS
	Dir string
}

// ReadFile implements FileReader.
func (r *FSReader) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(r.FS, path.Join(r.Dir, name))
}

// Location implements FileReader.
func (r *FSReader) Location(name string) string {
	return "embedded:" + path.Join(r.Dir, name)
}

// FilesystemReader reads tables from a directory on disk.
type FilesystemReader struct {
	BasePath string
}

// ReadFile implements FileReader.
func (r *FilesystemReader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(r.Location(name))
}

// Location implements FileReader.
func (r *FilesystemReader) Location(name string) string {
	return filepath.Join(r.BasePath, name)
}
