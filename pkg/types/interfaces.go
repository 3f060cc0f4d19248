package types

import (
	"io/fs"
)

// FS is the filesystem interface required for imprint operations.
// Production code uses the OS implementation; tests may substitute an
// in-memory one.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Tree mutations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat may fall back to Stat on filesystems without symlink support
	Lstat(name string) (fs.FileInfo, error)
}
