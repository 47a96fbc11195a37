package filesystem

import (
	"io/fs"
)

// FS is the set of filesystem operations a run depends on
type FS interface {
	// Lstat returns file info without following a final symlink
	Lstat(name string) (fs.FileInfo, error)
	// ReadDir lists the entries of a directory, possibly alongside an error
	// when only part of the directory could be read
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Readlink(name string) (string, error)
	EvalSymlinks(path string) (string, error)
	Symlink(oldname, newname string) error

	// Mkdir creates a single directory level
	Mkdir(path string, perm fs.FileMode) error
}
