package testutil

import (
	"io/fs"
	"sync"

	"github.com/raatiniemi/linker/pkg/filesystem"
)

// Op names a filesystem operation FaultFS can fail.
type Op string

const (
	OpLstat        Op = "lstat"
	OpReadDir      Op = "readdir"
	OpReadlink     Op = "readlink"
	OpEvalSymlinks Op = "evalsymlinks"
	OpSymlink      Op = "symlink"
	OpMkdir        Op = "mkdir"
)

type fault struct {
	op   Op
	path string
}

// FaultFS delegates to another FS and returns injected errors for chosen
// (operation, path) pairs. It also counts calls per operation.
type FaultFS struct {
	filesystem.FS

	mu     sync.Mutex
	faults map[fault]error
	calls  map[Op]int
}

// NewFaultFS wraps fsys, usually filesystem.NewOS().
func NewFaultFS(fsys filesystem.FS) *FaultFS {
	return &FaultFS{
		FS:     fsys,
		faults: make(map[fault]error),
		calls:  make(map[Op]int),
	}
}

// Fail makes op on path return err.
func (f *FaultFS) Fail(op Op, path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[fault{op: op, path: path}] = err
	return f
}

// Calls returns how many times op was invoked.
func (f *FaultFS) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FaultFS) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.faults[fault{op: op, path: path}]
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	if err := f.check(OpReadlink, name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultFS) EvalSymlinks(path string) (string, error) {
	if err := f.check(OpEvalSymlinks, path); err != nil {
		return "", err
	}
	return f.FS.EvalSymlinks(path)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err := f.check(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultFS) Mkdir(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdir, path); err != nil {
		return err
	}
	return f.FS.Mkdir(path, perm)
}

var _ filesystem.FS = (*FaultFS)(nil)
