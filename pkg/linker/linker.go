// Package linker materializes routed links.
//
// A Linker is the strategy the reconciler uses for every candidate link:
// Symlinker touches the filesystem, DryRun only logs what it would do.
// Both report a plain success flag; failures never abort a run.
package linker

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/raatiniemi/linker/pkg/errors"
	"github.com/raatiniemi/linker/pkg/filesystem"
	"github.com/raatiniemi/linker/pkg/logging"
	"github.com/raatiniemi/linker/pkg/node"
)

// Linker creates the link described by a candidate.
type Linker interface {
	CreateLink(ctx context.Context, link node.Link) bool
}

// Func adapts a function to the Linker interface.
type Func func(ctx context.Context, link node.Link) bool

func (f Func) CreateLink(ctx context.Context, link node.Link) bool {
	return f(ctx, link)
}

// Symlinker creates symbolic links on a filesystem.
type Symlinker struct {
	fs filesystem.FS
}

// NewSymlinker creates a Symlinker backed by fsys.
func NewSymlinker(fsys filesystem.FS) *Symlinker {
	return &Symlinker{fs: fsys}
}

// CreateLink creates the parent directory of link.Path when it is missing,
// a single level only, and then the symbolic link itself. Every failure is
// logged and reported as false.
func (s *Symlinker) CreateLink(ctx context.Context, link node.Link) bool {
	logger := logging.Component(ctx, "linker")

	if err := s.createLink(ctx, link); err != nil {
		logger.Warn().Err(err).
			Str("link", link.Path).
			Str("source", link.Source).
			Msgf("Unable to link %s -> %s", link.Path, link.Source)
		return false
	}

	logger.Info().
		Str("link", link.Path).
		Str("source", link.Source).
		Msgf("Symbolic link %s -> %s was successfully created", link.Path, link.Source)
	return true
}

func (s *Symlinker) createLink(ctx context.Context, link node.Link) error {
	logger := logging.Component(ctx, "linker")

	parent := filepath.Dir(link.Path)
	if link.Path == "" || parent == link.Path {
		return errors.Newf(errors.ErrParentDir, "unable to get parent directory from path %q", link.Path)
	}

	logger.Debug().Str("path", parent).Msg("Check if path exists")
	if _, err := s.fs.Lstat(parent); err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrParentDir, "unable to inspect directory %s", parent)
		}

		logger.Debug().Str("path", parent).Msg("Path does not exist, creating")
		// Siblings may race on the same parent; losing that race is fine.
		if err := s.fs.Mkdir(parent, 0755); err != nil && !stderrors.Is(err, fs.ErrExist) {
			return errors.Wrapf(err, errors.ErrDirCreate, "unable to create directory for %s", parent).
				WithDetail("path", parent)
		}
	}

	logger.Debug().Msgf("Creating symbolic link %s -> %s", link.Path, link.Source)
	if err := s.fs.Symlink(link.Source, link.Path); err != nil {
		return errors.Wrap(err, errors.ErrSymlinkCreate, "unable to create symlink").
			WithDetail("link", link.Path).
			WithDetail("source", link.Source)
	}
	return nil
}

// DryRun logs the links it is asked to create and reports them as created.
type DryRun struct{}

// NewDryRun creates a DryRun linker.
func NewDryRun() DryRun {
	return DryRun{}
}

func (DryRun) CreateLink(ctx context.Context, link node.Link) bool {
	logger := logging.Component(ctx, "linker")
	logger.Info().
		Str("link", link.Path).
		Str("source", link.Source).
		Bool("dryRun", true).
		Msgf("Creating symbolic link %s -> %s", link.Path, link.Source)
	return true
}

// Recorder wraps a Linker and remembers every link it reported as created.
type Recorder struct {
	next Linker

	mu     sync.Mutex
	linked []node.Link
}

// Record wraps next.
func Record(next Linker) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) CreateLink(ctx context.Context, link node.Link) bool {
	if !r.next.CreateLink(ctx, link) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.linked = append(r.linked, link)
	return true
}

// Linked returns the recorded links in canonical order.
func (r *Recorder) Linked() []node.Link {
	r.mu.Lock()
	nodes := make([]node.Node, 0, len(r.linked))
	for _, l := range r.linked {
		nodes = append(nodes, l)
	}
	r.mu.Unlock()

	node.Sort(nodes)
	out := make([]node.Link, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.(node.Link))
	}
	return out
}

var (
	_ Linker = (*Symlinker)(nil)
	_ Linker = DryRun{}
	_ Linker = (*Recorder)(nil)
	_ Linker = Func(nil)
)
