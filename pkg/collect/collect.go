// Package collect snapshots a directory subtree into a node tree.
package collect

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/raatiniemi/linker/pkg/errors"
	"github.com/raatiniemi/linker/pkg/filesystem"
	"github.com/raatiniemi/linker/pkg/logging"
	"github.com/raatiniemi/linker/pkg/node"
	"github.com/raatiniemi/linker/pkg/workpool"
)

// Collector walks directories and builds node trees. Sibling entries are
// classified in parallel on the collector's pool.
type Collector struct {
	fs   filesystem.FS
	pool *workpool.Pool
}

// New creates a Collector. A nil pool collects sequentially.
func New(fsys filesystem.FS, pool *workpool.Pool) *Collector {
	return &Collector{fs: fsys, pool: pool}
}

// Collect lists the entries of path and returns them as nodes, recursing
// into directories. Each level is sorted using the canonical node ordering.
//
// An unreadable directory is logged and yields no nodes. An entry that
// disappears before it can be inspected is skipped. Any other metadata or
// link resolution failure is returned and aborts the collection.
func (c *Collector) Collect(ctx context.Context, path string) ([]node.Node, error) {
	logger := logging.Component(ctx, "collect")

	entries, err := c.fs.ReadDir(path)
	if err != nil {
		if len(entries) == 0 {
			logger.Warn().Err(err).Str("path", path).Msg("Unable to read directory")
			return nil, nil
		}
		logger.Warn().Err(err).Str("path", path).Int("entries", len(entries)).
			Msg("Unable to read every entry in directory")
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(path, entry.Name()))
	}

	nodes, err := workpool.FlatMap(c.pool, paths, func(p string) ([]node.Node, error) {
		return c.transform(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	node.Sort(nodes)
	logger.Trace().Str("path", path).Int("nodes", len(nodes)).Msg("Collected directory")
	return nodes, nil
}

func (c *Collector) transform(ctx context.Context, path string) ([]node.Node, error) {
	info, err := c.fs.Lstat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger := logging.Component(ctx, "collect")
			logger.Warn().Err(err).Str("path", path).Msg("Unable to handle entry")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrMetadata, "unable to read metadata on %s", path).
			WithDetail("path", path)
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		source, err := c.canonicalReferent(path)
		if err != nil {
			return nil, err
		}
		return []node.Node{node.Link{Path: path, Source: source}}, nil
	case info.IsDir():
		children, err := c.Collect(ctx, path)
		if err != nil {
			return nil, err
		}
		return []node.Node{node.Branch{Path: path, Children: children}}, nil
	default:
		return []node.Node{node.Leaf{Path: path}}, nil
	}
}

// canonicalReferent resolves the link at path to the absolute, symlink-free
// path it refers to. Relative link text is resolved against the link's
// parent directory.
func (c *Collector) canonicalReferent(path string) (string, error) {
	raw, err := c.fs.Readlink(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLinkResolve, "unable to read link %s", path).
			WithDetail("path", path)
	}

	if !filepath.IsAbs(raw) {
		raw = filepath.Join(filepath.Dir(path), raw)
	}

	source, err := c.fs.EvalSymlinks(raw)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLinkResolve, "unable to read canonical path for %s", path).
			WithDetail("path", path).
			WithDetail("referent", raw)
	}
	return source, nil
}
