package core

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/raatiniemi/linker/pkg/collect"
	"github.com/raatiniemi/linker/pkg/config"
	"github.com/raatiniemi/linker/pkg/differ"
	"github.com/raatiniemi/linker/pkg/errors"
	"github.com/raatiniemi/linker/pkg/filesystem"
	"github.com/raatiniemi/linker/pkg/filter"
	"github.com/raatiniemi/linker/pkg/linker"
	"github.com/raatiniemi/linker/pkg/linkmap"
	"github.com/raatiniemi/linker/pkg/logging"
	"github.com/raatiniemi/linker/pkg/node"
	"github.com/raatiniemi/linker/pkg/reconcile"
	"github.com/raatiniemi/linker/pkg/workpool"
	"golang.org/x/sync/errgroup"
)

// Options controls a single run
type Options struct {
	// DryRun logs the links that would be created without touching the
	// filesystem.
	DryRun bool
	// Workers bounds parallel work. Zero uses GOMAXPROCS, one is sequential.
	Workers int
	// FS defaults to the OS filesystem.
	FS filesystem.FS
}

// Result is the outcome of a run
type Result struct {
	// Pending holds the source entries still not linked.
	Pending []node.Node
	// Linked holds the links created, or in dry-run the links that would be.
	Linked []node.Link
	DryRun bool
}

// Run reconciles cfg.Targets against cfg.Source.
//
// Configuration and link resolution failures are returned. Failing to
// create an individual link is not an error; the entry stays pending.
func Run(ctx context.Context, cfg *config.Configuration, opts Options) (*Result, error) {
	logger := logging.Component(ctx, "core")

	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router, err := linkmap.Compile(cfg.LinkMaps)
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	pool := workpool.New(opts.Workers)
	collector := collect.New(fsys, pool)

	logger.Info().
		Str("source", cfg.Source).
		Strs("targets", cfg.Targets).
		Bool("dryRun", opts.DryRun).
		Int("linkMaps", len(cfg.LinkMaps)).
		Msg("Starting reconciliation")

	sources, err := collectSources(ctx, fsys, collector, cfg.Source, cfg.Excludes)
	if err != nil {
		return nil, err
	}

	links, err := collectTargets(ctx, collector, cfg.Targets)
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(logger, "filter")
	remaining := differ.Remaining(sources, links)
	done()

	logger.Debug().
		Int("sources", len(sources)).
		Int("links", len(links)).
		Int("remaining", len(remaining)).
		Msg("Computed entries not yet linked")

	var strategy linker.Linker = linker.NewSymlinker(fsys)
	if opts.DryRun {
		strategy = linker.NewDryRun()
	}
	recorder := linker.Record(strategy)

	done = logging.LogOperationStart(logger, "link_nodes_matching_link_maps")
	pending := reconcile.Reconcile(ctx, remaining, router, recorder, pool)
	done()

	pending = node.Sorted(pending)
	result := &Result{
		Pending: pending,
		Linked:  recorder.Linked(),
		DryRun:  opts.DryRun,
	}

	logger.Info().
		Int("linked", len(result.Linked)).
		Int("pending", len(result.Pending)).
		Msg("Reconciliation completed")

	return result, nil
}

func collectSources(ctx context.Context, fsys filesystem.FS, collector *collect.Collector, source string, excludes []string) ([]node.Node, error) {
	logger := logging.Component(ctx, "core")
	defer logging.LogOperationStart(logger, "collect_and_filter_source_nodes")()

	root, err := canonicalRoot(fsys, source)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("source", root).Msg("Collecting source nodes")

	nodes, err := collector.Collect(ctx, root)
	if err != nil {
		return nil, err
	}
	return filter.ExcludeFrom(nodes, excludes), nil
}

func collectTargets(ctx context.Context, collector *collect.Collector, targets []string) ([]node.Node, error) {
	logger := logging.Component(ctx, "core")
	defer logging.LogOperationStart(logger, "collect_and_filter_target_nodes")()

	perTarget := make([][]node.Node, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			logger.Debug().Str("target", target).Msg("Collecting target nodes")
			nodes, err := collector.Collect(gctx, target)
			if err != nil {
				return err
			}
			perTarget[i] = filter.LinksOnly(nodes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var links []node.Node
	for _, l := range perTarget {
		links = append(links, l...)
	}
	return node.Sorted(links), nil
}

// canonicalRoot makes source absolute and resolves its symlinks, so source
// paths compare equal to the canonical referents of existing links. A source
// that does not exist is left as is and collects as empty.
func canonicalRoot(fsys filesystem.FS, source string) (string, error) {
	abs, err := filepath.Abs(source)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "unable to resolve source %s", source)
	}

	resolved, err := fsys.EvalSymlinks(abs)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return abs, nil
		}
		return "", errors.Wrapf(err, errors.ErrLinkResolve, "unable to resolve source %s", source).
			WithDetail("path", abs)
	}
	return resolved, nil
}
