// Package reconcile walks the remaining source tree, routes every node
// through the link maps and hands the matches to a Linker.
package reconcile

import (
	"context"

	"github.com/raatiniemi/linker/pkg/linker"
	"github.com/raatiniemi/linker/pkg/linkmap"
	"github.com/raatiniemi/linker/pkg/logging"
	"github.com/raatiniemi/linker/pkg/node"
	"github.com/raatiniemi/linker/pkg/workpool"
)

// Reconciler links nodes matching a router and reports what is left over.
type Reconciler struct {
	router *linkmap.Router
	linker linker.Linker
	pool   *workpool.Pool
}

// New creates a Reconciler. Siblings are processed on pool, which may be nil.
func New(router *linkmap.Router, l linker.Linker, pool *workpool.Pool) *Reconciler {
	return &Reconciler{router: router, linker: l, pool: pool}
}

// Reconcile returns the nodes that are still not linked once every matching
// node has been handed to the linker.
//
// A routed node is attempted as a whole and its children are never looked
// at. A node whose link could not be created is kept as it was. An unrouted
// branch is descended into and kept only while something below it is still
// pending. Output order follows input order.
func (r *Reconciler) Reconcile(ctx context.Context, nodes []node.Node) []node.Node {
	// reconcileNode never fails, the error is only there to satisfy FlatMap.
	out, _ := workpool.FlatMap(r.pool, nodes, func(n node.Node) ([]node.Node, error) {
		if pending, ok := r.reconcileNode(ctx, n); ok {
			return []node.Node{pending}, nil
		}
		return nil, nil
	})
	return out
}

func (r *Reconciler) reconcileNode(ctx context.Context, n node.Node) (node.Node, bool) {
	logger := logging.Component(ctx, "reconcile")

	if link, ok := r.router.Route(n); ok {
		logger.Trace().
			Str("path", node.PathOf(n)).
			Str("link", link.Path).
			Msg("Node matches link map")
		if r.linker.CreateLink(ctx, link) {
			return nil, false
		}
		return n, true
	}

	branch, ok := n.(node.Branch)
	if !ok {
		return n, true
	}

	remaining := r.Reconcile(ctx, branch.Children)
	if len(remaining) == 0 {
		return nil, false
	}
	return node.Branch{Path: branch.Path, Children: remaining}, true
}

// Reconcile is a convenience wrapper around New(router, l, pool).Reconcile.
func Reconcile(ctx context.Context, nodes []node.Node, router *linkmap.Router, l linker.Linker, pool *workpool.Pool) []node.Node {
	return New(router, l, pool).Reconcile(ctx, nodes)
}
