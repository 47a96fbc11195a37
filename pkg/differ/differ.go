// Package differ removes source entries that an existing target link
// already mirrors.
package differ

import "github.com/raatiniemi/linker/pkg/node"

// Remaining returns the part of sources not yet mirrored by one of links.
//
// A node is mirrored when its identity (the referent for a Link, its own
// path otherwise) is the referent of an existing link; it is then dropped
// without looking at its children. A non-empty branch whose children are all
// mirrored is dropped as well, while an empty branch is always kept.
func Remaining(sources []node.Node, links []node.Node) []node.Node {
	linked := make(map[string]struct{}, len(links))
	for _, n := range links {
		if l, ok := n.(node.Link); ok {
			linked[l.Source] = struct{}{}
		}
	}
	return remaining(sources, linked)
}

func remaining(nodes []node.Node, linked map[string]struct{}) []node.Node {
	var out []node.Node
	for _, n := range nodes {
		if _, ok := linked[node.Identity(n)]; ok {
			continue
		}

		b, ok := n.(node.Branch)
		if !ok || len(b.Children) == 0 {
			out = append(out, n)
			continue
		}

		children := remaining(b.Children, linked)
		if len(children) == 0 {
			continue
		}
		out = append(out, node.Branch{Path: b.Path, Children: children})
	}
	return out
}
