package filter

import (
	"strings"

	"github.com/raatiniemi/linker/pkg/node"
)

// ExcludeFrom drops every node whose basename equals one of excludes,
// ignoring case. Matching is literal: an exclude of "*zip" only matches an
// entry named "*zip". Branches are filtered children first, so a kept branch
// contains only the children that survived, possibly none.
func ExcludeFrom(nodes []node.Node, excludes []string) []node.Node {
	set := make(map[string]struct{}, len(excludes))
	for _, exclude := range excludes {
		set[strings.ToLower(exclude)] = struct{}{}
	}
	return excludeFrom(nodes, set)
}

func excludeFrom(nodes []node.Node, excludes map[string]struct{}) []node.Node {
	var out []node.Node
	for _, n := range nodes {
		if b, ok := n.(node.Branch); ok {
			n = node.Branch{Path: b.Path, Children: excludeFrom(b.Children, excludes)}
		}
		if _, excluded := excludes[strings.ToLower(node.Basename(n))]; excluded {
			continue
		}
		out = append(out, n)
	}
	return out
}
