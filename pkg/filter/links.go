package filter

import "github.com/raatiniemi/linker/pkg/node"

// LinksOnly returns every Link found anywhere in nodes as one flat
// sequence, in depth-first order. Leaves and branch wrappers are discarded.
func LinksOnly(nodes []node.Node) []node.Node {
	var out []node.Node
	for _, n := range nodes {
		switch v := n.(type) {
		case node.Link:
			out = append(out, v)
		case node.Branch:
			out = append(out, LinksOnly(v.Children)...)
		case node.Leaf:
		}
	}
	return out
}
