package node

import (
	"cmp"
	"slices"
)

// Compare orders two nodes by kind rank and then by their fields:
// Leaf by path, Link by (path, source) and Branch by (path, children).
// Children are compared element-wise, a shorter prefix sorts first.
func Compare(a, b Node) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}

	switch x := a.(type) {
	case Leaf:
		return cmp.Compare(x.Path, b.(Leaf).Path)
	case Link:
		y := b.(Link)
		if c := cmp.Compare(x.Path, y.Path); c != 0 {
			return c
		}
		return cmp.Compare(x.Source, y.Source)
	case Branch:
		y := b.(Branch)
		if c := cmp.Compare(x.Path, y.Path); c != 0 {
			return c
		}
		return slices.CompareFunc(x.Children, y.Children, Compare)
	default:
		return 0
	}
}

// Equal reports whether two trees are identical.
func Equal(a, b Node) bool {
	return Compare(a, b) == 0
}

// Sort sorts nodes in place using the canonical ordering. It only orders the
// given level; children of branches are left untouched.
func Sort(nodes []Node) {
	slices.SortStableFunc(nodes, Compare)
}

// Sorted returns a sorted copy of nodes.
func Sorted(nodes []Node) []Node {
	out := slices.Clone(nodes)
	Sort(out)
	return out
}
