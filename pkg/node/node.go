package node

import (
	"path/filepath"
	"strings"
)

// Kind identifies one of the three node kinds. The numeric value is the
// rank used by the canonical ordering.
type Kind int

const (
	KindLeaf Kind = iota
	KindLink
	KindBranch
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindLink:
		return "link"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Node is an element of a collected tree. It is implemented by Leaf, Link
// and Branch only.
type Node interface {
	Kind() Kind
	sealed()
}

// Leaf is a plain file-like entry.
type Leaf struct {
	Path string
}

// Link is a symbolic link at Path whose canonical referent is Source.
type Link struct {
	Path   string
	Source string
}

// Branch is a directory at Path with its children.
type Branch struct {
	Path     string
	Children []Node
}

func (Leaf) Kind() Kind   { return KindLeaf }
func (Link) Kind() Kind   { return KindLink }
func (Branch) Kind() Kind { return KindBranch }

func (Leaf) sealed()   {}
func (Link) sealed()   {}
func (Branch) sealed() {}

// PathOf returns the path the node occupies on disk.
func PathOf(n Node) string {
	switch v := n.(type) {
	case Leaf:
		return v.Path
	case Link:
		return v.Path
	case Branch:
		return v.Path
	default:
		return ""
	}
}

// Identity returns the path a node is mirrored by: the referent for a Link,
// the node's own path otherwise.
func Identity(n Node) string {
	if v, ok := n.(Link); ok {
		return v.Source
	}
	return PathOf(n)
}

// Basename returns the final segment of the node's path. A path ending in a
// separator has an empty basename.
func Basename(n Node) string {
	return LastSegment(PathOf(n))
}

// LastSegment returns everything after the last path separator in p.
func LastSegment(p string) string {
	return p[strings.LastIndexByte(p, filepath.Separator)+1:]
}
