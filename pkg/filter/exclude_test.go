package filter_test

import (
	"testing"

	"github.com/raatiniemi/linker/pkg/filter"
	"github.com/raatiniemi/linker/pkg/node"
	"github.com/stretchr/testify/assert"
)

func TestExcludeFrom(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []node.Node
		excludes []string
		expected []node.Node
	}{
		{
			name:     "without nodes",
			nodes:    nil,
			excludes: []string{"leaf-1"},
			expected: nil,
		},
		{
			name: "without excludes",
			nodes: []node.Node{
				node.Leaf{Path: "/s/leaf-1"},
			},
			excludes: nil,
			expected: []node.Node{
				node.Leaf{Path: "/s/leaf-1"},
			},
		},
		{
			name: "exact match",
			nodes: []node.Node{
				node.Leaf{Path: "/s/leaf-1"},
				node.Leaf{Path: "/s/leaf-2"},
			},
			excludes: []string{"leaf-1"},
			expected: []node.Node{
				node.Leaf{Path: "/s/leaf-2"},
			},
		},
		{
			name: "basename case is ignored",
			nodes: []node.Node{
				node.Leaf{Path: "/s/LEAF-1"},
				node.Leaf{Path: "/s/leaf-2"},
			},
			excludes: []string{"leaf-1"},
			expected: []node.Node{
				node.Leaf{Path: "/s/leaf-2"},
			},
		},
		{
			name: "glob syntax is literal",
			nodes: []node.Node{
				node.Leaf{Path: "/s/archive.zip"},
				node.Leaf{Path: "/s/*zip"},
			},
			excludes: []string{"*zip"},
			expected: []node.Node{
				node.Leaf{Path: "/s/archive.zip"},
			},
		},
		{
			name: "substring does not match",
			nodes: []node.Node{
				node.Leaf{Path: "/s/leaf-10"},
			},
			excludes: []string{"leaf-1"},
			expected: []node.Node{
				node.Leaf{Path: "/s/leaf-10"},
			},
		},
		{
			name: "link matched by its own basename",
			nodes: []node.Node{
				node.Link{Path: "/s/link", Source: "/elsewhere/leaf-1"},
				node.Link{Path: "/s/leaf-1", Source: "/elsewhere/other"},
			},
			excludes: []string{"leaf-1"},
			expected: []node.Node{
				node.Link{Path: "/s/link", Source: "/elsewhere/leaf-1"},
			},
		},
		{
			name: "excluded branch drops subtree",
			nodes: []node.Node{
				node.Branch{Path: "/s/branch-1", Children: []node.Node{
					node.Leaf{Path: "/s/branch-1/leaf-2"},
				}},
				node.Leaf{Path: "/s/leaf-3"},
			},
			excludes: []string{"branch-1"},
			expected: []node.Node{
				node.Leaf{Path: "/s/leaf-3"},
			},
		},
		{
			name: "excluded child inside kept branch",
			nodes: []node.Node{
				node.Branch{Path: "/s/branch", Children: []node.Node{
					node.Leaf{Path: "/s/branch/leaf-1"},
					node.Leaf{Path: "/s/branch/leaf-2"},
					node.Branch{Path: "/s/branch/nested", Children: []node.Node{
						node.Leaf{Path: "/s/branch/nested/leaf-1"},
					}},
				}},
			},
			excludes: []string{"leaf-1"},
			expected: []node.Node{
				node.Branch{Path: "/s/branch", Children: []node.Node{
					node.Leaf{Path: "/s/branch/leaf-2"},
					node.Branch{Path: "/s/branch/nested"},
				}},
			},
		},
		{
			name: "excludes are compared lower-cased",
			nodes: []node.Node{
				node.Leaf{Path: "/s/Thumbs.db"},
			},
			excludes: []string{"THUMBS.DB"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.ExcludeFrom(tt.nodes, tt.excludes))
		})
	}
}

func TestExcludeFrom_DoesNotModifyInput(t *testing.T) {
	nodes := []node.Node{
		node.Branch{Path: "/s/branch", Children: []node.Node{
			node.Leaf{Path: "/s/branch/leaf-1"},
		}},
	}

	filter.ExcludeFrom(nodes, []string{"leaf-1"})

	assert.Equal(t, []node.Node{
		node.Branch{Path: "/s/branch", Children: []node.Node{
			node.Leaf{Path: "/s/branch/leaf-1"},
		}},
	}, nodes)
}
