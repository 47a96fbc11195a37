package filter_test

import (
	"testing"

	"github.com/raatiniemi/linker/pkg/filter"
	"github.com/raatiniemi/linker/pkg/node"
	"github.com/stretchr/testify/assert"
)

func TestLinksOnly(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []node.Node
		expected []node.Node
	}{
		{
			name:     "without nodes",
			nodes:    nil,
			expected: nil,
		},
		{
			name: "leaves are discarded",
			nodes: []node.Node{
				node.Leaf{Path: "/t/leaf"},
			},
			expected: nil,
		},
		{
			name: "empty branch is discarded",
			nodes: []node.Node{
				node.Branch{Path: "/t/branch"},
			},
			expected: nil,
		},
		{
			name: "top level link",
			nodes: []node.Node{
				node.Leaf{Path: "/t/leaf"},
				node.Link{Path: "/t/link", Source: "/s/link"},
			},
			expected: []node.Node{
				node.Link{Path: "/t/link", Source: "/s/link"},
			},
		},
		{
			name: "nested links are flattened",
			nodes: []node.Node{
				node.Link{Path: "/t/link-1", Source: "/s/link-1"},
				node.Branch{Path: "/t/branch", Children: []node.Node{
					node.Leaf{Path: "/t/branch/leaf"},
					node.Link{Path: "/t/branch/link-2", Source: "/s/link-2"},
					node.Branch{Path: "/t/branch/nested", Children: []node.Node{
						node.Link{Path: "/t/branch/nested/link-3", Source: "/s/link-3"},
					}},
				}},
			},
			expected: []node.Node{
				node.Link{Path: "/t/link-1", Source: "/s/link-1"},
				node.Link{Path: "/t/branch/link-2", Source: "/s/link-2"},
				node.Link{Path: "/t/branch/nested/link-3", Source: "/s/link-3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.LinksOnly(tt.nodes))
		})
	}
}
