package linkmap_test

import (
	"regexp"
	"testing"

	"github.com/raatiniemi/linker/pkg/config"
	"github.com/raatiniemi/linker/pkg/errors"
	"github.com/raatiniemi/linker/pkg/linkmap"
	"github.com/raatiniemi/linker/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(pattern, target string) linkmap.Rule {
	return linkmap.Rule{Pattern: regexp.MustCompile(pattern), Target: target}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		node     node.Node
		rules    []linkmap.Rule
		expected node.Link
		routed   bool
	}{
		{
			name:   "without rules",
			node:   node.Leaf{Path: "/s/leaf"},
			rules:  nil,
			routed: false,
		},
		{
			name:   "empty path",
			node:   node.Leaf{Path: ""},
			rules:  []linkmap.Rule{rule(".*", "/a")},
			routed: false,
		},
		{
			name:     "leaf match",
			node:     node.Leaf{Path: "/s/name.pkg.tar.zst"},
			rules:    []linkmap.Rule{rule(`(.*)\.pkg\.tar\.zst`, "/t")},
			expected: node.Link{Path: "/t/name.pkg.tar.zst", Source: "/s/name.pkg.tar.zst"},
			routed:   true,
		},
		{
			name:     "branch match links the whole directory",
			node:     node.Branch{Path: "/s/folder", Children: []node.Node{node.Leaf{Path: "/s/folder/f"}}},
			rules:    []linkmap.Rule{rule("folder", "/t")},
			expected: node.Link{Path: "/t/folder", Source: "/s/folder"},
			routed:   true,
		},
		{
			name:   "link is never routed",
			node:   node.Link{Path: "/s/leaf", Source: "/elsewhere/leaf"},
			rules:  []linkmap.Rule{rule("leaf", "/a")},
			routed: false,
		},
		{
			name:   "no match",
			node:   node.Leaf{Path: "/s/leaf"},
			rules:  []linkmap.Rule{rule("branch", "/a")},
			routed: false,
		},
		{
			name:     "unanchored match",
			node:     node.Leaf{Path: "/s/my-leaf-1"},
			rules:    []linkmap.Rule{rule("leaf", "/a")},
			expected: node.Link{Path: "/a/my-leaf-1", Source: "/s/my-leaf-1"},
			routed:   true,
		},
		{
			name:  "last match wins",
			node:  node.Leaf{Path: "/s/leaf"},
			rules: []linkmap.Rule{rule("leaf", "/a"), rule("leaf", "/b")},
			expected: node.Link{
				Path:   "/b/leaf",
				Source: "/s/leaf",
			},
			routed: true,
		},
		{
			name:  "later non-matching rule does not override",
			node:  node.Leaf{Path: "/s/leaf"},
			rules: []linkmap.Rule{rule("leaf", "/a"), rule("branch", "/b")},
			expected: node.Link{
				Path:   "/a/leaf",
				Source: "/s/leaf",
			},
			routed: true,
		},
		{
			name:   "only the basename is matched",
			node:   node.Leaf{Path: "/s/folder/leaf"},
			rules:  []linkmap.Rule{rule("folder", "/a")},
			routed: false,
		},
		{
			name:     "target with trailing separator",
			node:     node.Leaf{Path: "/s/leaf"},
			rules:    []linkmap.Rule{rule("^leaf$", "/a/")},
			expected: node.Link{Path: "/a/leaf", Source: "/s/leaf"},
			routed:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, routed := linkmap.New(tt.rules).Route(tt.node)

			assert.Equal(t, tt.routed, routed)
			assert.Equal(t, tt.expected, link)
		})
	}
}

func TestCompile(t *testing.T) {
	t.Run("valid link maps", func(t *testing.T) {
		router, err := linkmap.Compile([]config.LinkMap{
			{Regex: "leaf", Target: "/a"},
			{Regex: "leaf", Target: "/b"},
		})
		require.NoError(t, err)

		link, routed := router.Route(node.Leaf{Path: "/s/leaf"})
		assert.True(t, routed)
		assert.Equal(t, node.Link{Path: "/b/leaf", Source: "/s/leaf"}, link)
	})

	t.Run("invalid regex", func(t *testing.T) {
		_, err := linkmap.Compile([]config.LinkMap{{Regex: "(", Target: "/a"}})

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRegexInvalid))
	})
}
