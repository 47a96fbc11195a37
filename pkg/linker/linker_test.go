package linker_test

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"testing"

	"github.com/raatiniemi/linker/pkg/filesystem"
	"github.com/raatiniemi/linker/pkg/linker"
	"github.com/raatiniemi/linker/pkg/node"
	"github.com/raatiniemi/linker/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymlinker_CreateLink(t *testing.T) {
	dir := testutil.TempDir(t)
	source := testutil.CreateFile(t, dir, filepath.Join("sources", "leaf"))
	targets := testutil.CreateDir(t, dir, "targets")

	tests := []struct {
		name     string
		link     node.Link
		setup    func(t *testing.T)
		expected bool
	}{
		{
			name:     "existing parent",
			link:     node.Link{Path: filepath.Join(targets, "leaf"), Source: source},
			expected: true,
		},
		{
			name:     "missing parent is created",
			link:     node.Link{Path: filepath.Join(targets, "missing", "leaf"), Source: source},
			expected: true,
		},
		{
			name:     "missing grandparent is not created",
			link:     node.Link{Path: filepath.Join(targets, "missing-1", "missing-2", "leaf"), Source: source},
			expected: false,
		},
		{
			name: "existing destination",
			link: node.Link{Path: filepath.Join(targets, "occupied"), Source: source},
			setup: func(t *testing.T) {
				testutil.CreateFile(t, targets, "occupied")
			},
			expected: false,
		},
		{
			name:     "empty path",
			link:     node.Link{Path: "", Source: source},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup(t)
			}

			created := linker.NewSymlinker(filesystem.NewOS()).CreateLink(context.Background(), tt.link)

			assert.Equal(t, tt.expected, created)
			if tt.expected {
				assert.True(t, testutil.SymlinkExists(t, tt.link.Path))
				assert.Equal(t, tt.link.Source, testutil.ReadSymlink(t, tt.link.Path))
			}
		})
	}

	assert.NoDirExists(t, filepath.Join(targets, "missing-1"))
}

func TestSymlinker_MkdirFailure(t *testing.T) {
	dir := testutil.TempDir(t)
	source := testutil.CreateFile(t, dir, "leaf")
	parent := filepath.Join(dir, "denied")
	fsys := testutil.NewFaultFS(filesystem.NewOS()).Fail(testutil.OpMkdir, parent, fs.ErrPermission)

	created := linker.NewSymlinker(fsys).CreateLink(context.Background(), node.Link{
		Path:   filepath.Join(parent, "leaf"),
		Source: source,
	})

	assert.False(t, created)
	assert.Equal(t, 0, fsys.Calls(testutil.OpSymlink))
}

func TestSymlinker_ParentAlreadyCreatedBySibling(t *testing.T) {
	dir := testutil.TempDir(t)
	source := testutil.CreateFile(t, dir, "leaf")
	parent := filepath.Join(dir, "shared")
	fsys := testutil.NewFaultFS(filesystem.NewOS()).
		Fail(testutil.OpLstat, parent, fs.ErrNotExist).
		Fail(testutil.OpMkdir, parent, fs.ErrExist)
	testutil.CreateDir(t, dir, "shared")

	created := linker.NewSymlinker(fsys).CreateLink(context.Background(), node.Link{
		Path:   filepath.Join(parent, "leaf"),
		Source: source,
	})

	assert.True(t, created)
}

func TestSymlinker_ConcurrentSiblings(t *testing.T) {
	dir := testutil.TempDir(t)
	source := testutil.CreateFile(t, dir, "leaf")
	parent := filepath.Join(dir, "shared")
	symlinker := linker.NewSymlinker(filesystem.NewOS())

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = symlinker.CreateLink(context.Background(), node.Link{
				Path:   filepath.Join(parent, fmt.Sprintf("leaf-%d", i)),
				Source: source,
			})
		}()
	}
	wg.Wait()

	for i, created := range results {
		assert.True(t, created, "link %d", i)
	}
	assert.Len(t, testutil.ListDir(t, parent), len(results))
}

func TestDryRun_TouchesNothing(t *testing.T) {
	dir := testutil.TempDir(t)
	source := testutil.CreateFile(t, dir, "leaf")
	targets := testutil.CreateDir(t, dir, "targets")

	created := linker.NewDryRun().CreateLink(context.Background(), node.Link{
		Path:   filepath.Join(targets, "missing", "leaf"),
		Source: source,
	})

	assert.True(t, created)
	assert.Empty(t, testutil.ListDir(t, targets))
}

func TestRecorder(t *testing.T) {
	failing := node.Link{Path: "/t/fail", Source: "/s/fail"}
	recorder := linker.Record(linker.Func(func(_ context.Context, link node.Link) bool {
		return link != failing
	}))

	require.True(t, recorder.CreateLink(context.Background(), node.Link{Path: "/t/b", Source: "/s/b"}))
	require.False(t, recorder.CreateLink(context.Background(), failing))
	require.True(t, recorder.CreateLink(context.Background(), node.Link{Path: "/t/a", Source: "/s/a"}))

	assert.Equal(t, []node.Link{
		{Path: "/t/a", Source: "/s/a"},
		{Path: "/t/b", Source: "/s/b"},
	}, recorder.Linked())
}
