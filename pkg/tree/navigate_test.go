package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

// newDeep builds
//
//	1
//	├── 2
//	│   ├── 3
//	│   └── 4
//	│       └── 5
//	├── 6
//	└── 7
//	    └── 8
func newDeep(t *testing.T) *tree.Tree {
	t.Helper()
	leaf := func(n string) map[string]any { return map[string]any{"name": n} }
	tr, err := tree.New(tree.Node{
		"name": "r",
		"children": []any{
			map[string]any{"name": "2", "children": []any{
				leaf("3"),
				map[string]any{"name": "4", "children": []any{leaf("5")}},
			}},
			leaf("6"),
			map[string]any{"name": "7", "children": []any{leaf("8")}},
		},
	}, tree.Options{})
	require.NoError(t, err)
	return tr
}

func TestNextID_Scenario(t *testing.T) {
	tr := newSample(t)

	next, ok := tr.NextID(2, true)
	require.True(t, ok)
	require.Equal(t, types.ID(3), next)

	require.NoError(t, tr.Close(3))

	// Descent into 3 is suppressed; 3 is the last child of the root, so the
	// walk wraps.
	next, _ = tr.NextID(3, true)
	require.Equal(t, types.RootID, next)

	next, _ = tr.NextID(3, false)
	require.Equal(t, types.ID(4), next)
}

func TestNextID_UpwardWalk(t *testing.T) {
	tr := newDeep(t)

	tests := []struct {
		id   types.ID
		want types.ID
	}{
		{1, 2},
		{2, 3},
		{3, 4},
		{4, 5},
		{5, 6}, // up two levels
		{6, 7},
		{7, 8},
		{8, 1}, // end of tree
	}
	for _, tt := range tests {
		got, ok := tr.NextID(tt.id, true)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "next of %d", tt.id)
	}
}

func TestNextID_EmptyRoot(t *testing.T) {
	tr, err := tree.New(nil, tree.Options{})
	require.NoError(t, err)

	next, ok := tr.NextID(types.RootID, true)
	require.True(t, ok)
	require.Equal(t, types.RootID, next)
}

func TestNextID_CollapsedRoot(t *testing.T) {
	tr := newDeep(t)
	require.NoError(t, tr.Close(types.RootID))

	next, _ := tr.NextID(types.RootID, true)
	require.Equal(t, types.RootID, next)
	next, _ = tr.NextID(types.RootID, false)
	require.Equal(t, types.ID(2), next)
}

func TestNavigation_Cycle(t *testing.T) {
	tr := newDeep(t)
	require.NoError(t, tr.CloseAll(types.RootID))

	var visited []types.ID
	id := types.RootID
	for {
		visited = append(visited, id)
		next, ok := tr.NextID(id, false)
		require.True(t, ok)
		if next == types.RootID {
			break
		}
		require.Less(t, len(visited), 100, "navigation did not return to the root")
		id = next
	}
	require.Equal(t, []types.ID{1, 2, 3, 4, 5, 6, 7, 8}, visited)
	require.Equal(t, visited, tr.Visible(false))
}

func TestVisible_RespectsCollapsed(t *testing.T) {
	tr := newDeep(t)

	require.NoError(t, tr.Close(4))
	require.Equal(t, []types.ID{1, 2, 3, 4, 6, 7, 8}, tr.Visible(true))

	require.NoError(t, tr.Close(2))
	require.Equal(t, []types.ID{1, 2, 6, 7, 8}, tr.Visible(true))
	require.Equal(t, []types.ID{1, 2, 3, 4, 5, 6, 7, 8}, tr.Visible(false))
}

func TestLastID(t *testing.T) {
	tr := newDeep(t)

	tests := []struct {
		name   string
		id     types.ID
		open   bool
		closed []types.ID
		want   types.ID
	}{
		{"leaf", 3, true, nil, 3},
		{"deepest", 2, true, nil, 5},
		{"root", 1, true, nil, 8},
		{"collapsed self", 2, true, []types.ID{2}, 2},
		{"collapsed descendant", 2, true, []types.ID{4}, 4},
		{"collapsed ignored", 2, false, []types.ID{2, 4}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newDeep(t)
			for _, id := range tt.closed {
				require.NoError(t, tr.Close(id))
			}
			got, ok := tr.LastID(tt.id, tt.open)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	_, ok := tr.LastID(42, true)
	require.False(t, ok)
}

func TestPrevID(t *testing.T) {
	tr := newDeep(t)

	tests := []struct {
		id   types.ID
		want types.ID
	}{
		{2, 1}, // first child -> parent
		{3, 2},
		{4, 3},
		{6, 5}, // deepest of previous sibling
		{7, 6},
		{8, 7},
	}
	for _, tt := range tests {
		got, ok := tr.PrevID(tt.id, true)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "prev of %d", tt.id)
	}

	_, ok := tr.PrevID(types.RootID, true)
	require.False(t, ok)
	_, ok = tr.PrevID(42, true)
	require.False(t, ok)
}

func TestPrevID_Collapsed(t *testing.T) {
	tr := newDeep(t)
	require.NoError(t, tr.Close(2))

	got, _ := tr.PrevID(6, true)
	require.Equal(t, types.ID(2), got)
	got, _ = tr.PrevID(6, false)
	require.Equal(t, types.ID(5), got)
}

func TestPrevNext_RoundTrip(t *testing.T) {
	tr := newDeep(t)
	require.NoError(t, tr.Close(4))

	ids := tr.Visible(true)
	for i := 1; i < len(ids); i++ {
		prev, ok := tr.PrevID(ids[i], true)
		require.True(t, ok)
		require.Equal(t, ids[i-1], prev, "prev of %d", ids[i])
	}
}

func TestNextID_Unknown(t *testing.T) {
	tr := newDeep(t)
	next, ok := tr.NextID(42, true)
	require.False(t, ok)
	require.Equal(t, types.NoID, next)
}

func TestNextID_AfterMutation(t *testing.T) {
	tr := newDeep(t)

	_, err := tr.Remove(6)
	require.NoError(t, err)
	e, err := tr.InsertAfter(tree.Node{"name": "9"}, 5)
	require.NoError(t, err)

	require.Equal(t, []types.ID{1, 2, 3, 4, 5, e.ID(), 7, 8}, tr.Visible(false))
}
