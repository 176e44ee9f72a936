package tree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

func TestSnapshot_Independent(t *testing.T) {
	tr := newSample(t)

	snap := tr.Snapshot()
	_, err := tr.Append(tree.Node{"name": "later"}, types.RootID)
	require.NoError(t, err)
	require.NoError(t, tr.Close(3))

	require.Len(t, tree.Children(snap, "children"), 2)
	b := tree.Children(snap, "children")[1]
	_, collapsed := b["collapsed"]
	require.False(t, collapsed)

	// And the other way round.
	b["name"] = "changed"
	require.Equal(t, "b", tr.Get(3)["name"])
}

func TestSnapshot_NoIndexFields(t *testing.T) {
	tr := newSample(t)

	data, err := json.Marshal(tr.Snapshot())
	require.NoError(t, err)
	require.JSONEq(t, `{
		"name": "root",
		"children": [
			{"name": "a"},
			{"name": "b", "children": [{"name": "c"}]}
		]
	}`, string(data))
}

func TestSnapshot_RoundTripIDs(t *testing.T) {
	tr := newDeep(t)
	_, err := tr.InsertAfter(tree.Node{"name": "x"}, 3)
	require.NoError(t, err)
	_, err = tr.Remove(6)
	require.NoError(t, err)

	var names []any
	for _, id := range tr.Visible(false) {
		names = append(names, tr.Get(id)["name"])
	}

	again, err := tree.New(tr.Snapshot(), tree.Options{})
	require.NoError(t, err)

	var renamed []any
	for i, id := range again.Visible(false) {
		require.Equal(t, types.ID(i+1), id, "rebuilt ids are dense pre-order")
		renamed = append(renamed, again.Get(id)["name"])
	}
	require.Equal(t, names, renamed)
}

func TestSnapshot_DeepValues(t *testing.T) {
	tr, err := tree.New(tree.Node{
		"tags": []any{"x", map[string]any{"k": "v"}},
		"meta": map[string]any{"list": []string{"a"}},
	}, tree.Options{})
	require.NoError(t, err)

	snap := tr.Snapshot()
	snap["meta"].(map[string]any)["list"].([]string)[0] = "changed"
	snap["tags"].([]any)[1].(map[string]any)["k"] = "changed"

	root := tr.Get(types.RootID)
	require.Equal(t, "a", root["meta"].(map[string]any)["list"].([]string)[0])
	require.Equal(t, "v", root["tags"].([]any)[1].(map[string]any)["k"])
}

func TestSnapshot_DeepValues_AnyContainer(t *testing.T) {
	tr, err := tree.New(tree.Node{
		"nums":  []int{1, 2},
		"attrs": map[string]string{"k": "v"},
		"grid":  [][]any{{"a", map[string]any{"k": "v"}}},
		"index": map[string][]int{"a": {1}},
		"pair":  [2][]string{{"x"}, {"y"}},
		"none":  []int(nil),
	}, tree.Options{})
	require.NoError(t, err)

	snap := tr.Snapshot()
	snap["nums"].([]int)[0] = 99
	snap["attrs"].(map[string]string)["k"] = "changed"
	grid := snap["grid"].([][]any)
	grid[0][0] = "changed"
	grid[0][1].(map[string]any)["k"] = "changed"
	snap["index"].(map[string][]int)["a"][0] = 99
	snap["pair"].([2][]string)[0][0] = "changed"

	root := tr.Get(types.RootID)
	require.Equal(t, []int{1, 2}, root["nums"])
	require.Equal(t, map[string]string{"k": "v"}, root["attrs"])
	require.Equal(t, [][]any{{"a", map[string]any{"k": "v"}}}, root["grid"])
	require.Equal(t, map[string][]int{"a": {1}}, root["index"])
	require.Equal(t, [2][]string{{"x"}, {"y"}}, root["pair"])
	require.Nil(t, snap["none"].([]int))
}
