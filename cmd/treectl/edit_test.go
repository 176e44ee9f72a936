package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/pkg/types"
)

func TestEditOutline(t *testing.T) {
	tests := []struct {
		name string
		ops  []string
		want string
	}{
		{
			name: "remove collapsed subtree",
			ops:  []string{"remove:3"},
			want: "- [1] docs\n  * [2] intro\n  - [6] reference\n    * [7] api\n",
		},
		{
			name: "append gets next id",
			ops:  []string{`append:1:{"name": "faq"}`},
			want: "- [1] docs\n  * [2] intro\n  + [3] guide\n  - [6] reference\n    * [7] api\n  * [8] faq\n",
		},
		{
			name: "insert at position then open",
			ops:  []string{"insert:3:0:{name: setup}", "open:3"},
			want: "- [1] docs\n  * [2] intro\n  - [3] guide\n    * [8] setup\n    * [4] install\n    * [5] usage\n  - [6] reference\n    * [7] api\n",
		},
		{
			name: "before and after",
			ops:  []string{"before:2:{name: preface}", "after:7:{name: errors}"},
			want: "- [1] docs\n  * [8] preface\n  * [2] intro\n  + [3] guide\n  - [6] reference\n    * [7] api\n    * [9] errors\n",
		},
		{
			name: "prepend subtree",
			ops:  []string{"prepend:6:{name: cli, children: [{name: flags}]}"},
			want: "- [1] docs\n  * [2] intro\n  + [3] guide\n  - [6] reference\n    - [8] cli\n      * [9] flags\n    * [7] api\n",
		},
		{
			name: "close",
			ops:  []string{"close:6"},
			want: "- [1] docs\n  * [2] intro\n  + [3] guide\n  + [6] reference\n",
		},
		{
			name: "close all then open root",
			ops:  []string{"close-all:1", "open:1"},
			want: "- [1] docs\n  * [2] intro\n  + [3] guide\n  + [6] reference\n",
		},
		{
			name: "open all",
			ops:  []string{"open-all:1"},
			want: "- [1] docs\n  * [2] intro\n  - [3] guide\n    * [4] install\n    * [5] usage\n  - [6] reference\n    * [7] api\n",
		},
		{
			name: "removed ids are not reused",
			ops:  []string{"append:1:{name: x}", "remove:8", "append:1:{name: y}"},
			want: "- [1] docs\n  * [2] intro\n  + [3] guide\n  - [6] reference\n    * [7] api\n  * [9] y\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			editOutline = true

			args := append([]string{testDocPath(t, "docs.json")}, tt.ops...)
			output, err := captureOutput(t, func() error {
				return runEdit(args)
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestEditErrors(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		wantErr error
	}{
		{name: "remove root", op: "remove:1", wantErr: types.ErrUnsupported},
		{name: "remove unknown", op: "remove:99", wantErr: types.ErrNotFound},
		{name: "sibling of root", op: "before:1:{name: x}", wantErr: types.ErrUnsupported},
		{name: "append to unknown", op: "append:99:{name: x}", wantErr: types.ErrInvalidTarget},
		{name: "close unknown", op: "close:99", wantErr: types.ErrNotFound},
		{name: "node is not an object", op: "append:1:[1, 2]", wantErr: types.ErrInvalidNode},
		{name: "bad children", op: "append:1:{children: 3}", wantErr: types.ErrInvalidNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()

			output, err := captureOutput(t, func() error {
				return runEdit([]string{testDocPath(t, "docs.json"), tt.op})
			})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, output)
		})
	}
}

func TestParseEditOp(t *testing.T) {
	tests := []struct {
		in      string
		verb    string
		id      types.ID
		pos     int
		hasNode bool
		wantErr bool
	}{
		{in: "remove:4", verb: "remove", id: 4},
		{in: "close-all:1", verb: "close-all", id: 1},
		{in: `append:2:{"name": "a:b"}`, verb: "append", id: 2, hasNode: true},
		{in: "insert:3:-1:{name: z}", verb: "insert", id: 3, pos: -1, hasNode: true},
		{in: "remove", wantErr: true},
		{in: "remove:0", wantErr: true},
		{in: "append:1", wantErr: true},
		{in: "insert:1:{name: z}", wantErr: true},
		{in: "insert:1:x:{name: z}", wantErr: true},
		{in: "frob:1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			op, err := parseEditOp(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.verb, op.verb)
			assert.Equal(t, tt.id, op.id)
			assert.Equal(t, tt.pos, op.position)
			assert.Equal(t, tt.hasNode, op.node != nil)
		})
	}
}

func TestEditSnapshotToFile(t *testing.T) {
	resetFlags()
	out := filepath.Join(t.TempDir(), "edited.json")
	editOutput = out

	_, err := captureOutput(t, func() error {
		return runEdit([]string{testDocPath(t, "docs.yaml"), "remove:6", "open:3"})
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	kids := doc["children"].([]any)
	require.Len(t, kids, 2)
	guide := kids[1].(map[string]any)
	assert.Equal(t, "guide", guide["name"])
	assert.NotContains(t, guide, "collapsed")
}
