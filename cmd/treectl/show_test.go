package main

import (
	"testing"
)

func TestShowCommand(t *testing.T) {
	tests := []struct {
		name           string
		doc            string
		id             string
		depth          int
		all            bool
		links          bool
		format         string
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "outline hides collapsed children",
			doc:            "docs.json",
			wantContain:    []string{"- [1] docs\n", "  * [2] intro\n", "  + [3] guide\n", "  - [6] reference\n", "    * [7] api\n"},
			wantNotContain: []string{"install", "usage"},
		},
		{
			name:        "all descends into collapsed",
			doc:         "docs.json",
			all:         true,
			wantContain: []string{"  + [3] guide\n", "    * [4] install\n", "    * [5] usage\n"},
		},
		{
			name:           "yaml input gives same ids",
			doc:            "docs.yaml",
			wantContain:    []string{"[3] guide", "[6] reference", "[7] api"},
			wantNotContain: []string{"install"},
		},
		{
			name:        "utf-16 input",
			doc:         "docs-utf16.json",
			wantContain: []string{"- [1] docs\n", "[7] api"},
		},
		{
			name:           "subtree",
			doc:            "docs.json",
			id:             "6",
			wantContain:    []string{"- [6] reference\n", "  * [7] api\n"},
			wantNotContain: []string{"docs", "intro"},
		},
		{
			name:           "depth limit",
			doc:            "docs.json",
			depth:          1,
			all:            true,
			wantContain:    []string{"[6] reference"},
			wantNotContain: []string{"api", "install"},
		},
		{
			name:        "links",
			doc:         "docs.json",
			links:       true,
			wantContain: []string{"* [2] intro parent=1 next=3\n", "- [6] reference parent=1 prev=3\n"},
		},
		{
			name:        "json",
			doc:         "docs.json",
			wantJSON:    true,
			wantContain: []string{`"label": "guide"`, `"collapsed": true`, `"hidden": 2`},
		},
		{
			name:        "yaml output",
			doc:         "docs.json",
			format:      "yaml",
			wantContain: []string{"label: docs", "hidden: 2"},
		},
		{
			name:    "unknown id",
			doc:     "docs.json",
			id:      "42",
			wantErr: true,
		},
		{
			name:    "invalid id",
			doc:     "docs.json",
			id:      "zero",
			wantErr: true,
		},
		{
			name:    "unknown format",
			doc:     "docs.json",
			format:  "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			showDepth = tt.depth
			showAll = tt.all
			showLinks = tt.links
			if tt.format != "" {
				showFormat = tt.format
			}

			args := []string{testDocPath(t, tt.doc)}
			if tt.id != "" {
				args = append(args, tt.id)
			}

			output, err := captureOutput(t, func() error {
				return runShow(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runShow() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestShowCustomKeys(t *testing.T) {
	resetFlags()
	childrenKey = "items"
	showLabel = "title"

	output, err := captureOutput(t, func() error {
		return runShow([]string{testDocPath(t, "nested.json")})
	})
	if err != nil {
		t.Fatalf("runShow() error = %v", err)
	}

	want := "- [1] root\n  - [2] a\n    * [3] a1\n  * [4] b\n"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}
