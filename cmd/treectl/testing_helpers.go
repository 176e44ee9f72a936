package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/treekit/pkg/tree"
)

// testDocPath returns the path to a fixture under the repository testdata
func testDocPath(t *testing.T, name string) string {
	t.Helper()
	// Go up two directories from cmd/treectl to repo root
	root := filepath.Join("..", "..")
	path := filepath.Join(root, "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("test file not found: %s", path)
	}
	return path
}

// resetFlags restores every global and command flag to its default
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	inputFormat = "auto"
	childrenKey = tree.DefaultChildrenKey
	collapsedKey = tree.DefaultCollapsedKey
	limitsPreset = "default"
	logEnabled = false
	logDir = ""

	showDepth = 0
	showAll = false
	showLinks = false
	showIndent = 2
	showLabel = "name"
	showFormat = "text"

	navAll = false
	navSteps = 1

	exportFormat = "json"
	exportOutput = ""

	editFormat = "json"
	editOutput = ""
	editOutline = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe
	done := make(chan struct{})
	var buf bytes.Buffer
	var readErr error
	go func() {
		_, readErr = buf.ReadFrom(r)
		close(done)
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done

	if readErr != nil {
		t.Fatalf("failed to read output: %v", readErr)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
