package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/internal/logger"
)

func TestLogFlagWritesDebugEntries(t *testing.T) {
	resetFlags()
	t.Cleanup(func() {
		logEnabled = false
		logDir = ""
		_ = logger.Init(logger.Options{})
	})

	logEnabled = true
	logDir = t.TempDir()
	require.NoError(t, initLogging())

	_, err := captureOutput(t, func() error {
		return runEdit([]string{testDocPath(t, "docs.json"), "remove:3"})
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(logDir, "treectl-"+time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"DEBUG"`)
	assert.Contains(t, string(data), `"msg":"removed"`)
}

func TestLoggingDisabledByDefault(t *testing.T) {
	resetFlags()
	logEnabled = false
	require.NoError(t, initLogging())
	assert.False(t, logger.L.Enabled(context.Background(), 0))
}
