package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/treekit/internal/writer"
	"github.com/joshuapare/treekit/pkg/tree"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a snapshot of the nested document",
		Long: `The export command indexes a document and writes a deep snapshot of it
back out. Children are normalized to lists of objects; all other fields are
preserved.

Example:
  treectl export docs.yaml --format json
  treectl export docs.json --format yaml -o docs.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	t, err := openTree(args[0])
	if err != nil {
		return err
	}
	return emitSnapshot(t, exportFormat, exportOutput)
}

// emitSnapshot writes t's snapshot to path, or to stdout when path is empty.
func emitSnapshot(t *tree.Tree, format, path string) error {
	if jsonOut {
		format = "json"
	}

	var buf bytes.Buffer
	if err := writeSnapshot(&buf, t.Snapshot(), format); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	var sink writer.Sink = &writer.StreamWriter{W: os.Stdout}
	if path != "" {
		sink = &writer.FileWriter{Path: path}
	}
	if err := sink.WriteDocument(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if path != "" {
		printVerbose("Wrote %d nodes to %s\n", t.Len(), path)
	}
	return nil
}

func writeSnapshot(w io.Writer, n tree.Node, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(n)
	case "yaml", "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(n); err != nil {
			return err
		}
		return encoder.Close()
	}
	return fmt.Errorf("unknown export format %q (want json or yaml)", format)
}
