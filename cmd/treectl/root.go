package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/internal/load"
	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	inputFormat  string
	childrenKey  string
	collapsedKey string
	limitsPreset string
	logEnabled   bool
	logDir       string
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Index, navigate and edit nested JSON or YAML trees",
	Long: `treectl loads a nested JSON or YAML document, indexes every node in
pre-order with a stable numeric id, and lets you print, navigate, check and
edit the tree by id. Collapsed nodes are skipped by navigation unless --all
is given.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&inputFormat, "input-format", "auto", "Input syntax: auto, json or yaml")
	rootCmd.PersistentFlags().
		StringVar(&childrenKey, "children-key", tree.DefaultChildrenKey, "Node field holding child nodes")
	rootCmd.PersistentFlags().
		StringVar(&collapsedKey, "collapsed-key", tree.DefaultCollapsedKey, "Node field holding the collapsed flag")
	rootCmd.PersistentFlags().
		StringVar(&limitsPreset, "limits", "default", "Limit preset: default, relaxed or strict")
	rootCmd.PersistentFlags().BoolVar(&logEnabled, "log", false, "Write a debug log file")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Directory for log files (default ~/.treectl/logs)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging enables the debug log file when --log is set.
func initLogging() error {
	return logger.Init(logger.Options{
		Enabled: logEnabled,
		LogDir:  logDir,
		Level:   slog.LevelDebug,
	})
}

// treeOptions builds tree options from the global flags.
func treeOptions() (tree.Options, error) {
	limits, err := parseLimits(limitsPreset)
	if err != nil {
		return tree.Options{}, err
	}
	return tree.Options{
		ChildrenKey:  childrenKey,
		CollapsedKey: collapsedKey,
		Limits:       limits,
	}, nil
}

func parseLimits(preset string) (tree.Limits, error) {
	switch preset {
	case "", "default":
		return tree.DefaultLimits(), nil
	case "relaxed":
		return tree.RelaxedLimits(), nil
	case "strict":
		return tree.StrictLimits(), nil
	}
	return tree.Limits{}, fmt.Errorf("unknown limits preset %q (want default, relaxed or strict)", preset)
}

// readDocument loads the document at path; "-" reads standard input.
func readDocument(path string) (tree.Node, error) {
	format, err := load.ParseFormat(inputFormat)
	if err != nil {
		return nil, err
	}
	printVerbose("Loading document: %s\n", path)
	if path == "-" {
		return load.Reader(os.Stdin, format)
	}
	return load.File(path, format)
}

// openTree loads and indexes the document at path.
func openTree(path string) (*tree.Tree, error) {
	root, err := readDocument(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	opts, err := treeOptions()
	if err != nil {
		return nil, err
	}
	t, err := tree.New(root, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to index document: %w", err)
	}
	printVerbose("Indexed %d nodes\n", t.Len())
	return t, nil
}

// parseID parses a positive decimal id.
func parseID(s string) (types.ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return types.NoID, fmt.Errorf("invalid id %q: want a positive integer", s)
	}
	return types.ID(n), nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
