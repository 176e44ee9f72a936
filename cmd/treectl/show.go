package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/pkg/printer"
	"github.com/joshuapare/treekit/pkg/types"
)

var (
	showDepth  int
	showAll    bool
	showLinks  bool
	showIndent int
	showLabel  string
	showFormat string
)

func init() {
	cmd := newShowCmd()
	cmd.Flags().IntVar(&showDepth, "depth", 0, "Maximum depth below the start node (0 = unlimited)")
	cmd.Flags().BoolVar(&showAll, "all", false, "Descend into collapsed nodes")
	cmd.Flags().BoolVar(&showLinks, "links", false, "Show parent/prev/next ids")
	cmd.Flags().IntVar(&showIndent, "indent", printer.DefaultIndentSize, "Spaces per level")
	cmd.Flags().StringVar(&showLabel, "label", printer.DefaultLabelKey, "Node field used as label")
	cmd.Flags().StringVar(&showFormat, "format", "text", "Output format: text, json or yaml")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file> [id]",
		Short: "Display the indexed outline",
		Long: `The show command indexes a document and prints it as an outline with
each node's id. Collapsed nodes are marked with + and their children are
hidden unless --all is given.

Example:
  treectl show docs.json
  treectl show docs.yaml 6 --depth 1
  treectl show docs.json --all --links
  treectl show docs.json --format yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args)
		},
	}
	return cmd
}

func runShow(args []string) error {
	t, err := openTree(args[0])
	if err != nil {
		return err
	}

	id := types.RootID
	if len(args) > 1 {
		if id, err = parseID(args[1]); err != nil {
			return err
		}
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = showDepth
	opts.RespectCollapsed = !showAll
	opts.ShowLinks = showLinks
	opts.IndentSize = showIndent
	opts.LabelKey = showLabel

	// Handle JSON output
	if jsonOut {
		opts.Format = printer.FormatJSON
	} else if opts.Format, err = printer.ParseFormat(showFormat); err != nil {
		return err
	}

	if err := printer.New(t, os.Stdout, opts).PrintTree(id); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}
