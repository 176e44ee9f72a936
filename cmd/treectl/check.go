package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
	"github.com/joshuapare/treekit/pkg/verify"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Index a document and verify its structure",
		Long: `The check command indexes a document under the selected limit preset,
verifies the index invariants and prints summary statistics.

Example:
  treectl check docs.json
  treectl check big.yaml --limits strict
  treectl check docs.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

// checkReport summarizes an indexed document.
type checkReport struct {
	File      string `json:"file"`
	Nodes     int    `json:"nodes"`
	LastID    uint64 `json:"last_id"`
	MaxDepth  int    `json:"max_depth"`
	Leaves    int    `json:"leaves"`
	Collapsed int    `json:"collapsed"`
	Visible   int    `json:"visible"`
}

func runCheck(args []string) error {
	t, err := openTree(args[0])
	if err != nil {
		var le *tree.LimitError
		if errors.As(err, &le) {
			printInfo("FAIL  %s\n  %s limit: %d > %d\n", args[0], le.Limit, le.Current, le.Maximum)
		}
		return err
	}

	if err := verify.AllInvariants(t); err != nil {
		return fmt.Errorf("index invariants violated: %w", err)
	}

	report := summarize(args[0], t)
	if jsonOut {
		return printJSON(report)
	}

	printInfo("OK  %s\n", report.File)
	printInfo("  nodes:     %d\n", report.Nodes)
	printInfo("  last id:   %d\n", report.LastID)
	printInfo("  max depth: %d\n", report.MaxDepth)
	printInfo("  leaves:    %d\n", report.Leaves)
	printInfo("  collapsed: %d\n", report.Collapsed)
	printInfo("  visible:   %d\n", report.Visible)
	return nil
}

func summarize(file string, t *tree.Tree) checkReport {
	report := checkReport{
		File:    file,
		Nodes:   t.Len(),
		LastID:  uint64(t.LastIssued()),
		Visible: len(t.Visible(true)),
	}
	t.Walk(types.RootID, func(e *tree.Entry) bool {
		if d, ok := t.Depth(e.ID()); ok && d > report.MaxDepth {
			report.MaxDepth = d
		}
		if e.ChildCount() == 0 {
			report.Leaves++
		}
		if t.Collapsed(e.ID()) {
			report.Collapsed++
		}
		return true
	})
	return report
}
