package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/pkg/printer"
	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

var (
	navAll   bool
	navSteps int
)

func init() {
	cmd := newNavCmd()
	cmd.Flags().BoolVar(&navAll, "all", false, "Step into collapsed nodes")
	cmd.Flags().IntVarP(&navSteps, "steps", "n", 1, "Number of steps to take (next and prev)")
	rootCmd.AddCommand(cmd)
}

func newNavCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nav <next|prev|last> <file> <id>",
		Short: "Navigate in document order",
		Long: `The nav command answers document-order queries from a node id.

  next  the following node; wraps to the root after the last one
  prev  the preceding node; the root has none
  last  the deepest last descendant

Collapsed subtrees are skipped unless --all is given.

Example:
  treectl nav next docs.json 3
  treectl nav prev docs.json 6 --all
  treectl nav next docs.json 1 -n 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNav(args)
		},
	}
	return cmd
}

// navResult is the JSON shape of a navigation answer.
type navResult struct {
	Direction string     `json:"direction"`
	From      types.ID   `json:"from"`
	Open      bool       `json:"open"`
	Path      []types.ID `json:"path"`
}

func runNav(args []string) error {
	direction := args[0]
	step, err := navStep(direction)
	if err != nil {
		return err
	}

	t, err := openTree(args[1])
	if err != nil {
		return err
	}
	from, err := parseID(args[2])
	if err != nil {
		return err
	}
	if _, ok := t.Entry(from); !ok {
		return fmt.Errorf("no node with id %s", from)
	}

	steps := navSteps
	if direction == "last" || steps < 1 {
		steps = 1
	}

	open := !navAll
	path := make([]types.ID, 0, steps)
	cur := from
	for i, n := 0, steps; i < n; i++ {
		next, ok := step(t, cur, open)
		if !ok {
			break
		}
		path = append(path, next)
		cur = next
	}

	if jsonOut {
		return printJSON(navResult{Direction: direction, From: from, Open: open, Path: path})
	}
	if len(path) == 0 {
		printInfo("%s: no %s node\n", from, direction)
		return nil
	}
	return printer.New(t, os.Stdout, printer.DefaultOptions()).PrintIDs(path)
}

func navStep(direction string) (func(*tree.Tree, types.ID, bool) (types.ID, bool), error) {
	switch direction {
	case "next":
		return (*tree.Tree).NextID, nil
	case "prev":
		return (*tree.Tree).PrevID, nil
	case "last":
		return (*tree.Tree).LastID, nil
	}
	return nil, fmt.Errorf("unknown direction %q (want next, prev or last)", direction)
}
