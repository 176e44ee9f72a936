package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/internal/load"
	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/pkg/printer"
	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
	"github.com/joshuapare/treekit/pkg/verify"
)

var (
	editFormat  string
	editOutput  string
	editOutline bool
)

func init() {
	cmd := newEditCmd()
	cmd.Flags().StringVar(&editFormat, "format", "json", "Snapshot format: json or yaml")
	cmd.Flags().StringVarP(&editOutput, "output", "o", "", "Write the snapshot to file instead of stdout")
	cmd.Flags().BoolVar(&editOutline, "outline", false, "Print the edited outline instead of a snapshot")
	rootCmd.AddCommand(cmd)
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file> <op>...",
		Short: "Apply structural edits by id",
		Long: `The edit command indexes a document, applies each operation in order and
writes the resulting snapshot. Ids refer to the index as it stands when the
operation runs; inserted nodes receive fresh ids and removed ids are never
reused.

Operations:
  remove:<id>
  open:<id>            open-all:<id>
  close:<id>           close-all:<id>
  append:<id>:<node>   prepend:<id>:<node>
  before:<id>:<node>   after:<id>:<node>
  insert:<id>:<pos>:<node>

<node> is an inline JSON or YAML object.

Example:
  treectl edit docs.json remove:4
  treectl edit docs.json 'append:1:{"name": "faq"}' close:6 --outline
  treectl edit docs.yaml 'insert:3:0:{name: setup}' --format yaml`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args)
		},
	}
	return cmd
}

// editOp is one parsed edit operation.
type editOp struct {
	verb     string
	id       types.ID
	position int
	node     tree.Node
}

func parseEditOp(s string) (editOp, error) {
	verb, rest, ok := strings.Cut(s, ":")
	if !ok {
		return editOp{}, fmt.Errorf("operation %q: missing id", s)
	}
	op := editOp{verb: verb}

	var idText, nodeText string
	switch verb {
	case "remove", "open", "open-all", "close", "close-all":
		idText = rest
	case "append", "prepend", "before", "after":
		if idText, nodeText, ok = strings.Cut(rest, ":"); !ok {
			return editOp{}, fmt.Errorf("operation %q: missing node", s)
		}
	case "insert":
		var posText string
		if idText, rest, ok = strings.Cut(rest, ":"); ok {
			posText, nodeText, ok = strings.Cut(rest, ":")
		}
		if !ok {
			return editOp{}, fmt.Errorf("operation %q: want insert:<id>:<pos>:<node>", s)
		}
		pos, err := strconv.Atoi(posText)
		if err != nil {
			return editOp{}, fmt.Errorf("operation %q: invalid position %q", s, posText)
		}
		op.position = pos
	default:
		return editOp{}, fmt.Errorf("operation %q: unknown verb %q", s, verb)
	}

	id, err := parseID(idText)
	if err != nil {
		return editOp{}, fmt.Errorf("operation %q: %w", s, err)
	}
	op.id = id

	if nodeText != "" {
		n, err := load.Bytes([]byte(nodeText), load.FormatYAML)
		if err != nil {
			return editOp{}, fmt.Errorf("operation %q: %w", s, err)
		}
		op.node = n
	}
	return op, nil
}

// apply runs op against t and returns a short description of the result.
func (op editOp) apply(t *tree.Tree) (string, error) {
	var (
		e   *tree.Entry
		err error
	)
	switch op.verb {
	case "remove":
		if _, err = t.Remove(op.id); err == nil {
			return fmt.Sprintf("removed %s", op.id), nil
		}
	case "open":
		err = t.Open(op.id)
	case "open-all":
		err = t.OpenAll(op.id)
	case "close":
		err = t.Close(op.id)
	case "close-all":
		err = t.CloseAll(op.id)
	case "append":
		e, err = t.Append(op.node, op.id)
	case "prepend":
		e, err = t.Prepend(op.node, op.id)
	case "before":
		e, err = t.InsertBefore(op.node, op.id)
	case "after":
		e, err = t.InsertAfter(op.node, op.id)
	case "insert":
		e, err = t.Insert(op.node, op.id, op.position)
	}
	if err != nil {
		return "", err
	}
	if e != nil {
		return fmt.Sprintf("inserted %s", e.ID()), nil
	}
	return fmt.Sprintf("%s %s", op.verb, op.id), nil
}

func runEdit(args []string) error {
	ops := make([]editOp, 0, len(args)-1)
	for _, s := range args[1:] {
		op, err := parseEditOp(s)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	t, err := openTree(args[0])
	if err != nil {
		return err
	}

	for i, op := range ops {
		result, err := op.apply(t)
		if err != nil {
			return fmt.Errorf("operation %d (%s): %w", i+1, args[i+1], err)
		}
		logger.Debug("edit applied", "op", args[i+1], "result", result)
		printVerbose("%s\n", result)
	}

	if err := verify.AllInvariants(t); err != nil {
		return fmt.Errorf("index invariants violated after edit: %w", err)
	}

	if editOutline {
		return printer.New(t, os.Stdout, printer.DefaultOptions()).PrintTree(types.RootID)
	}
	return emitSnapshot(t, editFormat, editOutput)
}
