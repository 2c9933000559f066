package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/shiftreduce/lang/minic"
	"github.com/npillmayer/shiftreduce/lr/ptree"
	"github.com/npillmayer/shiftreduce/lr/scanner"
	"github.com/npillmayer/shiftreduce/lr/slr"
)

func newParseCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a MiniC token stream",
		Long: `Parse a sequence of white-space separated MiniC terminals.

If no file is provided, reads the token stream from stdin.
The parse tree is printed unless --quiet is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}
			p, err := minic.Parser()
			if err != nil {
				return err
			}
			root, err := parse(p, string(source))
			report(root, err, quiet)
			if err != nil {
				return fmt.Errorf("input rejected")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the parse tree")

	return cmd
}

// parse splits input into terminals and runs a parser on them.
func parse(p *slr.Parser, input string) (*ptree.Node, error) {
	ws, err := scanner.Words(input)
	if err != nil {
		return nil, err
	}
	return p.ParseTokens(ws)
}

// report prints the outcome of a parse.
func report(root *ptree.Node, err error, quiet bool) {
	if err != nil {
		pterm.Error.Println("Reject!")
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println("Accept!")
	if !quiet {
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(leveledTree(root))).Render()
	}
}

// leveledTree converts a parse tree into a pterm leveled list, in pre-order.
func leveledTree(root *ptree.Node) pterm.LeveledList {
	var ll pterm.LeveledList
	for node, depth := range root.All() {
		text := string(node.Symbol)
		if node.IsTerminal() {
			text = fmt.Sprintf("%s %v", node.Symbol, node.Span)
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  text,
		})
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}
