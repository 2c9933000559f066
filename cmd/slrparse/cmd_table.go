package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/shiftreduce/lang/minic"
	"github.com/npillmayer/shiftreduce/lr"
)

func newTableCmd() *cobra.Command {
	var asHTML, asDot bool
	var outfile string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Export the MiniC parse table",
		Long: `Export the MiniC parse table.

Without flags, table entries are listed one per line. --html writes an HTML
table, --dot writes the state diagram in Graphviz format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asHTML && asDot {
				return fmt.Errorf("--html and --dot are mutually exclusive")
			}
			g, err := minic.Grammar()
			if err != nil {
				return err
			}
			t, err := minic.Table()
			if err != nil {
				return err
			}
			var w io.Writer = os.Stdout
			if outfile != "" {
				f, err := os.Create(outfile)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			switch {
			case asHTML:
				lr.TableAsHTML(g, t, w)
			case asDot:
				lr.TableToGraphViz(t, w)
			default:
				listTable(t, w)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "export as HTML")
	cmd.Flags().BoolVar(&asDot, "dot", false, "export state diagram as Graphviz dot")
	cmd.Flags().StringVarP(&outfile, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func listTable(t *lr.Table, w io.Writer) {
	fmt.Fprintf(w, "# %d states, %d entries, start state %d\n",
		t.StateCount(), t.EntryCount(), t.StartState())
	t.Each(func(state lr.State, A lr.Symbol, act lr.Action) {
		fmt.Fprintf(w, "%3d  %-12s %s\n", state, A, act)
	})
}
