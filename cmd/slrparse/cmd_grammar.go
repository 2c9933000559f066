package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/shiftreduce/lang/minic"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "List the rules of the MiniC grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := minic.Grammar()
			if err != nil {
				return err
			}
			g.Dump() // only visible in debug mode
			for i := 0; i < g.Size(); i++ {
				fmt.Printf("%3d  %v\n", i, g.Rule(i))
			}
			pterm.Info.Println(fmt.Sprintf("%s: %d rules, fingerprint %s", g.Name, g.Size(), g.Fingerprint()))
			return nil
		},
	}
}
