package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/shiftreduce/lang/minic"
	"github.com/npillmayer/shiftreduce/lr/slr"
)

func newREPLCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse MiniC token streams interactively",
		Long: `Start an interactive session. Every line entered is parsed as a
complete MiniC program. Quit with <ctrl>D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := minic.Parser()
			if err != nil {
				return err
			}
			repl, err := readline.New("slrparse> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			pterm.Info.Println("Welcome to slrparse")
			tracer().Infof("Quit with <ctrl>D")
			loop(repl, p, quiet)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print parse trees")

	return cmd
}

func loop(repl *readline.Instance, p *slr.Parser, quiet bool) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		root, err := parse(p, line)
		report(root, err, quiet)
	}
	println("Good bye!")
}
