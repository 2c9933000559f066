package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	var tlevel string
	rootCmd := &cobra.Command{
		Use:           "slrparse",
		Short:         "A shift-reduce parser for MiniC token streams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setTraceLevel(tracing.TraceLevelFromString(tlevel))
		},
	}
	rootCmd.PersistentFlags().StringVar(&tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newREPLCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newGrammarCmd())

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setTraceLevel sets the level for the command itself and for the packages
// it uses.
func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"shiftreduce.cli", "shiftreduce.lr", "shiftreduce.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("trace level is %v", level)
}
