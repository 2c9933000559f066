/*
Command slrparse parses programs of the MiniC language with a table-driven
shift-reduce parser and displays the resulting parse tree.

Input consists of terminal symbols separated by white space, as a lexical
analyzer would deliver them:

    vtype id assign num semi

Sub-commands are

    slrparse parse [file]            parse a file (or stdin) and print the tree
    slrparse repl                    parse lines interactively
    slrparse table [--html|--dot]    export the parse table
    slrparse grammar                 list grammar rules and fingerprint

The global flag --trace sets the trace level (Debug, Info or Error).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shiftreduce.cli'
func tracer() tracing.Trace {
	return tracing.Select("shiftreduce.cli")
}
