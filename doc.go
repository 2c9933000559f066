/*
Package shiftreduce is a table-driven shift-reduce parsing engine.

It drives a deterministic pushdown automaton over pre-computed LR parse
tables and builds a parse tree for every accepted input. Table construction
is not part of this module: tables are handed to the parser fully formed.
Package structure is as follows:

■ lr: Package lr implements grammars, parser actions and parse tables.

■ lr/slr: Package slr implements the shift/reduce parse engine.

■ lr/ptree: Package ptree implements parse tree nodes and traversals.

■ lr/scanner: Package scanner splits input text into terminal symbols.

■ lang/minic: Package minic holds a small C-like declaration language as
grammar and table data.

■ cmd/slrparse: Command slrparse parses MiniC token streams from the command line.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shiftreduce
