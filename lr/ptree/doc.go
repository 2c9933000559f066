/*
Package ptree implements parse trees as built by the shift-reduce parser.

A parse tree consists of nodes, each carrying a grammar symbol and an ordered
list of children. Terminal nodes have no children and stand for exactly one input
token. Non-terminal nodes are created by reductions; their children reproduce the
right hand side of the grammar rule reduced, left to right. Nodes for
epsilon-productions have no children.

Parse trees carry no parsing logic. Clients traverse them either with a lazy
pre-order sequence of (node, depth) pairs

    for node, depth := range root.All() {
        fmt.Printf("%s%s\n", strings.Repeat("  ", depth), node.Symbol)
    }

or with a Listener, which gets called when entering and exiting rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shiftreduce.lr'.
func tracer() tracing.Trace {
	return tracing.Select("shiftreduce.lr")
}
