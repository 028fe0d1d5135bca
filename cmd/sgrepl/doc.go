/*
Command sgrepl provides an interactive command line tool (SG.REPL)
for simple grammars. Users enter productions of a grammar, check the grammar
for simplicity and then parse input strings with it. Accepted strings are
displayed together with their parse tree.

    sgrepl> S -> aB | b
    sgrepl> B -> c
    sgrepl> :check
    sgrepl> ac

SG.REPL additionally includes a tokenizer for C source code (command ':scan'),
which prints tokens color coded by their category.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammarian.repl'
func tracer() tracing.Trace {
	return tracing.Select("grammarian.repl")
}
