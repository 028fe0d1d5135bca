/*
Package rd implements a backtracking recursive-descent recognizer.

The recognizer tries the alternatives of a non-terminal in the order of
their declaration. The first alternative matching commits; failing
alternatives are undone by restoring the input position saved before trying
them. An input is accepted if the start symbol matches and all input
characters have been consumed.

    g, _ := ll.NewGrammarBuilder("G").Rules('S', "aB", "b").Rules('B', "c").Grammar()
    if err := ll.CheckSimple(g); err != nil {
        // grammar is not simple
    }
    p := rd.NewParser(g)
    accept, tree, err := p.Parse("ac")   // true, (S a (B c)), nil

For simple grammars (see package ll) the number of alternatives tried is
linear in the length of the input. Other grammars are parsed as well, but may
lead to exponential backtracking. Clients may limit the effort by setting a
step limit, either with option StepLimit or with configuration key
"recognizer-step-limit".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammarian.rd'.
func tracer() tracing.Trace {
	return tracing.Select("grammarian.rd")
}
