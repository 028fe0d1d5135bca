/*
Package ll implements grammars for top-down parsing.

Grammars are made from single-character symbols. Uppercase letters denote
non-terminals, every other character is a terminal which will be matched
literally against an input character.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS('S').T('a').N('B').End()     // S  ->  a B
    b.LHS('S').T('b').End()            // S  ->  b
    b.LHS('B').T('c').End()            // B  ->  c

or, more compact, with rule strings:

    b.Rules('S', "aB", "b")
    b.Rules('B', "c")

This results in the following trivial grammar:

    g, _ := b.Grammar()
    g.Dump()

    0: S ::= aB
    1: S ::= b
    2: B ::= c

The order in which non-terminals and alternatives are added is significant:
it is the order in which a recursive-descent parser will try alternatives.

Simple Grammars

A grammar is called simple if every non-terminal passes the following checks,
in this order:

    1. no alternative starts with the non-terminal itself (left recursion)
    2. no alternative starts with any non-terminal
    3. no alternative is empty
    4. no two alternatives start with the same terminal
    5. no two alternatives are identical

CheckSimple reports the first violation found. For a simple grammar a parser
is always able to select an alternative by looking at the next input
character only.

Reading Grammars

Grammars may be read from text, one production per line:

    # comment
    %start S
    S -> aB | b
    B -> c

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammarian.ll'.
func tracer() tracing.Trace {
	return tracing.Select("grammarian.ll")
}
