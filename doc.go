/*
Package grammarian is a small toolbox for teaching top-down parsing.

It focusses on "simple" grammars, i.e. grammars where every alternative of a
non-terminal starts with a distinct terminal, and on a backtracking
recursive-descent recognizer for them. Package structure is as follows:

■ ll: Package ll implements grammar symbols, rules and grammars, together with
a validator for the simple-grammar property.

■ ll/rd: Package rd implements a backtracking recursive-descent recognizer,
producing parse trees.

■ ll/ptree: Package ptree implements parse trees and a tree walker.

■ ll/scanner: Package scanner implements a character-class tokenizer for C source code.

■ cmd/sgrepl: An interactive command line tool to enter grammars, check them and
parse strings with them.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammarian
