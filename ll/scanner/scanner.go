/*
Package scanner implements a tokenizer for C source code.

Tokens are classified by character classes into keywords, identifiers,
numbers, operators, separators, literals, preprocessor directives and
comments. The tokenizer is built on lexmachine, which compiles the token
patterns into a DFA once; afterwards scanners may be created for any number
of inputs.

    lexer, err := scanner.NewCLexer()
    …
    scan, err := lexer.Scanner(`int main() { return 0; }`)
    for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
        fmt.Printf("%s %q\n", scanner.Category(token.TokType()), token.Lexeme())
    }

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/grammarian"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammarian.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("grammarian.scanner")
}

// EOF is identical to text/scanner.EOF.
const EOF = scanner.EOF

// Token categories for C source code.
const (
	Keyword grammarian.TokType = iota + 1
	PrimitiveFunction
	Identifier
	Integer
	Float
	Operator
	Separator
	StringLiteral
	CharLiteral
	PreprocessorDirective
	SpecialSymbol
	Comment
	Other
)

var categoryNames = []string{
	"EOF", "KEYWORD", "PRIMITIVE_FUNCTION", "IDENTIFIER", "INTEGER", "FLOAT", "OPERATOR",
	"SEPARATOR", "STRING_LITERAL", "CHAR_LITERAL", "PREPROCESSOR_DIRECTIVE",
	"SPECIAL_SYMBOL", "COMMENT", "OTHER",
}

// Category returns a printable name for a token category.
func Category(t grammarian.TokType) string {
	if t == EOF {
		return categoryNames[0]
	}
	if t < Keyword || t > Other {
		return fmt.Sprintf("TOKEN(%d)", int(t))
	}
	return categoryNames[t]
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() grammarian.Token
	SetErrorHandler(func(error))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type.
type DefaultToken struct {
	kind   grammarian.TokType
	lexeme string
	Val    interface{}
	span   grammarian.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ grammarian.TokType, lexeme string, span grammarian.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() grammarian.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() grammarian.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%s %q>", Category(t.kind), t.lexeme)
}

var _ grammarian.Token = DefaultToken{}
