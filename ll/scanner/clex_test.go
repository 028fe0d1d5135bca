package scanner

import (
	"testing"

	"github.com/npillmayer/grammarian"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type tok struct {
	cat    grammarian.TokType
	lexeme string
}

func collect(t *testing.T, lexer *CLexer, input string) []tok {
	scan, err := lexer.Scanner(input)
	if err != nil {
		t.Fatal(err)
	}
	scan.SetErrorHandler(func(e error) {
		t.Error(e)
	})
	var toks []tok
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		t.Logf(" %22s | %q | @%d", Category(token.TokType()), token.Lexeme(), token.Span().From())
		toks = append(toks, tok{token.TokType(), token.Lexeme()})
	}
	return toks
}

func TestCLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammarian.scanner")
	defer teardown()
	//
	lexer, err := NewCLexer()
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		input    string
		expected []tok
	}{
		{"int x = 42;", []tok{
			{Keyword, "int"}, {Identifier, "x"}, {Operator, "="}, {Integer, "42"}, {Separator, ";"},
		}},
		{"if (a<=b && c!=3.14) printf(\"%d\", 'c');", []tok{
			{Keyword, "if"}, {Separator, "("}, {Identifier, "a"}, {Operator, "<="},
			{Identifier, "b"}, {Operator, "&&"}, {Identifier, "c"}, {Operator, "!="},
			{Float, "3.14"}, {Separator, ")"}, {PrimitiveFunction, "printf"},
			{Separator, "("}, {StringLiteral, `"%d"`}, {Separator, ","},
			{CharLiteral, "'c'"}, {Separator, ")"}, {Separator, ";"},
		}},
		{"#include <stdio.h>", []tok{
			{PreprocessorDirective, "#include"}, {Operator, "<"}, {Identifier, "stdio"},
			{Separator, "."}, {Identifier, "h"}, {Operator, ">"},
		}},
		{"#pragma # x<<=y", []tok{
			{Other, "#pragma"}, {SpecialSymbol, "#"}, {Identifier, "x"}, {Operator, "<<"},
			{Operator, "="}, {Identifier, "y"},
		}},
		{"while_1 $", []tok{
			{Identifier, "while_1"}, {Other, "$"},
		}},
	} {
		assert.Equal(t, tc.expected, collect(t, lexer, tc.input), "input %q", tc.input)
	}
}

func TestAnalyzeComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammarian.scanner")
	defer teardown()
	//
	code := `/* main
program */
int main() { // entry
    return 0;
}`
	tokens, comments, err := Analyze(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, have %d", len(comments))
	}
	if comments[0].Lexeme() != "/* main\nprogram */" || comments[1].Lexeme() != "// entry" {
		t.Errorf("unexpected comments %v", comments)
	}
	if len(tokens) != 9 {
		t.Errorf("expected 9 tokens, have %d: %v", len(tokens), tokens)
	}
	if tokens[0].Span().From() != uint64(len("/* main\nprogram */\n")) {
		t.Errorf("expected 'int' to start after comment, starts at %d", tokens[0].Span().From())
	}
}

func TestCategoryNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammarian.scanner")
	defer teardown()
	//
	assert.Equal(t, "KEYWORD", Category(Keyword))
	assert.Equal(t, "OTHER", Category(Other))
	assert.Equal(t, "EOF", Category(EOF))
	assert.Equal(t, "TOKEN(99)", Category(99))
}
