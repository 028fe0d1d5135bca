package scanner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/grammarian"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var cKeywords = hashset.New()
var cPrimitives = hashset.New()
var cDirectives = hashset.New()

func init() {
	cKeywords.Add("auto", "break", "case", "char", "const", "continue", "default",
		"do", "double", "else", "enum", "extern", "float", "for", "goto",
		"if", "int", "long", "register", "return", "short", "signed",
		"sizeof", "static", "struct", "switch", "typedef", "union",
		"unsigned", "void", "volatile", "while")
	cPrimitives.Add("printf", "scanf", "puts", "gets", "fopen", "fclose", "fread",
		"fwrite", "fprintf", "fscanf", "fgets", "fputs", "malloc",
		"calloc", "realloc", "free", "exit", "abort", "assert")
	cDirectives.Add("#include", "#define", "#if", "#else", "#endif", "#ifdef", "#ifndef")
}

// operators and separators, matched literally
var cOperators = []string{
	"+", "-", "*", "/", "%", "=", "==", "!=", "<", ">", "<=", ">=",
	"&&", "||", "!", "&", "|", "^", "~", "<<", ">>",
}

var cSeparators = []string{"(", ")", "{", "}", "[", "]", ";", ",", "."}

// CLexer is a lexer for C source code. It is safe to create scanners from
// a single CLexer in multiple goroutines.
type CLexer struct {
	lexer *lexmachine.Lexer
}

// NewCLexer creates a lexer for C source code.
//
// NewCLexer will return an error if compiling the DFA failed.
func NewCLexer() (*CLexer, error) {
	lexer := lexmachine.NewLexer()
	// the order of patterns matters for matches of equal length
	lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), makeToken(Comment))
	lexer.Add([]byte(`//[^\n]*`), makeToken(Comment))
	lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	lexer.Add([]byte(`\"[^"]*\"`), makeToken(StringLiteral))
	lexer.Add([]byte(`\'[^']*\'`), makeToken(CharLiteral))
	lexer.Add([]byte(`#([a-z]|[A-Z])+`), classify(cDirectives, PreprocessorDirective, Other))
	lexer.Add([]byte(`#`), makeToken(SpecialSymbol))
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), classifyWord)
	lexer.Add([]byte(`[0-9]+\.[0-9]*`), makeToken(Float))
	lexer.Add([]byte(`[0-9]+`), makeToken(Integer))
	for _, lit := range cOperators {
		lexer.Add(literal(lit), makeToken(Operator))
	}
	for _, lit := range cSeparators {
		lexer.Add(literal(lit), makeToken(Separator))
	}
	lexer.Add([]byte(`.`), makeToken(Other))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return &CLexer{lexer: lexer}, nil
}

func literal(lit string) []byte {
	return []byte("\\" + strings.Join(strings.Split(lit, ""), "\\"))
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (cl *CLexer) Scanner(input string) (*CScanner, error) {
	s, err := cl.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &CScanner{scanner: s, Error: logError}, nil
}

// CScanner is a scanner type for C source code, implementing the
// Tokenizer interface.
type CScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*CScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (cs *CScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		cs.Error = logError
		return
	}
	cs.Error = h
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. After the end of input
// it returns tokens of type EOF.
func (cs *CScanner) NextToken() grammarian.Token {
	tok, err, eof := cs.scanner.Next()
	for err != nil {
		cs.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			cs.scanner.TC = ui.FailTC
		}
		tok, err, eof = cs.scanner.Next()
	}
	if eof {
		return MakeDefaultToken(EOF, "", grammarian.Span{})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q", Category(grammarian.TokType(token.Type)), token.Lexeme)
	start := uint64(token.TC)
	return MakeDefaultToken(
		grammarian.TokType(token.Type),
		string(token.Lexeme),
		grammarian.Span{start, start + uint64(len(token.Lexeme))},
	)
}

// --- Analysis --------------------------------------------------------------

var defaultLexer *CLexer
var defaultLexerErr error
var defaultLexerOnce sync.Once

// Analyze tokenizes C source code, separating comments from the other tokens.
func Analyze(code string) (tokens []grammarian.Token, comments []grammarian.Token, err error) {
	defaultLexerOnce.Do(func() {
		defaultLexer, defaultLexerErr = NewCLexer()
	})
	if defaultLexerErr != nil {
		return nil, nil, defaultLexerErr
	}
	return defaultLexer.Analyze(code)
}

// Analyze tokenizes C source code, separating comments from the other tokens.
func (cl *CLexer) Analyze(code string) (tokens []grammarian.Token, comments []grammarian.Token, err error) {
	scan, err := cl.Scanner(code)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot scan input: %w", err)
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		if token.TokType() == Comment {
			comments = append(comments, token)
		} else {
			tokens = append(tokens, token)
		}
	}
	return tokens, comments, scanErr
}

// --- Actions ---------------------------------------------------------------

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ grammarian.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// classify is an action which produces a token of type typ if the match is
// contained in set, and of type otherwise if not.
func classify(set *hashset.Set, typ, otherwise grammarian.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		if set.Contains(string(m.Bytes)) {
			return s.Token(int(typ), string(m.Bytes), m), nil
		}
		return s.Token(int(otherwise), string(m.Bytes), m), nil
	}
}

func classifyWord(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	word := string(m.Bytes)
	typ := Identifier
	if cKeywords.Contains(word) {
		typ = Keyword
	} else if cPrimitives.Contains(word) {
		typ = PrimitiveFunction
	}
	return s.Token(int(typ), word, m), nil
}
