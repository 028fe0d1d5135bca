package ll

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Epsilon may be used in grammar text to denote an empty alternative.
const Epsilon = "ε"

// ParseProduction splits a line of the form
//
//    S -> aB | b
//
// into the left hand side and the rule strings of the alternatives.
// Whitespace within alternatives is ignored, thus neither blanks nor '|'
// are usable as terminals. An empty alternative or "ε" denotes an
// epsilon rule.
func ParseProduction(line string) (Symbol, []string, error) {
	lhs, rhs, found := strings.Cut(line, "->")
	if !found {
		return 0, nil, fmt.Errorf("production %q is missing '->'", line)
	}
	lhs = strings.TrimSpace(lhs)
	if utf8.RuneCountInString(lhs) != 1 {
		return 0, nil, fmt.Errorf("left hand side %q is not a single symbol", lhs)
	}
	N, _ := utf8.DecodeRuneInString(lhs)
	if !Symbol(N).IsNonTerminal() {
		return 0, nil, fmt.Errorf("left hand side %q is not a non-terminal", lhs)
	}
	var alts []string
	for _, alt := range strings.Split(rhs, "|") {
		alt = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, alt)
		if alt == Epsilon {
			alt = ""
		}
		alts = append(alts, alt)
	}
	return Symbol(N), alts, nil
}

// ReadGrammar reads a grammar from r, one production per line (see
// ParseProduction). Empty lines and lines starting with '#' are skipped.
// A line "%start X" sets the start symbol to X.
func ReadGrammar(name string, r io.Reader) (*Grammar, error) {
	b := NewGrammarBuilder(name)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "%start") {
			s := strings.TrimSpace(strings.TrimPrefix(line, "%start"))
			if utf8.RuneCountInString(s) != 1 {
				return nil, fmt.Errorf("line %d: malformed start symbol %q", lineno, s)
			}
			S, _ := utf8.DecodeRuneInString(s)
			b.StartSymbol(Symbol(S))
			continue
		}
		N, alts, err := ParseProduction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		b.Rules(N, alts...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading grammar %s: %w", name, err)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("read grammar %s with %d rules", name, g.Size())
	return g, nil
}
