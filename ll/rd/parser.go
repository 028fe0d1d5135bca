package rd

import (
	"errors"
	"fmt"

	"github.com/npillmayer/grammarian"
	"github.com/npillmayer/grammarian/ll"
	"github.com/npillmayer/grammarian/ll/ptree"
	"github.com/npillmayer/schuko/gconf"
)

// ErrStepLimit is returned if a parse needs more alternative trials than allowed.
var ErrStepLimit = errors.New("recognizer step limit exceeded")

// UndefinedError is returned if the recognizer has to expand a non-terminal
// which has no rules in the grammar.
type UndefinedError struct {
	NonTerminal ll.Symbol // the non-terminal missing
	Pos         int       // input position where expansion has been tried
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined non-terminal '%s' at input position %d", e.NonTerminal, e.Pos)
}

// Parser is a recursive-descent recognizer for a grammar. A parser does not hold
// any state between calls to Parse, so it may be used concurrently.
type Parser struct {
	g         *ll.Grammar
	start     ll.Symbol
	stepLimit int // max number of alternatives to try, 0 = unlimited
}

// Option configures a parser.
type Option func(p *Parser)

// StartSymbol overrides the start symbol of the grammar.
func StartSymbol(S ll.Symbol) Option {
	return func(p *Parser) {
		p.start = S
	}
}

// StepLimit sets the maximum number of alternatives a parse may try.
// n ≤ 0 means unlimited.
func StepLimit(n int) Option {
	return func(p *Parser) {
		if n < 0 {
			n = 0
		}
		p.stepLimit = n
	}
}

// NewParser creates a recognizer for grammar g. g will not be modified.
func NewParser(g *ll.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:         g,
		start:     g.Start(),
		stepLimit: configuredStepLimit(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// configuredStepLimit reads the default step budget from the global
// configuration. Without any configuration it is 0 (unlimited).
func configuredStepLimit() int {
	if limit := gconf.GetInt("recognizer-step-limit"); limit > 0 {
		return limit
	}
	return 0
}

// Grammar returns the grammar of the parser.
func (p *Parser) Grammar() *ll.Grammar {
	return p.g
}

// Parse tries to derive input from the start symbol. If input is accepted, a
// parse tree is returned. A rejected input is not an error: Parse returns
// (false, nil, nil) for it. Errors are returned for undefined non-terminals
// and for exceeding the step limit.
func (p *Parser) Parse(input string) (bool, *ptree.Node, error) {
	r := p.newRun(input)
	tree, err := r.tryAlternatives(p.start)
	if err != nil {
		tracer().Infof("parse of %q aborted: %v", input, err)
		return false, nil, err
	}
	if tree == nil {
		tracer().Infof("input %q rejected after %d steps", input, r.steps)
		return false, nil, nil
	}
	if r.pos != len(r.input) {
		tracer().Infof("input %q rejected: %d characters left after %d steps",
			input, len(r.input)-r.pos, r.steps)
		return false, nil, nil
	}
	tracer().Infof("input %q accepted after %d steps", input, r.steps)
	return true, tree, nil
}

// --- Parse run -------------------------------------------------------------

// activation is an expansion of a non-terminal at an input position.
type activation struct {
	N   ll.Symbol
	pos int
}

// run holds the state of a single call to Parse.
type run struct {
	p      *Parser
	input  []rune
	pos    int                     // cursor, 0 ≤ pos ≤ len(input)
	steps  int                     // number of alternatives tried
	active map[activation]struct{} // expansions on the current derivation path
}

func (p *Parser) newRun(input string) *run {
	return &run{
		p:      p,
		input:  []rune(input),
		active: make(map[activation]struct{}),
	}
}

// tryAlternatives expands non-terminal N at the current position. It returns
// a tree node for the first alternative matching, or nil if no alternative
// matches. In the latter case the position is unchanged.
//
// Re-entering an expansion of N at the same position on the current derivation
// path fails. This happens for left-recursive grammars only and would never
// terminate otherwise.
func (r *run) tryAlternatives(N ll.Symbol) (*ptree.Node, error) {
	alts, ok := r.p.g.Alternatives(N)
	if !ok {
		return nil, &UndefinedError{NonTerminal: N, Pos: r.pos}
	}
	act := activation{N: N, pos: r.pos}
	if _, cycle := r.active[act]; cycle {
		tracer().Debugf("%s is already expanding at position %d", N, r.pos)
		return nil, nil
	}
	r.active[act] = struct{}{}
	defer delete(r.active, act)
	for _, rule := range alts {
		if r.p.stepLimit > 0 && r.steps >= r.p.stepLimit {
			return nil, ErrStepLimit
		}
		r.steps++
		mark := r.pos // checkpoint
		tracer().Debugf("try %v at position %d", rule, mark)
		children, ok, err := r.matchSequence(rule)
		if err != nil {
			return nil, err
		}
		if ok {
			span := grammarian.Span{uint64(mark), uint64(r.pos)}
			return ptree.Internal(rule, children, span), nil
		}
		r.pos = mark // backtrack
		tracer().Debugf("backtrack %v to position %d", rule, mark)
	}
	return nil, nil
}

// matchSequence matches the symbols of a rule's right hand side from left to
// right. If a symbol fails, the whole sequence fails and the children matched
// so far are discarded. Restoring the position is left to the caller.
func (r *run) matchSequence(rule *ll.Rule) ([]*ptree.Node, bool, error) {
	children := make([]*ptree.Node, 0, rule.Len())
	for i := 0; i < rule.Len(); i++ {
		A := rule.Symbol(i)
		if A.IsTerminal() {
			if r.pos >= len(r.input) || r.input[r.pos] != rune(A) {
				return nil, false, nil
			}
			children = append(children, ptree.Leaf(A, uint64(r.pos)))
			r.pos++
			continue
		}
		child, err := r.tryAlternatives(A)
		if err != nil || child == nil {
			return nil, false, err
		}
		children = append(children, child)
	}
	return children, true, nil
}
