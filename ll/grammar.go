package ll

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/exp/slices"
)

// DefaultStart is the conventional start symbol of a grammar.
const DefaultStart Symbol = 'S'

// --- Symbols ---------------------------------------------------------------

// Symbol is a single character of a grammar. Uppercase letters are
// non-terminals, everything else is a terminal.
type Symbol rune

// IsTerminal returns true if this symbol is matched literally against input.
func (A Symbol) IsTerminal() bool {
	return !unicode.IsUpper(rune(A))
}

// IsNonTerminal returns true if A is an uppercase letter.
func (A Symbol) IsNonTerminal() bool {
	return unicode.IsUpper(rune(A))
}

func (A Symbol) String() string {
	return string(A)
}

// symbols splits a rule string into grammar symbols.
func symbols(text string) []Symbol {
	syms := make([]Symbol, 0, len(text))
	for _, r := range text {
		syms = append(syms, Symbol(r))
	}
	return syms
}

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules cannot be shared between grammars.
// A rule is one alternative for expanding its left hand side.
type Rule struct {
	Serial int      // order number of this rule within a grammar
	LHS    Symbol   // left hand side, a non-terminal
	rhs    []Symbol // right hand side, may be empty
}

func newRule(lhs Symbol, rhs []Symbol) *Rule {
	return &Rule{
		Serial: -1,
		LHS:    lhs,
		rhs:    rhs,
	}
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []Symbol {
	return slices.Clone(r.rhs)
}

// Len returns the number of symbols of the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// Symbol returns the i-th symbol of the right hand side.
func (r *Rule) Symbol(i int) Symbol {
	return r.rhs[i]
}

// IsEpsilon is true for empty rules.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// First returns the leading symbol of the right hand side, or 0 for an
// epsilon rule.
func (r *Rule) First() Symbol {
	if len(r.rhs) == 0 {
		return 0
	}
	return r.rhs[0]
}

// Text returns the right hand side as a rule string.
func (r *Rule) Text() string {
	var b strings.Builder
	for _, A := range r.rhs {
		b.WriteRune(rune(A))
	}
	return b.String()
}

// Equals compares the right hand sides of two rules.
func (r *Rule) Equals(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.LHS == other.LHS && slices.Equal(r.rhs, other.rhs)
}

func (r *Rule) String() string {
	if r.IsEpsilon() {
		return fmt.Sprintf("%s ::= ε", r.LHS)
	}
	return fmt.Sprintf("%s ::= %s", r.LHS, r.Text())
}

// --- Grammar ---------------------------------------------------------------

// Grammar maps non-terminals to ordered lists of alternatives.
// Grammars are created by a GrammarBuilder and are read-only afterwards.
// It is therefore safe to use a grammar from more than one goroutine.
type Grammar struct {
	name     string
	start    Symbol
	rules    []*Rule             // all rules, indexed by serial number
	nonterms *linkedhashmap.Map // Symbol -> []*Rule, in order of appearance
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		name:     name,
		start:    DefaultStart,
		rules:    make([]*Rule, 0, 8),
		nonterms: linkedhashmap.New(),
	}
}

// Name returns the name of the grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// NonTerminals returns the defined non-terminals, in order of definition.
func (g *Grammar) NonTerminals() []Symbol {
	keys := g.nonterms.Keys()
	N := make([]Symbol, len(keys))
	for i, k := range keys {
		N[i] = k.(Symbol)
	}
	return N
}

// IsDefined returns true if there are alternatives for non-terminal N.
func (g *Grammar) IsDefined(N Symbol) bool {
	_, found := g.nonterms.Get(N)
	return found
}

// Alternatives returns the rules for non-terminal N in order of declaration.
// Clients must not modify the slice returned.
func (g *Grammar) Alternatives(N Symbol) ([]*Rule, bool) {
	if alts, found := g.nonterms.Get(N); found {
		return alts.([]*Rule), true
	}
	return nil, false
}

// EachNonTerminal iterates over all non-terminals of the grammar, in order of
// definition, and applies a mapper function to each of them.
// Returns the results of the mapper calls.
func (g *Grammar) EachNonTerminal(mapper func(N Symbol, alts []*Rule) interface{}) []interface{} {
	var r []interface{}
	it := g.nonterms.Iterator()
	for it.Next() {
		r = append(r, mapper(it.Key().(Symbol), it.Value().([]*Rule)))
	}
	return r
}

// Undefined returns all non-terminals which are referenced on the right hand
// side of a rule, but have no alternatives. The order of the result follows
// the first reference.
func (g *Grammar) Undefined() []Symbol {
	seen := hashset.New()
	var undef []Symbol
	for _, r := range g.rules {
		for _, A := range r.rhs {
			if A.IsNonTerminal() && !g.IsDefined(A) && !seen.Contains(A) {
				seen.Add(A)
				undef = append(undef, A)
			}
		}
	}
	return undef
}

// grammarShape is the exported form of a grammar used for hashing.
type grammarShape struct {
	Start string
	Rules []string
}

// Signature returns a fingerprint of the grammar's structure. Grammars with
// equal start symbols and equal rules in equal order have equal signatures,
// regardless of their names.
func (g *Grammar) Signature() string {
	shape := grammarShape{Start: g.start.String()}
	for _, r := range g.rules {
		shape.Rules = append(shape.Rules, r.String())
	}
	h, err := structhash.Hash(shape, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %s: %v", g.name, err)
		return ""
	}
	return h
}

// Dump is a debugging helper, writing all rules to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.name)
	tracer().Debugf("start symbol = %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for i, N := range g.NonTerminals() {
		if i > 0 {
			b.WriteString("\n")
		}
		alts, _ := g.Alternatives(N)
		b.WriteString(N.String())
		b.WriteString(" ->")
		for j, r := range alts {
			if j > 0 {
				b.WriteString(" |")
			}
			if r.IsEpsilon() {
				b.WriteString(" ε")
			} else {
				b.WriteString(" " + r.Text())
			}
		}
	}
	return b.String()
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder. Errors are collected and reported by Grammar().
type GrammarBuilder struct {
	g    *Grammar
	errs []error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(gname)}
}

// StartSymbol sets the start symbol of the grammar (default is 'S').
func (gb *GrammarBuilder) StartSymbol(S Symbol) *GrammarBuilder {
	if !S.IsNonTerminal() {
		gb.errs = append(gb.errs, fmt.Errorf("start symbol %q is not a non-terminal", S))
		return gb
	}
	gb.g.start = S
	return gb
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(N Symbol) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: N}
}

// Rules adds one rule for each rule string given. In a rule string uppercase
// characters denote non-terminals, everything else terminals.
// An empty string adds an epsilon rule.
func (gb *GrammarBuilder) Rules(N Symbol, rules ...string) *GrammarBuilder {
	for _, text := range rules {
		gb.appendRule(newRule(N, symbols(text)))
	}
	return gb
}

func (gb *GrammarBuilder) appendRule(r *Rule) *Rule {
	if !r.LHS.IsNonTerminal() {
		gb.errs = append(gb.errs, fmt.Errorf("left hand side %q of rule %q is not a non-terminal",
			r.LHS, r.Text()))
		return r
	}
	r.Serial = len(gb.g.rules)
	gb.g.rules = append(gb.g.rules, r)
	var alts []*Rule
	if a, found := gb.g.nonterms.Get(r.LHS); found {
		alts = a.([]*Rule)
	}
	gb.g.nonterms.Put(r.LHS, append(alts, r))
	return r
}

// Grammar returns the grammar built so far. After this call the builder
// should not be used any more.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.errs) > 0 {
		return gb.g, errors.Join(gb.errs...)
	}
	if len(gb.g.rules) == 0 {
		return gb.g, fmt.Errorf("grammar %s has no rules", gb.g.name)
	}
	return gb.g, nil
}

// RuleBuilder is a builder type for rules.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(A Symbol) *RuleBuilder {
	if !A.IsNonTerminal() {
		rb.gb.errs = append(rb.gb.errs, fmt.Errorf("symbol %q is not a non-terminal", A))
		return rb
	}
	rb.rhs = append(rb.rhs, A)
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(a Symbol) *RuleBuilder {
	if !a.IsTerminal() {
		rb.gb.errs = append(rb.gb.errs, fmt.Errorf("symbol %q is not a terminal", a))
		return rb
	}
	rb.rhs = append(rb.rhs, a)
	return rb
}

// Epsilon sets an epsilon-production and ends the rule.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}

// End ends a rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	return rb.gb.appendRule(newRule(rb.lhs, rb.rhs))
}
