package ll

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// Reason is a code for a violation of the simple-grammar property.
type Reason int

// Reasons why a grammar is not simple, in order of precedence.
const (
	NoViolation Reason = iota
	LeftRecursion
	LeadingNonTerminal
	EpsilonRule
	AmbiguousFirstSymbol
	DuplicateRule
)

func (r Reason) String() string {
	switch r {
	case NoViolation:
		return "no violation"
	case LeftRecursion:
		return "left recursion"
	case LeadingNonTerminal:
		return "starts with non-terminal"
	case EpsilonRule:
		return "epsilon rule"
	case AmbiguousFirstSymbol:
		return "ambiguous first symbol"
	case DuplicateRule:
		return "duplicate rule"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Violation is the error type returned by CheckSimple. It names the
// non-terminal and the alternative which violated a check.
type Violation struct {
	NonTerminal Symbol // non-terminal failing the check
	RuleIndex   int    // position of the offending alternative within the alternatives of NonTerminal
	Rule        *Rule  // the offending alternative
	Reason      Reason // the check which failed
}

func (v *Violation) Error() string {
	switch v.Reason {
	case LeftRecursion:
		return fmt.Sprintf("grammar isn't simple: left recursion detected in '%s' (%s)", v.NonTerminal, v.Rule)
	case LeadingNonTerminal:
		return fmt.Sprintf("grammar isn't simple: rule %s starts with non-terminal", v.Rule)
	case EpsilonRule:
		return fmt.Sprintf("grammar isn't simple: epsilon rule detected for '%s'", v.NonTerminal)
	case AmbiguousFirstSymbol:
		return fmt.Sprintf("grammar isn't simple: multiple rules for '%s' start with '%s'",
			v.NonTerminal, v.Rule.First())
	case DuplicateRule:
		return fmt.Sprintf("grammar isn't simple: multiple identical rules %s", v.Rule)
	}
	return fmt.Sprintf("grammar isn't simple: %s in '%s'", v.Reason, v.NonTerminal)
}

// CheckSimple checks if g is a simple grammar. It returns nil if g is simple,
// and a *Violation for the first failing check otherwise.
//
// Non-terminals are checked in order of definition. For each non-terminal the
// checks are done in order of precedence, with every check covering all the
// alternatives before the next check is done. Non-terminals which are
// referenced but not defined are not subject to any check.
func CheckSimple(g *Grammar) error {
	for _, N := range g.NonTerminals() {
		alts, _ := g.Alternatives(N)
		if v := checkNonTerminal(N, alts); v != nil {
			tracer().Infof("%s", v.Error())
			return v
		}
	}
	tracer().Infof("grammar %s is simple", g.Name())
	return nil
}

// IsSimple is a predicate form of CheckSimple.
func IsSimple(g *Grammar) bool {
	return CheckSimple(g) == nil
}

type ruleCheck struct {
	reason Reason
	check  func(N Symbol, alts []*Rule) int // returns index of offending rule or -1
}

var simpleChecks = []ruleCheck{
	{LeftRecursion, leftRecursive},
	{LeadingNonTerminal, leadingNonTerminal},
	{EpsilonRule, epsilon},
	{AmbiguousFirstSymbol, ambiguousFirst},
	{DuplicateRule, duplicate},
}

func checkNonTerminal(N Symbol, alts []*Rule) *Violation {
	for _, c := range simpleChecks {
		if inx := c.check(N, alts); inx >= 0 {
			return &Violation{
				NonTerminal: N,
				RuleIndex:   inx,
				Rule:        alts[inx],
				Reason:      c.reason,
			}
		}
	}
	return nil
}

func leftRecursive(N Symbol, alts []*Rule) int {
	for i, r := range alts {
		if !r.IsEpsilon() && r.First() == N {
			return i
		}
	}
	return -1
}

func leadingNonTerminal(N Symbol, alts []*Rule) int {
	for i, r := range alts {
		if !r.IsEpsilon() && r.First().IsNonTerminal() {
			return i
		}
	}
	return -1
}

func epsilon(N Symbol, alts []*Rule) int {
	for i, r := range alts {
		if r.IsEpsilon() {
			return i
		}
	}
	return -1
}

func ambiguousFirst(N Symbol, alts []*Rule) int {
	firsts := hashset.New()
	for i, r := range alts {
		if r.IsEpsilon() {
			continue
		}
		if firsts.Contains(r.First()) {
			return i
		}
		firsts.Add(r.First())
	}
	return -1
}

func duplicate(N Symbol, alts []*Rule) int {
	texts := hashset.New()
	for i, r := range alts {
		if texts.Contains(r.Text()) {
			return i
		}
		texts.Add(r.Text())
	}
	return -1
}
