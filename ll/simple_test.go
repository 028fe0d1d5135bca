package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type ntRules struct {
	N     Symbol
	rules []string
}

func makeGrammar(t *testing.T, defs ...ntRules) *Grammar {
	b := NewGrammarBuilder("G")
	for _, d := range defs {
		b.Rules(d.N, d.rules...)
	}
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCheckSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammarian.ll")
	defer teardown()
	//
	testCases := []struct {
		name   string
		defs   []ntRules
		reason Reason
		N      Symbol
		inx    int
	}{
		{
			name: "simple grammar",
			defs: []ntRules{{'S', []string{"aB", "b"}}, {'B', []string{"c"}}},
		},
		{
			name:   "left recursion",
			defs:   []ntRules{{'S', []string{"Sa", "b"}}},
			reason: LeftRecursion, N: 'S', inx: 0,
		},
		{
			name:   "leading non-terminal of other non-terminal",
			defs:   []ntRules{{'S', []string{"Bc", "a"}}, {'B', []string{"b"}}},
			reason: LeadingNonTerminal, N: 'S', inx: 0,
		},
		{
			name:   "ambiguous first symbols",
			defs:   []ntRules{{'S', []string{"ab", "ac"}}},
			reason: AmbiguousFirstSymbol, N: 'S', inx: 1,
		},
		{
			name:   "epsilon rule",
			defs:   []ntRules{{'S', []string{"aB"}}, {'B', []string{"b", ""}}},
			reason: EpsilonRule, N: 'B', inx: 1,
		},
		{
			name:   "left recursion takes precedence over epsilon",
			defs:   []ntRules{{'S', []string{"", "Sa"}}},
			reason: LeftRecursion, N: 'S', inx: 1,
		},
		{
			name:   "left recursion takes precedence over leading non-terminal",
			defs:   []ntRules{{'S', []string{"Ba", "Sa"}}, {'B', []string{"b"}}},
			reason: LeftRecursion, N: 'S', inx: 1,
		},
		{
			name:   "identical rules share their first symbol",
			defs:   []ntRules{{'S', []string{"ab", "ab"}}},
			reason: AmbiguousFirstSymbol, N: 'S', inx: 1,
		},
		{
			name:   "non-terminals are checked in order of definition",
			defs:   []ntRules{{'S', []string{"aA", "bB"}}, {'A', []string{"xy", "xz"}}, {'B', []string{"Ba"}}},
			reason: AmbiguousFirstSymbol, N: 'A', inx: 1,
		},
		{
			name: "undefined non-terminals are not checked",
			defs: []ntRules{{'S', []string{"aC"}}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g := makeGrammar(t, tc.defs...)
			err := CheckSimple(g)
			if tc.reason == NoViolation {
				assert.NoError(err)
				assert.True(IsSimple(g))
				return
			}
			var v *Violation
			if assert.True(errors.As(err, &v), "expected a violation, got %v", err) {
				assert.Equal(tc.reason, v.Reason)
				assert.Equal(tc.N, v.NonTerminal)
				assert.Equal(tc.inx, v.RuleIndex)
				alts, _ := g.Alternatives(tc.N)
				assert.Same(alts[tc.inx], v.Rule)
				assert.NotEmpty(v.Error())
			}
		})
	}
}

func TestDuplicateCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammarian.ll")
	defer teardown()
	//
	// identical alternatives are caught by the first-symbol check when
	// checking a whole grammar; the duplicate check is still effective on its own
	g := makeGrammar(t, ntRules{'S', []string{"ab", "c", "ab"}})
	alts, _ := g.Alternatives('S')
	if inx := duplicate('S', alts); inx != 2 {
		t.Errorf("expected duplicate at index 2, got %d", inx)
	}
	if inx := duplicate('S', alts[:2]); inx != -1 {
		t.Errorf("expected no duplicate, got %d", inx)
	}
	if DuplicateRule.String() != "duplicate rule" {
		t.Errorf("unexpected reason string %q", DuplicateRule)
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammarian.ll")
	defer teardown()
	//
	g := makeGrammar(t, ntRules{'S', []string{"aB", "Bc"}}, ntRules{'B', []string{"b"}})
	sig := g.Signature()
	first := CheckSimple(g)
	for i := 0; i < 5; i++ {
		err := CheckSimple(g)
		if err.Error() != first.Error() {
			t.Errorf("check #%d differs: %v vs %v", i, err, first)
		}
	}
	if g.Signature() != sig {
		t.Errorf("checking modified the grammar")
	}
}
