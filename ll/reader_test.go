package ll

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammarian.ll")
	defer teardown()
	//
	assert := assert.New(t)
	N, alts, err := ParseProduction("S -> a B | b |ε")
	assert.NoError(err)
	assert.Equal(Symbol('S'), N)
	assert.Equal([]string{"aB", "b", ""}, alts)
	//
	_, alts, err = ParseProduction("B ->")
	assert.NoError(err)
	assert.Equal([]string{""}, alts)
	//
	for _, bad := range []string{"S = a", "s -> a", "SB -> a", " -> a"} {
		_, _, err = ParseProduction(bad)
		assert.Error(err, "expected %q to be rejected", bad)
	}
}

func TestReadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammarian.ll")
	defer teardown()
	//
	input := `
# a small simple grammar
%start E
E -> (EX) | n
X -> +E | *E
`
	g, err := ReadGrammar("expr", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != 'E' {
		t.Errorf("expected start symbol E, is %s", g.Start())
	}
	if g.Size() != 4 {
		t.Errorf("expected 4 rules, have %d", g.Size())
	}
	if err := CheckSimple(g); err != nil {
		t.Errorf("expected grammar to be simple: %v", err)
	}
	//
	_, err = ReadGrammar("broken", strings.NewReader("S -> a\nS => b\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error in line 2, got %v", err)
	}
}
