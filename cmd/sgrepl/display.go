package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/npillmayer/grammarian"
	"github.com/npillmayer/grammarian/ll"
	"github.com/npillmayer/grammarian/ll/ptree"
	"github.com/npillmayer/grammarian/ll/scanner"
)

// --- Parse tree display ----------------------------------------------------

// leveler is a tree listener collecting a leveled list from a parse tree,
// suitable for pterm's tree printer.
type leveler struct {
	list pterm.LeveledList
}

func (l *leveler) EnterRule(rule *ll.Rule, children []*ptree.Node, ctxt ptree.RuleCtxt) bool {
	l.list = append(l.list, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  fmt.Sprintf("%s -- %s", rule.LHS, ptree.RuleText(rule)),
	})
	return true
}

func (l *leveler) ExitRule(*ll.Rule, []*ptree.Node, []interface{}, ptree.RuleCtxt) interface{} {
	return nil
}

func (l *leveler) Terminal(a ll.Symbol, ctxt ptree.RuleCtxt) interface{} {
	l.list = append(l.list, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  a.String(),
	})
	return nil
}

var _ ptree.Listener = &leveler{}

func treeDisplay(tree *ptree.Node) pterm.TreeNode {
	l := &leveler{}
	tree.Walk(l, ptree.LtoR, ptree.Continue)
	tracer().Debugf("|ll| = %d, ll = %v", len(l.list), l.list)
	return pterm.NewTreeFromLeveledList(l.list)
}

// --- Token display ---------------------------------------------------------

var categoryColors = map[grammarian.TokType]pterm.Color{
	scanner.Keyword:               pterm.FgBlue,
	scanner.PrimitiveFunction:     pterm.FgMagenta,
	scanner.Identifier:            pterm.FgWhite,
	scanner.Integer:               pterm.FgGreen,
	scanner.Float:                 pterm.FgGreen,
	scanner.Operator:              pterm.FgRed,
	scanner.Separator:             pterm.FgYellow,
	scanner.StringLiteral:         pterm.FgCyan,
	scanner.CharLiteral:           pterm.FgCyan,
	scanner.PreprocessorDirective: pterm.FgLightMagenta,
	scanner.SpecialSymbol:         pterm.FgLightRed,
}

// colored joins tokens, color coded by category.
func colored(tokens []grammarian.Token) string {
	var b strings.Builder
	for i, token := range tokens {
		if i > 0 {
			b.WriteString(" ")
		}
		if color, ok := categoryColors[token.TokType()]; ok {
			b.WriteString(color.Sprint(token.Lexeme()))
		} else {
			b.WriteString(token.Lexeme())
		}
	}
	return b.String()
}
