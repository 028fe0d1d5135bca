/*
Package ptree implements parse trees for recursive-descent parsing.

A parse tree records a derivation: every inner node carries the non-terminal
expanded and the rule applied, every leaf a terminal matched against one input
character. Children are ordered like the symbols of the rule applied.

Parse trees may be walked top-down with a Listener, similar to the listener
pattern of parser generators. Listeners get called for entering and exiting
rules and for every terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/grammarian"
	"github.com/npillmayer/grammarian/ll"
)

// Node is a node of a parse tree. It is either an inner node for a non-terminal
// (with Rule set to the rule applied) or a leaf for a terminal (Rule is nil).
type Node struct {
	Symbol   ll.Symbol       // non-terminal expanded or terminal matched
	Rule     *ll.Rule        // rule applied, nil for leafs
	Children []*Node         // one child per symbol of Rule's right hand side
	Span     grammarian.Span // input positions covered by this node
}

// Leaf creates a node for a terminal matched at input position pos.
func Leaf(a ll.Symbol, pos uint64) *Node {
	return &Node{
		Symbol: a,
		Span:   grammarian.Span{pos, pos + 1},
	}
}

// Internal creates a node for the application of rule r, given the children
// nodes. If span is null it is calculated from the children.
func Internal(r *ll.Rule, children []*Node, span grammarian.Span) *Node {
	if span.IsNull() && len(children) > 0 {
		span = children[0].Span
		for _, ch := range children[1:] {
			span = span.Extend(ch.Span)
		}
	}
	return &Node{
		Symbol:   r.LHS,
		Rule:     r,
		Children: children,
		Span:     span,
	}
}

// IsLeaf returns true for terminal nodes.
func (n *Node) IsLeaf() bool {
	return n.Rule == nil
}

// Leaves collects the terminals of a tree from left to right.
func (n *Node) Leaves() []ll.Symbol {
	if n == nil {
		return nil
	}
	var leaves []ll.Symbol
	stack := arraystack.New()
	stack.Push(n)
	for !stack.Empty() {
		x, _ := stack.Pop()
		node := x.(*Node)
		if node.IsLeaf() {
			leaves = append(leaves, node.Symbol)
			continue
		}
		for i := len(node.Children) - 1; i >= 0; i-- { // push right to left
			stack.Push(node.Children[i])
		}
	}
	return leaves
}

// Flatten concatenates the leaves of a tree. For a tree produced by a
// successful parse this is the input string.
func (n *Node) Flatten() string {
	var b strings.Builder
	for _, a := range n.Leaves() {
		b.WriteRune(rune(a))
	}
	return b.String()
}

// Equal checks two trees for structural equality, i.e. equal symbols,
// equal rules (by right hand side) and equal children.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Symbol != other.Symbol || n.IsLeaf() != other.IsLeaf() {
		return false
	}
	if !n.IsLeaf() && !n.Rule.Equals(other.Rule) {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i, ch := range n.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String returns a tree in a compact list notation, e.g.
//
//    (S a (B c))
//
func (n *Node) String() string {
	if n == nil {
		return "()"
	}
	if n.IsLeaf() {
		return n.Symbol.String()
	}
	var b bytes.Buffer
	b.WriteString("(")
	b.WriteString(n.Symbol.String())
	for _, ch := range n.Children {
		b.WriteString(" ")
		b.WriteString(ch.String())
	}
	b.WriteString(")")
	return b.String()
}

// Render writes an indented representation of a tree to w. Terminals are
// indented one level deeper than their rule's right hand side.
// For a grammar S → aB, B → c and input "ac" the output is
//
//    S -- aB
//        |    |-- a
//        |B -- c
//        |    |    |-- c
//
func (n *Node) Render(w io.Writer) error {
	return render(w, n, "")
}

func render(w io.Writer, n *Node, indent string) error {
	if n.IsLeaf() {
		_, err := fmt.Fprintf(w, "%s    |-- %s\n", indent, n.Symbol)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s -- %s\n", indent, n.Symbol, RuleText(n.Rule)); err != nil {
		return err
	}
	for _, ch := range n.Children {
		if err := render(w, ch, indent+"    |"); err != nil {
			return err
		}
	}
	return nil
}

// RuleText is the right hand side of a rule as shown in tree output.
func RuleText(r *ll.Rule) string {
	if r.IsEpsilon() {
		return ll.Epsilon
	}
	return r.Text()
}
