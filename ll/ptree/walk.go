package ptree

import (
	"github.com/npillmayer/grammarian"
	"github.com/npillmayer/grammarian/ll"
)

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule receives the values calculated for the
// children (in the order of the rule's right hand side, nil for children not
// visited). ExitRule and Terminal may return user-defined values
// to be propagated upwards of the tree.
type Listener interface {
	EnterRule(*ll.Rule, []*Node, RuleCtxt) bool
	ExitRule(*ll.Rule, []*Node, []interface{}, RuleCtxt) interface{}
	Terminal(ll.Symbol, RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span      grammarian.Span // span of input symbols covered by this node
	Level     int             // nesting level
	RuleIndex int             // serial number of the rule, -1 for terminals
}

func makeCtxt(span grammarian.Span, level int, rule int) RuleCtxt {
	return RuleCtxt{
		Span:      span,
		Level:     level,
		RuleIndex: rule,
	}
}

// Walk traverses a tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
// The tree is not modified, so different goroutines may walk the same tree.
func (n *Node) Walk(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	if n == nil {
		return nil
	}
	return traverseTopDown(n, listener, dir, breakmode, 0)
}

func traverseTopDown(n *Node, listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	if n.IsLeaf() {
		return listener.Terminal(n.Symbol, makeCtxt(n.Span, level, -1))
	}
	if dir != RtoL {
		dir = LtoR
	}
	ctxt := makeCtxt(n.Span, level, n.Rule.Serial)
	values := make([]interface{}, len(n.Children))
	doContinue := listener.EnterRule(n.Rule, n.Children, ctxt)
	if doContinue || breakmode == Continue { // listener signalled us to traverse children nodes
		i := 0
		if dir == RtoL {
			i = len(n.Children) - 1
		}
		for ; i >= 0 && i < len(n.Children); i += int(dir) {
			values[i] = traverseTopDown(n.Children[i], listener, dir, breakmode, level+1)
		}
	}
	return listener.ExitRule(n.Rule, n.Children, values, ctxt)
}
