package conditions

import (
	"github.com/chartbrew/customerquery/util"
)

// Tree is the accumulated filter: an ordered list of nodes joined by one combinator.
// Tree is an immutable value; every operation returns a new Tree and leaves the
// receiver untouched. The zero value is an empty tree with no committed combinator.
type Tree struct {
	combinator Combinator
	nodes      []Node
}

func NewTree(nodes ...Node) Tree {
	var t Tree
	for _, n := range nodes {
		t = t.Add(n)
	}
	return t
}

// Combinator returns the active combinator, defaulting to and.
func (t Tree) Combinator() Combinator {
	if t.combinator == "" {
		return CombinatorAnd
	}
	return t.combinator
}

func (t Tree) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

func (t Tree) Len() int {
	return len(t.nodes)
}

func (t Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Add appends node under the active combinator. A missing or malformed node leaves
// the tree unchanged. Duplicates are kept.
func (t Tree) Add(node Node) Tree {
	if !Valid(node) {
		util.Debugf("Ignoring invalid condition node %#v", node)
		return t
	}
	nodes := make([]Node, len(t.nodes), len(t.nodes)+1)
	copy(nodes, t.nodes)
	return Tree{
		combinator: t.Combinator(),
		nodes:      append(nodes, node),
	}
}

// Remove drops the first node m matches. No match returns the tree unchanged.
func (t Tree) Remove(m Matcher) Tree {
	i := t.index(m)
	if i < 0 {
		return t
	}
	nodes := make([]Node, 0, len(t.nodes)-1)
	nodes = append(nodes, t.nodes[:i]...)
	nodes = append(nodes, t.nodes[i+1:]...)
	return Tree{combinator: t.combinator, nodes: nodes}
}

func (t Tree) Contains(m Matcher) bool {
	return t.index(m) >= 0
}

func (t Tree) index(m Matcher) int {
	if m == nil {
		return -1
	}
	for i, n := range t.nodes {
		if m.Matches(n) {
			return i
		}
	}
	return -1
}

// SwitchCombinator changes how the nodes are joined. The nodes are kept as they are.
func (t Tree) SwitchCombinator(c Combinator) Tree {
	if !c.Valid() {
		util.Warnf("Ignoring invalid combinator %q", c)
		return t
	}
	return Tree{combinator: c, nodes: t.nodes}
}

// Equal compares combinator and nodes in order.
func (t Tree) Equal(other Tree) bool {
	if t.Combinator() != other.Combinator() || len(t.nodes) != len(other.nodes) {
		return false
	}
	for i := range t.nodes {
		if !t.nodes[i].Equal(other.nodes[i]) {
			return false
		}
	}
	return true
}
