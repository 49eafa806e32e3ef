package conditions

import (
	"fmt"
	"strings"
)

// Node is an entry of a condition tree: a Leaf, a Negated leaf or group, or a Group
// of segment leaves. The set of implementations is closed.
type Node interface {
	isNode()
	Equal(other Node) bool
	valid() bool
}

// Negatable is implemented by the nodes a Negated may wrap. Negated itself is not
// Negatable, so a double negation cannot be built.
type Negatable interface {
	Node
	isNegatable()
}

// Leaf is a single unwrapped predicate.
type Leaf struct {
	Predicate Predicate
}

func SegmentLeaf(id string) Leaf {
	return Leaf{Predicate: SegmentPredicate{Id: id}}
}

func AttributeLeaf(field string, base Operator, value string) Leaf {
	if base != OperatorEq {
		value = ""
	}
	return Leaf{Predicate: AttributePredicate{Field: field, Operator: base, Value: value}}
}

func (Leaf) isNode()      {}
func (Leaf) isNegatable() {}

func (l Leaf) Equal(other Node) bool {
	o, ok := other.(Leaf)
	return ok && l.valid() && o.valid() && l.Predicate.Equal(o.Predicate)
}

func (l Leaf) valid() bool {
	switch p := l.Predicate.(type) {
	case SegmentPredicate:
		return p.Id != ""
	case AttributePredicate:
		return strings.TrimSpace(p.Field) != "" && p.Operator.IsBase()
	default:
		return false
	}
}

// Segment returns the segment predicate of the leaf, if it is one.
func (l Leaf) Segment() (SegmentPredicate, bool) {
	p, ok := l.Predicate.(SegmentPredicate)
	return p, ok
}

// Attribute returns the attribute predicate of the leaf, if it is one.
func (l Leaf) Attribute() (AttributePredicate, bool) {
	p, ok := l.Predicate.(AttributePredicate)
	return p, ok
}

// Group is an OR-list of one or more segment predicates.
type Group struct {
	members []SegmentPredicate
}

// NewGroup builds an OR-group in the given order. An empty list, an empty id or a
// repeated id is rejected.
func NewGroup(ids ...string) (Group, error) {
	if len(ids) == 0 {
		return Group{}, fmt.Errorf("%w: a segment group needs at least one segment", ErrIncompleteConfig)
	}
	seen := make(map[string]struct{}, len(ids))
	members := make([]SegmentPredicate, len(ids))
	for i, id := range ids {
		if id == "" {
			return Group{}, fmt.Errorf("%w: segment without id", ErrIncompleteConfig)
		}
		if _, ok := seen[id]; ok {
			return Group{}, fmt.Errorf("%w: %q", ErrDuplicateSegment, id)
		}
		seen[id] = struct{}{}
		members[i] = SegmentPredicate{Id: id}
	}
	return Group{members: members}, nil
}

func (Group) isNode()      {}
func (Group) isNegatable() {}

func (g Group) Members() []SegmentPredicate {
	out := make([]SegmentPredicate, len(g.members))
	copy(out, g.members)
	return out
}

func (g Group) SegmentIds() []string {
	ids := make([]string, len(g.members))
	for i, m := range g.members {
		ids[i] = m.Id
	}
	return ids
}

func (g Group) Len() int {
	return len(g.members)
}

// Equal is order sensitive.
func (g Group) Equal(other Node) bool {
	o, ok := other.(Group)
	if !ok || len(o.members) != len(g.members) || !g.valid() {
		return false
	}
	for i := range g.members {
		if g.members[i] != o.members[i] {
			return false
		}
	}
	return true
}

func (g Group) valid() bool {
	return len(g.members) > 0
}

// Negated is the logical NOT of a Leaf or a Group.
type Negated struct {
	inner Negatable
}

func Negate(n Negatable) Negated {
	return Negated{inner: n}
}

func (Negated) isNode() {}

func (n Negated) Inner() Negatable {
	return n.inner
}

func (n Negated) Equal(other Node) bool {
	o, ok := other.(Negated)
	return ok && n.valid() && o.valid() && n.inner.Equal(o.inner)
}

func (n Negated) valid() bool {
	return n.inner != nil && n.inner.valid()
}

// Unwrap reports the node under an optional negation and whether it was negated.
func Unwrap(node Node) (Node, bool) {
	if n, ok := node.(Negated); ok {
		return n.inner, true
	}
	return node, false
}

// Valid reports whether node is a well formed tree entry.
func Valid(node Node) bool {
	return node != nil && node.valid()
}
