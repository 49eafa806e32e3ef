package conditions

import (
	"strings"
)

// SegmentNamer resolves a segment id to a display name.
type SegmentNamer interface {
	SegmentName(id string) string
}

// SegmentNames is a SegmentNamer backed by a map; unknown ids render as themselves.
type SegmentNames map[string]string

func (n SegmentNames) SegmentName(id string) string {
	if name, ok := n[id]; ok && name != "" {
		return name
	}
	return id
}

func DescribeCombinator(c Combinator) string {
	if c == CombinatorOr {
		return "At least one condition matches"
	}
	return "All conditions match"
}

func DescribeOperator(op Operator) string {
	switch op {
	case OperatorEq:
		return "is equal to"
	case OperatorNotEq:
		return "is not equal to"
	case OperatorExists:
		return "exists"
	case OperatorNotExists:
		return "does not exist"
	}
	return "equals"
}

// Describe renders a node the way it is shown in the condition list,
// e.g. "not in Churned or Trial" or "plan is equal to pro".
func Describe(node Node, namer SegmentNamer) string {
	if !Valid(node) {
		return ""
	}
	if namer == nil {
		namer = SegmentNames(nil)
	}

	inner, negated := Unwrap(node)
	prefix := "in "
	if negated {
		prefix = "not in "
	}

	switch n := inner.(type) {
	case Group:
		names := make([]string, len(n.members))
		for i, m := range n.members {
			names[i] = namer.SegmentName(m.Id)
		}
		return prefix + strings.Join(names, " or ")
	case Leaf:
		switch p := n.Predicate.(type) {
		case SegmentPredicate:
			return prefix + namer.SegmentName(p.Id)
		case AttributePredicate:
			op := Compose(negated, p.Operator)
			if op.RequiresValue() {
				if p.Value == "" {
					return p.Field + " " + DescribeOperator(op) + ` ""`
				}
				return p.Field + " " + DescribeOperator(op) + " " + p.Value
			}
			return p.Field + " " + DescribeOperator(op)
		}
	}
	return ""
}

func (t Tree) Describe(namer SegmentNamer) []string {
	out := make([]string, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = Describe(n, namer)
	}
	return out
}
