package conditions

// Matcher selects the tree entry to remove. The set of matchers is closed:
// see MatchSegment, MatchGroup and MatchAttribute.
type Matcher interface {
	Matches(node Node) bool
	isMatcher()
}

type segmentMatcher struct {
	id string
}

// MatchSegment matches a segment leaf with the given id, negated or not.
func MatchSegment(id string) Matcher {
	return segmentMatcher{id: id}
}

func (segmentMatcher) isMatcher() {}

func (m segmentMatcher) Matches(node Node) bool {
	inner, _ := Unwrap(node)
	leaf, ok := inner.(Leaf)
	if !ok {
		return false
	}
	p, ok := leaf.Segment()
	return ok && p.Id == m.id
}

type groupMatcher struct {
	group   Group
	negated bool
}

// MatchGroup matches a group with exactly the same members in the same order.
// negated selects whether the plain or the negated form is matched.
func MatchGroup(group Group, negated bool) Matcher {
	return groupMatcher{group: group, negated: negated}
}

func (groupMatcher) isMatcher() {}

func (m groupMatcher) Matches(node Node) bool {
	inner, negated := Unwrap(node)
	if negated != m.negated {
		return false
	}
	g, ok := inner.(Group)
	return ok && g.Equal(m.group)
}

type attributeMatcher struct {
	field string
}

// MatchAttribute matches an attribute leaf constraining field, negated or not,
// whatever its operator and value.
func MatchAttribute(field string) Matcher {
	return attributeMatcher{field: field}
}

func (attributeMatcher) isMatcher() {}

func (m attributeMatcher) Matches(node Node) bool {
	inner, _ := Unwrap(node)
	leaf, ok := inner.(Leaf)
	if !ok {
		return false
	}
	p, ok := leaf.Attribute()
	return ok && p.Field == m.field
}

// MatcherFor returns the matcher that removes node the way its displayed chip does.
func MatcherFor(node Node) Matcher {
	if !Valid(node) {
		return nil
	}
	inner, negated := Unwrap(node)
	switch n := inner.(type) {
	case Group:
		return MatchGroup(n, negated)
	case Leaf:
		switch p := n.Predicate.(type) {
		case SegmentPredicate:
			return MatchSegment(p.Id)
		case AttributePredicate:
			return MatchAttribute(p.Field)
		}
	}
	return nil
}
