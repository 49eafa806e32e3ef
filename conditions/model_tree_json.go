package conditions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chartbrew/customerquery/util"
)

// SegmentId is a segment identifier on the wire. Directories hand out both numeric
// and string ids; both decode, and ids are always encoded as strings.
type SegmentId string

func (id *SegmentId) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SegmentId(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("segment id must be a string or a number: %w", err)
	}
	*id = SegmentId(n.String())
	return nil
}

type SegmentRef struct {
	Id SegmentId `json:"id"`
}

type AttributeRef struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    *string  `json:"value,omitempty"`
}

// Entry is one element of the serialized tree. Exactly one field is set.
type Entry struct {
	Segment   *SegmentRef   `json:"segment,omitempty"`
	Attribute *AttributeRef `json:"attribute,omitempty"`
	Or        []Entry       `json:"or,omitempty"`
	Not       *Entry        `json:"not,omitempty"`
}

// SerializedTree is the structure handed to the query engine:
// {"and":[...]}, {"or":[...]} or {} when there are no entries.
type SerializedTree struct {
	Combinator Combinator
	Entries    []Entry
}

func (s SerializedTree) MarshalJSON() ([]byte, error) {
	if len(s.Entries) == 0 {
		return []byte("{}"), nil
	}
	combinator := s.Combinator
	if combinator == "" {
		combinator = CombinatorAnd
	}
	return json.Marshal(map[string][]Entry{string(combinator): s.Entries})
}

type wireTree struct {
	And *[]Entry `json:"and,omitempty"`
	Or  *[]Entry `json:"or,omitempty"`
}

func (s *SerializedTree) UnmarshalJSON(data []byte) error {
	return s.decode(data, util.DefaultConfig())
}

func (s *SerializedTree) decode(data []byte, config *util.JSONConfig) error {
	var w wireTree
	if err := util.Decode(data, &w, config); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedTree, err)
	}
	switch {
	case w.And != nil && w.Or != nil:
		return fmt.Errorf("%w: both %q and %q present", ErrMalformedTree, KeyAnd, KeyOr)
	case w.And != nil:
		*s = SerializedTree{Combinator: CombinatorAnd, Entries: *w.And}
	case w.Or != nil:
		*s = SerializedTree{Combinator: CombinatorOr, Entries: *w.Or}
	default:
		*s = SerializedTree{}
	}
	return nil
}

// Tree rebuilds the condition tree, rejecting any entry the tree cannot represent.
func (s SerializedTree) Tree() (Tree, error) {
	t := Tree{combinator: s.Combinator}
	nodes := make([]Node, 0, len(s.Entries))
	for i, e := range s.Entries {
		n, err := e.node()
		if err != nil {
			return Tree{}, fmt.Errorf("entry %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	if len(nodes) > 0 {
		t.nodes = nodes
	}
	return t, nil
}

func (e Entry) keys() []string {
	var keys []string
	if e.Segment != nil {
		keys = append(keys, KeySegment)
	}
	if e.Attribute != nil {
		keys = append(keys, KeyAttribute)
	}
	if e.Or != nil {
		keys = append(keys, KeyOr)
	}
	if e.Not != nil {
		keys = append(keys, KeyNot)
	}
	return keys
}

func (e Entry) node() (Node, error) {
	keys := e.keys()
	if len(keys) != 1 {
		return nil, fmt.Errorf("%w: entry must have exactly one of segment, attribute, or, not; got [%s]",
			ErrMalformedTree, strings.Join(keys, ","))
	}

	switch {
	case e.Segment != nil:
		if e.Segment.Id == "" {
			return nil, fmt.Errorf("%w: segment without id", ErrMalformedTree)
		}
		return SegmentLeaf(string(e.Segment.Id)), nil
	case e.Attribute != nil:
		a := e.Attribute
		if strings.TrimSpace(a.Field) == "" {
			return nil, fmt.Errorf("%w: attribute without field", ErrMalformedTree)
		}
		if !a.Operator.IsBase() {
			return nil, fmt.Errorf("%w: attribute operator %q", ErrMalformedTree, a.Operator)
		}
		value := ""
		if a.Value != nil {
			value = *a.Value
		}
		return AttributeLeaf(a.Field, a.Operator, value), nil
	case e.Or != nil:
		ids := make([]string, 0, len(e.Or))
		for _, member := range e.Or {
			if len(member.keys()) != 1 || member.Segment == nil {
				return nil, fmt.Errorf("%w: or-group members must be segments", ErrMalformedTree)
			}
			if member.Segment.Id == "" {
				return nil, fmt.Errorf("%w: segment without id", ErrMalformedTree)
			}
			ids = append(ids, string(member.Segment.Id))
		}
		group, err := NewGroup(ids...)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedTree, err)
		}
		return group, nil
	default:
		inner, err := e.Not.node()
		if err != nil {
			return nil, err
		}
		negatable, ok := inner.(Negatable)
		if !ok {
			return nil, fmt.Errorf("%w: double negation", ErrMalformedTree)
		}
		return Negate(negatable), nil
	}
}

// Serialize renders the tree in the query engine's format, preserving insertion order.
func (t Tree) Serialize() SerializedTree {
	entries := make([]Entry, 0, len(t.nodes))
	for _, n := range t.nodes {
		entries = append(entries, entryFor(n))
	}
	return SerializedTree{Combinator: t.Combinator(), Entries: entries}
}

func entryFor(node Node) Entry {
	switch n := node.(type) {
	case Leaf:
		switch p := n.Predicate.(type) {
		case SegmentPredicate:
			return Entry{Segment: &SegmentRef{Id: SegmentId(p.Id)}}
		case AttributePredicate:
			ref := &AttributeRef{Field: p.Field, Operator: p.Operator}
			if p.Operator == OperatorEq {
				value := p.Value
				ref.Value = &value
			}
			return Entry{Attribute: ref}
		}
	case Group:
		members := make([]Entry, len(n.members))
		for i, m := range n.members {
			members[i] = Entry{Segment: &SegmentRef{Id: SegmentId(m.Id)}}
		}
		return Entry{Or: members}
	case Negated:
		inner := entryFor(n.inner)
		return Entry{Not: &inner}
	}
	panic(fmt.Sprintf("conditions: unexpected node type %T", node))
}

func (t Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Serialize())
}

func (t *Tree) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTree(data, util.DefaultConfig())
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTree decodes a serialized tree. A nil config uses util.DefaultConfig;
// util.StrictConfig additionally rejects unknown keys.
func ParseTree(data []byte, config *util.JSONConfig) (Tree, error) {
	var s SerializedTree
	if err := s.decode(data, config); err != nil {
		return Tree{}, err
	}
	return s.Tree()
}

// SegmentState reports whether a plain segment leaf for id is present, and if so
// whether it is negated. The first matching entry wins.
func (t Tree) SegmentState(id string) (present bool, negated bool) {
	m := MatchSegment(id)
	for _, n := range t.nodes {
		if m.Matches(n) {
			_, negated = Unwrap(n)
			return true, negated
		}
	}
	return false, false
}
