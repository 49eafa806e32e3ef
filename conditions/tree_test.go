package conditions

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func marshalTree(t *testing.T, tree Tree) string {
	t.Helper()
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	return string(data)
}

func mustNode(t *testing.T) func(Node, error) Node {
	return func(node Node, err error) Node {
		t.Helper()
		require.NoError(t, err)
		return node
	}
}

func TestTree_ScenarioA_SegmentGroup(t *testing.T) {
	node := mustNode(t)(BuildSegmentNode([]string{"s1", "s2"}, false))
	tree := Tree{}.Add(node)

	require.Equal(t, `{"and":[{"or":[{"segment":{"id":"s1"}},{"segment":{"id":"s2"}}]}]}`, marshalTree(t, tree))
}

func TestTree_ScenarioB_AttributeExists(t *testing.T) {
	node := mustNode(t)(BuildAttributeNode("country", OperatorExists, ""))
	tree := Tree{}.Add(node)

	require.Equal(t, `{"and":[{"attribute":{"field":"country","operator":"exists"}}]}`, marshalTree(t, tree))
}

func TestTree_ScenarioC_SwitchCombinator(t *testing.T) {
	tree := Tree{}.
		Add(mustNode(t)(BuildSegmentNode([]string{"s1"}, false))).
		Add(mustNode(t)(BuildAttributeNode("plan", OperatorEq, "pro")))

	switched := tree.SwitchCombinator(CombinatorOr)

	require.Equal(t, `{"or":[{"segment":{"id":"s1"}},{"attribute":{"field":"plan","operator":"eq","value":"pro"}}]}`, marshalTree(t, switched))
	require.Equal(t, CombinatorAnd, tree.Combinator())
}

func TestTree_ScenarioD_RemoveMissingGroup(t *testing.T) {
	tree := NewTree(
		SegmentLeaf("s1"),
		mustNode(t)(BuildSegmentNode([]string{"s2", "s3"}, false)),
	)
	before := marshalTree(t, tree)

	missing, err := NewGroup("s3", "s2")
	require.NoError(t, err)

	require.Equal(t, before, marshalTree(t, tree.Remove(MatchGroup(missing, false))))
	present, err := NewGroup("s2", "s3")
	require.NoError(t, err)
	require.Equal(t, before, marshalTree(t, tree.Remove(MatchGroup(present, true))), "negation must match too")
}

func TestTree_EmptySerializesToEmptyObject(t *testing.T) {
	require.Equal(t, `{}`, marshalTree(t, Tree{}))
	require.Equal(t, `{}`, marshalTree(t, Tree{}.SwitchCombinator(CombinatorOr)))

	tree := Tree{}.SwitchCombinator(CombinatorOr).Add(SegmentLeaf("s1"))
	require.Equal(t, `{"or":[{"segment":{"id":"s1"}}]}`, marshalTree(t, tree))

	emptied := tree.Remove(MatchSegment("s1"))
	require.Equal(t, `{}`, marshalTree(t, emptied))
	require.Equal(t, CombinatorOr, emptied.Combinator())
}

func TestTree_AddIsPure(t *testing.T) {
	base := NewTree(SegmentLeaf("s1"))
	a := base.Add(SegmentLeaf("a"))
	b := base.Add(SegmentLeaf("b"))

	require.Equal(t, 1, base.Len())
	require.Equal(t, `{"and":[{"segment":{"id":"s1"}},{"segment":{"id":"a"}}]}`, marshalTree(t, a))
	require.Equal(t, `{"and":[{"segment":{"id":"s1"}},{"segment":{"id":"b"}}]}`, marshalTree(t, b))

	nodes := a.Nodes()
	nodes[0] = SegmentLeaf("mutated")
	present, _ := a.SegmentState("s1")
	require.True(t, present)
}

func TestTree_AddIgnoresInvalidNodes(t *testing.T) {
	tree := NewTree(SegmentLeaf("s1"))
	for _, node := range []Node{nil, Leaf{}, Group{}, Negated{}, Negate(Group{}), Leaf{Predicate: AttributePredicate{Field: "plan", Operator: OperatorNotEq}},
		SegmentLeaf(""), Negate(SegmentLeaf("")), AttributeLeaf(" ", OperatorExists, ""), AttributeLeaf("", OperatorEq, "pro")} {
		require.True(t, tree.Add(node).Equal(tree), "%#v", node)
	}
}

func TestTree_DuplicatesAreKept(t *testing.T) {
	tree := NewTree(SegmentLeaf("s1"), SegmentLeaf("s1"), Negate(SegmentLeaf("s1")))
	require.Equal(t, 3, tree.Len())

	tree = tree.Remove(MatchSegment("s1"))
	require.Equal(t, 2, tree.Len(), "only the first match is removed")
}

func TestTree_RemoveBySegmentId(t *testing.T) {
	tree := NewTree(SegmentLeaf("X"), SegmentLeaf("Y"))
	require.Equal(t, `{"and":[{"segment":{"id":"Y"}}]}`, marshalTree(t, tree.Remove(MatchSegment("X"))))

	tree = NewTree(Negate(SegmentLeaf("X")), SegmentLeaf("Y"))
	require.Equal(t, `{"and":[{"segment":{"id":"Y"}}]}`, marshalTree(t, tree.Remove(MatchSegment("X"))))

	group, err := NewGroup("X", "Z")
	require.NoError(t, err)
	tree = NewTree(group)
	require.Equal(t, 1, tree.Remove(MatchSegment("X")).Len(), "segment matcher does not reach into groups")
}

func TestTree_RemoveByAttributeField(t *testing.T) {
	tree := NewTree(
		AttributeLeaf("country", OperatorExists, ""),
		Negate(AttributeLeaf("plan", OperatorEq, "pro")),
		SegmentLeaf("plan"),
	)

	after := tree.Remove(MatchAttribute("plan"))
	require.Equal(t, `{"and":[{"attribute":{"field":"country","operator":"exists"}},{"segment":{"id":"plan"}}]}`, marshalTree(t, after))
	require.True(t, after.Remove(MatchAttribute("plan")).Equal(after))
}

func TestTree_RemoveByGroup(t *testing.T) {
	g1, err := NewGroup("a", "b")
	require.NoError(t, err)
	g2, err := NewGroup("a", "b", "c")
	require.NoError(t, err)
	tree := NewTree(Negate(g1), g1, g2)

	after := tree.Remove(MatchGroup(g1, false))
	require.Equal(t, []Node{Negate(g1), g2}, after.Nodes())

	after = tree.Remove(MatchGroup(g1, true))
	require.Equal(t, []Node{g1, g2}, after.Nodes())
}

func TestTree_RemoveWithMatcherFor(t *testing.T) {
	group, err := NewGroup("a", "b")
	require.NoError(t, err)
	nodes := []Node{
		SegmentLeaf("s1"),
		Negate(SegmentLeaf("s2")),
		group,
		Negate(group),
		AttributeLeaf("plan", OperatorEq, "pro"),
		Negate(AttributeLeaf("country", OperatorExists, "")),
	}
	tree := NewTree(nodes...)

	for i, node := range nodes {
		after := tree.Remove(MatcherFor(node))
		expected := append(append([]Node{}, nodes[:i]...), nodes[i+1:]...)
		require.True(t, NewTree(expected...).Equal(after), "removing %s", Describe(node, nil))
	}

	require.Nil(t, MatcherFor(nil))
	require.True(t, tree.Remove(nil).Equal(tree))
}

func TestTree_SwitchCombinatorKeepsNodes(t *testing.T) {
	tree := NewTree(SegmentLeaf("s1"), AttributeLeaf("plan", OperatorEq, "pro"))

	for _, c := range []Combinator{CombinatorOr, CombinatorAnd, CombinatorOr} {
		switched := tree.SwitchCombinator(c)
		require.Equal(t, c, switched.Combinator())
		if diff := cmp.Diff(tree.Nodes(), switched.Nodes(), cmp.AllowUnexported(Group{}, Negated{})); diff != "" {
			t.Errorf("nodes changed (-want +got):\n%s", diff)
		}
	}

	require.Equal(t, CombinatorAnd, tree.SwitchCombinator("xor").Combinator())
}

func TestTree_AddKeepsSwitchedCombinator(t *testing.T) {
	tree := NewTree(SegmentLeaf("s1")).SwitchCombinator(CombinatorOr).Add(SegmentLeaf("s2"))
	require.Equal(t, CombinatorOr, tree.Combinator())
}
