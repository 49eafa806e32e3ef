package conditions

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twmb/murmur3"

	"github.com/chartbrew/customerquery/util"
)

func TestTree_Fingerprint(t *testing.T) {
	a := NewTree(SegmentLeaf("s1"), AttributeLeaf("plan", OperatorEq, "pro"))
	b := NewTree(SegmentLeaf("s1")).Add(AttributeLeaf("plan", OperatorEq, "pro"))
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	require.NotEqual(t, a.Fingerprint(), a.SwitchCombinator(CombinatorOr).Fingerprint())
	require.NotEqual(t, a.Fingerprint(), NewTree(AttributeLeaf("plan", OperatorEq, "pro"), SegmentLeaf("s1")).Fingerprint())
	require.NotEqual(t, a.Fingerprint(), NewTree(SegmentLeaf("s1"), AttributeLeaf("plan", OperatorEq, "free")).Fingerprint())

	require.Equal(t, Tree{}.Fingerprint(), Tree{}.SwitchCombinator(CombinatorOr).Fingerprint())
}

func TestTree_FingerprintMatchesEncodedConditions(t *testing.T) {
	tree := NewTree(Negate(SegmentLeaf("s1")), AttributeLeaf("country", OperatorExists, ""))
	data, err := util.Encode(tree.Serialize(), nil)
	require.NoError(t, err)
	require.Equal(t, murmur3.SeedStringSum32(fingerprintSeed, string(data)), tree.Fingerprint())
}
