package conditions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		token    string
		expected Operator
		negate   bool
		base     Operator
	}{
		{"eq", OperatorEq, false, OperatorEq},
		{"neq", OperatorNotEq, true, OperatorEq},
		{"not,eq", OperatorNotEq, true, OperatorEq},
		{"exists", OperatorExists, false, OperatorExists},
		{"nexists", OperatorNotExists, true, OperatorExists},
		{"nexist", OperatorNotExists, true, OperatorExists},
		{" NOT,EXISTS ", OperatorNotExists, true, OperatorExists},
	}
	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			op, err := ParseOperator(test.token)
			require.NoError(t, err)
			require.Equal(t, test.expected, op)

			negate, base := op.Decompose()
			require.Equal(t, test.negate, negate)
			require.Equal(t, test.base, base)
			require.Equal(t, op, Compose(negate, base))
		})
	}

	for _, token := range []string{"", "contains", "not,", "not,neq", "not,nexists"} {
		_, err := ParseOperator(token)
		require.ErrorIs(t, err, ErrInvalidOperator, token)
	}
}

func TestOperator_Token(t *testing.T) {
	require.Equal(t, "eq", OperatorEq.Token())
	require.Equal(t, "not,eq", OperatorNotEq.Token())
	require.Equal(t, "exists", OperatorExists.Token())
	require.Equal(t, "not,exists", OperatorNotExists.Token())

	require.True(t, OperatorNotEq.RequiresValue())
	require.False(t, OperatorNotExists.RequiresValue())
}

func TestParseCombinator(t *testing.T) {
	c, err := ParseCombinator("OR")
	require.NoError(t, err)
	require.Equal(t, CombinatorOr, c)

	_, err = ParseCombinator("xor")
	require.ErrorIs(t, err, ErrInvalidCombinator)
}
