package conditions

import (
	"fmt"
	"strings"
)

// Combinator joins the top-level entries of a tree.
type Combinator string

func (c Combinator) Valid() bool {
	return c == CombinatorAnd || c == CombinatorOr
}

func ParseCombinator(s string) (Combinator, error) {
	c := Combinator(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCombinator, s)
	}
	return c, nil
}

// Operator is one of the four attribute comparisons a user can pick. Inside a tree
// only the base operators eq and exists appear; negation is carried by a Negated node.
type Operator string

func (o Operator) Valid() bool {
	switch o {
	case OperatorEq, OperatorNotEq, OperatorExists, OperatorNotExists:
		return true
	}
	return false
}

func (o Operator) IsBase() bool {
	return o == OperatorEq || o == OperatorExists
}

// Decompose splits a compound operator into its negation flag and base operator.
func (o Operator) Decompose() (negate bool, base Operator) {
	switch o {
	case OperatorNotEq:
		return true, OperatorEq
	case OperatorNotExists:
		return true, OperatorExists
	default:
		return false, o
	}
}

// Compose is the inverse of Decompose.
func Compose(negate bool, base Operator) Operator {
	if !negate {
		return base
	}
	switch base {
	case OperatorEq:
		return OperatorNotEq
	case OperatorExists:
		return OperatorNotExists
	}
	return base
}

// RequiresValue reports whether the operator compares against a value.
func (o Operator) RequiresValue() bool {
	_, base := o.Decompose()
	return base == OperatorEq
}

// Token renders the operator the way the operator picker encodes it, e.g. "not,eq".
func (o Operator) Token() string {
	negate, base := o.Decompose()
	if negate {
		return negationTokenPrefix + string(base)
	}
	return string(base)
}

// ParseOperator accepts plain operator names as well as the picker's compound tokens.
func ParseOperator(token string) (Operator, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == legacyNotExistToken {
		return OperatorNotExists, nil
	}
	negate := false
	if strings.HasPrefix(t, negationTokenPrefix) {
		negate = true
		t = strings.TrimPrefix(t, negationTokenPrefix)
	}
	op := Operator(t)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperator, token)
	}
	if negate {
		if !op.IsBase() {
			// "not,neq" would be a double negation
			return "", fmt.Errorf("%w: %q", ErrInvalidOperator, token)
		}
		return Compose(true, op), nil
	}
	return op, nil
}
