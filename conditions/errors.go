package conditions

import "errors"

var (
	ErrIncompleteConfig  = errors.New("condition configuration is incomplete")
	ErrInvalidOperator   = errors.New("invalid attribute operator")
	ErrInvalidCombinator = errors.New("invalid combinator")
	ErrMalformedTree     = errors.New("malformed condition tree")
	ErrDuplicateSegment  = errors.New("segment listed twice in group")
)
