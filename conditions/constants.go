package conditions

const (
	CombinatorAnd Combinator = "and"
	CombinatorOr  Combinator = "or"
)

const (
	OperatorEq        Operator = "eq"
	OperatorNotEq     Operator = "neq"
	OperatorExists    Operator = "exists"
	OperatorNotExists Operator = "nexists"
)

// Compound tokens used by the attribute operator picker.
const (
	negationTokenPrefix = "not,"
	legacyNotExistToken = "nexist"
)

const (
	SegmentOperationIn  = "in"
	SegmentOperationNot = "not"
)

// Wire keys of the serialized tree.
const (
	KeyAnd       = "and"
	KeyOr        = "or"
	KeyNot       = "not"
	KeySegment   = "segment"
	KeyAttribute = "attribute"
)

const fingerprintSeed uint32 = 0x5eed
