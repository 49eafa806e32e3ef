package conditions

// Predicate is a single test against a customer: segment membership or an attribute comparison.
// The set of implementations is closed.
type Predicate interface {
	isPredicate()
	Equal(other Predicate) bool
}

type SegmentPredicate struct {
	Id string
}

func (SegmentPredicate) isPredicate() {}

func (p SegmentPredicate) Equal(other Predicate) bool {
	o, ok := other.(SegmentPredicate)
	return ok && o.Id == p.Id
}

// AttributePredicate compares a customer attribute. Operator is always a base
// operator (eq or exists); Value is only meaningful for eq.
type AttributePredicate struct {
	Field    string
	Operator Operator
	Value    string
}

func (AttributePredicate) isPredicate() {}

func (p AttributePredicate) Equal(other Predicate) bool {
	o, ok := other.(AttributePredicate)
	if !ok || o.Field != p.Field || o.Operator != p.Operator {
		return false
	}
	return p.Operator != OperatorEq || o.Value == p.Value
}
