package conditions

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chartbrew/customerquery/api"
)

// Evaluate previews the tree against a single customer, following the query
// engine's semantics. An empty tree is no filter and matches everyone.
func (t Tree) Evaluate(customer api.Customer) bool {
	if t.Empty() {
		return true
	}
	if t.Combinator() == CombinatorOr {
		for _, n := range t.nodes {
			if evaluateNode(n, customer) {
				return true
			}
		}
		return false
	}
	for _, n := range t.nodes {
		if !evaluateNode(n, customer) {
			return false
		}
	}
	return true
}

func evaluateNode(node Node, customer api.Customer) bool {
	switch n := node.(type) {
	case Leaf:
		switch p := n.Predicate.(type) {
		case SegmentPredicate:
			return customer.InSegment(p.Id)
		case AttributePredicate:
			return evaluateAttribute(p, customer)
		}
	case Group:
		for _, m := range n.members {
			if customer.InSegment(m.Id) {
				return true
			}
		}
	case Negated:
		return n.inner != nil && !evaluateNode(n.inner, customer)
	}
	return false
}

func evaluateAttribute(p AttributePredicate, customer api.Customer) bool {
	value, ok := customer.Attribute(p.Field)
	if !ok || !checkValueExists(value) {
		return false
	}
	switch p.Operator {
	case OperatorExists:
		return true
	case OperatorEq:
		return stringifyValue(value) == p.Value
	}
	return false
}

// checkValueExists returns true if the value is not one we define as nonexistent:
// nil, an empty string, NaN, or a type attributes never carry.
func checkValueExists(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case float64:
		return !math.IsNaN(v)
	case float32:
		return !math.IsNaN(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, bool:
		return true
	default:
		return false
	}
}

func stringifyValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
