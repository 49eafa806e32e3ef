package conditions

import (
	"fmt"
	"strings"

	"github.com/chartbrew/customerquery/util"
)

// SegmentSelection is the multi-select state of the segment picker. Picking an id
// that is already selected removes it, so ids are always unique.
type SegmentSelection struct {
	ids []string
}

func NewSegmentSelection(ids ...string) SegmentSelection {
	var s SegmentSelection
	for _, id := range ids {
		s = s.Toggle(id)
	}
	return s
}

func (s SegmentSelection) Toggle(id string) SegmentSelection {
	return SegmentSelection{ids: util.Toggle(s.ids, id)}
}

func (s SegmentSelection) Contains(id string) bool {
	return util.IndexOf(s.ids, id) >= 0
}

func (s SegmentSelection) Ids() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s SegmentSelection) Empty() bool {
	return len(s.ids) == 0
}

// BuildSegmentNode turns a segment selection into a node: a Leaf for one id, an
// OR-group for several, wrapped in Negated when negate is set ("not in any of").
func BuildSegmentNode(selectedIds []string, negate bool) (Node, error) {
	ids := NewSegmentSelection(selectedIds...).Ids()
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no segment selected", ErrIncompleteConfig)
	}
	if util.IndexOf(ids, "") >= 0 {
		return nil, fmt.Errorf("%w: segment without id", ErrIncompleteConfig)
	}

	var inner Negatable
	if len(ids) == 1 {
		inner = SegmentLeaf(ids[0])
	} else {
		group, err := NewGroup(ids...)
		if err != nil {
			return nil, err
		}
		inner = group
	}

	if negate {
		return Negate(inner), nil
	}
	return inner, nil
}

// BuildAttributeNode decomposes op into negation and base operator and builds the
// matching leaf. A blank value is accepted for eq and neq.
func BuildAttributeNode(field string, op Operator, value string) (Node, error) {
	if strings.TrimSpace(field) == "" {
		return nil, fmt.Errorf("%w: attribute field is required", ErrIncompleteConfig)
	}
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}

	negate, base := op.Decompose()
	leaf := AttributeLeaf(field, base, value)
	if negate {
		return Negate(leaf), nil
	}
	return leaf, nil
}

// SegmentConfig is the raw state of the segment condition form.
type SegmentConfig struct {
	Operation string   `json:"operation" validate:"omitempty,oneof=in not"`
	Ids       []string `json:"ids" validate:"required,min=1,dive,required"`
}

func (c SegmentConfig) Negate() bool {
	return c.Operation == SegmentOperationNot
}

func (c SegmentConfig) Build() (Node, error) {
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteConfig, err)
	}
	return BuildSegmentNode(c.Ids, c.Negate())
}

// AttributeConfig is the raw state of the attribute condition form. Operator holds
// the picker token, e.g. "eq" or "not,exists"; it defaults to eq.
type AttributeConfig struct {
	Field    string `json:"field" validate:"required"`
	Operator string `json:"operator"`
	Value    string `json:"value,omitempty"`
}

func (c AttributeConfig) Build() (Node, error) {
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteConfig, err)
	}
	token := c.Operator
	if token == "" {
		token = string(OperatorEq)
	}
	op, err := ParseOperator(token)
	if err != nil {
		return nil, err
	}
	return BuildAttributeNode(c.Field, op, c.Value)
}
