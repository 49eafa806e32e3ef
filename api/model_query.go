package api

import "encoding/json"

// QueryRequest is handed to the downstream query engine. Limit and PopulateAttributes
// are builder settings passed through untouched; they are not part of the condition tree.
type QueryRequest struct {
	RequestId          string          `json:"requestId" validate:"required,uuid4"`
	Conditions         json.RawMessage `json:"conditions" validate:"required"`
	Limit              int             `json:"limit" validate:"gte=0"`
	PopulateAttributes bool            `json:"populateAttributes"`
	Fingerprint        uint32          `json:"fingerprint"`
}

// Unlimited reports whether the engine should return every matching customer.
func (q QueryRequest) Unlimited() bool {
	return q.Limit == 0
}
