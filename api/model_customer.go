package api

// Customer is the subset of a customer profile needed to preview a condition tree locally.
type Customer struct {
	Id         string                 `json:"id"`
	Segments   []string               `json:"segments"`
	Attributes map[string]interface{} `json:"attributes"`
}

func (c Customer) InSegment(id string) bool {
	for _, s := range c.Segments {
		if s == id {
			return true
		}
	}
	return false
}

func (c Customer) Attribute(field string) (interface{}, bool) {
	if c.Attributes == nil {
		return nil, false
	}
	v, ok := c.Attributes[field]
	return v, ok
}
