package api

const (
	SegmentKindStatic  = "static"
	SegmentKindDynamic = "dynamic"
)

// Segment is an externally defined grouping of customers, as listed by a segment directory.
type Segment struct {
	Id   string `json:"id" validate:"required"`
	Name string `json:"name"`
	Kind string `json:"type" validate:"omitempty,oneof=static dynamic"`
}

// DisplayName returns the segment name, or its id when the directory did not supply one.
func (s Segment) DisplayName() string {
	if s.Name == "" {
		return s.Id
	}
	return s.Name
}

func (s Segment) IsDynamic() bool {
	return s.Kind == SegmentKindDynamic
}
