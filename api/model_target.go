package api

// Target identifies the chart dataset a builder session is editing conditions for.
type Target struct {
	ProjectId    int    `json:"projectId" validate:"required,gt=0"`
	ConnectionId int    `json:"connectionId" validate:"required,gt=0"`
	DatasetId    string `json:"datasetId,omitempty"`
}
