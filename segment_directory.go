package customerquery

import (
	"context"

	"github.com/chartbrew/customerquery/api"
)

// SegmentDirectory lists the segments available on a connection. It is called once
// per builder; implementations should honour ctx cancellation.
type SegmentDirectory interface {
	ListSegments(ctx context.Context, projectId, connectionId int) ([]api.Segment, error)
}

// SegmentDirectoryFunc adapts a function to a SegmentDirectory.
type SegmentDirectoryFunc func(ctx context.Context, projectId, connectionId int) ([]api.Segment, error)

func (f SegmentDirectoryFunc) ListSegments(ctx context.Context, projectId, connectionId int) ([]api.Segment, error) {
	return f(ctx, projectId, connectionId)
}

// StaticSegments is a SegmentDirectory returning a fixed list.
type StaticSegments []api.Segment

func (s StaticSegments) ListSegments(ctx context.Context, _, _ int) ([]api.Segment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]api.Segment, len(s))
	copy(out, s)
	return out, nil
}
