package customerquery

import (
	"context"
	"testing"
	"time"

	"github.com/chartbrew/customerquery/api"
)

var (
	test_target = api.Target{ProjectId: 1, ConnectionId: 7, DatasetId: "ds_1"}

	test_segments = []api.Segment{
		{Id: "s1", Name: "Trial users", Kind: api.SegmentKindDynamic},
		{Id: "s2", Name: "Churned", Kind: api.SegmentKindStatic},
		{Id: "s3", Kind: api.SegmentKindStatic},
	}
)

// blockingDirectory answers once release is closed. When lateAnswer is set it
// still answers after its context is cancelled, like a slow directory would.
// When ignoreContext is set it only ever answers on release.
type blockingDirectory struct {
	release       chan struct{}
	segments      []api.Segment
	err           error
	lateAnswer    bool
	ignoreContext bool
}

func newBlockingDirectory(segments []api.Segment, err error) *blockingDirectory {
	return &blockingDirectory{release: make(chan struct{}), segments: segments, err: err}
}

func (d *blockingDirectory) ListSegments(ctx context.Context, _, _ int) ([]api.Segment, error) {
	if d.ignoreContext {
		<-d.release
		return d.segments, d.err
	}
	select {
	case <-d.release:
		return d.segments, d.err
	case <-ctx.Done():
		if d.lateAnswer {
			return d.segments, nil
		}
		return nil, ctx.Err()
	}
}

func fatalErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func waitReady(t *testing.T, b *Builder) {
	t.Helper()
	select {
	case <-b.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("builder never became ready")
	}
}

func newReadyBuilder(t *testing.T, options *Options) *Builder {
	t.Helper()
	b, err := NewBuilder(test_target, StaticSegments(test_segments), options)
	fatalErr(t, err)
	t.Cleanup(b.Close)
	waitReady(t, b)
	return b
}
