package customerquery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/chartbrew/customerquery/api"
	"github.com/chartbrew/customerquery/conditions"
	"github.com/chartbrew/customerquery/util"
)

var (
	ErrBuilderNotReady = errors.New("builder is still loading segments")
	ErrBuilderClosed   = errors.New("builder is closed")
	ErrInvalidLimit    = errors.New("limit cannot be negative")
)

// use a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Builder is one editing session of a customer filter for a chart dataset.
// On creation it lists the connection's segments once; until that answer arrives
// the builder is inert and condition operations return ErrBuilderNotReady.
type Builder struct {
	target    api.Target
	directory SegmentDirectory
	options   *Options

	mu                 sync.RWMutex
	tree               conditions.Tree
	segments           []api.Segment
	segmentNames       conditions.SegmentNames
	limit              int
	populateAttributes bool
	loaded             bool
	closed             bool

	ready  chan struct{}
	done   chan struct{}
	cancel context.CancelFunc
}

func NewBuilder(target api.Target, directory SegmentDirectory, options *Options) (*Builder, error) {
	if directory == nil {
		return nil, fmt.Errorf("Missing segment directory! Call NewBuilder with a SegmentDirectory.")
	}
	if err := validate.Struct(target); err != nil {
		return nil, fmt.Errorf("invalid builder target: %w", err)
	}
	if options == nil {
		options = &Options{}
	}
	if options.Logger != nil {
		util.SetLogger(options.Logger)
	}
	options.CheckDefaults()

	ctx, cancel := context.WithTimeout(context.Background(), options.SegmentRequestTimeout)
	b := &Builder{
		target:             target,
		directory:          directory,
		options:            options,
		limit:              options.DefaultLimit,
		populateAttributes: options.PopulateAttributes,
		segmentNames:       conditions.SegmentNames{},
		ready:              make(chan struct{}),
		done:               make(chan struct{}),
		cancel:             cancel,
	}
	go b.loadSegments(ctx)
	return b, nil
}

func (b *Builder) loadSegments(ctx context.Context) {
	defer close(b.done)
	defer b.cancel()

	segments, err := b.directory.ListSegments(ctx, b.target.ProjectId, b.target.ConnectionId)
	if err != nil {
		util.Warnf("Could not list segments for project %d connection %d: %s",
			b.target.ProjectId, b.target.ConnectionId, err)
		segments = nil
	}

	valid := make([]api.Segment, 0, len(segments))
	for _, segment := range segments {
		if err := validate.Struct(segment); err != nil {
			util.Warnf("Skipping invalid segment %q: %s", segment.Id, err)
			continue
		}
		valid = append(valid, segment)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		util.Debugf("Builder closed before segments arrived, ignoring %d segments", len(valid))
		return
	}
	b.segments = valid
	for _, segment := range valid {
		b.segmentNames[segment.Id] = segment.DisplayName()
	}
	b.loaded = true
	close(b.ready)
	util.Infof("Loaded %d segments for project %d connection %d",
		len(valid), b.target.ProjectId, b.target.ConnectionId)
}

// Ready is closed once the segment list has arrived or the builder has been closed.
func (b *Builder) Ready() <-chan struct{} {
	return b.ready
}

func (b *Builder) IsReady() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded && !b.closed
}

func (b *Builder) usable() error {
	if b.closed {
		return ErrBuilderClosed
	}
	if !b.loaded {
		return ErrBuilderNotReady
	}
	return nil
}

// Segments returns the segments offered by the directory. A failed listing yields none.
func (b *Builder) Segments() []api.Segment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]api.Segment, len(b.segments))
	copy(out, b.segments)
	return out
}

func (b *Builder) SegmentName(id string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.segmentNames.SegmentName(id)
}

// Conditions returns the current tree. The returned value is never mutated by the builder.
func (b *Builder) Conditions() conditions.Tree {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree
}

// LoadConditions replaces the tree with a previously serialized one.
func (b *Builder) LoadConditions(data []byte) error {
	tree, err := conditions.ParseTree(data, b.options.jsonConfig())
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBuilderClosed
	}
	b.tree = tree
	return nil
}

func (b *Builder) update(f func(conditions.Tree) (conditions.Tree, error)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.usable(); err != nil {
		return err
	}
	tree, err := f(b.tree)
	if err != nil {
		return err
	}
	b.tree = tree
	return nil
}

// Add appends an already built node.
func (b *Builder) Add(node conditions.Node) error {
	return b.update(func(t conditions.Tree) (conditions.Tree, error) {
		if !conditions.Valid(node) {
			return t, fmt.Errorf("%w: invalid node", conditions.ErrIncompleteConfig)
		}
		util.Debugf("Adding condition %q under %s", conditions.Describe(node, b.segmentNames), t.Combinator())
		return t.Add(node), nil
	})
}

func (b *Builder) AddSegmentCondition(config conditions.SegmentConfig) error {
	node, err := config.Build()
	if err != nil {
		return err
	}
	return b.Add(node)
}

func (b *Builder) AddAttributeCondition(config conditions.AttributeConfig) error {
	node, err := config.Build()
	if err != nil {
		return err
	}
	return b.Add(node)
}

// Remove drops the first condition m matches. Matching nothing is not an error.
func (b *Builder) Remove(m conditions.Matcher) error {
	return b.update(func(t conditions.Tree) (conditions.Tree, error) {
		next := t.Remove(m)
		if next.Len() == t.Len() {
			util.Debugf("No condition matched for removal")
		}
		return next, nil
	})
}

// RemoveCondition removes node the way its chip in the condition list does.
func (b *Builder) RemoveCondition(node conditions.Node) error {
	return b.Remove(conditions.MatcherFor(node))
}

func (b *Builder) SwitchCombinator(c conditions.Combinator) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", conditions.ErrInvalidCombinator, c)
	}
	return b.update(func(t conditions.Tree) (conditions.Tree, error) {
		return t.SwitchCombinator(c), nil
	})
}

// Descriptions renders every condition with segment names resolved.
func (b *Builder) Descriptions() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree.Describe(b.segmentNames)
}

func (b *Builder) Limit() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.limit
}

// SetLimit sets the maximum number of customers returned; 0 means unlimited.
func (b *Builder) SetLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.limit = limit
	return nil
}

func (b *Builder) PopulateAttributes() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.populateAttributes
}

func (b *Builder) SetPopulateAttributes(populate bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.populateAttributes = populate
}

// Query packages the serialized tree with the pass-through settings for the query engine.
func (b *Builder) Query() (api.QueryRequest, error) {
	b.mu.RLock()
	tree, limit, populate, closed := b.tree, b.limit, b.populateAttributes, b.closed
	b.mu.RUnlock()
	if closed {
		return api.QueryRequest{}, ErrBuilderClosed
	}

	raw, err := util.Encode(tree.Serialize(), nil)
	if err != nil {
		return api.QueryRequest{}, fmt.Errorf("could not serialize conditions: %w", err)
	}
	req := api.QueryRequest{
		RequestId:          uuid.New().String(),
		Conditions:         json.RawMessage(raw),
		Limit:              limit,
		PopulateAttributes: populate,
		Fingerprint:        tree.Fingerprint(),
	}
	if err := validate.Struct(req); err != nil {
		return api.QueryRequest{}, fmt.Errorf("invalid query request: %w", err)
	}
	return req, nil
}

// Close tears the builder down. A segment listing still in flight is cancelled and
// its answer ignored. Close waits for the listing goroutine to return, but no longer
// than SegmentRequestTimeout in case the directory ignores cancellation.
func (b *Builder) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	if !b.loaded {
		close(b.ready)
	}
	b.mu.Unlock()

	b.cancel()
	select {
	case <-b.done:
	case <-time.After(b.options.SegmentRequestTimeout):
		util.Warnf("Segment directory for project %d connection %d ignored cancellation, not waiting for it",
			b.target.ProjectId, b.target.ConnectionId)
	}
}
