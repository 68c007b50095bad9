// Package hooks provides lifecycle event dispatch around the validate,
// build-manifest, and export operations.
//
// Observers are dependency-injected into a Dispatcher rather than held in
// package-level state, and emission is strictly best-effort: an observer
// that returns an error or panics never affects the pipeline's outcome.
// Hooks observe; they never gate.
package hooks

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event names one lifecycle hook point.
type Event string

// The six lifecycle events, one before/after pair per pipeline operation.
const (
	BeforeValidate      Event = "before_validate"
	AfterValidate       Event = "after_validate"
	BeforeBuildManifest Event = "before_build_manifest"
	AfterBuildManifest  Event = "after_build_manifest"
	BeforeExport        Event = "before_export"
	AfterExport         Event = "after_export"
)

// Events lists every lifecycle event in pipeline order.
var Events = []Event{
	BeforeValidate,
	AfterValidate,
	BeforeBuildManifest,
	AfterBuildManifest,
	BeforeExport,
	AfterExport,
}

// IsValid reports whether e is a recognized lifecycle event.
func IsValid(e Event) bool {
	for _, known := range Events {
		if e == known {
			return true
		}
	}
	return false
}

// Observer handles one emitted event. The data map carries event-specific
// context (root, index size, adapter name). A returned error is recorded
// at debug level and otherwise ignored.
type Observer func(ctx context.Context, event Event, data map[string]any) error

// Dispatcher fans lifecycle events out to registered observers. Each
// dispatcher carries a run ID that is attached to every emitted payload so
// observers can correlate events from one invocation.
type Dispatcher struct {
	runID     string
	logger    *zap.Logger
	observers map[Event][]Observer
}

// NewDispatcher creates a dispatcher with a fresh run ID. A nil logger
// disables emission logging.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		runID:     uuid.New().String(),
		logger:    logger,
		observers: make(map[Event][]Observer),
	}
}

// RunID returns the per-invocation correlation id.
func (d *Dispatcher) RunID() string {
	return d.runID
}

// Register adds an observer for one event. Unknown events are ignored.
func (d *Dispatcher) Register(event Event, obs Observer) {
	if !IsValid(event) {
		return
	}
	d.observers[event] = append(d.observers[event], obs)
}

// RegisterAll adds an observer for every lifecycle event.
func (d *Dispatcher) RegisterAll(obs Observer) {
	for _, event := range Events {
		d.Register(event, obs)
	}
}

// Emit invokes every observer registered for event. Observer failures and
// panics are swallowed so a misbehaving observer cannot alter the
// pipeline's result.
func (d *Dispatcher) Emit(ctx context.Context, event Event, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["run_id"] = d.runID

	for _, obs := range d.observers[event] {
		d.invoke(ctx, event, obs, data)
	}
}

// invoke calls one observer, containing both errors and panics.
func (d *Dispatcher) invoke(ctx context.Context, event Event, obs Observer, data map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug("hook observer panicked",
				zap.String("event", string(event)),
				zap.Any("panic", r))
		}
	}()
	if err := obs(ctx, event, data); err != nil {
		d.logger.Debug("hook observer failed",
			zap.String("event", string(event)),
			zap.Error(err))
	}
}
