// Package telemetry records operational events from the arena engine.
//
// Engine events (run created, fight resolved, challenge posted) are appended
// to a TelemetryStore as a journal. Distributed tracing is handled separately
// by internal/platform/otel.
package telemetry

import (
	"context"
	"time"

	"github.com/louisbranch/ludus/internal/storage"
)

// Severity describes the telemetry severity level.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Event names emitted by the engine.
const (
	EventRunCreated        = "RUN_CREATED"
	EventRunFinished       = "RUN_FINISHED"
	EventFightResolved     = "FIGHT_RESOLVED"
	EventChallengePosted   = "CHALLENGE_POSTED"
	EventChallengeResolved = "CHALLENGE_RESOLVED"
	EventChallengeExpired  = "CHALLENGE_EXPIRED"
)

// Emitter records operational telemetry events.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, evt storage.TelemetryEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	if evt.Severity == "" {
		evt.Severity = string(SeverityInfo)
	}
	return e.store.AppendTelemetryEvent(ctx, evt)
}
