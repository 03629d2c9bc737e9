package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/louisbranch/ludus/internal/storage"
)

type captureStore struct {
	events []storage.TelemetryEvent
}

func (s *captureStore) AppendTelemetryEvent(_ context.Context, event storage.TelemetryEvent) error {
	s.events = append(s.events, event)
	return nil
}

func TestEmitDefaultsTimestampAndSeverity(t *testing.T) {
	store := &captureStore{}
	emitter := NewEmitter(store)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	emitter.clock = func() time.Time { return fixed }

	err := emitter.Emit(context.Background(), storage.TelemetryEvent{Name: EventRunCreated, RunID: "run-1"})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	if len(store.events) != 1 {
		t.Fatalf("events = %d, want 1", len(store.events))
	}
	got := store.events[0]
	if !got.Timestamp.Equal(fixed) {
		t.Fatalf("timestamp = %v, want %v", got.Timestamp, fixed)
	}
	if got.Severity != string(SeverityInfo) {
		t.Fatalf("severity = %q, want %q", got.Severity, SeverityInfo)
	}
}

func TestEmitKeepsExplicitFields(t *testing.T) {
	store := &captureStore{}
	emitter := NewEmitter(store)
	stamp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	err := emitter.Emit(context.Background(), storage.TelemetryEvent{
		Name:      EventChallengeExpired,
		Timestamp: stamp,
		Severity:  string(SeverityWarn),
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	got := store.events[0]
	if !got.Timestamp.Equal(stamp) || got.Severity != string(SeverityWarn) {
		t.Fatalf("event fields overridden: %+v", got)
	}
}

func TestEmitNilSafe(t *testing.T) {
	var emitter *Emitter
	if err := emitter.Emit(context.Background(), storage.TelemetryEvent{Name: EventRunCreated}); err != nil {
		t.Fatalf("nil emitter errored: %v", err)
	}

	empty := &Emitter{}
	if err := empty.Emit(context.Background(), storage.TelemetryEvent{Name: EventRunCreated}); err != nil {
		t.Fatalf("storeless emitter errored: %v", err)
	}
}
