// Package service orchestrates the arena engine operations.
//
// Services load entities from the injected stores, apply the domain rules,
// and write the results back while holding per-entity locks, so concurrent
// calls racing on one run or one challenge serialize instead of tearing
// each other's updates.
package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/ludus/internal/arena/domain"
	apperrors "github.com/louisbranch/ludus/internal/errors"
	"github.com/louisbranch/ludus/internal/id"
	"github.com/louisbranch/ludus/internal/random"
	"github.com/louisbranch/ludus/internal/storage"
	"github.com/louisbranch/ludus/internal/telemetry"
)

const tracerName = "github.com/louisbranch/ludus/internal/arena/service"

// Stores groups the entity stores the engine mutates.
type Stores struct {
	Runs       storage.RunStore
	Candidates storage.CandidateStore
	Challenges storage.ChallengeStore
}

// Config carries the shared dependencies for the engine services.
// Zero-value fields fall back to production defaults; tests override the
// random source and clock for determinism.
type Config struct {
	Stores  Stores
	Random  random.Source
	Locks   *EntityLocks
	Emitter *telemetry.Emitter
}

func (cfg *Config) applyDefaults() {
	if cfg.Random == nil {
		cfg.Random = random.NewSource(time.Now().UnixNano())
	}
	if cfg.Locks == nil {
		cfg.Locks = NewEntityLocks()
	}
}

// endSpan closes a span, recording the operation error if any.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	span.End()
}

// loadRun fetches a run, translating a storage miss into the engine code.
func loadRun(ctx context.Context, runs storage.RunStore, runID string) (domain.Run, error) {
	run, err := runs.GetRun(ctx, runID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return domain.Run{}, apperrors.New(apperrors.CodeRunNotFound, "run not found")
		}
		return domain.Run{}, fmt.Errorf("load run: %w", err)
	}
	return run, nil
}

// loadOwnedRun fetches a run and verifies ownership before anything else.
func loadOwnedRun(ctx context.Context, runs storage.RunStore, runID, playerID string) (domain.Run, error) {
	run, err := loadRun(ctx, runs, runID)
	if err != nil {
		return domain.Run{}, err
	}
	if err := run.EnsureOwnedBy(playerID); err != nil {
		return domain.Run{}, err
	}
	return run, nil
}

// emitRunFinished reports the terminal event for a run that just ran out
// of turns. Callers invoke it after persisting; a still-active run is a
// no-op.
func emitRunFinished(ctx context.Context, emitter *telemetry.Emitter, run domain.Run) {
	if run.Status != domain.RunStatusFinished {
		return
	}
	_ = emitter.Emit(ctx, storage.TelemetryEvent{
		Name:     telemetry.EventRunFinished,
		RunID:    run.ID,
		PlayerID: run.PlayerID,
		Metadata: map[string]string{"finalScore": strconv.Itoa(run.FinalScore())},
	})
}

// newIDGenerator returns the production id generator.
func newIDGenerator() func() (string, error) {
	return id.NewID
}

// tracer builds the package tracer from the global provider.
func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
