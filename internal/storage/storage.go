// Package storage defines the entity store interfaces for the arena engine.
//
// Stores hold state and nothing else: no validation, no game rules. Callers
// own correctness, and read-modify-write cycles are serialized by the service
// layer's per-entity locks.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/ludus/internal/arena/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// RunStore keeps runs by id.
type RunStore interface {
	PutRun(ctx context.Context, run domain.Run) error
	GetRun(ctx context.Context, id string) (domain.Run, error)
}

// CandidateStore keeps each player's pool of recruitment offers.
type CandidateStore interface {
	PutCandidate(ctx context.Context, candidate domain.Candidate) error
	GetCandidate(ctx context.Context, playerID, candidateID string) (domain.Candidate, error)
	DeleteCandidate(ctx context.Context, playerID, candidateID string) error
}

// ChallengeStore keeps posted challenges by id.
type ChallengeStore interface {
	PutChallenge(ctx context.Context, challenge domain.Challenge) error
	GetChallenge(ctx context.Context, id string) (domain.Challenge, error)
	ListChallenges(ctx context.Context) ([]domain.Challenge, error)
}

// TelemetryEvent is one operational event in the engine journal.
type TelemetryEvent struct {
	Timestamp time.Time
	Severity  string
	Name      string
	RunID     string
	PlayerID  string
	Metadata  map[string]string
}

// TelemetryStore appends engine events for observability.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, event TelemetryEvent) error
}
