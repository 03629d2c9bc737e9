// Package memory provides the in-memory store backing the arena engine.
//
// State lives for the lifetime of the process; persistence across restarts
// is out of scope. Each test constructs its own isolated store.
package memory

import (
	"context"
	"sync"

	"github.com/louisbranch/ludus/internal/arena/domain"
	"github.com/louisbranch/ludus/internal/storage"
)

// Store is a map-backed implementation of every engine store interface.
type Store struct {
	mu sync.RWMutex

	runs       map[string]domain.Run
	candidates map[string]map[string]domain.Candidate // playerID -> candidateID -> candidate
	challenges map[string]domain.Challenge
	events     []storage.TelemetryEvent
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		runs:       make(map[string]domain.Run),
		candidates: make(map[string]map[string]domain.Candidate),
		challenges: make(map[string]domain.Challenge),
	}
}

// PutRun stores a run record.
func (s *Store) PutRun(ctx context.Context, run domain.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

// GetRun fetches a run record by id.
func (s *Store) GetRun(ctx context.Context, id string) (domain.Run, error) {
	if err := ctx.Err(); err != nil {
		return domain.Run{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return domain.Run{}, storage.ErrNotFound
	}
	return run, nil
}

// PutCandidate stores a candidate in its player's pool. Storing a new
// candidate never evicts the player's other offers.
func (s *Store) PutCandidate(ctx context.Context, candidate domain.Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pool, ok := s.candidates[candidate.PlayerID]
	if !ok {
		pool = make(map[string]domain.Candidate)
		s.candidates[candidate.PlayerID] = pool
	}
	pool[candidate.ID] = candidate
	return nil
}

// GetCandidate fetches a candidate from the player's pool.
func (s *Store) GetCandidate(ctx context.Context, playerID, candidateID string) (domain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return domain.Candidate{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidate, ok := s.candidates[playerID][candidateID]
	if !ok {
		return domain.Candidate{}, storage.ErrNotFound
	}
	return candidate, nil
}

// DeleteCandidate removes a candidate from the player's pool.
func (s *Store) DeleteCandidate(ctx context.Context, playerID, candidateID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[playerID][candidateID]; !ok {
		return storage.ErrNotFound
	}
	delete(s.candidates[playerID], candidateID)
	return nil
}

// PutChallenge stores a challenge record.
func (s *Store) PutChallenge(ctx context.Context, challenge domain.Challenge) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.ID] = challenge
	return nil
}

// GetChallenge fetches a challenge record by id.
func (s *Store) GetChallenge(ctx context.Context, id string) (domain.Challenge, error) {
	if err := ctx.Err(); err != nil {
		return domain.Challenge{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	challenge, ok := s.challenges[id]
	if !ok {
		return domain.Challenge{}, storage.ErrNotFound
	}
	return challenge, nil
}

// ListChallenges returns every stored challenge in unspecified order.
func (s *Store) ListChallenges(ctx context.Context) ([]domain.Challenge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Challenge, 0, len(s.challenges))
	for _, challenge := range s.challenges {
		out = append(out, challenge)
	}
	return out, nil
}

// AppendTelemetryEvent records an engine event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, event storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// TelemetryEvents returns a copy of the recorded event journal.
func (s *Store) TelemetryEvents() []storage.TelemetryEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.TelemetryEvent, len(s.events))
	copy(out, s.events)
	return out
}
