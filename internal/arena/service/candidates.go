package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/ludus/internal/arena/domain"
	apperrors "github.com/louisbranch/ludus/internal/errors"
	"github.com/louisbranch/ludus/internal/storage"
)

// GenerateCandidate rolls a fresh recruitment offer into the player's pool.
// The run is only read for the access check; earlier offers stay available.
func (s *RunService) GenerateCandidate(ctx context.Context, runID, playerID string) (_ domain.Candidate, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.GenerateCandidate", trace.WithAttributes(attribute.String("run.id", runID)))
	defer func() { endSpan(span, err) }()

	if _, err := loadOwnedRun(ctx, s.stores.Runs, runID, playerID); err != nil {
		return domain.Candidate{}, err
	}

	candidate, err := domain.NewCandidate(playerID, s.rng, s.idGenerator)
	if err != nil {
		return domain.Candidate{}, err
	}
	if err := s.stores.Candidates.PutCandidate(ctx, candidate); err != nil {
		return domain.Candidate{}, fmt.Errorf("persist candidate: %w", err)
	}
	return candidate, nil
}

// SkipCandidate spends a turn to pass on the current offer. The offer itself
// is untouched; callers follow up with GenerateCandidate for a replacement.
func (s *RunService) SkipCandidate(ctx context.Context, runID, playerID string) (_ domain.Run, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.SkipCandidate", trace.WithAttributes(attribute.String("run.id", runID)))
	defer func() { endSpan(span, err) }()

	unlock := s.locks.Lock(runKey(runID))
	defer unlock()

	run, err := loadOwnedRun(ctx, s.stores.Runs, runID, playerID)
	if err != nil {
		return domain.Run{}, err
	}
	if err := run.EnsureActive(); err != nil {
		return domain.Run{}, err
	}
	if err := run.SpendTurns(domain.SkipCandidateTurnCost); err != nil {
		return domain.Run{}, err
	}

	if err := s.stores.Runs.PutRun(ctx, run); err != nil {
		return domain.Run{}, fmt.Errorf("persist run: %w", err)
	}
	emitRunFinished(ctx, s.emitter, run)
	return run, nil
}

// BuyCandidate purchases an offer from the player's pool. The gold check
// passes before anything mutates; on success the candidate id joins the
// roster, its stats merge into the run, and the offer leaves the pool for
// good.
func (s *RunService) BuyCandidate(ctx context.Context, runID, playerID, candidateID string) (_ domain.Run, _ domain.Candidate, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.BuyCandidate",
		trace.WithAttributes(attribute.String("run.id", runID), attribute.String("candidate.id", candidateID)))
	defer func() { endSpan(span, err) }()

	unlock := s.locks.Lock(runKey(runID))
	defer unlock()

	run, candidate, err := s.loadRecruitment(ctx, runID, playerID, candidateID)
	if err != nil {
		return domain.Run{}, domain.Candidate{}, err
	}
	if err := run.CanAfford(0, candidate.Price); err != nil {
		return domain.Run{}, domain.Candidate{}, err
	}

	if err := run.SpendGold(candidate.Price); err != nil {
		return domain.Run{}, domain.Candidate{}, err
	}
	run.Recruit(candidate)

	if err := s.stores.Runs.PutRun(ctx, run); err != nil {
		return domain.Run{}, domain.Candidate{}, fmt.Errorf("persist run: %w", err)
	}
	if err := s.stores.Candidates.DeleteCandidate(ctx, playerID, candidateID); err != nil {
		return domain.Run{}, domain.Candidate{}, fmt.Errorf("consume candidate: %w", err)
	}
	return run, candidate, nil
}

// RecruitStarter performs the same roster and stat merge as BuyCandidate but
// charges nothing. Callers enforce that the roster is still empty.
func (s *RunService) RecruitStarter(ctx context.Context, runID, playerID, candidateID string) (_ domain.Run, _ domain.Candidate, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.RecruitStarter",
		trace.WithAttributes(attribute.String("run.id", runID), attribute.String("candidate.id", candidateID)))
	defer func() { endSpan(span, err) }()

	unlock := s.locks.Lock(runKey(runID))
	defer unlock()

	run, candidate, err := s.loadRecruitment(ctx, runID, playerID, candidateID)
	if err != nil {
		return domain.Run{}, domain.Candidate{}, err
	}
	run.Recruit(candidate)

	if err := s.stores.Runs.PutRun(ctx, run); err != nil {
		return domain.Run{}, domain.Candidate{}, fmt.Errorf("persist run: %w", err)
	}
	if err := s.stores.Candidates.DeleteCandidate(ctx, playerID, candidateID); err != nil {
		return domain.Run{}, domain.Candidate{}, fmt.Errorf("consume candidate: %w", err)
	}
	return run, candidate, nil
}

// loadRecruitment loads the owned active run together with the offered
// candidate, translating a pool miss into the engine code.
func (s *RunService) loadRecruitment(ctx context.Context, runID, playerID, candidateID string) (domain.Run, domain.Candidate, error) {
	run, err := loadOwnedRun(ctx, s.stores.Runs, runID, playerID)
	if err != nil {
		return domain.Run{}, domain.Candidate{}, err
	}
	if err := run.EnsureActive(); err != nil {
		return domain.Run{}, domain.Candidate{}, err
	}

	candidate, err := s.stores.Candidates.GetCandidate(ctx, playerID, candidateID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return domain.Run{}, domain.Candidate{}, apperrors.New(apperrors.CodeCandidateNotFound, "candidate not found")
		}
		return domain.Run{}, domain.Candidate{}, fmt.Errorf("load candidate: %w", err)
	}
	return run, candidate, nil
}
