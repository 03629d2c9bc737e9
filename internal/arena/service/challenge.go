package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/ludus/internal/arena/domain"
	"github.com/louisbranch/ludus/internal/combat"
	apperrors "github.com/louisbranch/ludus/internal/errors"
	"github.com/louisbranch/ludus/internal/random"
	"github.com/louisbranch/ludus/internal/storage"
	"github.com/louisbranch/ludus/internal/telemetry"
)

// ChallengeService coordinates the asynchronous PvP challenge lifecycle:
// posting frozen snapshots, lazy expiry on every read path, and the
// accept-and-resolve transaction across two runs.
type ChallengeService struct {
	stores      Stores
	rng         random.Source
	locks       *EntityLocks
	emitter     *telemetry.Emitter
	clock       func() time.Time
	idGenerator func() (string, error)
	tracer      trace.Tracer
}

// NewChallengeService creates a ChallengeService with default clock and id
// generation. Share the Config with NewRunService so both services serialize
// on the same lock table.
func NewChallengeService(cfg Config) *ChallengeService {
	cfg.applyDefaults()
	return &ChallengeService{
		stores:      cfg.Stores,
		rng:         cfg.Random,
		locks:       cfg.Locks,
		emitter:     cfg.Emitter,
		clock:       time.Now,
		idGenerator: newIDGenerator(),
		tracer:      tracer(),
	}
}

// AcceptResult carries everything a resolved challenge produced.
type AcceptResult struct {
	Challenge   domain.Challenge
	Result      domain.ChallengeResult
	CreatorRun  domain.Run
	AccepterRun domain.Run
}

// Post publishes an open challenge for the run, spending one turn. The
// challenge carries a snapshot frozen at post time; later changes to the
// posting run never alter what accepters fight.
func (s *ChallengeService) Post(ctx context.Context, runID, playerID string) (_ domain.Challenge, _ domain.Run, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.PostChallenge", trace.WithAttributes(attribute.String("run.id", runID)))
	defer func() { endSpan(span, err) }()

	unlock := s.locks.Lock(runKey(runID))
	defer unlock()

	run, err := loadOwnedRun(ctx, s.stores.Runs, runID, playerID)
	if err != nil {
		return domain.Challenge{}, domain.Run{}, err
	}
	if err := run.EnsureActive(); err != nil {
		return domain.Challenge{}, domain.Run{}, err
	}
	if err := run.EnsureGladiator(); err != nil {
		return domain.Challenge{}, domain.Run{}, err
	}
	if err := run.SpendTurns(domain.ChallengePostTurnCost); err != nil {
		return domain.Challenge{}, domain.Run{}, err
	}

	challenge, err := domain.NewChallenge(&run, s.clock, s.idGenerator)
	if err != nil {
		return domain.Challenge{}, domain.Run{}, err
	}

	if err := s.stores.Runs.PutRun(ctx, run); err != nil {
		return domain.Challenge{}, domain.Run{}, fmt.Errorf("persist run: %w", err)
	}
	if err := s.stores.Challenges.PutChallenge(ctx, challenge); err != nil {
		return domain.Challenge{}, domain.Run{}, fmt.Errorf("persist challenge: %w", err)
	}
	emitRunFinished(ctx, s.emitter, run)

	_ = s.emitter.Emit(ctx, storage.TelemetryEvent{
		Name:     telemetry.EventChallengePosted,
		RunID:    run.ID,
		PlayerID: run.PlayerID,
		Metadata: map[string]string{"challengeId": challenge.ID},
	})
	return challenge, run, nil
}

// Get returns a challenge by id, flipping and persisting an overdue OPEN
// challenge to EXPIRED on the way out.
func (s *ChallengeService) Get(ctx context.Context, challengeID string) (_ domain.Challenge, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.GetChallenge", trace.WithAttributes(attribute.String("challenge.id", challengeID)))
	defer func() { endSpan(span, err) }()

	unlock := s.locks.Lock(challengeKey(challengeID))
	defer unlock()

	challenge, err := s.loadChallenge(ctx, challengeID)
	if err != nil {
		return domain.Challenge{}, err
	}
	if err := s.expireIfDue(ctx, &challenge); err != nil {
		return domain.Challenge{}, err
	}
	return challenge, nil
}

// ListOpen returns the challenges still open for acceptance, newest first.
// Overdue challenges are expired and persisted as a side effect, so the
// listing never advertises a challenge whose window has lapsed.
func (s *ChallengeService) ListOpen(ctx context.Context) (_ []domain.Challenge, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.ListOpenChallenges")
	defer func() { endSpan(span, err) }()

	all, err := s.stores.Challenges.ListChallenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}

	open := make([]domain.Challenge, 0, len(all))
	for _, challenge := range all {
		unlock := s.locks.Lock(challengeKey(challenge.ID))
		current, err := s.loadChallenge(ctx, challenge.ID)
		if err != nil {
			unlock()
			if apperrors.IsCode(err, apperrors.CodeChallengeNotFound) {
				continue
			}
			return nil, err
		}
		if err := s.expireIfDue(ctx, &current); err != nil {
			unlock()
			return nil, err
		}
		unlock()

		if current.Status == domain.ChallengeOpen {
			open = append(open, current)
		}
	}

	sort.Slice(open, func(i, j int) bool { return open[i].CreatedAt.After(open[j].CreatedAt) })
	return open, nil
}

// Accept resolves a challenge against the caller's run.
//
// The accepter's turn is spent and committed before the challenge is even
// looked up, so accepting a stale or already-resolved challenge still costs
// the turn. The fight pits the poster's frozen snapshot against the
// accepter's current stats; rewards and injuries land on both live runs and
// the challenge is stamped RESOLVED exactly once.
func (s *ChallengeService) Accept(ctx context.Context, runID, playerID, challengeID string) (_ AcceptResult, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.AcceptChallenge",
		trace.WithAttributes(attribute.String("run.id", runID), attribute.String("challenge.id", challengeID)))
	defer func() { endSpan(span, err) }()

	unlockChallenge := s.locks.Lock(challengeKey(challengeID))
	defer unlockChallenge()

	// Peek at the challenge to learn the poster's run id so both run locks
	// can be taken up front in the global order. The taxonomy demands that
	// a missing challenge surface only after the accepter's turn is spent,
	// so a lookup failure here is remembered rather than returned.
	challenge, challengeErr := s.loadChallenge(ctx, challengeID)

	runIDs := []string{runID}
	if challengeErr == nil {
		runIDs = append(runIDs, challenge.RunID)
	}
	unlockRuns := s.locks.lockRuns(runIDs...)
	defer unlockRuns()

	accepter, err := loadOwnedRun(ctx, s.stores.Runs, runID, playerID)
	if err != nil {
		return AcceptResult{}, err
	}
	if err := accepter.EnsureActive(); err != nil {
		return AcceptResult{}, err
	}
	if err := accepter.EnsureGladiator(); err != nil {
		return AcceptResult{}, err
	}
	if err := accepter.SpendTurns(domain.ChallengeAcceptTurnCost); err != nil {
		return AcceptResult{}, err
	}
	if err := s.stores.Runs.PutRun(ctx, accepter); err != nil {
		return AcceptResult{}, fmt.Errorf("persist run: %w", err)
	}
	emitRunFinished(ctx, s.emitter, accepter)

	if challengeErr != nil {
		return AcceptResult{}, challengeErr
	}
	if challenge.ExpireIfDue(s.clock()) {
		if err := s.stores.Challenges.PutChallenge(ctx, challenge); err != nil {
			return AcceptResult{}, fmt.Errorf("persist challenge: %w", err)
		}
		s.emitExpired(ctx, challenge)
	}
	switch challenge.Status {
	case domain.ChallengeExpired:
		return AcceptResult{}, apperrors.New(apperrors.CodeChallengeExpired, "challenge expired")
	case domain.ChallengeResolved:
		return AcceptResult{}, apperrors.New(apperrors.CodeChallengeNotOpen, "challenge already resolved")
	}

	// A player may accept their own challenge; the poster and accepter are
	// then the same run and every mutation lands on one copy.
	selfAccept := challenge.RunID == accepter.ID

	var poster domain.Run
	if selfAccept {
		poster = accepter
	} else {
		poster, err = loadRun(ctx, s.stores.Runs, challenge.RunID)
		if err != nil {
			return AcceptResult{}, err
		}
		if err := poster.EnsureActive(); err != nil {
			return AcceptResult{}, err
		}
	}

	// On a self-accept both sides alias the same copy, so the run takes the
	// win and the loss and both injury rolls, the second roll overwriting
	// the first wound.
	posterRef, accepterRef := &poster, &accepter
	if selfAccept {
		posterRef = &accepter
	}

	outcome := combat.Resolve(challenge.Snapshot.Stats, accepter.Stats, s.rng)
	posterWon := outcome.Winner == combat.SideA

	winnerRef, loserRef := posterRef, accepterRef
	if !posterWon {
		winnerRef, loserRef = accepterRef, posterRef
	}

	winnerRef.Wins++
	winnerRef.Gold += domain.ChallengeWinReward.Gold
	winnerRef.Fame += domain.ChallengeWinReward.Fame
	loserRef.Losses++

	winnerInjury := combat.RollInjury(domain.InjuryPvPWin, s.rng)
	winnerRef.SetWound(winnerInjury)
	loserInjury := combat.RollInjury(domain.InjuryPvPLoss, s.rng)
	loserRef.SetWound(loserInjury)

	creatorInjury, accepterInjury := winnerInjury, loserInjury
	if !posterWon {
		creatorInjury, accepterInjury = loserInjury, winnerInjury
	}

	winnerRunID, loserRunID := posterRef.ID, accepterRef.ID
	if !posterWon {
		winnerRunID, loserRunID = accepterRef.ID, posterRef.ID
	}

	resolvedAt := s.clock().UTC()
	challenge.Status = domain.ChallengeResolved
	challenge.ResolvedAt = &resolvedAt
	challenge.AccepterRunID = accepterRef.ID
	challenge.Result = &domain.ChallengeResult{
		WinnerRunID:    winnerRunID,
		LoserRunID:     loserRunID,
		CreatorInjury:  creatorInjury,
		AccepterInjury: accepterInjury,
		Winner:         string(outcome.Winner),
		RatingA:        outcome.RatingA,
		RatingB:        outcome.RatingB,
		ScoreA:         outcome.ScoreA,
		ScoreB:         outcome.ScoreB,
	}

	if err := s.stores.Runs.PutRun(ctx, *posterRef); err != nil {
		return AcceptResult{}, fmt.Errorf("persist run: %w", err)
	}
	if !selfAccept {
		if err := s.stores.Runs.PutRun(ctx, *accepterRef); err != nil {
			return AcceptResult{}, fmt.Errorf("persist run: %w", err)
		}
	}
	if err := s.stores.Challenges.PutChallenge(ctx, challenge); err != nil {
		return AcceptResult{}, fmt.Errorf("persist challenge: %w", err)
	}

	_ = s.emitter.Emit(ctx, storage.TelemetryEvent{
		Name:     telemetry.EventChallengeResolved,
		RunID:    winnerRunID,
		PlayerID: playerID,
		Metadata: map[string]string{
			"challengeId": challenge.ID,
			"winner":      string(outcome.Winner),
		},
	})

	return AcceptResult{
		Challenge:   challenge,
		Result:      *challenge.Result,
		CreatorRun:  *posterRef,
		AccepterRun: *accepterRef,
	}, nil
}

// loadChallenge fetches a challenge, translating a storage miss into the
// engine code.
func (s *ChallengeService) loadChallenge(ctx context.Context, challengeID string) (domain.Challenge, error) {
	challenge, err := s.stores.Challenges.GetChallenge(ctx, challengeID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return domain.Challenge{}, apperrors.New(apperrors.CodeChallengeNotFound, "challenge not found")
		}
		return domain.Challenge{}, fmt.Errorf("load challenge: %w", err)
	}
	return challenge, nil
}

// expireIfDue persists a lazy expiry flip; callers hold the challenge lock.
func (s *ChallengeService) expireIfDue(ctx context.Context, challenge *domain.Challenge) error {
	if !challenge.ExpireIfDue(s.clock()) {
		return nil
	}
	if err := s.stores.Challenges.PutChallenge(ctx, *challenge); err != nil {
		return fmt.Errorf("persist challenge: %w", err)
	}
	s.emitExpired(ctx, *challenge)
	return nil
}

func (s *ChallengeService) emitExpired(ctx context.Context, challenge domain.Challenge) {
	_ = s.emitter.Emit(ctx, storage.TelemetryEvent{
		Name:     telemetry.EventChallengeExpired,
		RunID:    challenge.RunID,
		PlayerID: challenge.PlayerID,
		Metadata: map[string]string{"challengeId": challenge.ID},
	})
}
