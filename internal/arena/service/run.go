package service

import (
	"context"
	"fmt"
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

// RunService coordinates run lifecycle and recruitment operations.
type RunService struct {
	stores      Stores
	rng         random.Source
	locks       *EntityLocks
	emitter     *telemetry.Emitter
	clock       func() time.Time
	idGenerator func() (string, error)
	tracer      trace.Tracer
}

// NewRunService creates a RunService with default clock and id generation.
func NewRunService(cfg Config) *RunService {
	cfg.applyDefaults()
	return &RunService{
		stores:      cfg.Stores,
		rng:         cfg.Random,
		locks:       cfg.Locks,
		emitter:     cfg.Emitter,
		clock:       time.Now,
		idGenerator: newIDGenerator(),
		tracer:      tracer(),
	}
}

// TrainResult reports a completed training action.
type TrainResult struct {
	Run          domain.Run
	Injury       domain.Wound
	StatImproved domain.StatName
}

// FightResult reports a completed AI fight.
type FightResult struct {
	Run    domain.Run
	Won    bool
	Injury domain.Wound
	Combat combat.Result
}

// CreateRun starts a fresh run for the player.
func (s *RunService) CreateRun(ctx context.Context, playerID string) (_ domain.Run, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.CreateRun")
	defer func() { endSpan(span, err) }()

	run, err := domain.CreateRun(playerID, s.clock, s.idGenerator)
	if err != nil {
		return domain.Run{}, err
	}
	if err := s.stores.Runs.PutRun(ctx, run); err != nil {
		return domain.Run{}, fmt.Errorf("persist run: %w", err)
	}

	_ = s.emitter.Emit(ctx, storage.TelemetryEvent{
		Name:     telemetry.EventRunCreated,
		RunID:    run.ID,
		PlayerID: run.PlayerID,
	})
	return run, nil
}

// GetRun returns the caller's run without mutating it.
func (s *RunService) GetRun(ctx context.Context, runID, playerID string) (_ domain.Run, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.GetRun", trace.WithAttributes(attribute.String("run.id", runID)))
	defer func() { endSpan(span, err) }()

	return loadOwnedRun(ctx, s.stores.Runs, runID, playerID)
}

// Train spends a turn and gold to raise one random trainable stat by one,
// then rolls for a training injury. Blocked while seriously wounded. Both
// resource checks pass before either resource is spent, so a failed call
// changes nothing.
func (s *RunService) Train(ctx context.Context, runID, playerID string) (_ TrainResult, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.Train", trace.WithAttributes(attribute.String("run.id", runID)))
	defer func() { endSpan(span, err) }()

	unlock := s.locks.Lock(runKey(runID))
	defer unlock()

	run, err := loadOwnedRun(ctx, s.stores.Runs, runID, playerID)
	if err != nil {
		return TrainResult{}, err
	}
	if err := run.EnsureActive(); err != nil {
		return TrainResult{}, err
	}
	if err := run.EnsureGladiator(); err != nil {
		return TrainResult{}, err
	}
	if run.Wound == domain.WoundSerious {
		return TrainResult{}, apperrors.New(apperrors.CodeCannotTrainSeriousWound, "serious wound cannot train")
	}
	if err := run.CanAfford(domain.TrainTurnCost, domain.TrainGoldCost); err != nil {
		return TrainResult{}, err
	}

	if err := run.SpendTurns(domain.TrainTurnCost); err != nil {
		return TrainResult{}, err
	}
	if err := run.SpendGold(domain.TrainGoldCost); err != nil {
		return TrainResult{}, err
	}

	stat := domain.TrainableStats[s.rng.IntBetween(0, len(domain.TrainableStats)-1)]
	run.ImproveStat(stat)

	dist := domain.InjuryTrainHealthy
	if run.Wound == domain.WoundLight {
		dist = domain.InjuryTrainLight
	}
	injury := combat.RollInjury(dist, s.rng)
	run.SetWound(injury)

	if err := s.stores.Runs.PutRun(ctx, run); err != nil {
		return TrainResult{}, fmt.Errorf("persist run: %w", err)
	}
	emitRunFinished(ctx, s.emitter, run)

	return TrainResult{Run: run, Injury: injury, StatImproved: stat}, nil
}

// Rest heals the wound exactly one step toward healthy. A serious wound
// costs more turns than a light one; resting healthy is a no-op heal that
// still consumes the cheaper cost.
func (s *RunService) Rest(ctx context.Context, runID, playerID string) (_ domain.Run, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.Rest", trace.WithAttributes(attribute.String("run.id", runID)))
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
	if err := run.EnsureGladiator(); err != nil {
		return domain.Run{}, err
	}

	switch run.Wound {
	case domain.WoundSerious:
		if err := run.SpendTurns(domain.RestSeriousTurnCost); err != nil {
			return domain.Run{}, err
		}
		run.Wound = domain.WoundLight
	case domain.WoundLight:
		if err := run.SpendTurns(domain.RestLightTurnCost); err != nil {
			return domain.Run{}, err
		}
		run.Wound = domain.WoundHealthy
	default:
		if err := run.SpendTurns(domain.RestLightTurnCost); err != nil {
			return domain.Run{}, err
		}
	}

	if err := s.stores.Runs.PutRun(ctx, run); err != nil {
		return domain.Run{}, fmt.Errorf("persist run: %w", err)
	}
	emitRunFinished(ctx, s.emitter, run)
	return run, nil
}

// FightAI pits the run against the fixed AI opponent for the difficulty.
// The winner takes the difficulty's reward table; each side of the outcome
// rolls its own injury distribution.
func (s *RunService) FightAI(ctx context.Context, runID, playerID string, difficulty domain.Difficulty) (_ FightResult, err error) {
	ctx, span := s.tracer.Start(ctx, "arena.FightAI",
		trace.WithAttributes(attribute.String("run.id", runID), attribute.String("fight.difficulty", string(difficulty))))
	defer func() { endSpan(span, err) }()

	unlock := s.locks.Lock(runKey(runID))
	defer unlock()

	run, err := loadOwnedRun(ctx, s.stores.Runs, runID, playerID)
	if err != nil {
		return FightResult{}, err
	}
	if err := run.EnsureActive(); err != nil {
		return FightResult{}, err
	}
	if err := run.EnsureGladiator(); err != nil {
		return FightResult{}, err
	}
	if !domain.ValidDifficulty(difficulty) {
		return FightResult{}, apperrors.New(apperrors.CodeInvalidDifficulty, "invalid difficulty")
	}

	if err := run.SpendTurns(domain.AIFightTurnCost); err != nil {
		return FightResult{}, err
	}

	outcome := combat.Resolve(run.Stats, domain.AIOpponents[difficulty], s.rng)
	won := outcome.Winner == combat.SideA

	var injury domain.Wound
	if won {
		reward := domain.AIRewards[difficulty]
		run.Wins++
		run.Gold += reward.Gold
		run.Fame += reward.Fame
		injury = combat.RollInjury(domain.InjuryAIWin, s.rng)
	} else {
		run.Losses++
		injury = combat.RollInjury(domain.InjuryAILoss, s.rng)
	}
	run.SetWound(injury)

	if err := s.stores.Runs.PutRun(ctx, run); err != nil {
		return FightResult{}, fmt.Errorf("persist run: %w", err)
	}

	emitRunFinished(ctx, s.emitter, run)

	_ = s.emitter.Emit(ctx, storage.TelemetryEvent{
		Name:     telemetry.EventFightResolved,
		RunID:    run.ID,
		PlayerID: run.PlayerID,
		Metadata: map[string]string{
			"mode":       "ai",
			"difficulty": string(difficulty),
			"winner":     string(outcome.Winner),
		},
	})

	return FightResult{Run: run, Won: won, Injury: injury, Combat: outcome}, nil
}
