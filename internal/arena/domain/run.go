package domain

import (
	"fmt"
	"time"

	"github.com/louisbranch/ludus/internal/errors"
	"github.com/louisbranch/ludus/internal/id"
)

// RunStatus describes the lifecycle state of a run.
type RunStatus string

const (
	// RunStatusActive indicates the run is in progress.
	RunStatusActive RunStatus = "active"
	// RunStatusFinished indicates the run has ended. Terminal.
	RunStatusFinished RunStatus = "finished"
)

// Run is one player's career session.
type Run struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId"`
	Status   RunStatus `json:"status"`

	Turns int `json:"turns"`
	Gold  int `json:"gold"`
	Fame  int `json:"fame"`

	Wins               int `json:"wins"`
	Losses             int `json:"losses"`
	SeriousWoundsTaken int `json:"seriousWoundsTaken"`

	Wound Wound     `json:"wound"`
	Stats StatBlock `json:"stats"`

	// Roster holds recruited candidate ids in recruitment order. The engine
	// currently fields a single gladiator but the model allows more.
	Roster []string `json:"roster"`

	CreatedAt time.Time `json:"createdAt"`
}

// CreateRun creates a new active run for the player with starting resources.
func CreateRun(playerID string, now func() time.Time, idGenerator func() (string, error)) (Run, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	runID, err := idGenerator()
	if err != nil {
		return Run{}, fmt.Errorf("generate run id: %w", err)
	}

	return Run{
		ID:        runID,
		PlayerID:  playerID,
		Status:    RunStatusActive,
		Turns:     StartTurns,
		Gold:      StartGold,
		Wound:     WoundHealthy,
		Stats:     StatBlock{STR: 1, AGI: 1, END: 1, Talent: 0},
		Roster:    []string{},
		CreatedAt: now().UTC(),
	}, nil
}

// EnsureOwnedBy fails with Forbidden when the caller does not own the run.
// This check must run before any other check or mutation.
func (r *Run) EnsureOwnedBy(playerID string) error {
	if r.PlayerID != playerID {
		return errors.New(errors.CodeForbidden, "run is owned by another player")
	}
	return nil
}

// EnsureActive fails when the run has finished.
func (r *Run) EnsureActive() error {
	if r.Status != RunStatusActive {
		return errors.New(errors.CodeRunNotActive, "run is not active")
	}
	return nil
}

// EnsureGladiator fails when no candidate has been recruited yet.
func (r *Run) EnsureGladiator() error {
	if len(r.Roster) == 0 {
		return errors.New(errors.CodeNoGladiator, "no gladiator recruited")
	}
	return nil
}

// CanAfford checks the turn and gold balance without mutating, so operations
// can validate every resource before spending any.
func (r *Run) CanAfford(turns, gold int) error {
	if r.Turns < turns {
		return errors.WithMetadata(errors.CodeNotEnoughTurns, "not enough turns",
			map[string]string{"Have": fmt.Sprint(r.Turns), "Need": fmt.Sprint(turns)})
	}
	if r.Gold < gold {
		return errors.WithMetadata(errors.CodeNotEnoughGold, "not enough gold",
			map[string]string{"Have": fmt.Sprint(r.Gold), "Need": fmt.Sprint(gold)})
	}
	return nil
}

// SpendTurns decrements the turn budget. Reaching zero finishes the run.
func (r *Run) SpendTurns(n int) error {
	if err := r.CanAfford(n, 0); err != nil {
		return err
	}
	r.Turns -= n
	if r.Turns == 0 {
		r.Status = RunStatusFinished
	}
	return nil
}

// SpendGold decrements the gold balance.
func (r *Run) SpendGold(amount int) error {
	if err := r.CanAfford(0, amount); err != nil {
		return err
	}
	r.Gold -= amount
	return nil
}

// SetWound records a new wound state, counting serious outcomes.
func (r *Run) SetWound(w Wound) {
	r.Wound = w
	if w == WoundSerious {
		r.SeriousWoundsTaken++
	}
}

// ImproveStat raises a trainable stat by one, capped at the training ceiling.
func (r *Run) ImproveStat(stat StatName) {
	switch stat {
	case StatSTR:
		r.Stats.STR = min(TrainStatCap, r.Stats.STR+1)
	case StatAGI:
		r.Stats.AGI = min(TrainStatCap, r.Stats.AGI+1)
	case StatEND:
		r.Stats.END = min(TrainStatCap, r.Stats.END+1)
	}
}

// Recruit appends the candidate to the roster and merges its stat block.
// Recruitment bonuses may push stats past the training cap.
func (r *Run) Recruit(c Candidate) {
	r.Roster = append(r.Roster, c.ID)
	r.Stats = r.Stats.Add(c.Stats)
}

// Snapshot is an immutable copy of a run's rating and stats at one moment,
// used as a fixed combat input independent of later changes to the live run.
type Snapshot struct {
	RunID    string    `json:"runId"`
	PlayerID string    `json:"playerId"`
	Rating   float64   `json:"rating"`
	Stats    StatBlock `json:"stats"`
}

// Snapshot freezes the run's current rating and stats.
func (r *Run) Snapshot() Snapshot {
	return Snapshot{
		RunID:    r.ID,
		PlayerID: r.PlayerID,
		Rating:   r.Stats.Rating(),
		Stats:    r.Stats,
	}
}

// FinalScore computes the career score reported for finished runs.
func (r *Run) FinalScore() int {
	return r.Wins*10 +
		r.Fame*5 +
		(r.Stats.STR+r.Stats.AGI+r.Stats.END)*2 +
		r.Gold/2 -
		r.SeriousWoundsTaken*5
}
