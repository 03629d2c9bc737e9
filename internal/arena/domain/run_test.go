package domain

import (
	"testing"
	"time"

	"github.com/louisbranch/ludus/internal/errors"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func staticID(id string) func() (string, error) {
	return func() (string, error) { return id, nil }
}

func TestCreateRunDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	run, err := CreateRun("player-1", fixedClock(now), staticID("run-1"))
	if err != nil {
		t.Fatalf("create run: %v", err)
	}

	if run.ID != "run-1" {
		t.Fatalf("id = %q, want run-1", run.ID)
	}
	if run.Status != RunStatusActive {
		t.Fatalf("status = %s, want active", run.Status)
	}
	if run.Turns != StartTurns || run.Gold != StartGold {
		t.Fatalf("resources = %d turns %d gold, want %d/%d", run.Turns, run.Gold, StartTurns, StartGold)
	}
	if run.Wound != WoundHealthy {
		t.Fatalf("wound = %s, want healthy", run.Wound)
	}
	if want := (StatBlock{STR: 1, AGI: 1, END: 1}); run.Stats != want {
		t.Fatalf("stats = %+v, want %+v", run.Stats, want)
	}
	if len(run.Roster) != 0 {
		t.Fatalf("roster = %v, want empty", run.Roster)
	}
	if !run.CreatedAt.Equal(now) {
		t.Fatalf("createdAt = %v, want %v", run.CreatedAt, now)
	}
}

func TestEnsureOwnedBy(t *testing.T) {
	run := Run{PlayerID: "player-1"}

	if err := run.EnsureOwnedBy("player-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := run.EnsureOwnedBy("player-2"); !errors.IsCode(err, errors.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestEnsureActive(t *testing.T) {
	run := Run{Status: RunStatusActive}
	if err := run.EnsureActive(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	run.Status = RunStatusFinished
	if err := run.EnsureActive(); !errors.IsCode(err, errors.CodeRunNotActive) {
		t.Fatalf("expected run not active, got %v", err)
	}
}

func TestEnsureGladiator(t *testing.T) {
	run := Run{}
	if err := run.EnsureGladiator(); !errors.IsCode(err, errors.CodeNoGladiator) {
		t.Fatalf("expected no gladiator, got %v", err)
	}

	run.Roster = []string{"cand-1"}
	if err := run.EnsureGladiator(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestCanAfford ensures resource checks report what the caller had and
// needed without touching the balances.
func TestCanAfford(t *testing.T) {
	run := Run{Turns: 1, Gold: 5}

	err := run.CanAfford(2, 0)
	if !errors.IsCode(err, errors.CodeNotEnoughTurns) {
		t.Fatalf("expected not enough turns, got %v", err)
	}
	meta := errors.GetMetadata(err)
	if meta["Have"] != "1" || meta["Need"] != "2" {
		t.Fatalf("metadata = %v, want Have=1 Need=2", meta)
	}

	err = run.CanAfford(1, 8)
	if !errors.IsCode(err, errors.CodeNotEnoughGold) {
		t.Fatalf("expected not enough gold, got %v", err)
	}

	if run.Turns != 1 || run.Gold != 5 {
		t.Fatalf("balances changed to %d/%d", run.Turns, run.Gold)
	}
}

func TestSpendTurnsFinishesAtZero(t *testing.T) {
	run := Run{Status: RunStatusActive, Turns: 3}

	if err := run.SpendTurns(2); err != nil {
		t.Fatalf("spend turns: %v", err)
	}
	if run.Status != RunStatusActive {
		t.Fatalf("status = %s, want active", run.Status)
	}

	if err := run.SpendTurns(1); err != nil {
		t.Fatalf("spend turns: %v", err)
	}
	if run.Status != RunStatusFinished {
		t.Fatalf("status = %s, want finished", run.Status)
	}

	if err := run.SpendTurns(1); !errors.IsCode(err, errors.CodeNotEnoughTurns) {
		t.Fatalf("expected not enough turns, got %v", err)
	}
}

func TestSetWoundCountsSerious(t *testing.T) {
	run := Run{Wound: WoundHealthy}

	run.SetWound(WoundLight)
	if run.SeriousWoundsTaken != 0 {
		t.Fatalf("serious wounds = %d, want 0", run.SeriousWoundsTaken)
	}

	run.SetWound(WoundSerious)
	run.SetWound(WoundSerious)
	if run.SeriousWoundsTaken != 2 {
		t.Fatalf("serious wounds = %d, want 2", run.SeriousWoundsTaken)
	}
	if run.Wound != WoundSerious {
		t.Fatalf("wound = %s, want serious", run.Wound)
	}
}

func TestImproveStatCapped(t *testing.T) {
	run := Run{Stats: StatBlock{STR: TrainStatCap - 1, AGI: TrainStatCap}}

	run.ImproveStat(StatSTR)
	run.ImproveStat(StatSTR)
	run.ImproveStat(StatAGI)

	if run.Stats.STR != TrainStatCap {
		t.Fatalf("STR = %d, want %d", run.Stats.STR, TrainStatCap)
	}
	if run.Stats.AGI != TrainStatCap {
		t.Fatalf("AGI = %d, want %d", run.Stats.AGI, TrainStatCap)
	}
}

func TestRecruitMergesStats(t *testing.T) {
	run := Run{Stats: StatBlock{STR: 1, AGI: 1, END: 1}, Roster: []string{}}
	candidate := Candidate{ID: "cand-1", Stats: StatBlock{STR: 3, AGI: 2, END: 2, Talent: 1}}

	run.Recruit(candidate)

	if want := (StatBlock{STR: 4, AGI: 3, END: 3, Talent: 1}); run.Stats != want {
		t.Fatalf("stats = %+v, want %+v", run.Stats, want)
	}
	if len(run.Roster) != 1 || run.Roster[0] != "cand-1" {
		t.Fatalf("roster = %v, want [cand-1]", run.Roster)
	}
}

// TestSnapshotFrozen ensures a snapshot does not track later stat changes.
func TestSnapshotFrozen(t *testing.T) {
	run := Run{ID: "run-1", PlayerID: "player-1", Stats: StatBlock{STR: 4, AGI: 3, END: 3, Talent: 1}}

	snapshot := run.Snapshot()
	run.ImproveStat(StatSTR)

	if snapshot.Rating != 14 {
		t.Fatalf("rating = %v, want 14", snapshot.Rating)
	}
	if snapshot.Stats.STR != 4 {
		t.Fatalf("snapshot STR = %d, want 4", snapshot.Stats.STR)
	}
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name string
		run  Run
		want int
	}{
		{name: "fresh run", run: Run{Gold: 100, Stats: StatBlock{STR: 1, AGI: 1, END: 1}}, want: 56},
		{
			name: "veteran",
			run: Run{
				Wins: 3, Fame: 4, Gold: 41,
				Stats:              StatBlock{STR: 6, AGI: 5, END: 5, Talent: 1},
				SeriousWoundsTaken: 2,
			},
			want: 3*10 + 4*5 + 16*2 + 41/2 - 2*5,
		},
		{name: "gold halves down", run: Run{Gold: 7}, want: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.run.FinalScore(); got != tc.want {
				t.Fatalf("final score = %d, want %d", got, tc.want)
			}
		})
	}
}
