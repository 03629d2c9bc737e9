package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/louisbranch/ludus/internal/arena/domain"
	"github.com/louisbranch/ludus/internal/storage/memory"
	"github.com/louisbranch/ludus/internal/telemetry"
)

// testEnv wires both services onto one in-memory store and one lock table,
// the way the server composes them.
type testEnv struct {
	store      *memory.Store
	runs       *RunService
	challenges *ChallengeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.New()
	cfg := Config{
		Stores:  Stores{Runs: store, Candidates: store, Challenges: store},
		Locks:   NewEntityLocks(),
		Emitter: telemetry.NewEmitter(store),
	}
	return &testEnv{
		store:      store,
		runs:       NewRunService(cfg),
		challenges: NewChallengeService(cfg),
	}
}

// activeRun builds a mid-career run with a recruited gladiator.
func activeRun(id, playerID string) domain.Run {
	return domain.Run{
		ID:       id,
		PlayerID: playerID,
		Status:   domain.RunStatusActive,
		Turns:    domain.StartTurns,
		Gold:     domain.StartGold,
		Wound:    domain.WoundHealthy,
		Stats:    domain.StatBlock{STR: 4, AGI: 3, END: 3, Talent: 1},
		Roster:   []string{"cand-starter"},
	}
}

func seqIDs(prefix string) func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("%s-%d", prefix, n), nil
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustPutRun(t *testing.T, env *testEnv, run domain.Run) {
	t.Helper()
	if err := env.store.PutRun(context.Background(), run); err != nil {
		t.Fatalf("put run: %v", err)
	}
}

func mustGetRun(t *testing.T, env *testEnv, id string) domain.Run {
	t.Helper()
	run, err := env.store.GetRun(context.Background(), id)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	return run
}

func eventNames(env *testEnv) []string {
	events := env.store.TelemetryEvents()
	names := make([]string, 0, len(events))
	for _, evt := range events {
		names = append(names, evt.Name)
	}
	return names
}

func hasEvent(env *testEnv, name string) bool {
	for _, got := range eventNames(env) {
		if got == name {
			return true
		}
	}
	return false
}
