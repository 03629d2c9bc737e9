package service

import "sync"

// EntityLocks serializes read-modify-write cycles per entity id. A lock is
// created on first use and kept for the process lifetime; the entity
// population is small enough that reclamation is not worth the complexity.
//
// Lock ordering across entity kinds is fixed: a challenge lock is always
// acquired before any run lock, and when an operation touches two runs their
// locks are acquired in lexicographic id order. Every operation follows this
// hierarchy, so the engine cannot deadlock.
type EntityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEntityLocks creates an empty lock table.
func NewEntityLocks() *EntityLocks {
	return &EntityLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for a key, creating it on first use, and returns
// the matching unlock function.
func (l *EntityLocks) Lock(key string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func runKey(id string) string       { return "run:" + id }
func challengeKey(id string) string { return "challenge:" + id }

// lockRuns acquires the locks for the given run ids in lexicographic order,
// skipping duplicates, and returns a single unlock for all of them.
func (l *EntityLocks) lockRuns(ids ...string) (unlock func()) {
	ordered := make([]string, 0, len(ids))
	for _, id := range ids {
		duplicate := false
		for _, seen := range ordered {
			if seen == id {
				duplicate = true
				break
			}
		}
		if !duplicate {
			ordered = append(ordered, id)
		}
	}
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[j] < ordered[i] {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}

	unlocks := make([]func(), 0, len(ordered))
	for _, id := range ordered {
		unlocks = append(unlocks, l.Lock(runKey(id)))
	}
	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}
