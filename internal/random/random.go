// Package random provides the engine's injectable integer source.
//
// The default source is a math/rand generator seeded from crypto/rand, so
// runs are not reproducible across process restarts. Tests inject a scripted
// source to make rolls deterministic.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source draws uniform random integers for the engine.
type Source interface {
	// IntBetween returns a uniform integer in the inclusive range [min, max].
	IntBetween(min, max int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a Source backed by math/rand with the given seed.
func NewSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// NewDefaultSource creates a Source seeded from crypto/rand.
func NewDefaultSource() (Source, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSource(seed), nil
}

func (s *lockedSource) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Intn(max-min+1)
}
