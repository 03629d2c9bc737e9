package domain

import (
	"fmt"

	"github.com/louisbranch/ludus/internal/id"
	"github.com/louisbranch/ludus/internal/random"
)

// candidateNames is the pool of display names for generated candidates.
var candidateNames = []string{"Ash", "Bram", "Cora", "Dax", "Eli", "Faye"}

// Candidate is an ephemeral recruitment offer scoped to one player.
type Candidate struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId"`
	Name     string    `json:"name"`
	Stats    StatBlock `json:"stats"`
	Price    int       `json:"price"`
	Rating   float64   `json:"rating"`
}

// NewCandidate rolls a fresh candidate for the player. STR/AGI/END land in
// [CandidateStatMin, CandidateStatMax] and Talent in the smaller talent range;
// price and rating are derived from the rolled block.
func NewCandidate(playerID string, rng random.Source, idGenerator func() (string, error)) (Candidate, error) {
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	candidateID, err := idGenerator()
	if err != nil {
		return Candidate{}, fmt.Errorf("generate candidate id: %w", err)
	}

	stats := StatBlock{
		STR:    rng.IntBetween(CandidateStatMin, CandidateStatMax),
		AGI:    rng.IntBetween(CandidateStatMin, CandidateStatMax),
		END:    rng.IntBetween(CandidateStatMin, CandidateStatMax),
		Talent: rng.IntBetween(CandidateTalentMin, CandidateTalentMax),
	}

	return Candidate{
		ID:       candidateID,
		PlayerID: playerID,
		Name:     candidateNames[rng.IntBetween(0, len(candidateNames)-1)],
		Stats:    stats,
		Price:    stats.Price(),
		Rating:   stats.Rating(),
	}, nil
}
