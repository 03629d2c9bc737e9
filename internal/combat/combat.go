// Package combat resolves fights between two stat blocks.
//
// Resolution is rating plus a small uniform offset per side. The tie-break
// chain (score, then rating, then side A) yields a total order, so a fight
// never ends undecided.
package combat

import (
	"github.com/louisbranch/ludus/internal/arena/domain"
	"github.com/louisbranch/ludus/internal/random"
)

// Side names one of the two combatants.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Offset bounds for the random score adjustment applied to each rating.
const (
	OffsetMin = -5
	OffsetMax = 5
)

// Result reports the fight outcome with the ratings and scores that decided
// it, for transparency in the stored record.
type Result struct {
	Winner  Side
	RatingA float64
	RatingB float64
	ScoreA  float64
	ScoreB  float64
}

// Resolve fights stat block a against stat block b. Each side's score is its
// rating plus an independent uniform offset in [OffsetMin, OffsetMax]; the
// strictly higher score wins. On a score tie the higher underlying rating
// wins, and when ratings are also equal side A wins.
func Resolve(a, b domain.StatBlock, rng random.Source) Result {
	ratingA := a.Rating()
	ratingB := b.Rating()
	scoreA := ratingA + float64(rng.IntBetween(OffsetMin, OffsetMax))
	scoreB := ratingB + float64(rng.IntBetween(OffsetMin, OffsetMax))

	result := Result{
		RatingA: ratingA,
		RatingB: ratingB,
		ScoreA:  scoreA,
		ScoreB:  scoreB,
	}

	switch {
	case scoreA > scoreB:
		result.Winner = SideA
	case scoreB > scoreA:
		result.Winner = SideB
	case ratingA >= ratingB:
		result.Winner = SideA
	default:
		result.Winner = SideB
	}
	return result
}

// RollInjury draws a uniform roll in [1, 100] and buckets it against the
// given distribution.
func RollInjury(dist domain.InjuryDistribution, rng random.Source) domain.Wound {
	return dist.Bucket(rng.IntBetween(1, 100))
}
