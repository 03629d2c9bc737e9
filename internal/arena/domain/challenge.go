package domain

import (
	"fmt"
	"time"

	"github.com/louisbranch/ludus/internal/id"
)

// ChallengeStatus describes the lifecycle state of a posted challenge.
type ChallengeStatus string

const (
	// ChallengeOpen indicates the challenge can still be accepted.
	ChallengeOpen ChallengeStatus = "OPEN"
	// ChallengeResolved indicates the challenge was fought. Terminal.
	ChallengeResolved ChallengeStatus = "RESOLVED"
	// ChallengeExpired indicates the posting window lapsed. Terminal.
	ChallengeExpired ChallengeStatus = "EXPIRED"
)

// ChallengeResult records the outcome of a resolved challenge. Side A is
// always the poster's frozen snapshot, side B the accepting run.
type ChallengeResult struct {
	WinnerRunID    string  `json:"winnerRunId"`
	LoserRunID     string  `json:"loserRunId"`
	CreatorInjury  Wound   `json:"creatorInjury"`
	AccepterInjury Wound   `json:"accepterInjury"`
	Winner         string  `json:"winner"`
	RatingA        float64 `json:"ratingA"`
	RatingB        float64 `json:"ratingB"`
	ScoreA         float64 `json:"scoreA"`
	ScoreB         float64 `json:"scoreB"`
}

// Challenge is a posted, time-boxed PvP offer. Whatever happens to the
// posting run afterwards, accepters always fight the frozen snapshot.
type Challenge struct {
	ID       string `json:"id"`
	RunID    string `json:"runId"`
	PlayerID string `json:"playerId"`

	Snapshot Snapshot        `json:"snapshot"`
	Status   ChallengeStatus `json:"status"`

	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
	ResolvedAt *time.Time `json:"resolvedAt"`

	AccepterRunID string           `json:"accepterRunId,omitempty"`
	Result        *ChallengeResult `json:"result"`
}

// NewChallenge posts an open challenge carrying a snapshot of the run frozen
// at post time, expiring a fixed TTL after creation.
func NewChallenge(run *Run, now func() time.Time, idGenerator func() (string, error)) (Challenge, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	challengeID, err := idGenerator()
	if err != nil {
		return Challenge{}, fmt.Errorf("generate challenge id: %w", err)
	}

	createdAt := now().UTC()
	return Challenge{
		ID:        challengeID,
		RunID:     run.ID,
		PlayerID:  run.PlayerID,
		Snapshot:  run.Snapshot(),
		Status:    ChallengeOpen,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ChallengeTTL),
	}, nil
}

// ExpireIfDue flips an open challenge to EXPIRED when its window has lapsed.
// Expiry is derived lazily on read paths; there is no background sweeper.
// Returns true when the status changed.
func (c *Challenge) ExpireIfDue(now time.Time) bool {
	if c.Status == ChallengeOpen && now.After(c.ExpiresAt) {
		c.Status = ChallengeExpired
		return true
	}
	return false
}
