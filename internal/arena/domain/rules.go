package domain

import "time"

// Starting resources for a new run.
const (
	StartTurns = 50
	StartGold  = 100
)

// Training costs and the ceiling trainable stats can reach through training.
// Recruitment bonuses may push a stat past the cap.
const (
	TrainTurnCost = 1
	TrainGoldCost = 8
	TrainStatCap  = 12
)

// Rest turn costs by current wound. Rest always heals exactly one step.
const (
	RestLightTurnCost   = 1
	RestSeriousTurnCost = 3
)

// Candidate generation ranges.
const (
	CandidateStatMin   = 1
	CandidateStatMax   = 6
	CandidateTalentMin = 0
	CandidateTalentMax = 3
)

// SkipCandidateTurnCost is the turn price of passing on an offer.
const SkipCandidateTurnCost = 1

// Difficulty selects the AI opponent tier.
type Difficulty string

const (
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// AIFightTurnCost is the turn price of an AI fight at any difficulty.
const AIFightTurnCost = 1

// Reward is a gold and fame payout.
type Reward struct {
	Gold int
	Fame int
}

// AIOpponents holds the fixed stat block per AI difficulty.
var AIOpponents = map[Difficulty]StatBlock{
	DifficultyNormal: {STR: 7, AGI: 7, END: 7, Talent: 1},
	DifficultyHard:   {STR: 9, AGI: 9, END: 9, Talent: 2},
}

// AIRewards holds the winner payout per AI difficulty.
var AIRewards = map[Difficulty]Reward{
	DifficultyNormal: {Gold: 12, Fame: 1},
	DifficultyHard:   {Gold: 20, Fame: 2},
}

// PvP challenge costs, rewards and the posting window.
const (
	ChallengePostTurnCost   = 1
	ChallengeAcceptTurnCost = 1
	ChallengeTTL            = 48 * time.Hour
)

// ChallengeWinReward is the payout for the winning side of a PvP fight.
var ChallengeWinReward = Reward{Gold: 20, Fame: 2}

// Injury distributions by situation. Losing hurts more than winning, and
// training while already hurt is riskier than training healthy.
var (
	InjuryTrainHealthy = InjuryDistribution{Healthy: 80, Light: 18, Serious: 2}
	InjuryTrainLight   = InjuryDistribution{Healthy: 70, Light: 25, Serious: 5}
	InjuryAIWin        = InjuryDistribution{Healthy: 85, Light: 15, Serious: 0}
	InjuryAILoss       = InjuryDistribution{Healthy: 55, Light: 35, Serious: 10}
	InjuryPvPWin       = InjuryDistribution{Healthy: 80, Light: 20, Serious: 0}
	InjuryPvPLoss      = InjuryDistribution{Healthy: 45, Light: 45, Serious: 10}
)

// ValidDifficulty reports whether d names a known AI tier.
func ValidDifficulty(d Difficulty) bool {
	return d == DifficultyNormal || d == DifficultyHard
}
