package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
const (
	CodeRunNotFound       = "RUN_NOT_FOUND"
	CodeCandidateNotFound = "CANDIDATE_NOT_FOUND"
	CodeChallengeNotFound = "CHALLENGE_NOT_FOUND"

	CodeForbidden = "FORBIDDEN"

	CodeRunNotActive            = "RUN_NOT_ACTIVE"
	CodeChallengeExpired        = "CHALLENGE_EXPIRED"
	CodeChallengeNotOpen        = "CHALLENGE_NOT_OPEN"
	CodeCannotTrainSeriousWound = "CANNOT_TRAIN_SERIOUS_WOUND"

	CodeNotEnoughTurns = "NOT_ENOUGH_TURNS"
	CodeNotEnoughGold  = "NOT_ENOUGH_GOLD"

	CodeNoGladiator = "NO_GLADIATOR"

	CodeInvalidDifficulty       = "INVALID_DIFFICULTY"
	CodeStarterAlreadyRecruited = "STARTER_ALREADY_RECRUITED"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[string]string{
		// Lookup errors
		CodeRunNotFound:       "Run not found",
		CodeCandidateNotFound: "Candidate not found",
		CodeChallengeNotFound: "Challenge not found",

		// Ownership errors
		CodeForbidden: "You do not own this run",

		// State errors
		CodeRunNotActive:            "Run is not active",
		CodeChallengeExpired:        "Challenge expired",
		CodeChallengeNotOpen:        "Challenge already resolved",
		CodeCannotTrainSeriousWound: "A seriously wounded gladiator cannot train",

		// Resource errors
		CodeNotEnoughTurns: "Not enough turns: have {{.Have}}, need {{.Need}}",
		CodeNotEnoughGold:  "Not enough gold: have {{.Have}}, need {{.Need}}",

		// Prerequisite errors
		CodeNoGladiator: "No gladiator recruited",

		// Input errors
		CodeInvalidDifficulty:       "Difficulty must be one of: normal, hard",
		CodeStarterAlreadyRecruited: "Starter already recruited",
	},
}
