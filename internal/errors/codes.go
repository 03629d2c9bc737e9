// Package errors provides structured error handling for the arena engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Lookup errors
	CodeRunNotFound       Code = "RUN_NOT_FOUND"
	CodeCandidateNotFound Code = "CANDIDATE_NOT_FOUND"
	CodeChallengeNotFound Code = "CHALLENGE_NOT_FOUND"

	// Ownership errors
	CodeForbidden Code = "FORBIDDEN"

	// State errors
	CodeRunNotActive            Code = "RUN_NOT_ACTIVE"
	CodeChallengeExpired        Code = "CHALLENGE_EXPIRED"
	CodeChallengeNotOpen        Code = "CHALLENGE_NOT_OPEN"
	CodeCannotTrainSeriousWound Code = "CANNOT_TRAIN_SERIOUS_WOUND"

	// Resource errors
	CodeNotEnoughTurns Code = "NOT_ENOUGH_TURNS"
	CodeNotEnoughGold  Code = "NOT_ENOUGH_GOLD"

	// Prerequisite errors
	CodeNoGladiator Code = "NO_GLADIATOR"

	// Input errors
	CodeInvalidDifficulty       Code = "INVALID_DIFFICULTY"
	CodeStarterAlreadyRecruited Code = "STARTER_ALREADY_RECRUITED"
)

// Kind classifies engine failures for consistent transport mapping.
type Kind string

const (
	KindUnknown              Kind = "unknown"
	KindNotFound             Kind = "not_found"
	KindForbidden            Kind = "forbidden"
	KindInvalidState         Kind = "invalid_state"
	KindInsufficientResource Kind = "insufficient_resource"
	KindMissingPrerequisite  Kind = "missing_prerequisite"
	KindInvalidInput         Kind = "invalid_input"
)

// Kind maps a code to its failure classification.
func (c Code) Kind() Kind {
	switch c {
	case CodeRunNotFound,
		CodeCandidateNotFound,
		CodeChallengeNotFound:
		return KindNotFound

	case CodeForbidden:
		return KindForbidden

	case CodeRunNotActive,
		CodeChallengeExpired,
		CodeChallengeNotOpen,
		CodeCannotTrainSeriousWound,
		CodeStarterAlreadyRecruited:
		return KindInvalidState

	case CodeNotEnoughTurns,
		CodeNotEnoughGold:
		return KindInsufficientResource

	case CodeNoGladiator:
		return KindMissingPrerequisite

	case CodeInvalidDifficulty:
		return KindInvalidInput

	default:
		return KindUnknown
	}
}
