package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/louisbranch/ludus/internal/arena/domain"
	apperrors "github.com/louisbranch/ludus/internal/errors"
)

type playerBody struct {
	PlayerID string `json:"playerId"`
}

type recruitBody struct {
	PlayerID    string `json:"playerId"`
	CandidateID string `json:"candidateId"`
}

type fightBody struct {
	PlayerID   string `json:"playerId"`
	Difficulty string `json:"difficulty"`
}

type acceptBody struct {
	RunID    string `json:"runId"`
	PlayerID string `json:"playerId"`
}

// createRun starts a run, minting a player identity when the caller does not
// bring one.
func (h *Handler) createRun(c *fiber.Ctx) error {
	var body playerBody
	_ = c.BodyParser(&body)

	playerID := body.PlayerID
	if playerID == "" {
		playerID = "p_" + uuid.NewString()
	}

	run, err := h.runs.CreateRun(c.Context(), playerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"playerId": playerID,
		"runId":    run.ID,
		"run":      shapeRun(run),
	})
}

func (h *Handler) getRun(c *fiber.Ctx) error {
	run, err := h.runs.GetRun(c.Context(), c.Params("runId"), c.Query("playerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"run": shapeRun(run)})
}

func (h *Handler) generateCandidate(c *fiber.Ctx) error {
	var body playerBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}

	candidate, err := h.runs.GenerateCandidate(c.Context(), c.Params("runId"), body.PlayerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"candidate": candidate})
}

// skipCandidate burns a turn and immediately offers a replacement.
func (h *Handler) skipCandidate(c *fiber.Ctx) error {
	var body playerBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}

	run, err := h.runs.SkipCandidate(c.Context(), c.Params("runId"), body.PlayerID)
	if err != nil {
		return respondError(c, err)
	}
	candidate, err := h.runs.GenerateCandidate(c.Context(), c.Params("runId"), body.PlayerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"run": shapeRun(run), "candidate": candidate})
}

func (h *Handler) buyCandidate(c *fiber.Ctx) error {
	var body recruitBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}

	run, candidate, err := h.runs.BuyCandidate(c.Context(), c.Params("runId"), body.PlayerID, body.CandidateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"run": shapeRun(run), "candidate": candidate})
}

// recruitStarter performs the free one-time recruitment. The roster guard
// lives here rather than in the engine.
func (h *Handler) recruitStarter(c *fiber.Ctx) error {
	var body recruitBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}

	current, err := h.runs.GetRun(c.Context(), c.Params("runId"), body.PlayerID)
	if err != nil {
		return respondError(c, err)
	}
	if len(current.Roster) > 0 {
		return respondError(c, apperrors.New(apperrors.CodeStarterAlreadyRecruited, "starter already recruited"))
	}

	run, candidate, err := h.runs.RecruitStarter(c.Context(), c.Params("runId"), body.PlayerID, body.CandidateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"run": shapeRun(run), "candidate": candidate})
}

func (h *Handler) train(c *fiber.Ctx) error {
	var body playerBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}

	result, err := h.runs.Train(c.Context(), c.Params("runId"), body.PlayerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"run":          shapeRun(result.Run),
		"injury":       result.Injury,
		"statImproved": result.StatImproved,
	})
}

func (h *Handler) rest(c *fiber.Ctx) error {
	var body playerBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}

	run, err := h.runs.Rest(c.Context(), c.Params("runId"), body.PlayerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"run": shapeRun(run)})
}

func (h *Handler) fightAI(c *fiber.Ctx) error {
	var body fightBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}
	difficulty := domain.Difficulty(body.Difficulty)
	if difficulty == "" {
		difficulty = domain.DifficultyNormal
	}

	result, err := h.runs.FightAI(c.Context(), c.Params("runId"), body.PlayerID, difficulty)
	if err != nil {
		return respondError(c, err)
	}

	outcome := "loss"
	if result.Won {
		outcome = "win"
	}
	return c.JSON(fiber.Map{
		"run": shapeRun(result.Run),
		"fight": fiber.Map{
			"result":  outcome,
			"injury":  result.Injury,
			"winner":  result.Combat.Winner,
			"ratingA": result.Combat.RatingA,
			"ratingB": result.Combat.RatingB,
			"scoreA":  result.Combat.ScoreA,
			"scoreB":  result.Combat.ScoreB,
		},
	})
}

func (h *Handler) postChallenge(c *fiber.Ctx) error {
	var body playerBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}

	challenge, run, err := h.challenges.Post(c.Context(), c.Params("runId"), body.PlayerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"challengeId": challenge.ID,
		"shareUrl":    "/share/challenge/" + challenge.ID,
		"run":         shapeRun(run),
	})
}

// openChallengeSummary is the public listing row; it deliberately hides the
// poster's snapshot so browsing players cannot scout opponents for free.
type openChallengeSummary struct {
	ID                 string    `json:"id"`
	CreatedAt          time.Time `json:"createdAt"`
	ChallengerNameOrID string    `json:"challengerNameOrId"`
}

func (h *Handler) listOpenChallenges(c *fiber.Ctx) error {
	open, err := h.challenges.ListOpen(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	summaries := make([]openChallengeSummary, 0, len(open))
	for _, challenge := range open {
		label := challenge.ID
		if challenge.RunID != "" {
			label = "Run " + truncateID(challenge.RunID)
		}
		summaries = append(summaries, openChallengeSummary{
			ID:                 challenge.ID,
			CreatedAt:          challenge.CreatedAt,
			ChallengerNameOrID: label,
		})
	}
	return c.JSON(fiber.Map{"challenges": summaries})
}

func (h *Handler) getChallenge(c *fiber.Ctx) error {
	challenge, err := h.challenges.Get(c.Context(), c.Params("challengeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"challenge": fiber.Map{
			"id":              challenge.ID,
			"status":          challenge.Status,
			"createdAt":       challenge.CreatedAt,
			"expiresAt":       challenge.ExpiresAt,
			"creatorSnapshot": challenge.Snapshot,
			"result":          challenge.Result,
		},
	})
}

func (h *Handler) acceptChallenge(c *fiber.Ctx) error {
	var body acceptBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, err)
	}

	result, err := h.challenges.Accept(c.Context(), body.RunID, body.PlayerID, c.Params("challengeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"challenge":   result.Challenge,
		"result":      result.Result,
		"creatorRun":  shapeRun(result.CreatorRun),
		"accepterRun": shapeRun(result.AccepterRun),
	})
}

func truncateID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
