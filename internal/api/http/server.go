// Package httpapi exposes the arena engine over a JSON HTTP surface.
//
// The adapter is deliberately thin: it parses identities and bodies, calls
// the services, and shapes responses. Every game rule lives below it.
package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/louisbranch/ludus/internal/arena/service"
)

// Config carries the adapter dependencies.
type Config struct {
	Runs         *service.RunService
	Challenges   *service.ChallengeService
	AllowOrigins string
}

// Handler holds the services behind the HTTP routes.
type Handler struct {
	runs       *service.RunService
	challenges *service.ChallengeService
}

// NewServer builds the fiber application with all routes registered.
func NewServer(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "ludus",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if cfg.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept, Accept-Language",
		}))
	}

	h := &Handler{runs: cfg.Runs, challenges: cfg.Challenges}

	api := app.Group("/api")
	api.Post("/run/new", h.createRun)
	api.Get("/run/:runId", h.getRun)
	api.Post("/run/:runId/recruit/generate", h.generateCandidate)
	api.Post("/run/:runId/recruit/skip", h.skipCandidate)
	api.Post("/run/:runId/recruit/buy", h.buyCandidate)
	api.Post("/run/:runId/recruit/starter", h.recruitStarter)
	api.Post("/run/:runId/action/train", h.train)
	api.Post("/run/:runId/action/rest", h.rest)
	api.Post("/run/:runId/action/fightAI", h.fightAI)
	api.Post("/run/:runId/challenge/post", h.postChallenge)
	api.Get("/challenges/open", h.listOpenChallenges)
	api.Get("/challenge/:challengeId", h.getChallenge)
	api.Post("/challenge/:challengeId/accept", h.acceptChallenge)

	return app
}
