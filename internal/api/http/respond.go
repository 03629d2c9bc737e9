package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/louisbranch/ludus/internal/arena/domain"
	apperrors "github.com/louisbranch/ludus/internal/errors"
	"github.com/louisbranch/ludus/internal/errors/i18n"
)

// errorBody is the wire envelope for failed requests.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps an engine error to its HTTP status and localized
// message. Errors without an engine code surface as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	catalog := i18n.GetCatalog(c.Get("Accept-Language"))
	code := apperrors.GetCode(err)
	message := catalog.Format(string(code), apperrors.GetMetadata(err))

	return c.Status(apperrors.HTTPStatus(err)).JSON(errorBody{
		Error: errorDetail{Code: string(code), Message: message},
	})
}

// runPayload decorates a run with its final score once the run is over.
// Active runs omit the field.
type runPayload struct {
	domain.Run
	FinalScore *int `json:"finalScore,omitempty"`
}

func shapeRun(run domain.Run) runPayload {
	payload := runPayload{Run: run}
	if run.Status == domain.RunStatusFinished {
		score := run.FinalScore()
		payload.FinalScore = &score
	}
	return payload
}
