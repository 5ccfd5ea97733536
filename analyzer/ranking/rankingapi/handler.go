package rankingapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmatamoros/cvmatch/analyzer/ranking"
	"github.com/jmatamoros/cvmatch/analyzer/ranking/rankingsrv"
)

// Handlers provides HTTP handlers for analyze operations
type Handlers struct {
	service *rankingsrv.Service
}

// NewHandlers creates a new ranking handlers instance
func NewHandlers(service *rankingsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Analyze scores and ranks all resumes against the supplied keywords
// POST /api/analyze
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	var req ranking.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return ranking.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Analyze(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers analyze routes on the app
func RegisterRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")
	api.Post("/analyze", h.Analyze)
}
