package candidateapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmatamoros/cvmatch/analyzer/candidate"
	"github.com/jmatamoros/cvmatch/analyzer/candidate/candidatesrv"
	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListCandidates retrieves candidates with pagination
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	candidates, err := h.service.ListCandidates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// GetCandidateByID retrieves a candidate by ID
// GET /api/candidates/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetCandidateByID(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetResume retrieves resume metadata and a download link for a candidate
// GET /api/candidates/:id/resume
func (h *Handlers) GetResume(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetResume(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers candidate routes on the app
func RegisterRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")
	api.Get("/candidates", h.ListCandidates)
	api.Get("/candidates/:id", h.GetCandidateByID)
	api.Get("/candidates/:id/resume", h.GetResume)
}

func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", kernel.DefaultPage),
		PageSize: c.QueryInt("page_size", kernel.DefaultPageSize),
	}.Normalize()
}
