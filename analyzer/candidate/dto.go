package candidate

import (
	"time"

	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

// ListCandidatesRequest - DTO for listing candidates
type ListCandidatesRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// CandidateResponse - DTO for returning candidate data
type CandidateResponse struct {
	ID        kernel.CandidateID `json:"id"`
	FullName  kernel.FullName    `json:"full_name"`
	Email     kernel.Email       `json:"email"`
	Phone     kernel.Phone       `json:"phone_number"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Response type alias for paginated candidates
type PaginatedCandidatesResponse = kernel.Paginated[CandidateResponse]

// ResumeResponse - resume metadata with a time-limited download link for the
// original PDF. DownloadURL is empty when no PDF was stored.
type ResumeResponse struct {
	ID          kernel.ResumeID       `json:"id"`
	CandidateID kernel.CandidateID    `json:"candidate_id"`
	Category    kernel.ResumeCategory `json:"category"`
	HasText     bool                  `json:"has_text"`
	DownloadURL string                `json:"download_url,omitempty"`
	ExpiresAt   *time.Time            `json:"expires_at,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ToCandidateResponse converts a Candidate entity to its response DTO.
func ToCandidateResponse(c *Candidate) *CandidateResponse {
	return &CandidateResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
