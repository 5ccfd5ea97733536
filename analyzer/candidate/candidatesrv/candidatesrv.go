package candidatesrv

import (
	"context"
	"time"

	"github.com/jmatamoros/cvmatch/analyzer/candidate"
	"github.com/jmatamoros/cvmatch/pkg/errx"
	"github.com/jmatamoros/cvmatch/pkg/fsx"
	"github.com/jmatamoros/cvmatch/pkg/kernel"
	"github.com/jmatamoros/cvmatch/pkg/logx"
)

// CandidateService provides read operations over seeded candidates and
// resolves resume PDFs to time-limited download links.
type CandidateService struct {
	repo       candidate.Repository
	files      fsx.URLResolver
	presignTTL time.Duration
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(
	repo candidate.Repository,
	files fsx.URLResolver,
	presignTTL time.Duration,
) *CandidateService {
	return &CandidateService{
		repo:       repo,
		files:      files,
		presignTTL: presignTTL,
	}
}

// GetCandidateByID retrieves a candidate by ID
func (s *CandidateService) GetCandidateByID(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateResponse, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	return candidate.ToCandidateResponse(entity), nil
}

// ListCandidates retrieves candidates with pagination
func (s *CandidateService) ListCandidates(ctx context.Context, pagination kernel.PaginationOptions) (*candidate.PaginatedCandidatesResponse, error) {
	candidates, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates.Items))
	for _, c := range candidates.Items {
		responses = append(responses, *candidate.ToCandidateResponse(&c))
	}

	return &kernel.Paginated[candidate.CandidateResponse]{
		Items: responses,
		Page:  candidates.Page,
		Empty: candidates.Empty,
	}, nil
}

// GetResume retrieves resume metadata for a candidate together with a
// presigned download URL for the original PDF when one is stored.
func (s *CandidateService) GetResume(ctx context.Context, id kernel.CandidateID) (*candidate.ResumeResponse, error) {
	resume, err := s.repo.GetResumeByCandidateID(ctx, id)
	if err != nil {
		return nil, candidate.ErrResumeNotFound().WithDetail("candidate_id", id.String())
	}

	resp := &candidate.ResumeResponse{
		ID:          resume.ID,
		CandidateID: resume.CandidateID,
		Category:    resume.Category,
		HasText:     resume.HasText(),
		CreatedAt:   resume.CreatedAt,
	}

	if resume.HasPDF() {
		url, err := s.files.PresignURL(ctx, resume.PDFKey.String(), s.presignTTL)
		if err != nil {
			// The metadata is still useful without the link.
			logx.Warnf("Failed to presign PDF for candidate %s: %v", id, err)
		} else {
			expires := time.Now().Add(s.presignTTL)
			resp.DownloadURL = url
			resp.ExpiresAt = &expires
		}
	}

	return resp, nil
}
