package candidate

import (
	"context"

	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

type Repository interface {
	// CreateCandidate inserts a new candidate.
	CreateCandidate(ctx context.Context, c *Candidate) error

	// CreateResume inserts a new resume record.
	CreateResume(ctx context.Context, r *Resume) error

	// GetByID retrieves a candidate by ID.
	GetByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)

	// GetResumeByCandidateID retrieves the resume record for a candidate.
	GetResumeByCandidateID(ctx context.Context, id kernel.CandidateID) (*Resume, error)

	// List retrieves candidates with pagination, newest first.
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Candidate], error)

	// FetchCorpus returns up to limit joined candidate/resume entries for
	// scoring. Every entry has a non-empty candidate ID; resume text may be
	// empty. Order is deterministic (insertion order) so tie-breaks are stable.
	FetchCorpus(ctx context.Context, limit int) ([]CorpusEntry, error)

	// CountCandidates returns the total number of candidates.
	CountCandidates(ctx context.Context) (int64, error)

	// DeleteAll removes every resume and candidate. Used by the seeder for a
	// clean slate before re-seeding.
	DeleteAll(ctx context.Context) error
}
