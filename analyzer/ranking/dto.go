package ranking

import (
	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

// AnalyzeRequest - DTO for the analyze operation. Keywords may be empty (all
// candidates score zero in corpus order). TopN and MinScore are boundary
// concerns applied after ranking; zero values mean "no truncation" and
// "keep everything".
type AnalyzeRequest struct {
	Keywords []string `json:"keywords"`
	TopN     int      `json:"top_n,omitempty"`
	MinScore int      `json:"min_score,omitempty"`
}

// Validate checks the request shape before it reaches the engine.
func (r AnalyzeRequest) Validate() error {
	if r.TopN < 0 {
		return ErrInvalidRequest().WithDetail("top_n", "must not be negative")
	}
	if r.MinScore < 0 {
		return ErrInvalidRequest().WithDetail("min_score", "must not be negative")
	}
	return nil
}

// ResultItem - a single ranked candidate in the response payload.
type ResultItem struct {
	ID       kernel.CandidateID    `json:"id"`
	Name     kernel.FullName       `json:"name"`
	Email    kernel.Email          `json:"email"`
	Category kernel.ResumeCategory `json:"category,omitempty"`
	Score    int                   `json:"score"`
	Matches  map[string]int        `json:"matches,omitempty"`
}

// AnalyzeResponse - the ranked result. Total is the number of candidates
// scored before any min-score filtering or top-N truncation; Keywords echoes
// the normalized keyword set actually used.
type AnalyzeResponse struct {
	Results  []ResultItem `json:"results"`
	Total    int          `json:"total"`
	Keywords []string     `json:"keywords"`
	Cached   bool         `json:"cached,omitempty"`
}

// ToResultItem converts a scored candidate to its response shape.
func ToResultItem(sc ScoredCandidate) ResultItem {
	return ResultItem{
		ID:       sc.Entry.CandidateID,
		Name:     sc.Entry.FullName,
		Email:    sc.Entry.Email,
		Category: sc.Entry.Category,
		Score:    sc.Score,
		Matches:  sc.Matches,
	}
}
