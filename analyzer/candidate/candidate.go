package candidate

import (
	"time"

	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

// Candidate is a person with a seeded resume on file.
type Candidate struct {
	ID        kernel.CandidateID `db:"id" json:"id"`
	FullName  kernel.FullName    `db:"full_name" json:"full_name"`
	Email     kernel.Email       `db:"email" json:"email"`
	Phone     kernel.Phone       `db:"phone_number" json:"phone_number"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt time.Time          `db:"updated_at" json:"updated_at"`
}

// Resume is the stored resume record for a candidate: the extracted plain
// text used for scoring plus the object key of the original PDF.
type Resume struct {
	ID          kernel.ResumeID       `db:"id" json:"id"`
	CandidateID kernel.CandidateID    `db:"candidate_id" json:"candidate_id"`
	Text        string                `db:"resume_text" json:"resume_text"`
	PDFKey      kernel.BucketKey      `db:"pdf_key" json:"pdf_key"`
	Category    kernel.ResumeCategory `db:"category" json:"category"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
}

// CorpusEntry is the joined candidate+resume read model the ranking engine
// consumes. ID is always set; Text may be empty when the resume had no
// extractable text.
type CorpusEntry struct {
	CandidateID kernel.CandidateID    `db:"candidate_id" json:"candidate_id"`
	FullName    kernel.FullName       `db:"full_name" json:"full_name"`
	Email       kernel.Email          `db:"email" json:"email"`
	Text        string                `db:"resume_text" json:"-"`
	PDFKey      kernel.BucketKey      `db:"pdf_key" json:"pdf_key"`
	Category    kernel.ResumeCategory `db:"category" json:"category"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasText reports whether the resume carries any extractable text.
func (r *Resume) HasText() bool {
	return r.Text != ""
}

// HasPDF reports whether the original PDF was stored.
func (r *Resume) HasPDF() bool {
	return !r.PDFKey.IsEmpty()
}

// IsValid checks the minimum a candidate record must carry.
func (c *Candidate) IsValid() bool {
	return !c.ID.IsEmpty() && !c.FullName.IsEmpty() && c.Email.IsValid()
}
