package candidateinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/jmatamoros/cvmatch/analyzer/candidate"
	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) candidate.Repository {
	return &PostgresCandidateRepository{db: db}
}

// CreateCandidate inserts a new candidate
func (r *PostgresCandidateRepository) CreateCandidate(ctx context.Context, c *candidate.Candidate) error {
	query := `
		INSERT INTO candidates (
			id, full_name, email, phone_number, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		c.ID,
		c.FullName,
		c.Email,
		c.Phone,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

// CreateResume inserts a new resume record
func (r *PostgresCandidateRepository) CreateResume(ctx context.Context, res *candidate.Resume) error {
	query := `
		INSERT INTO resumes (
			id, candidate_id, resume_text, pdf_key, category, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	// Store NULL rather than empty strings so the read side can distinguish
	// "no text extracted" from real content.
	var text sql.NullString
	if res.Text != "" {
		text = sql.NullString{String: res.Text, Valid: true}
	}
	var pdfKey sql.NullString
	if !res.PDFKey.IsEmpty() {
		pdfKey = sql.NullString{String: res.PDFKey.String(), Valid: true}
	}

	_, err := r.db.ExecContext(
		ctx,
		query,
		res.ID,
		res.CandidateID,
		text,
		pdfKey,
		res.Category,
		res.CreatedAt,
	)

	return err
}

// GetByID retrieves a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `
		SELECT id, full_name, email, phone_number, created_at, updated_at
		FROM candidates
		WHERE id = $1
	`

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, id)
	if err == sql.ErrNoRows {
		return nil, candidate.ErrCandidateNotFound()
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// GetResumeByCandidateID retrieves the resume record for a candidate
func (r *PostgresCandidateRepository) GetResumeByCandidateID(ctx context.Context, id kernel.CandidateID) (*candidate.Resume, error) {
	query := `
		SELECT id, candidate_id, resume_text, pdf_key, category, created_at
		FROM resumes
		WHERE candidate_id = $1
	`

	var res candidate.Resume
	var text sql.NullString
	var pdfKey sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID,
		&res.CandidateID,
		&text,
		&pdfKey,
		&res.Category,
		&res.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, candidate.ErrResumeNotFound()
	}
	if err != nil {
		return nil, err
	}

	if text.Valid {
		res.Text = text.String
	}
	if pdfKey.Valid {
		res.PDFKey = kernel.BucketKey(pdfKey.String)
	}

	return &res, nil
}

// List retrieves candidates with pagination, newest first
func (r *PostgresCandidateRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	pagination = pagination.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM candidates`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, err
	}

	query := `
		SELECT id, full_name, email, phone_number, created_at, updated_at
		FROM candidates
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	candidates := make([]candidate.Candidate, 0)
	if err := r.db.SelectContext(ctx, &candidates, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, err
	}

	paginated := kernel.NewPaginated(candidates, pagination.Page, pagination.PageSize, total)
	return &paginated, nil
}

// FetchCorpus returns up to limit joined candidate/resume entries for scoring.
// Ordered by resume creation so repeated calls see the same sequence and the
// engine's stable tie-break stays reproducible.
func (r *PostgresCandidateRepository) FetchCorpus(ctx context.Context, limit int) ([]candidate.CorpusEntry, error) {
	query := `
		SELECT
			c.id AS candidate_id,
			c.full_name,
			c.email,
			r.resume_text,
			r.pdf_key,
			r.category
		FROM resumes r
		JOIN candidates c ON c.id = r.candidate_id
		ORDER BY r.created_at, r.id
		LIMIT $1
	`

	rows, err := r.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]candidate.CorpusEntry, 0)
	for rows.Next() {
		var e candidate.CorpusEntry
		var text sql.NullString
		var pdfKey sql.NullString

		err := rows.Scan(
			&e.CandidateID,
			&e.FullName,
			&e.Email,
			&text,
			&pdfKey,
			&e.Category,
		)
		if err != nil {
			return nil, err
		}

		// Absent text is a recoverable condition: the entry still ranks,
		// it just scores zero.
		if text.Valid {
			e.Text = text.String
		}
		if pdfKey.Valid {
			e.PDFKey = kernel.BucketKey(pdfKey.String)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CountCandidates returns the total number of candidates
func (r *PostgresCandidateRepository) CountCandidates(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM candidates`)
	return count, err
}

// DeleteAll removes every resume and candidate
func (r *PostgresCandidateRepository) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM resumes`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates`); err != nil {
		return err
	}

	return tx.Commit()
}
