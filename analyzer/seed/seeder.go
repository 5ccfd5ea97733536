// Package seed loads the resume dataset into Postgres and S3: one candidate
// and one resume row per CSV record, with the original PDF uploaded next to
// the extracted text. It is a one-shot batch tool, run via cmd/seeder.
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jmatamoros/cvmatch/analyzer/candidate"
	"github.com/jmatamoros/cvmatch/internal/pdf"
	"github.com/jmatamoros/cvmatch/pkg/fsx"
	"github.com/jmatamoros/cvmatch/pkg/kernel"
	"github.com/jmatamoros/cvmatch/pkg/logx"
)

const (
	DefaultBatchSize = 100
	csvFileName      = "Resume.csv"
	pdfBaseFolder    = "data"
)

// Report summarizes a seeding run.
type Report struct {
	TotalRows    int
	Seeded       int
	Failed       int
	PDFsUploaded int
	PDFsMissing  int
}

// Seeder performs the full dataset load: clean slate, then batched inserts.
type Seeder struct {
	repo      candidate.Repository
	files     fsx.FileSystem
	batchSize int
	names     *NameGenerator
}

// NewSeeder creates a seeder. batchSize <= 0 falls back to the default.
func NewSeeder(repo candidate.Repository, files fsx.FileSystem, batchSize int) *Seeder {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Seeder{
		repo:      repo,
		files:     files,
		batchSize: batchSize,
		names:     NewNameGenerator(42),
	}
}

// Run executes a full seeding pass from the dataset directory, which must
// contain Resume.csv and a data/<Category>/<ID>.pdf tree.
func (s *Seeder) Run(ctx context.Context, datasetDir string) (*Report, error) {
	logx.Info("Seeding: clearing storage bucket")
	if err := s.clearStorage(ctx); err != nil {
		return nil, fmt.Errorf("clear storage: %w", err)
	}

	logx.Info("Seeding: clearing database tables")
	if err := s.repo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear tables: %w", err)
	}

	csvPath := filepath.Join(datasetDir, csvFileName)
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open dataset csv: %w", err)
	}
	defer f.Close()

	rows, err := ReadResumeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset csv: %w", err)
	}

	report := &Report{TotalRows: len(rows)}
	batches := (len(rows) + s.batchSize - 1) / s.batchSize
	logx.Infof("Seeding %d records in %d batches", len(rows), batches)

	for b := 0; b < batches; b++ {
		start := b * s.batchSize
		end := start + s.batchSize
		if end > len(rows) {
			end = len(rows)
		}

		logx.Infof("Seeding batch %d/%d", b+1, batches)
		for _, row := range rows[start:end] {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if err := s.seedRow(ctx, datasetDir, row, report); err != nil {
				logx.Errorf("Failed to seed record %s: %v", row.ID, err)
				report.Failed++
				continue
			}
			report.Seeded++
		}
	}

	logx.Infof("Seeding complete: %d/%d records, %d PDFs uploaded, %d PDFs missing",
		report.Seeded, report.TotalRows, report.PDFsUploaded, report.PDFsMissing)
	return report, nil
}

func (s *Seeder) seedRow(ctx context.Context, datasetDir string, row ResumeRow, report *Report) error {
	name, email, phone := s.names.Next()

	now := time.Now()
	cand := &candidate.Candidate{
		ID:        kernel.NewCandidateID(uuid.NewString()),
		FullName:  name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateCandidate(ctx, cand); err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}

	text := row.Text
	pdfKey, pdfData, err := s.uploadPDF(ctx, datasetDir, row)
	if err != nil {
		return err
	}
	if pdfKey.IsEmpty() {
		report.PDFsMissing++
	} else {
		report.PDFsUploaded++
	}

	// The CSV text column is occasionally empty; fall back to extracting
	// from the PDF itself so the candidate still ranks.
	if text == "" && pdfData != nil {
		extracted, err := pdf.ExtractText(pdfData)
		if err != nil {
			logx.Warnf("Text extraction failed for %s, seeding without text: %v", row.ID, err)
		} else {
			text = extracted
		}
	}

	resume := &candidate.Resume{
		ID:          kernel.NewResumeID(uuid.NewString()),
		CandidateID: cand.ID,
		Text:        text,
		PDFKey:      pdfKey,
		Category:    kernel.ResumeCategory(row.Category),
		CreatedAt:   now,
	}
	if err := s.repo.CreateResume(ctx, resume); err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}

	return nil
}

// uploadPDF stores the record's PDF and returns its object key. A missing
// local file is not an error; the record is seeded without a PDF.
func (s *Seeder) uploadPDF(ctx context.Context, datasetDir string, row ResumeRow) (kernel.BucketKey, []byte, error) {
	localPath := filepath.Join(datasetDir, pdfBaseFolder, row.Category, row.ID+".pdf")
	data, err := os.ReadFile(localPath)
	if os.IsNotExist(err) {
		logx.Warnf("PDF not found at %s, skipping upload", localPath)
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("read pdf %s: %w", localPath, err)
	}

	key := row.Category + "/" + row.ID + ".pdf"
	if err := s.files.WriteFile(ctx, key, data, "application/pdf"); err != nil {
		return "", nil, fmt.Errorf("upload pdf %s: %w", key, err)
	}

	return kernel.BucketKey(key), data, nil
}

func (s *Seeder) clearStorage(ctx context.Context) error {
	keys, err := s.files.List(ctx, "")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	logx.Infof("Deleting %d objects from storage", len(keys))
	for _, key := range keys {
		if err := s.files.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
