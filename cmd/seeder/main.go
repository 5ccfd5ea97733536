// Command seeder performs the one-time dataset load: it wipes the candidates
// and resumes tables together with the storage bucket prefix, then re-seeds
// everything from a local copy of the resume dataset.
//
// Usage:
//
//	seeder [dataset-dir]
//
// dataset-dir defaults to ./ResumeDataset and must contain Resume.csv plus a
// data/<Category>/<ID>.pdf tree.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/jmatamoros/cvmatch/analyzer/candidate/candidateinfra"
	"github.com/jmatamoros/cvmatch/analyzer/seed"
	"github.com/jmatamoros/cvmatch/pkg/config"
	"github.com/jmatamoros/cvmatch/pkg/fsx/fsxs3"
	"github.com/jmatamoros/cvmatch/pkg/logx"
)

func main() {
	batchSize := flag.Int("batch-size", seed.DefaultBatchSize, "records per batch")
	flag.Parse()

	datasetDir := "ResumeDataset"
	if flag.NArg() > 0 {
		datasetDir = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}
	logx.Info("Database seeder starting")

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		logx.Fatalf("Unable to load AWS SDK config: %v", err)
	}
	files := fsxs3.NewS3FileSystem(s3.NewFromConfig(awsCfg), cfg.Storage.Bucket, cfg.Storage.Prefix)

	repo := candidateinfra.NewPostgresCandidateRepository(db)
	seeder := seed.NewSeeder(repo, files, *batchSize)

	// A seeding run can take a while; let Ctrl-C stop it between records.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	report, err := seeder.Run(ctx, datasetDir)
	if err != nil {
		logx.Fatalf("Seeding aborted: %v", err)
	}

	logx.Infof("Done in %s: seeded %d/%d records (%d failed, %d PDFs uploaded, %d PDFs missing)",
		time.Since(start).Round(time.Second),
		report.Seeded, report.TotalRows, report.Failed, report.PDFsUploaded, report.PDFsMissing)
}
