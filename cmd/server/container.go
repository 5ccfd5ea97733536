package main

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/jmatamoros/cvmatch/analyzer/candidate/candidateapi"
	"github.com/jmatamoros/cvmatch/analyzer/candidate/candidateinfra"
	"github.com/jmatamoros/cvmatch/analyzer/candidate/candidatesrv"
	"github.com/jmatamoros/cvmatch/analyzer/ranking/rankingapi"
	"github.com/jmatamoros/cvmatch/analyzer/ranking/rankinginfra"
	"github.com/jmatamoros/cvmatch/analyzer/ranking/rankingsrv"
	"github.com/jmatamoros/cvmatch/pkg/config"
	"github.com/jmatamoros/cvmatch/pkg/fsx"
	"github.com/jmatamoros/cvmatch/pkg/fsx/fsxs3"
	"github.com/jmatamoros/cvmatch/pkg/logx"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	S3Client   *s3.Client
	FileSystem fsx.FileSystem

	// Services
	CandidateService *candidatesrv.CandidateService
	RankingService   *rankingsrv.Service

	// API Handlers
	CandidateHandlers *candidateapi.Handlers
	RankingHandlers   *rankingapi.Handlers
}

// NewContainer initializes the dependency injection container from the
// already-loaded configuration. Nothing in here reads the environment.
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	cfg := c.Config

	// 1. Database Connection
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := c.Redis.Ping(ctx).Result(); err != nil {
		// The result cache is optional; the service computes directly without it.
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		logx.Fatalf("Unable to load AWS SDK config: %v", err)
	}
	c.S3Client = s3.NewFromConfig(awsCfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, cfg.Storage.Bucket, cfg.Storage.Prefix)
}

func (c *Container) initServices() {
	cfg := c.Config

	// --- Repositories ---
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)

	// --- Infrastructure Services ---
	resultCache := rankinginfra.NewRedisResultCache(c.Redis, "analyze")

	// --- Domain Services ---
	c.RankingService = rankingsrv.NewService(
		candidateRepo,
		resultCache,
		cfg.Analyze.CorpusLimit,
		cfg.Analyze.CacheTTL,
	)
	c.CandidateService = candidatesrv.NewCandidateService(
		candidateRepo,
		c.FileSystem,
		cfg.Storage.PresignTTL,
	)

	// --- Handlers ---
	c.RankingHandlers = rankingapi.NewHandlers(c.RankingService)
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
}
