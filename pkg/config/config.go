// Package config builds the process-wide configuration once at startup. No
// component reads the environment directly; everything receives the values it
// needs from this struct through the container.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the explicit configuration value object for the service.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Analyze  AnalyzeConfig
	LogLevel string
}

type HTTPConfig struct {
	Port        string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	Region string
	Bucket string
	Prefix string

	// PresignTTL bounds how long resume download links stay valid.
	PresignTTL time.Duration
}

type AnalyzeConfig struct {
	// CorpusLimit caps how many resumes a single analyze request scores.
	CorpusLimit int

	// CacheTTL is how long ranked results stay cached in Redis.
	CacheTTL time.Duration
}

// Load reads an optional .env file and builds the Config from the environment.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        os.Getenv("DB_PASS"),
			Name:            getEnv("DB_NAME", "cvmatch"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASS"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Region:     getEnv("AWS_REGION", "us-east-1"),
			Bucket:     os.Getenv("AWS_BUCKET"),
			Prefix:     getEnv("AWS_PREFIX", "cv-pdfs"),
			PresignTTL: getEnvDuration("PRESIGN_TTL", 15*time.Minute),
		},
		Analyze: AnalyzeConfig{
			CorpusLimit: getEnvInt("ANALYZE_CORPUS_LIMIT", 3000),
			CacheTTL:    getEnvDuration("ANALYZE_CACHE_TTL", 5*time.Minute),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.Storage.Bucket == "" {
		return nil, fmt.Errorf("config: AWS_BUCKET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
