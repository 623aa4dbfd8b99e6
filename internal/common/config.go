package common

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	OCR      OCRConfig
	Text     TextConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" | "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// StorageConfig selects and configures the document artifact store
type StorageConfig struct {
	Backend      string // "local" | "s3"
	LocalDataDir string
	S3Bucket     string
	S3Region     string
	S3Prefix     string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Language         string
	TessdataDir      string
	HeicConverter    string
	ArtifactCacheDir string
	DPI              int
	MaxPages         int
	TSVConfidence    bool
}

// TextConfig holds text-pipeline configuration
type TextConfig struct {
	// Optional external word-spacing corrector; empty disables the pass.
	SpacerCommand string
	SpacerTimeout time.Duration
}

// LoadConfig loads configuration from environment variables. A .env file
// in the working directory is read first when present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("no .env file loaded", "error", err)
	}
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "sqlite"),
			DSN:              getEnv("DB_URL", "file:ocrean.db?_pragma=foreign_keys(1)"),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Backend:      getEnv("STORAGE_BACKEND", "local"),
			LocalDataDir: getEnv("LOCAL_DATA_DIR", "data"),
			S3Bucket:     getEnv("S3_BUCKET_NAME", ""),
			S3Region:     getEnv("S3_REGION", "eu-west-3"),
			S3Prefix:     getEnv("S3_PREFIX", ""),
		},
		OCR: OCRConfig{
			Language:         getEnv("OCR_LANGUAGE", "kor"),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			HeicConverter:    getEnv("HEIC_CONVERTER", "magick"),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
			DPI:              getEnvAsInt("OCR_DPI", 300),
			MaxPages:         getEnvAsInt("OCR_MAX_PAGES", 0),
			TSVConfidence:    getEnvAsBool("OCR_TSV_CONFIDENCE", false),
		},
		Text: TextConfig{
			SpacerCommand: getEnv("SPACER_COMMAND", ""),
			SpacerTimeout: getEnvAsDuration("SPACER_TIMEOUT", 10*time.Second),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.Backend == "s3" && c.Storage.S3Bucket == "" {
		return NewAppError("CONFIG_ERROR", "S3_BUCKET_NAME is required when STORAGE_BACKEND is s3", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
