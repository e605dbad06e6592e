package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Images   ImageConfig
	Import   ImportConfig
	CORS     CORSConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds

	// StatementTimeout caps any single statement, including a whole import
	// batch. Zero leaves the server default.
	StatementTimeout time.Duration
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds session signing configuration.
type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

// StorageConfig holds object storage configuration.
type StorageConfig struct {
	Driver          string // "s3" or "local"
	Region          string
	Endpoint        string // e.g. MinIO or Supabase storage S3 endpoint
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	PublicBaseURL   string
	ProductBucket   string
	GalleryBucket   string
	LocalDir        string
}

// ImageConfig holds upload compression settings.
type ImageConfig struct {
	MaxWidth       int
	Quality        int
	MaxUploadBytes int64
	MaxPixels      int64
}

// ImportConfig holds CSV import settings.
type ImportConfig struct {
	ResetDelay   time.Duration
	MaxFileBytes int64
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment variables
// take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:             getEnv("DB_HOST", "localhost"),
			Port:             getEnvAsInt("DB_PORT", 5432),
			User:             getEnv("DB_USER", "postgres"),
			Password:         getEnv("DB_PASSWORD", ""),
			Database:         getEnv("DB_NAME", "deliadmin"),
			MaxConnections:   getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections:   getEnvAsInt("DB_MIN_CONNECTIONS", 2),
			MaxConnLifetime:  getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			StatementTimeout: time.Duration(getEnvAsInt("DB_STATEMENT_TIMEOUT_MS", 30000)) * time.Millisecond,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", ""),
			SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
		},
		Storage: StorageConfig{
			Driver:          getEnv("STORAGE_DRIVER", "s3"),
			Region:          getEnv("STORAGE_REGION", "eu-west-2"),
			Endpoint:        getEnv("STORAGE_ENDPOINT", ""),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("STORAGE_SECRET_ACCESS_KEY", ""),
			UsePathStyle:    getEnvAsBool("STORAGE_PATH_STYLE", false),
			PublicBaseURL:   getEnv("STORAGE_PUBLIC_BASE_URL", ""),
			ProductBucket:   getEnv("STORAGE_PRODUCT_BUCKET", "menu-images"),
			GalleryBucket:   getEnv("STORAGE_GALLERY_BUCKET", "deli-gallery"),
			LocalDir:        getEnv("STORAGE_LOCAL_DIR", "./data/media"),
		},
		Images: ImageConfig{
			MaxWidth:       getEnvAsInt("IMAGE_MAX_WIDTH", 1200),
			Quality:        getEnvAsInt("IMAGE_QUALITY", 80),
			MaxUploadBytes: int64(getEnvAsInt("IMAGE_MAX_UPLOAD_BYTES", 20<<20)),
			MaxPixels:      int64(getEnvAsInt("IMAGE_MAX_PIXELS", 50_000_000)),
		},
		Import: ImportConfig{
			ResetDelay:   time.Duration(getEnvAsInt("IMPORT_RESET_DELAY_MS", 3000)) * time.Millisecond,
			MaxFileBytes: int64(getEnvAsInt("IMPORT_MAX_FILE_BYTES", 10<<20)),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database statement timeout cannot be negative")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Storage.Driver {
	case "s3":
		if c.Storage.Region == "" {
			return fmt.Errorf("storage region is required for the s3 driver")
		}
	case "local":
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("storage directory is required for the local driver")
		}
	default:
		return fmt.Errorf("invalid storage driver: %s (must be s3 or local)", c.Storage.Driver)
	}

	if c.Storage.ProductBucket == "" || c.Storage.GalleryBucket == "" {
		return fmt.Errorf("product and gallery buckets are required")
	}

	if c.Images.MaxWidth < 1 {
		return fmt.Errorf("image max width must be at least 1")
	}

	if c.Images.Quality < 1 || c.Images.Quality > 100 {
		return fmt.Errorf("invalid image quality: %d (must be 1-100)", c.Images.Quality)
	}

	if c.Images.MaxPixels < 1 {
		return fmt.Errorf("image max pixels must be at least 1")
	}

	if c.Images.MaxUploadBytes < 1 || c.Import.MaxFileBytes < 1 {
		return fmt.Errorf("upload size limits must be positive")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
