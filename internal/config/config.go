package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup. An empty backend URL or endpoint disables
// that backend; the file sink under DataDir is always on.
type Config struct {
	Addr          string
	DatabaseURL   string
	MigrationsDir string
	// Redis draft cache
	RedisURL string
	DraftTTL time.Duration
	DataDir  string
	ReposDir string
	// Search
	MeiliURL       string
	MeiliMasterKey string
	// Media library
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioPublicURL string
	MinioUseSSL    bool

	AutosaveInterval time.Duration
	// Editing sessions held in memory, and how long an unused one survives.
	MaxSessions int
	SessionIdle time.Duration

	CORSOrigin string
	LogLevel   slog.Level
	// RateLimit is requests per second across the server; 0 disables limiting.
	RateLimit   float64
	DefaultRole string
}

// Load reads the environment after merging an optional .env file. Variables
// already set in the process win over the file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:             getenv("API_ADDR", ":8787"),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		MigrationsDir:    getenv("VITRIN_MIGRATIONS_DIR", "./db/migrations"),
		RedisURL:         getenv("REDIS_URL", ""),
		DraftTTL:         time.Duration(getenvInt("VITRIN_DRAFT_TTL_SECONDS", 604800)) * time.Second,
		DataDir:          getenv("VITRIN_DATA_DIR", "./data/documents"),
		ReposDir:         getenv("VITRIN_REPOS_DIR", "./data/repos"),
		MeiliURL:         getenv("MEILI_URL", ""),
		MeiliMasterKey:   getenv("MEILI_MASTER_KEY", ""),
		MinioEndpoint:    getenv("MINIO_ENDPOINT", ""),
		MinioAccessKey:   getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:   getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:      getenv("MINIO_BUCKET", "vitrin-media"),
		MinioPublicURL:   getenv("MINIO_PUBLIC_URL", ""),
		MinioUseSSL:      getenvBool("MINIO_USE_SSL", false),
		AutosaveInterval: time.Duration(getenvInt("VITRIN_AUTOSAVE_MS", 1500)) * time.Millisecond,
		MaxSessions:      getenvInt("VITRIN_MAX_SESSIONS", 1000),
		SessionIdle:      time.Duration(getenvInt("VITRIN_SESSION_IDLE_SECONDS", 1800)) * time.Second,
		CORSOrigin:       getenv("VITRIN_CORS_ORIGIN", "*"),
		LogLevel:         parseLevel(getenv("VITRIN_LOG_LEVEL", "info")),
		RateLimit:        getenvFloat("VITRIN_RATE_LIMIT", 0),
		DefaultRole:      getenv("VITRIN_DEFAULT_ROLE", "editor"),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvFloat(key string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
