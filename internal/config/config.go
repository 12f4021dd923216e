package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ScoreScale declares which numeric scale assessment stress scores use.
// The survey data exists in both conventions, so the deployment must say
// which one it ingested; there is no safe default.
type ScoreScale string

const (
	ScaleTenPoint     ScoreScale = "tenPoint"
	ScaleHundredPoint ScoreScale = "hundredPoint"
)

// HighStressThreshold returns the inclusive stress threshold for the
// high-stress risk rule on this scale.
func (s ScoreScale) HighStressThreshold() float64 {
	if s == ScaleHundredPoint {
		return 80
	}
	return 8
}

// AlertDedupMode controls whether repeated qualifying evaluations keep
// producing alert records.
type AlertDedupMode string

const (
	// DedupOff reproduces the historical behavior: every qualifying
	// evaluation writes an alert, duplicates included.
	DedupOff AlertDedupMode = "off"
	// DedupTransition writes an alert only when the user's risk state
	// transitions from stable to high.
	DedupTransition AlertDedupMode = "transition"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Classifier   ClassifierConfig
	Risk         RiskConfig
	Logger       LoggerConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ClassifierConfig points at the external emotion-inference server.
type ClassifierConfig struct {
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

// RiskConfig tunes the risk and alert engine.
type RiskConfig struct {
	ScoreScale ScoreScale
	DedupMode  AlertDedupMode
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults
// where possible. RISK_SCORE_SCALE has no default and must be declared.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	scale, err := ParseScoreScale(os.Getenv("RISK_SCORE_SCALE"))
	if err != nil {
		return nil, err
	}

	dedup, err := ParseDedupMode(getEnv("RISK_ALERT_DEDUP", string(DedupOff)))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "wellness-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Classifier: ClassifierConfig{
			BaseURL:        getEnv("CLASSIFIER_BASE_URL", "http://127.0.0.1:8501"),
			Model:          getEnv("CLASSIFIER_MODEL", "distilbert-emotion"),
			TimeoutSeconds: getEnvAsInt("CLASSIFIER_TIMEOUT_SECONDS", 15),
		},
		Risk: RiskConfig{
			ScoreScale: scale,
			DedupMode:  dedup,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// ParseScoreScale validates the declared assessment score scale.
func ParseScoreScale(raw string) (ScoreScale, error) {
	switch ScoreScale(raw) {
	case ScaleTenPoint, ScaleHundredPoint:
		return ScoreScale(raw), nil
	case "":
		return "", fmt.Errorf("RISK_SCORE_SCALE must be set to %q or %q", ScaleTenPoint, ScaleHundredPoint)
	default:
		return "", fmt.Errorf("invalid RISK_SCORE_SCALE %q", raw)
	}
}

// ParseDedupMode validates the alert deduplication mode.
func ParseDedupMode(raw string) (AlertDedupMode, error) {
	switch AlertDedupMode(raw) {
	case DedupOff, DedupTransition:
		return AlertDedupMode(raw), nil
	default:
		return "", fmt.Errorf("invalid RISK_ALERT_DEDUP %q", raw)
	}
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the classifier call timeout.
func (c ClassifierConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
