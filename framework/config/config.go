package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Analyzer AnalyzerConfig
}

type AppConfig struct {
	Name     string
	Env      string // local | production | testing
	Debug    bool
	URL      string
	Port     string
	LogLevel slog.Level
}

type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	ThrottleRPS     float64 // requests per second per client, 0 disables throttling
	ThrottleBurst   int
	TrustProxy      bool // honor X-Forwarded-For / X-Real-IP from a fronting proxy
}

type AnalyzerConfig struct {
	CacheSize int // memoized analyses, 0 disables the cache
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("Skipping .env ...", "error", err)
	}

	return &Config{
		App: AppConfig{
			Name:     env("APP_NAME", "CURP Analyzer"),
			Env:      env("APP_ENV", "local"),
			Debug:    envBool("APP_DEBUG", true),
			URL:      env("APP_URL", "http://localhost"),
			Port:     env("APP_PORT", "8000"),
			LogLevel: envLevel("LOG_LEVEL", slog.LevelInfo),
		},
		HTTP: HTTPConfig{
			ReadTimeout:     GetDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    GetDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: GetDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			ThrottleRPS:     GetFloat("THROTTLE_RPS", 10),
			ThrottleBurst:   GetInt("THROTTLE_BURST", 20),
			TrustProxy:      GetBool("TRUST_PROXY", false),
		},
		Analyzer: AnalyzerConfig{
			CacheSize: GetInt("CURP_CACHE_SIZE", 1024),
		},
	}
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if err := validatePort(c.App.Port); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.App.Port, err)
	}
	if c.HTTP.ThrottleRPS < 0 {
		return fmt.Errorf("invalid THROTTLE_RPS %v: must not be negative", c.HTTP.ThrottleRPS)
	}
	if c.HTTP.ThrottleRPS > 0 && c.HTTP.ThrottleBurst < 1 {
		return fmt.Errorf("invalid THROTTLE_BURST %d: must be at least 1", c.HTTP.ThrottleBurst)
	}
	if c.Analyzer.CacheSize < 0 {
		return fmt.Errorf("invalid CURP_CACHE_SIZE %d: must not be negative", c.Analyzer.CacheSize)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.App.Port }

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetFloat returns a float64 env value.
func GetFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// GetDuration returns a time.Duration env value such as "5s" or "250ms".
func GetDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return fallback
	}
	return l
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
