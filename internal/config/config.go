package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/gmehub/gme-app/internal/platform"
)

// Defaults
const (
	DefaultManagementURL = "http://localhost:8000/api/v1"
	DefaultTimeoutSec    = 15
	DefaultCookieName    = "session_token"

	managementAPIPath = "/api/v1"
)

// Config holds all configuration for the client. Everything comes from
// environment variables; there are no CLI flags.
type Config struct {
	// ManagementURL is the base URL of the gme-managment REST API.
	ManagementURL string `env:"GME_MANAGEMENT_URL" env-default:"http://localhost:8000/api/v1"`

	// VideoServiceURL is the base URL of the video processing service (optional).
	VideoServiceURL string `env:"GME_VIDEO_SERVICE_URL" env-default:""`

	// AudioServiceURL is the base URL of the audio processing service (optional).
	AudioServiceURL string `env:"GME_AUDIO_SERVICE_URL" env-default:""`

	// AudioServiceAPIKey authenticates audio-provider listing instead of the
	// session cookie when set.
	AudioServiceAPIKey string `env:"GME_AUDIO_SERVICE_API_KEY" env-default:""`

	// TimeoutSeconds bounds every backend request.
	TimeoutSeconds float64 `env:"GME_REQUEST_TIMEOUT" env-default:"15"`

	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName string `env:"GME_SESSION_COOKIE_NAME" env-default:"session_token"`

	// AppDataDir is where the client keeps its persisted session. Resolved at
	// load time, not from the environment.
	AppDataDir string `env:"-"`

	// Version is injected at build time.
	Version string `env:"-"`
}

// Load reads configuration from the environment, normalizes the management
// URL and resolves the application data directory.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.ManagementURL = NormalizeManagementURL(cfg.ManagementURL)
	cfg.VideoServiceURL = strings.TrimRight(strings.TrimSpace(cfg.VideoServiceURL), "/")
	cfg.AudioServiceURL = strings.TrimRight(strings.TrimSpace(cfg.AudioServiceURL), "/")

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSec
	}
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = DefaultCookieName
	}

	dataDir, err := platform.AppDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve app data dir: %w", err)
	}
	if err := platform.EnsureDir(dataDir); err != nil {
		return nil, fmt.Errorf("failed to create app data dir: %w", err)
	}
	cfg.AppDataDir = dataDir

	return cfg, nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

// NormalizeManagementURL cleans up the configured management base URL:
// trailing slashes are dropped, a bare host gets an http scheme, and a URL
// without a path gets the /api/v1 prefix appended.
func NormalizeManagementURL(raw string) string {
	value := strings.TrimRight(strings.TrimSpace(raw), "/")
	if value == "" {
		return DefaultManagementURL
	}

	// url.Parse reads "backend.local:9000" as scheme "backend.local",
	// so a scheme check alone cannot detect a bare host:port.
	if !strings.Contains(value, "://") {
		value = "http://" + value
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return DefaultManagementURL
	}

	if parsed.Path == "" || parsed.Path == "/" {
		return strings.TrimRight(value, "/") + managementAPIPath
	}
	return strings.TrimRight(value, "/")
}
