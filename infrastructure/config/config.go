package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend selects the browser automation backend
type Backend string

const (
	BackendPlaywright Backend = "playwright"
	BackendSelenium   Backend = "selenium"
)

// Settings holds all runtime configuration. Every field has a default:
// loading with nothing set must always succeed.
type Settings struct {
	BaseURL             string
	Headless            bool
	DefaultTimeout      time.Duration
	NavigationTimeout   time.Duration
	ScreenshotOnFailure bool
	ArtifactsDir        string
	DefaultQuery        string
	Backend             Backend
	SlowMo              time.Duration
	QueriesFile         string
}

// Load reads settings from the environment. A .env file is optional.
func Load() (Settings, error) {
	// .env file is optional
	_ = godotenv.Load()

	s := Settings{
		BaseURL:             getEnv("BASE_URL", "https://www.google.com"),
		Headless:            getEnvBool("HEADLESS", true),
		ScreenshotOnFailure: getEnvBool("SCREENSHOT_ON_FAILURE", true),
		ArtifactsDir:        getEnv("ARTIFACTS_DIR", "test-artifacts"),
		DefaultQuery:        getEnv("DEFAULT_QUERY", "Playwright automation"),
		QueriesFile:         os.Getenv("QUERIES_FILE"),
	}

	var err error
	if s.DefaultTimeout, err = getEnvMillis("DEFAULT_TIMEOUT_MS", 15000); err != nil {
		return Settings{}, err
	}
	if s.NavigationTimeout, err = getEnvMillis("NAVIGATION_TIMEOUT_MS", 30000); err != nil {
		return Settings{}, err
	}
	if s.SlowMo, err = getEnvMillis("SLOW_MO_MS", 0); err != nil {
		return Settings{}, err
	}

	backend := strings.ToLower(getEnv("BROWSER_BACKEND", string(BackendPlaywright)))
	switch Backend(backend) {
	case BackendPlaywright, BackendSelenium:
		s.Backend = Backend(backend)
	default:
		return Settings{}, fmt.Errorf("unknown BROWSER_BACKEND %q (want playwright or selenium)", backend)
	}

	return s, nil
}

// getEnv - returns env value or fallback
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvBool - parses a boolean env value, treating garbage as the fallback
func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvMillis - parses a millisecond env value into a duration
func getEnvMillis(key string, fallback int) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Millisecond, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("invalid %s value %q: want a non-negative integer", key, v)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
