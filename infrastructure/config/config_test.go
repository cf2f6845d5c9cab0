package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesarrmg08/google-playwright-tests/domain/entities"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BASE_URL", "HEADLESS", "DEFAULT_TIMEOUT_MS", "NAVIGATION_TIMEOUT_MS",
		"SCREENSHOT_ON_FAILURE", "ARTIFACTS_DIR", "DEFAULT_QUERY",
		"BROWSER_BACKEND", "SLOW_MO_MS", "QUERIES_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	require.NoError(t, err, "loading with nothing set must succeed")

	assert.Equal(t, "https://www.google.com", s.BaseURL)
	assert.True(t, s.Headless)
	assert.Equal(t, 15*time.Second, s.DefaultTimeout)
	assert.Equal(t, 30*time.Second, s.NavigationTimeout)
	assert.True(t, s.ScreenshotOnFailure)
	assert.Equal(t, "test-artifacts", s.ArtifactsDir)
	assert.Equal(t, "Playwright automation", s.DefaultQuery)
	assert.Equal(t, BackendPlaywright, s.Backend)
	assert.Zero(t, s.SlowMo)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "https://www.google.de")
	t.Setenv("HEADLESS", "false")
	t.Setenv("DEFAULT_TIMEOUT_MS", "5000")
	t.Setenv("BROWSER_BACKEND", "selenium")
	t.Setenv("SLOW_MO_MS", "250")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.google.de", s.BaseURL)
	assert.False(t, s.Headless)
	assert.Equal(t, 5*time.Second, s.DefaultTimeout)
	assert.Equal(t, BackendSelenium, s.Backend)
	assert.Equal(t, 250*time.Millisecond, s.SlowMo)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BROWSER_BACKEND", "webdriverio")
	_, err := Load()
	assert.Error(t, err, "unknown backend must be rejected")

	clearEnv(t)
	t.Setenv("DEFAULT_TIMEOUT_MS", "soon")
	_, err = Load()
	assert.Error(t, err, "non-numeric timeout must be rejected")

	clearEnv(t)
	t.Setenv("DEFAULT_TIMEOUT_MS", "-100")
	_, err = Load()
	assert.Error(t, err, "negative timeout must be rejected")

	clearEnv(t)
	t.Setenv("HEADLESS", "maybe")
	s, err := Load()
	require.NoError(t, err)
	assert.True(t, s.Headless, "unparseable boolean falls back to the default")
}

func TestLoadQueries_BuiltInOnly(t *testing.T) {
	clearEnv(t)
	s, err := Load()
	require.NoError(t, err)

	queries, err := s.LoadQueries()
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultQueries, queries)

	// the returned slice is a copy; mutating it must not leak into the table
	queries[0].Text = "mutated"
	assert.NotEqual(t, "mutated", entities.DefaultQueries[0].Text)
}

func TestLoadQueries_MergesYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "queries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
queries:
  - text: "kubernetes operators"
    description: "extra infra query"
    expect_substring: "Kubernetes"
  - text: "single"
    description: "one word"
`), 0644))

	t.Setenv("QUERIES_FILE", path)
	s, err := Load()
	require.NoError(t, err)

	queries, err := s.LoadQueries()
	require.NoError(t, err)
	require.Len(t, queries, len(entities.DefaultQueries)+2)

	extra := queries[len(entities.DefaultQueries)]
	assert.Equal(t, "kubernetes operators", extra.Text)
	assert.Equal(t, "Kubernetes", extra.ExpectSubstring)
}

func TestLoadQueries_BadFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()

	t.Setenv("QUERIES_FILE", filepath.Join(dir, "missing.yaml"))
	s, err := Load()
	require.NoError(t, err)
	_, err = s.LoadQueries()
	assert.Error(t, err, "a configured but missing file is an error")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("queries: {not: a list}"), 0644))
	t.Setenv("QUERIES_FILE", bad)
	s, err = Load()
	require.NoError(t, err)
	_, err = s.LoadQueries()
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty-text.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("queries:\n  - description: \"no text\"\n"), 0644))
	t.Setenv("QUERIES_FILE", empty)
	s, err = Load()
	require.NoError(t, err)
	_, err = s.LoadQueries()
	assert.Error(t, err, "entries without text must be rejected")
}
