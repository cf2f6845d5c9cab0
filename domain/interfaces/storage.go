package interfaces

import "github.com/cesarrmg08/google-playwright-tests/domain/entities"

// ArtifactStore persists run artifacts: screenshots, reusable browser
// storage state and smoke run summaries
type ArtifactStore interface {
	// ScreenshotPath returns a unique path for a new screenshot
	ScreenshotPath(label string) string

	// SaveStorageState saves serialized browser storage state
	SaveStorageState(data []byte) error

	// LoadStorageState loads previously saved storage state,
	// returning nil data when none exists
	LoadStorageState() ([]byte, error)

	// SaveSummary writes a run summary as JSON
	SaveSummary(summary entities.RunSummary) (string, error)
}
