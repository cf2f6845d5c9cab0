package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cesarrmg08/google-playwright-tests/domain/entities"
	"github.com/cesarrmg08/google-playwright-tests/domain/interfaces"
)

const storageStateFile = "storage_state.json"

type artifactStore struct {
	dir string
}

// NewArtifactStore - creates an artifact store rooted at dir
func NewArtifactStore(dir string) (interfaces.ArtifactStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "screenshots"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory: %w", err)
	}
	return &artifactStore{dir: dir}, nil
}

// ScreenshotPath - returns a unique path for a new screenshot
func (s *artifactStore) ScreenshotPath(label string) string {
	name := fmt.Sprintf("%s-%s.png", label, uuid.NewString()[:8])
	return filepath.Join(s.dir, "screenshots", name)
}

// SaveStorageState - saves serialized browser storage state to file
func (s *artifactStore) SaveStorageState(data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, storageStateFile), data, 0644)
}

// LoadStorageState - loads browser storage state, nil when none saved yet
func (s *artifactStore) LoadStorageState() ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, storageStateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// SaveSummary - writes a run summary as JSON and returns its path
func (s *artifactStore) SaveSummary(summary entities.RunSummary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fmt.Sprintf("run-%s.json", summary.StartedAt.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
