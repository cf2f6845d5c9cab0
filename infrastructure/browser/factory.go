package browser

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cesarrmg08/google-playwright-tests/domain/interfaces"
	"github.com/cesarrmg08/google-playwright-tests/infrastructure/config"
)

// New creates the browser backend selected by the settings.
func New(settings config.Settings, logger *logrus.Logger, store interfaces.ArtifactStore) (interfaces.Browser, error) {
	switch settings.Backend {
	case config.BackendSelenium:
		return NewSeleniumController(settings, logger)
	case config.BackendPlaywright:
		return NewPlaywrightController(settings, logger, store)
	default:
		return nil, fmt.Errorf("unknown browser backend %q", settings.Backend)
	}
}
