package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cesarrmg08/google-playwright-tests/application/pages"
	"github.com/cesarrmg08/google-playwright-tests/application/runner"
	"github.com/cesarrmg08/google-playwright-tests/domain/entities"
	"github.com/cesarrmg08/google-playwright-tests/domain/interfaces"
	"github.com/cesarrmg08/google-playwright-tests/infrastructure/browser"
	"github.com/cesarrmg08/google-playwright-tests/infrastructure/config"
	"github.com/cesarrmg08/google-playwright-tests/infrastructure/storage"
)

// Console wires the smoke runner together and reports outcomes to stdout
type Console struct {
	settings    config.Settings
	logger      *logrus.Logger
	browserCtrl interfaces.Browser
	runner      *runner.Runner
}

// NewConsole - builds the full smoke-run stack from settings
func NewConsole(settings config.Settings) (*Console, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	store, err := storage.NewArtifactStore(settings.ArtifactsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	browserCtrl, err := browser.New(settings, logger, store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	page := pages.NewGooglePage(browserCtrl, logger, settings.BaseURL, settings.DefaultTimeout)

	return &Console{
		settings:    settings,
		logger:      logger,
		browserCtrl: browserCtrl,
		runner:      runner.New(page, store, settings, logger),
	}, nil
}

// Run executes the search scenario for one query and prints the outcome.
// Returns an error when any step failed.
func (c *Console) Run(ctx context.Context, query string) error {
	if query == "" {
		query = c.settings.DefaultQuery
	}

	fmt.Printf("Search smoke run: %q against %s\n\n", query, c.settings.BaseURL)

	summary := c.runner.RunSearchScenario(ctx, query)

	for _, s := range summary.Steps {
		switch s.Status {
		case entities.StepStatusPassed:
			fmt.Printf("  ok    %-22s (%s)\n", s.Name, s.Duration.Round(time.Millisecond))
		case entities.StepStatusSkipped:
			fmt.Printf("  skip  %s\n", s.Name)
		case entities.StepStatusFailed:
			fmt.Printf("  FAIL  %-22s %s\n", s.Name, s.Error)
			if s.Screenshot != "" {
				fmt.Printf("        screenshot: %s\n", s.Screenshot)
			}
		}
	}

	fmt.Println()
	if !summary.Passed() {
		return fmt.Errorf("smoke run failed")
	}
	fmt.Println("All steps passed")
	return nil
}

// Close - shuts the browser down
func (c *Console) Close() error {
	if c.browserCtrl != nil {
		return c.browserCtrl.Close()
	}
	return nil
}
