package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cesarrmg08/google-playwright-tests/application/pages"
	"github.com/cesarrmg08/google-playwright-tests/domain/entities"
	"github.com/cesarrmg08/google-playwright-tests/domain/interfaces"
	"github.com/cesarrmg08/google-playwright-tests/infrastructure/config"
)

// Runner executes the search smoke scenario step by step. Steps run
// strictly sequentially; the first failure skips the rest of the run.
type Runner struct {
	page     *pages.GooglePage
	store    interfaces.ArtifactStore
	settings config.Settings
	logger   *logrus.Logger
}

// New - creates a smoke scenario runner
func New(page *pages.GooglePage, store interfaces.ArtifactStore, settings config.Settings, logger *logrus.Logger) *Runner {
	return &Runner{
		page:     page,
		store:    store,
		settings: settings,
		logger:   logger,
	}
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

// RunSearchScenario runs the full search flow for one query and returns
// the per-step outcomes.
func (r *Runner) RunSearchScenario(ctx context.Context, query string) entities.RunSummary {
	summary := entities.RunSummary{
		Query:     query,
		StartedAt: time.Now(),
	}

	steps := []step{
		{"open home page", func(ctx context.Context) error {
			return r.page.Open(ctx)
		}},
		{"verify home page", func(ctx context.Context) error {
			if !r.page.IsOnHomePage(ctx) {
				return fmt.Errorf("not on the home page")
			}
			return nil
		}},
		{"submit search", func(ctx context.Context) error {
			return r.page.Search(ctx, query)
		}},
		{"verify results page", func(ctx context.Context) error {
			if !r.page.IsOnResultsPage(ctx) {
				return fmt.Errorf("not on a results page")
			}
			count, err := r.page.ResultCount(ctx)
			if err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("results page has no results")
			}
			return nil
		}},
		{"open first result", func(ctx context.Context) error {
			return r.page.ClickResult(ctx, 0)
		}},
		{"verify destination", func(ctx context.Context) error {
			info, err := r.page.PageInfo(ctx)
			if err != nil {
				return err
			}
			if pages.IsResultsURL(info.URL) {
				return fmt.Errorf("destination is still the results page: %s", info.URL)
			}
			if info.Title == "" {
				return fmt.Errorf("destination page has an empty title")
			}
			return nil
		}},
	}

	failed := false
	for _, s := range steps {
		if failed {
			summary.Steps = append(summary.Steps, entities.StepResult{
				Name:   s.name,
				Status: entities.StepStatusSkipped,
			})
			continue
		}
		summary.Steps = append(summary.Steps, r.runStep(ctx, s))
		if summary.Steps[len(summary.Steps)-1].Status == entities.StepStatusFailed {
			failed = true
		}
	}

	summary.FinishedAt = time.Now()

	if r.store != nil {
		if path, err := r.store.SaveSummary(summary); err != nil {
			r.logger.WithError(err).Warn("failed to save run summary")
		} else {
			r.logger.WithField("path", path).Info("run summary saved")
		}
	}

	return summary
}

// runStep - executes one step and records its outcome
func (r *Runner) runStep(ctx context.Context, s step) entities.StepResult {
	r.logger.WithField("step", s.name).Info("running step")
	started := time.Now()

	err := s.run(ctx)

	result := entities.StepResult{
		Name:     s.name,
		Status:   entities.StepStatusPassed,
		Duration: time.Since(started),
	}
	if err == nil {
		return result
	}

	result.Status = entities.StepStatusFailed
	result.Error = err.Error()
	r.logger.WithField("step", s.name).WithError(err).Error("step failed")

	if r.settings.ScreenshotOnFailure && r.store != nil {
		path := r.store.ScreenshotPath("failure")
		if shotErr := r.page.CaptureScreenshot(ctx, path); shotErr != nil {
			r.logger.WithError(shotErr).Warn("failed to capture failure screenshot")
		} else {
			result.Screenshot = path
		}
	}

	return result
}
