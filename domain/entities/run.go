package entities

import "time"

// StepStatus represents the outcome of one scenario step
type StepStatus string

const (
	StepStatusPassed  StepStatus = "passed"
	StepStatusFailed  StepStatus = "failed"
	StepStatusSkipped StepStatus = "skipped"
)

// StepResult records the outcome of one scenario step
type StepResult struct {
	Name       string        `json:"name"`
	Status     StepStatus    `json:"status"`
	Error      string        `json:"error,omitempty"`
	Screenshot string        `json:"screenshot,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// RunSummary aggregates one smoke run
type RunSummary struct {
	Query      string       `json:"query"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Steps      []StepResult `json:"steps"`
}

// Passed reports whether every step in the run passed or was skipped
func (r RunSummary) Passed() bool {
	for _, s := range r.Steps {
		if s.Status == StepStatusFailed {
			return false
		}
	}
	return true
}
