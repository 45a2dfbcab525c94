package entities

import "time"

// ScenarioStatus represents the status of a scenario or step
type ScenarioStatus string

const (
	StatusPending ScenarioStatus = "pending"
	StatusRunning ScenarioStatus = "running"
	StatusPassed  ScenarioStatus = "passed"
	StatusFailed  ScenarioStatus = "failed"
	StatusSkipped ScenarioStatus = "skipped"
)

// StepResult records the outcome of one executed step.
type StepResult struct {
	Index    int            `json:"index"`
	Step     string         `json:"step"`
	Status   ScenarioStatus `json:"status"`
	Duration time.Duration  `json:"duration"`
	FellBack bool           `json:"fell_back,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// ScenarioResult is the outcome of one scenario run.
type ScenarioResult struct {
	Name       string         `json:"name"`
	Status     ScenarioStatus `json:"status"`
	StartedAt  time.Time      `json:"started_at"`
	Duration   time.Duration  `json:"duration"`
	Steps      []StepResult   `json:"steps"`
	FailedStep int            `json:"failed_step"`
	Locator    Locator        `json:"locator,omitempty"`
	Code       string         `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Screenshot string         `json:"screenshot,omitempty"`
}

// Passed reports whether every step passed.
func (r ScenarioResult) Passed() bool {
	return r.Status == StatusPassed
}

// RunReport groups the results of one invocation of the suite.
type RunReport struct {
	ID         string           `json:"id"`
	BaseURL    string           `json:"base_url"`
	Driver     string           `json:"driver"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Results    []ScenarioResult `json:"results"`
}

// Failed returns the number of failed scenarios.
func (r RunReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			n++
		}
	}
	return n
}
