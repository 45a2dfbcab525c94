package interfaces

import "ui_automation/domain/entities"

// ScenarioGuard checks a scenario definition before it touches a browser
type ScenarioGuard interface {
	// Validate rejects scenarios that break ordering or bounds rules
	Validate(scenario entities.Scenario) error

	// AllowURL rejects navigation outside the configured origin
	AllowURL(rawURL string) error
}

// Recorder observes scenario execution, e.g. for metrics
type Recorder interface {
	StepFinished(kind entities.StepKind, action string, status entities.ScenarioStatus, seconds float64)
	FallbackUsed(scenario string)
	ScenarioFinished(name string, status entities.ScenarioStatus, seconds float64)
}
