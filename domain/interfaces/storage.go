package interfaces

import "ui_automation/domain/entities"

// ResultStore persists run reports and failure artifacts
type ResultStore interface {
	// SaveReport stores a finished run
	SaveReport(report entities.RunReport) error

	// LoadReports returns stored runs, newest first
	LoadReports() ([]entities.RunReport, error)

	// SaveScreenshot stores a failure screenshot and returns its path
	SaveScreenshot(runID, scenario string, png []byte) (string, error)
}
