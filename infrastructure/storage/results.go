package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

type resultStore struct {
	reportsDir     string
	screenshotsDir string
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// NewResultStore - creates result storage rooted at dir
func NewResultStore(dir string) (interfaces.ResultStore, error) {
	s := &resultStore{
		reportsDir:     filepath.Join(dir, "reports"),
		screenshotsDir: filepath.Join(dir, "screenshots"),
	}
	for _, d := range []string{s.reportsDir, s.screenshotsDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return nil, fmt.Errorf("failed to create results directory: %w", err)
		}
	}
	return s, nil
}

// SaveReport - writes one run report as JSON
func (s *resultStore) SaveReport(report entities.RunReport) error {
	if report.ID == "" {
		return fmt.Errorf("report has no id")
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.reportsDir, safeName(report.ID)+".json"), data, 0644)
}

// LoadReports - loads stored run reports, newest first
func (s *resultStore) LoadReports() ([]entities.RunReport, error) {
	files, err := filepath.Glob(filepath.Join(s.reportsDir, "*.json"))
	if err != nil {
		return nil, err
	}

	reports := make([]entities.RunReport, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var report entities.RunReport
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("corrupt report %s: %w", filepath.Base(f), err)
		}
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].StartedAt.After(reports[j].StartedAt)
	})
	return reports, nil
}

// SaveScreenshot - stores a failure screenshot under the run's directory
func (s *resultStore) SaveScreenshot(runID, scenario string, png []byte) (string, error) {
	dir := filepath.Join(s.screenshotsDir, safeName(runID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, safeName(scenario)+".png")
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func safeName(s string) string {
	s = unsafeName.ReplaceAllString(s, "_")
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}
