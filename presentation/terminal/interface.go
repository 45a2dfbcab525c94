package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ui_automation/application/runner"
	"ui_automation/application/scenarios"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/browser"
	"ui_automation/infrastructure/config"
	"ui_automation/infrastructure/metrics"
	"ui_automation/infrastructure/pageobjects"
	"ui_automation/infrastructure/security"
	"ui_automation/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

// ErrScenariosFailed is returned by run commands when at least one scenario
// did not pass.
var ErrScenariosFailed = errors.New("one or more scenarios failed")

// FactoryFunc starts a browser backend. browser.NewFactory in production.
type FactoryFunc func(kind string, opts browser.Options, logger *logrus.Logger) (interfaces.DriverFactory, error)

type TerminalInterface struct {
	cfg        *config.Config
	logger     *logrus.Logger
	registry   *pageobjects.Registry
	newFactory FactoryFunc
	reader     *bufio.Reader
	out        io.Writer
}

// NewTerminalInterface - wires configuration, logger and streams together
func NewTerminalInterface(cfg *config.Config, logger *logrus.Logger, in io.Reader, out io.Writer, newFactory FactoryFunc) *TerminalInterface {
	if newFactory == nil {
		newFactory = browser.NewFactory
	}
	return &TerminalInterface{
		cfg:        cfg,
		logger:     logger,
		registry:   pageobjects.Default(),
		newFactory: newFactory,
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

// Suite returns the sanity catalog followed by scenarios from the
// configured YAML files.
func (t *TerminalInterface) Suite() ([]entities.Scenario, error) {
	all := scenarios.Sanity()
	for _, path := range t.cfg.ScenarioFiles {
		extra, err := scenarios.LoadFile(path, t.registry)
		if err != nil {
			return nil, err
		}
		if all, err = scenarios.Merge(all, extra...); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return all, nil
}

// session is one started browser backend plus the runner driving it.
type session struct {
	runner    *runner.Runner
	factory   interfaces.DriverFactory
	collector *metrics.Collector
}

func (t *TerminalInterface) open() (*session, error) {
	store, err := storage.NewResultStore(t.cfg.ResultsDir)
	if err != nil {
		return nil, err
	}

	guard, err := security.NewSecurityLayer(t.cfg.BaseURL, t.cfg.MaxRepeat, t.logger)
	if err != nil {
		return nil, err
	}

	factory, err := t.newFactory(t.cfg.Driver, browser.Options{
		Headless:       t.cfg.Headless,
		ViewportWidth:  t.cfg.Viewport.Width,
		ViewportHeight: t.cfg.Viewport.Height,
		SeleniumURL:    t.cfg.SeleniumURL,
		DriverPath:     t.cfg.DriverPath,
		ChromeBinary:   t.cfg.ChromeBinary,
		RemoteURL:      t.cfg.RemoteURL,
	}, t.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	collector := metrics.NewCollector()
	r, err := runner.NewRunner(runner.Config{
		BaseURL:             t.cfg.BaseURL,
		StepTimeout:         t.cfg.StepTimeout,
		NavigationTimeout:   t.cfg.NavigationTimeout,
		FallbackTimeout:     t.cfg.FallbackTimeout,
		ScreenshotOnFailure: t.cfg.ScreenshotOnFailure,
	}, factory, guard, t.logger, runner.WithResultStore(store), runner.WithRecorder(collector))
	if err != nil {
		factory.Close()
		return nil, err
	}

	return &session{runner: r, factory: factory, collector: collector}, nil
}

func (t *TerminalInterface) closeSession(s *session) {
	if t.cfg.MetricsFile != "" {
		if err := s.collector.WriteTextfile(t.cfg.MetricsFile); err != nil {
			t.logger.Warnf("Failed to write metrics to %s: %v", t.cfg.MetricsFile, err)
		}
	}
	if err := s.factory.Close(); err != nil {
		t.logger.Warnf("Failed to close browser: %v", err)
	}
}

// RunScenarios runs the named scenarios, or the whole suite when names is
// empty, prints a summary and returns ErrScenariosFailed on any failure.
func (t *TerminalInterface) RunScenarios(ctx context.Context, names []string) (entities.RunReport, error) {
	selected, err := t.selectScenarios(names)
	if err != nil {
		return entities.RunReport{}, err
	}

	s, err := t.open()
	if err != nil {
		return entities.RunReport{}, err
	}
	defer t.closeSession(s)

	report := s.runner.RunAll(ctx, selected, t.cfg.Parallel)
	t.PrintReport(report)
	if report.Failed() > 0 {
		return report, ErrScenariosFailed
	}
	return report, nil
}

func (t *TerminalInterface) selectScenarios(names []string) ([]entities.Scenario, error) {
	all, err := t.Suite()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return all, nil
	}
	return scenarios.ByName(all, names...)
}

// PrintReport writes one line per scenario and a totals line.
func (t *TerminalInterface) PrintReport(report entities.RunReport) {
	fmt.Fprintln(t.out)
	for _, res := range report.Results {
		if res.Passed() {
			fmt.Fprintf(t.out, "PASS  %-20s %s\n", res.Name, res.Duration.Round(time.Millisecond))
			continue
		}
		fmt.Fprintf(t.out, "FAIL  %-20s step %d", res.Name, res.FailedStep)
		if res.Locator != "" {
			fmt.Fprintf(t.out, " [%s]", res.Locator)
		}
		fmt.Fprintf(t.out, ": %s\n", res.Error)
		if res.Screenshot != "" {
			fmt.Fprintf(t.out, "      screenshot: %s\n", res.Screenshot)
		}
	}
	fmt.Fprintf(t.out, "\n%d passed, %d failed (run %s, %s)\n",
		len(report.Results)-report.Failed(), report.Failed(), report.ID, report.Driver)
}

// Shell reads scenario names from the input until quit. The browser backend
// is started once and reused for every line.
func (t *TerminalInterface) Shell(ctx context.Context) error {
	s, err := t.open()
	if err != nil {
		return err
	}
	defer t.closeSession(s)

	fmt.Fprintln(t.out, "UI Sanity Shell")
	fmt.Fprintln(t.out, "===============")
	fmt.Fprintln(t.out, "Enter scenario names (space separated), 'all', 'list', or 'quit' to exit")
	fmt.Fprintln(t.out)

	for {
		fmt.Fprint(t.out, "> ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch input {
		case "quit", "exit", "q":
			fmt.Fprintln(t.out, "Bye!")
			return nil
		case "list":
			t.printNames()
			continue
		}

		var names []string
		if input != "all" {
			names = strings.Fields(input)
		}
		selected, err := t.selectScenarios(names)
		if err != nil {
			fmt.Fprintf(t.out, "%v\n\n", err)
			continue
		}

		report := s.runner.RunAll(ctx, selected, t.cfg.Parallel)
		t.PrintReport(report)
		fmt.Fprintln(t.out)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (t *TerminalInterface) printNames() {
	all, err := t.Suite()
	if err != nil {
		fmt.Fprintf(t.out, "%v\n", err)
		return
	}
	for _, sc := range all {
		fmt.Fprintf(t.out, "%-20s %s\n", sc.Name, sc.Description)
	}
}
