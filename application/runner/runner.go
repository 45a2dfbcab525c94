package runner

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/errs"
	"ui_automation/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const screenshotTimeout = 5 * time.Second

// Config is everything the runner needs to know about the target and its
// time bounds. It is passed in at construction; the runner keeps no global
// state.
type Config struct {
	BaseURL             string
	StepTimeout         time.Duration
	NavigationTimeout   time.Duration
	FallbackTimeout     time.Duration
	ScreenshotOnFailure bool
}

type Runner struct {
	cfg      Config
	base     *url.URL
	factory  interfaces.DriverFactory
	guard    interfaces.ScenarioGuard
	store    interfaces.ResultStore
	recorder interfaces.Recorder
	logger   *logrus.Logger
}

// Option customizes a Runner.
type Option func(*Runner)

// WithResultStore persists reports and failure screenshots.
func WithResultStore(store interfaces.ResultStore) Option {
	return func(r *Runner) { r.store = store }
}

// WithRecorder reports step and scenario outcomes, e.g. to metrics.
func WithRecorder(rec interfaces.Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// NewRunner - creates new scenario runner
func NewRunner(cfg Config, factory interfaces.DriverFactory, guard interfaces.ScenarioGuard, logger *logrus.Logger, opts ...Option) (*Runner, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}
	if cfg.StepTimeout <= 0 || cfg.NavigationTimeout <= 0 || cfg.FallbackTimeout <= 0 {
		return nil, fmt.Errorf("runner timeouts must be positive")
	}

	r := &Runner{
		cfg:      cfg,
		base:     base,
		factory:  factory,
		guard:    guard,
		recorder: noopRecorder{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes one scenario in a fresh browser session.
func (r *Runner) Run(ctx context.Context, sc entities.Scenario) entities.ScenarioResult {
	return r.runScenario(ctx, uuid.NewString(), sc)
}

// RunAll executes scenarios, up to parallel at a time, each in its own
// session. Results keep the order of scenarios. The report is stored when a
// result store is configured.
func (r *Runner) RunAll(ctx context.Context, scenarios []entities.Scenario, parallel int) entities.RunReport {
	if parallel < 1 {
		parallel = 1
	}
	report := entities.RunReport{
		ID:        uuid.NewString(),
		BaseURL:   r.cfg.BaseURL,
		Driver:    r.factory.Name(),
		StartedAt: time.Now(),
	}
	r.logger.WithFields(logrus.Fields{
		"run":       report.ID,
		"scenarios": len(scenarios),
		"parallel":  parallel,
		"driver":    report.Driver,
	}).Info("Starting run")

	results := make([]entities.ScenarioResult, len(scenarios))
	var g errgroup.Group
	g.SetLimit(parallel)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			results[i] = r.runScenario(ctx, report.ID, sc)
			return nil
		})
	}
	_ = g.Wait()

	report.Results = results
	report.FinishedAt = time.Now()

	if r.store != nil {
		if err := r.store.SaveReport(report); err != nil {
			r.logger.Warnf("Failed to save report %s: %v", report.ID, err)
		}
	}
	r.logger.WithFields(logrus.Fields{
		"run":    report.ID,
		"failed": report.Failed(),
		"total":  len(results),
	}).Info("Run finished")
	return report
}

func (r *Runner) runScenario(ctx context.Context, runID string, sc entities.Scenario) (res entities.ScenarioResult) {
	start := time.Now()
	log := r.logger.WithField("scenario", sc.Name)
	res = entities.ScenarioResult{
		Name:       sc.Name,
		Status:     entities.StatusRunning,
		StartedAt:  start,
		FailedStep: -1,
	}
	defer func() {
		res.Duration = time.Since(start)
		r.recorder.ScenarioFinished(sc.Name, res.Status, res.Duration.Seconds())
	}()

	if err := r.guard.Validate(sc); err != nil {
		r.fail(log, &res, -1, err)
		return res
	}

	drv, err := r.factory.NewDriver(ctx)
	if err != nil {
		r.fail(log, &res, -1, errs.Wrap(errs.Internal, "failed to open browser session", err))
		return res
	}
	defer func() {
		if err := drv.Close(); err != nil {
			log.Warnf("Failed to close browser session: %v", err)
		}
	}()

	log.Info("Scenario started")
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			r.fail(log, &res, i, fmt.Errorf("scenario canceled: %w", err))
			return res
		}

		log.WithField("step", i).Infof("%s", step)
		stepStart := time.Now()
		fellBack, err := r.execStep(ctx, drv, sc.Name, step)

		sr := entities.StepResult{
			Index:    i,
			Step:     step.String(),
			Status:   entities.StatusPassed,
			Duration: time.Since(stepStart),
			FellBack: fellBack,
		}
		if err != nil {
			sr.Status = entities.StatusFailed
			sr.Error = err.Error()
		}
		res.Steps = append(res.Steps, sr)
		r.recorder.StepFinished(step.Kind, stepLabel(step), sr.Status, sr.Duration.Seconds())

		if err != nil {
			r.captureScreenshot(ctx, drv, runID, &res)
			r.fail(log, &res, i, err)
			return res
		}
	}

	res.Status = entities.StatusPassed
	log.WithField("duration", time.Since(start).Round(time.Millisecond)).Info("Scenario passed")
	return res
}

func (r *Runner) execStep(ctx context.Context, drv interfaces.Driver, scenario string, step entities.Step) (bool, error) {
	switch step.Kind {
	case entities.StepNavigate:
		return false, r.navigate(ctx, drv, step.Path)
	case entities.StepAct:
		if step.Action == nil {
			return false, errs.Configurationf("act step without action")
		}
		return false, r.act(ctx, drv, *step.Action, r.cfg.StepTimeout)
	case entities.StepAssert:
		if step.Assertion == nil {
			return false, errs.Configurationf("assert step without assertion")
		}
		return false, r.check(ctx, drv, *step.Assertion)
	case entities.StepFallback:
		if step.Fallback == nil {
			return false, errs.Configurationf("fallback step without strategies")
		}
		return r.fallback(ctx, drv, scenario, *step.Fallback)
	}
	return false, errs.Configurationf("unknown step kind %q", step.Kind)
}

// URL resolves a navigate path against the base URL.
func (r *Runner) URL(path string) (string, error) {
	if path == "" {
		return r.base.String(), nil
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", errs.Configurationf("invalid navigate path %q: %v", path, err)
	}
	return r.base.ResolveReference(ref).String(), nil
}

func (r *Runner) navigate(ctx context.Context, drv interfaces.Driver, path string) error {
	target, err := r.URL(path)
	if err != nil {
		return err
	}
	if err := r.guard.AllowURL(target); err != nil {
		return err
	}

	nctx, cancel := context.WithTimeout(ctx, r.cfg.NavigationTimeout)
	defer cancel()
	if err := drv.Navigate(nctx, target); err != nil {
		return errs.NavigationFailed(target, err)
	}
	return nil
}

func (r *Runner) act(ctx context.Context, drv interfaces.Driver, a entities.Action, timeout time.Duration) error {
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var err error
	switch a.Type {
	case entities.ActionTypeText:
		err = drv.Type(actx, a.Locator, a.Text)
	case entities.ActionClick:
		err = drv.Click(actx, a.Locator)
	case entities.ActionJSClick:
		err = drv.JSClick(actx, a.Locator)
	case entities.ActionHoverClick:
		err = drv.HoverAndClick(actx, a.Locator, a.Target)
	case entities.ActionSelectOption:
		err = drv.SelectOptionByText(actx, a.Locator, a.Text)
	case entities.ActionPressKey:
		err = pressRepeatedly(actx, drv, a)
	case entities.ActionDragDrop:
		err = drv.DragAndDrop(actx, a.Locator, a.Target)
	case entities.ActionClickVisible:
		var n int
		n, err = drv.ClickVisibleElements(actx, a.Locator)
		if err == nil && n == 0 {
			err = fmt.Errorf("no visible element matches")
		}
	case entities.ActionClickLink:
		err = drv.ClickLinkText(actx, a.Text)
	case entities.ActionHighlight:
		err = drv.Highlight(actx, a.Locator)
	case entities.ActionSwitchFrame:
		err = drv.SwitchToFrame(actx, a.Locator)
	case entities.ActionSwitchDefault:
		err = drv.SwitchToDefaultContent(actx)
	default:
		return errs.Configurationf("unknown action %q", a.Type)
	}

	if err != nil {
		return errs.InteractionFailed(string(a.Type), actionLocator(a), err)
	}
	return nil
}

// pressRepeatedly presses the key a.Times times; the bound is enforced by
// the scenario guard.
func pressRepeatedly(ctx context.Context, drv interfaces.Driver, a entities.Action) error {
	for n := 0; n < a.Times; n++ {
		if err := drv.PressKey(ctx, a.Locator, a.Key); err != nil {
			return fmt.Errorf("press %d of %d: %w", n+1, a.Times, err)
		}
	}
	return nil
}

func (r *Runner) check(ctx context.Context, drv interfaces.Driver, a entities.Assertion) error {
	actx, cancel := context.WithTimeout(ctx, r.cfg.StepTimeout)
	defer cancel()

	step := string(a.Predicate)
	loc := a.Locator.String()
	observe := func(err error) error {
		return errs.InteractionFailed(step, loc, err)
	}

	switch a.Predicate {
	case entities.PredicateTitleEquals:
		title, err := drv.Title(actx)
		if err != nil {
			return observe(err)
		}
		if title != a.Expected {
			return errs.AssertionFailed(step, "", a.Expected, title)
		}

	case entities.PredicateVisible:
		if err := drv.WaitVisible(actx, a.Locator); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errs.AssertionTimedOut(step, loc, "visible", err)
		}

	case entities.PredicateNotVisible:
		visible, err := drv.IsElementVisible(actx, a.Locator)
		if err != nil {
			return observe(err)
		}
		if visible {
			return errs.AssertionFailed(step, loc, "not visible", "visible")
		}

	case entities.PredicateTextContains, entities.PredicateTextEquals:
		text, err := drv.Text(actx, a.Locator)
		if err != nil {
			return observe(err)
		}
		if a.Predicate == entities.PredicateTextContains && !strings.Contains(text, a.Expected) {
			return errs.AssertionFailed(step, loc, a.Expected, text)
		}
		if a.Predicate == entities.PredicateTextEquals && strings.TrimSpace(text) != a.Expected {
			return errs.AssertionFailed(step, loc, a.Expected, text)
		}

	case entities.PredicateSelected, entities.PredicateNotSelected:
		selected, err := drv.IsSelected(actx, a.Locator)
		if err != nil {
			return observe(err)
		}
		want := a.Predicate == entities.PredicateSelected
		if selected != want {
			return errs.AssertionFailed(step, loc, selectedWord(want), selectedWord(selected))
		}

	case entities.PredicateTextVisible, entities.PredicateTextNotVisible:
		visible, err := drv.IsTextVisible(actx, a.Expected)
		if err != nil {
			return observe(err)
		}
		want := a.Predicate == entities.PredicateTextVisible
		if visible != want {
			return errs.AssertionFailed(step, "", visibleWord(a.Expected, want), visibleWord(a.Expected, visible))
		}

	case entities.PredicateLinkText:
		visible, err := drv.IsLinkTextVisible(actx, a.Expected)
		if err != nil {
			return observe(err)
		}
		if !visible {
			return errs.AssertionFailed(step, "", visibleWord(a.Expected, true), visibleWord(a.Expected, false))
		}

	default:
		return errs.Configurationf("unknown predicate %q", a.Predicate)
	}
	return nil
}

// fallback runs the primary action under the short fallback timeout. Only
// an interaction failure switches to the secondary action.
func (r *Runner) fallback(ctx context.Context, drv interfaces.Driver, scenario string, fb entities.Fallback) (bool, error) {
	timeout := fb.Timeout
	if timeout <= 0 {
		timeout = r.cfg.FallbackTimeout
	}

	err := r.act(ctx, drv, fb.Primary, timeout)
	if err == nil {
		return false, nil
	}
	if !errs.IsInteraction(err) || ctx.Err() != nil {
		return false, err
	}

	r.logger.WithField("scenario", scenario).Infof("Primary strategy failed (%v), falling back to %s", err, fb.Secondary)
	r.recorder.FallbackUsed(scenario)
	return true, r.act(ctx, drv, fb.Secondary, r.cfg.StepTimeout)
}

func (r *Runner) captureScreenshot(ctx context.Context, drv interfaces.Driver, runID string, res *entities.ScenarioResult) {
	if !r.cfg.ScreenshotOnFailure || r.store == nil {
		return
	}
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), screenshotTimeout)
	defer cancel()

	png, err := drv.Screenshot(sctx)
	if err != nil {
		r.logger.Warnf("Failed to take screenshot for %s: %v", res.Name, err)
		return
	}
	path, err := r.store.SaveScreenshot(runID, res.Name, png)
	if err != nil {
		r.logger.Warnf("Failed to save screenshot for %s: %v", res.Name, err)
		return
	}
	res.Screenshot = path
}

func (r *Runner) fail(log *logrus.Entry, res *entities.ScenarioResult, step int, err error) {
	res.Status = entities.StatusFailed
	res.FailedStep = step
	res.Code = string(errs.CodeOf(err))
	res.Error = err.Error()
	res.Locator = entities.Locator(errs.LocatorOf(err))

	log.WithFields(logrus.Fields{
		"step":    step,
		"code":    res.Code,
		"locator": res.Locator,
	}).Errorf("Scenario failed: %v", err)
}

func actionLocator(a entities.Action) string {
	switch a.Type {
	case entities.ActionHoverClick:
		return a.Target.String()
	case entities.ActionClickLink:
		return "link=" + a.Text
	}
	return a.Locator.String()
}

func stepLabel(step entities.Step) string {
	switch {
	case step.Action != nil:
		return string(step.Action.Type)
	case step.Assertion != nil:
		return string(step.Assertion.Predicate)
	case step.Fallback != nil:
		return string(step.Fallback.Primary.Type)
	}
	return string(step.Kind)
}

func selectedWord(selected bool) string {
	if selected {
		return "selected"
	}
	return "not selected"
}

func visibleWord(text string, visible bool) string {
	if visible {
		return text + " visible"
	}
	return text + " not visible"
}

type noopRecorder struct{}

func (noopRecorder) StepFinished(entities.StepKind, string, entities.ScenarioStatus, float64) {}
func (noopRecorder) FallbackUsed(string)                                                     {}
func (noopRecorder) ScenarioFinished(string, entities.ScenarioStatus, float64)               {}
