package runner

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/errs"
	"ui_automation/domain/interfaces"
	"ui_automation/domain/interfaces/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const baseURL = "http://demo.test/demo_page"

type allowAll struct{ err error }

func (g allowAll) Validate(entities.Scenario) error { return g.err }
func (g allowAll) AllowURL(string) error            { return nil }

type countingRecorder struct {
	mu        sync.Mutex
	fallbacks int
	finished  map[string]entities.ScenarioStatus
}

func (c *countingRecorder) StepFinished(entities.StepKind, string, entities.ScenarioStatus, float64) {}
func (c *countingRecorder) FallbackUsed(string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallbacks++
}
func (c *countingRecorder) ScenarioFinished(name string, status entities.ScenarioStatus, _ float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finished == nil {
		c.finished = map[string]entities.ScenarioStatus{}
	}
	c.finished[name] = status
}

type memoryStore struct {
	mu          sync.Mutex
	reports     []entities.RunReport
	screenshots map[string][]byte
}

func (m *memoryStore) SaveReport(r entities.RunReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, r)
	return nil
}

func (m *memoryStore) LoadReports() ([]entities.RunReport, error) { return m.reports, nil }

func (m *memoryStore) SaveScreenshot(runID, scenario string, png []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.screenshots == nil {
		m.screenshots = map[string][]byte{}
	}
	m.screenshots[scenario] = png
	return "/shots/" + scenario + ".png", nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testConfig() Config {
	return Config{
		BaseURL:             baseURL,
		StepTimeout:         time.Second,
		NavigationTimeout:   time.Second,
		FallbackTimeout:     100 * time.Millisecond,
		ScreenshotOnFailure: true,
	}
}

func newTestRunner(t *testing.T, factory interfaces.DriverFactory, opts ...Option) *Runner {
	t.Helper()
	r, err := NewRunner(testConfig(), factory, allowAll{}, quietLogger(), opts...)
	require.NoError(t, err)
	return r
}

func factoryFor(ctrl *gomock.Controller, drv interfaces.Driver) *mocks.MockDriverFactory {
	f := mocks.NewMockDriverFactory(ctrl)
	f.EXPECT().Name().Return("mock").AnyTimes()
	f.EXPECT().NewDriver(gomock.Any()).Return(drv, nil).AnyTimes()
	return f
}

func TestNewRunnerRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.BaseURL = "demo_page"
	_, err := NewRunner(cfg, nil, allowAll{}, quietLogger())
	assert.Error(t, err)

	cfg = testConfig()
	cfg.FallbackTimeout = 0
	_, err = NewRunner(cfg, nil, allowAll{}, quietLogger())
	assert.Error(t, err)
}

func TestURLResolvesAgainstBase(t *testing.T) {
	r := newTestRunner(t, nil)

	u, err := r.URL("")
	require.NoError(t, err)
	assert.Equal(t, baseURL, u)

	u, err = r.URL("frames/text")
	require.NoError(t, err)
	assert.Equal(t, "http://demo.test/frames/text", u)
}

func TestRunExecutesStepsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)

	input := entities.Locator("#myTextInput")
	gomock.InOrder(
		drv.EXPECT().Navigate(gomock.Any(), baseURL).Return(nil),
		drv.EXPECT().Title(gomock.Any()).Return("Web Testing Page", nil),
		drv.EXPECT().Type(gomock.Any(), input, "Hello all!").Return(nil),
		drv.EXPECT().Text(gomock.Any(), input).Return("Hello all!", nil),
		drv.EXPECT().Close().Return(nil),
	)

	r := newTestRunner(t, factoryFor(ctrl, drv))
	res := r.Run(context.Background(), entities.Scenario{
		Name: "text_fields",
		Steps: []entities.Step{
			entities.Navigate(""),
			entities.AssertTitle("Web Testing Page"),
			entities.TypeText(input, "Hello all!"),
			entities.AssertText(input, "Hello all!"),
		},
	})

	assert.True(t, res.Passed(), res.Error)
	assert.Equal(t, -1, res.FailedStep)
	assert.Len(t, res.Steps, 4)
}

func TestRunPressKeyRepeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	slider := entities.Locator("input#myslider")

	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	drv.EXPECT().PressKey(gomock.Any(), slider, entities.KeyArrowDown).Return(nil).Times(5)
	drv.EXPECT().Close().Return(nil)

	r := newTestRunner(t, factoryFor(ctrl, drv))
	res := r.Run(context.Background(), entities.Scenario{
		Name:  "slider",
		Steps: []entities.Step{entities.Navigate(""), entities.PressKey(slider, entities.KeyArrowDown, 5)},
	})
	assert.True(t, res.Passed(), res.Error)
}

func TestRunNavigationFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(errors.New("net::ERR_NAME_NOT_RESOLVED"))
	drv.EXPECT().Screenshot(gomock.Any()).Return([]byte("png"), nil)
	drv.EXPECT().Close().Return(nil)

	store := &memoryStore{}
	r := newTestRunner(t, factoryFor(ctrl, drv), WithResultStore(store))
	res := r.Run(context.Background(), entities.Scenario{
		Name:  "open_page",
		Steps: []entities.Step{entities.Navigate(""), entities.AssertTitle("Web Testing Page")},
	})

	assert.Equal(t, entities.StatusFailed, res.Status)
	assert.Equal(t, string(errs.Navigation), res.Code)
	assert.Equal(t, 0, res.FailedStep)
	assert.Len(t, res.Steps, 1)
	assert.Equal(t, "/shots/open_page.png", res.Screenshot)
	assert.Equal(t, []byte("png"), store.screenshots["open_page"])
}

func TestRunAssertionFailureReportsLocator(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	para := entities.Locator("#pText")

	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	drv.EXPECT().Text(gomock.Any(), para).Return("This Text is Green", nil)
	drv.EXPECT().Close().Return(nil)

	cfg := testConfig()
	cfg.ScreenshotOnFailure = false
	r, err := NewRunner(cfg, factoryFor(ctrl, drv), allowAll{}, quietLogger())
	require.NoError(t, err)

	res := r.Run(context.Background(), entities.Scenario{
		Name:  "click",
		Steps: []entities.Step{entities.Navigate(""), entities.AssertText(para, "This Text is Purple")},
	})
	assert.Equal(t, string(errs.Assertion), res.Code)
	assert.Equal(t, 1, res.FailedStep)
	assert.Equal(t, para, res.Locator)
	assert.Contains(t, res.Error, "This Text is Purple")
}

func TestRunInteractionErrorCarriesLocator(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	button := entities.Locator("#myButton")

	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	drv.EXPECT().Click(gomock.Any(), button).Return(errors.New("element not found"))
	drv.EXPECT().Screenshot(gomock.Any()).Return(nil, errors.New("no page"))
	drv.EXPECT().Close().Return(nil)

	r := newTestRunner(t, factoryFor(ctrl, drv), WithResultStore(&memoryStore{}))
	res := r.Run(context.Background(), entities.Scenario{
		Name:  "click",
		Steps: []entities.Step{entities.Navigate(""), entities.Click(button)},
	})
	assert.Equal(t, string(errs.Interaction), res.Code)
	assert.Equal(t, button, res.Locator)
	assert.Empty(t, res.Screenshot)
}

func TestRunFallbackOnInteractionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	dropdown := entities.Locator("div#myDropdown")
	option := entities.Locator("#dropOption2")

	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	drv.EXPECT().HoverAndClick(gomock.Any(), dropdown, option).Return(context.DeadlineExceeded)
	drv.EXPECT().JSClick(gomock.Any(), option).Return(nil)
	drv.EXPECT().Close().Return(nil)

	rec := &countingRecorder{}
	r := newTestRunner(t, factoryFor(ctrl, drv), WithRecorder(rec))
	res := r.Run(context.Background(), entities.Scenario{
		Name: "drop_down",
		Steps: []entities.Step{
			entities.Navigate(""),
			entities.WithFallback(entities.HoverAndClick(dropdown, option), entities.JSClick(option), 0),
		},
	})

	require.True(t, res.Passed(), res.Error)
	assert.True(t, res.Steps[1].FellBack)
	assert.Equal(t, 1, rec.fallbacks)
	assert.Equal(t, entities.StatusPassed, rec.finished["drop_down"])
}

func TestRunFallbackPrimarySucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	dropdown := entities.Locator("div#myDropdown")
	option := entities.Locator("#dropOption2")

	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	drv.EXPECT().HoverAndClick(gomock.Any(), dropdown, option).Return(nil)
	drv.EXPECT().Close().Return(nil)

	r := newTestRunner(t, factoryFor(ctrl, drv))
	res := r.Run(context.Background(), entities.Scenario{
		Name: "drop_down",
		Steps: []entities.Step{
			entities.Navigate(""),
			entities.WithFallback(entities.HoverAndClick(dropdown, option), entities.JSClick(option), time.Second),
		},
	})
	require.True(t, res.Passed(), res.Error)
	assert.False(t, res.Steps[1].FellBack)
}

func TestRunNotVisibleAndSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	logo := entities.Locator("img#logo")
	box := entities.Locator("#checkBox1")

	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	drv.EXPECT().IsElementVisible(gomock.Any(), logo).Return(false, nil)
	drv.EXPECT().IsSelected(gomock.Any(), box).Return(true, nil)
	drv.EXPECT().Close().Return(nil)

	r := newTestRunner(t, factoryFor(ctrl, drv))
	res := r.Run(context.Background(), entities.Scenario{
		Name: "check_box",
		Steps: []entities.Step{
			entities.Navigate(""),
			entities.AssertNotVisible(logo),
			entities.AssertNotSelected(box),
		},
	})
	assert.Equal(t, string(errs.Assertion), res.Code)
	assert.Equal(t, 2, res.FailedStep)
	assert.Contains(t, res.Error, "not selected")
}

func TestRunVisibleWaitExpiryIsAssertion(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	svg := entities.Locator(`svg[name="svgName"]`)

	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	drv.EXPECT().WaitVisible(gomock.Any(), svg).Return(context.DeadlineExceeded)
	drv.EXPECT().Close().Return(nil)

	r := newTestRunner(t, factoryFor(ctrl, drv))
	res := r.Run(context.Background(), entities.Scenario{
		Name:  "svg_visibility",
		Steps: []entities.Step{entities.Navigate(""), entities.AssertVisible(svg)},
	})
	assert.Equal(t, string(errs.Assertion), res.Code)
	assert.Equal(t, string(svg), string(res.Locator))
}

func TestRunClickVisibleNeedsAMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	drv := mocks.NewMockDriver(ctrl)
	boxes := entities.Locator("input.checkBoxClassB")

	drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	drv.EXPECT().ClickVisibleElements(gomock.Any(), boxes).Return(0, nil)
	drv.EXPECT().Close().Return(nil)

	r := newTestRunner(t, factoryFor(ctrl, drv))
	res := r.Run(context.Background(), entities.Scenario{
		Name:  "multiple_checkbox",
		Steps: []entities.Step{entities.Navigate(""), entities.ClickVisible(boxes)},
	})
	assert.Equal(t, string(errs.Interaction), res.Code)
}

func TestRunGuardRejectionSkipsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockDriverFactory(ctrl)

	r, err := NewRunner(testConfig(), factory, allowAll{err: errs.Configurationf("first step must navigate")}, quietLogger())
	require.NoError(t, err)

	res := r.Run(context.Background(), entities.Scenario{Name: "bad"})
	assert.Equal(t, string(errs.Configuration), res.Code)
	assert.Equal(t, -1, res.FailedStep)
}

func TestRunSessionOpenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockDriverFactory(ctrl)
	factory.EXPECT().NewDriver(gomock.Any()).Return(nil, errors.New("browser crashed"))

	r := newTestRunner(t, factory)
	res := r.Run(context.Background(), entities.Scenario{Name: "open_page", Steps: []entities.Step{entities.Navigate("")}})
	assert.Equal(t, string(errs.Internal), res.Code)
	assert.Contains(t, res.Error, "browser crashed")
}

func TestRunAllKeepsOrderAndSavesReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockDriverFactory(ctrl)
	factory.EXPECT().Name().Return("mock").AnyTimes()
	factory.EXPECT().NewDriver(gomock.Any()).DoAndReturn(func(context.Context) (interfaces.Driver, error) {
		drv := mocks.NewMockDriver(ctrl)
		drv.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
		drv.EXPECT().Title(gomock.Any()).Return("Web Testing Page", nil)
		drv.EXPECT().Close().Return(nil)
		return drv, nil
	}).Times(6)

	var scenarios []entities.Scenario
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		scenarios = append(scenarios, entities.Scenario{
			Name:  name,
			Steps: []entities.Step{entities.Navigate(""), entities.AssertTitle("Web Testing Page")},
		})
	}

	store := &memoryStore{}
	r := newTestRunner(t, factory, WithResultStore(store))
	report := r.RunAll(context.Background(), scenarios, 3)

	require.Len(t, report.Results, 6)
	for i, res := range report.Results {
		assert.Equal(t, scenarios[i].Name, res.Name)
		assert.True(t, res.Passed())
	}
	assert.Zero(t, report.Failed())
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "mock", report.Driver)
	require.Len(t, store.reports, 1)
	assert.Equal(t, report.ID, store.reports[0].ID)
}
