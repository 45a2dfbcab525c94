package terminal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ui_automation/application/scenarios"
	"ui_automation/domain/interfaces"
	"ui_automation/domain/interfaces/mocks"
	"ui_automation/infrastructure/browser"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const baseURL = "http://demo.test/demo_page"

const titleDoc = `
scenarios:
  - name: title_only
    description: page title check
    steps:
      - navigate: ""
      - assert: title_equals
        expected: Web Testing Page
`

func writeScenarios(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(titleDoc), 0o644))
	return path
}

func fixedFactory(f interfaces.DriverFactory) FactoryFunc {
	return func(string, browser.Options, *logrus.Logger) (interfaces.DriverFactory, error) {
		return f, nil
	}
}

func execute(t *testing.T, newFactory FactoryFunc, in string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := newRootCommand(strings.NewReader(in), &out, newFactory)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// titleSession expects one scenario session that reports title.
func titleSession(ctrl *gomock.Controller, factory *mocks.MockDriverFactory, title string) *mocks.MockDriver {
	drv := mocks.NewMockDriver(ctrl)
	factory.EXPECT().NewDriver(gomock.Any()).Return(drv, nil)
	drv.EXPECT().Navigate(gomock.Any(), baseURL).Return(nil)
	drv.EXPECT().Title(gomock.Any()).Return(title, nil)
	drv.EXPECT().Close().Return(nil)
	return drv
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, nil, "", "list", "--results-dir", t.TempDir(), "-s", writeScenarios(t))
	require.NoError(t, err)

	for _, name := range scenarios.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "title_only")
	assert.Contains(t, out, "page title check")
}

func TestListCommandRejectsBadScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: x\n    steps:\n      - act: teleport\n"), 0o644))

	_, err := execute(t, nil, "", "list", "--results-dir", t.TempDir(), "-s", path)
	assert.Error(t, err)
}

func TestLocatorsCommandFiltersSection(t *testing.T) {
	out, err := execute(t, nil, "", "locators", "checkboxes", "--results-dir", t.TempDir())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "checkboxes."), line)
	}
}

func TestInvalidFlagIsConfigurationError(t *testing.T) {
	_, err := execute(t, nil, "", "list", "--driver", "netscape", "--results-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UI_DRIVER")
}

func TestRunCommandThenHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockDriverFactory(ctrl)
	factory.EXPECT().Name().Return("mock").AnyTimes()
	factory.EXPECT().Close().Return(nil)
	titleSession(ctrl, factory, "Web Testing Page")

	results := t.TempDir()
	out, err := execute(t, fixedFactory(factory), "",
		"run", "title_only", "--base-url", baseURL, "--results-dir", results, "-s", writeScenarios(t))
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  title_only")
	assert.Contains(t, out, "1 passed, 0 failed")

	out, err = execute(t, nil, "", "history", "--results-dir", results)
	require.NoError(t, err)
	assert.Contains(t, out, "mock")
	assert.NotContains(t, out, "No runs recorded.")
}

func TestRunCommandReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockDriverFactory(ctrl)
	factory.EXPECT().Name().Return("mock").AnyTimes()
	factory.EXPECT().Close().Return(nil)
	drv := titleSession(ctrl, factory, "Something Else")
	drv.EXPECT().Screenshot(gomock.Any()).Return([]byte("png"), nil)

	out, err := execute(t, fixedFactory(factory), "",
		"run", "test_title_only", "--base-url", baseURL, "--results-dir", t.TempDir(), "-s", writeScenarios(t))
	require.ErrorIs(t, err, ErrScenariosFailed)
	assert.Contains(t, out, "FAIL  title_only")
	assert.Contains(t, out, "screenshot:")
	assert.Contains(t, out, "0 passed, 1 failed")
}

func TestRunCommandUnknownScenario(t *testing.T) {
	_, err := execute(t, nil, "", "run", "no_such_case", "--results-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_case")
}

func TestHistoryEmpty(t *testing.T) {
	out, err := execute(t, nil, "", "history", "--results-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestShellLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockDriverFactory(ctrl)
	factory.EXPECT().Name().Return("mock").AnyTimes()
	factory.EXPECT().Close().Return(nil)
	titleSession(ctrl, factory, "Web Testing Page")

	input := "\nlist\nnot_a_case\ntitle_only\nquit\nnever_read\n"
	out, err := execute(t, fixedFactory(factory), input,
		"shell", "--base-url", baseURL, "--results-dir", t.TempDir(), "-s", writeScenarios(t))
	require.NoError(t, err)

	assert.Contains(t, out, "UI Sanity Shell")
	assert.Contains(t, out, "page title check")
	assert.Contains(t, out, "not_a_case")
	assert.Contains(t, out, "1 passed, 0 failed")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestShellStopsAtEndOfInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockDriverFactory(ctrl)
	factory.EXPECT().Close().Return(nil)

	_, err := execute(t, fixedFactory(factory), "", "shell", "--results-dir", t.TempDir())
	assert.NoError(t, err)
}

func TestServeDemoStopsOnCancel(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand(strings.NewReader(""), &out, nil)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"serve-demo", "--addr", "127.0.0.1:0", "--results-dir", t.TempDir()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "Serving http://127.0.0.1:")
}
