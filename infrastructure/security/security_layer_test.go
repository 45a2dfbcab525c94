package security

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ui_automation/domain/entities"
	"ui_automation/domain/errs"
)

func newLayer(t *testing.T) *SecurityLayer {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s, err := NewSecurityLayer("https://seleniumbase.io/demo_page", 10, logger)
	require.NoError(t, err)
	return s
}

func TestValidate_AcceptsWellFormedScenario(t *testing.T) {
	s := newLayer(t)
	sc := entities.Scenario{Name: "slider", Steps: []entities.Step{
		entities.Navigate(""),
		entities.AssertVisible(`progress[value="50"]`),
		entities.PressKey("#myslider", entities.KeyArrowDown, 5),
		entities.WithFallback(
			entities.HoverAndClick("#myDropdown", "#dropOption2"),
			entities.JSClick("#dropOption2"), 0),
	}}

	assert.NoError(t, s.Validate(sc))
}

func TestValidate_NavigateMustComeFirst(t *testing.T) {
	s := newLayer(t)
	sc := entities.Scenario{Name: "bad", Steps: []entities.Step{
		entities.Click("#myButton"),
		entities.Navigate(""),
	}}

	err := s.Validate(sc)
	require.Error(t, err)
	assert.Equal(t, errs.Configuration, errs.CodeOf(err))
	assert.Contains(t, err.Error(), "first step must navigate")
}

func TestValidate_RejectsMalformedSteps(t *testing.T) {
	s := newLayer(t)
	tests := []struct {
		name string
		step entities.Step
		want string
	}{
		{"unknown action", entities.Act(entities.Action{Type: "wiggle", Locator: "#a"}), "unknown action"},
		{"missing locator", entities.Click(""), "click needs a locator"},
		{"missing target", entities.DragAndDrop("img#logo", ""), "drag_drop needs a target"},
		{"select without text", entities.SelectOption("#mySelect", ""), "select_option needs text"},
		{"repeat over bound", entities.PressKey("#myslider", entities.KeyArrowUp, 11), "within 1..10"},
		{"repeat zero", entities.PressKey("#myslider", entities.KeyArrowUp, 0), "within 1..10"},
		{"unknown predicate", entities.Check(entities.Assertion{Predicate: "shiny", Locator: "#a"}), "unknown predicate"},
		{"title without expected", entities.AssertTitle(""), "title_equals needs an expected value"},
		{"empty act", entities.Step{Kind: entities.StepAct}, "act step without action"},
		{"unknown kind", entities.Step{Kind: "sleep"}, "unknown step kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := entities.Scenario{Name: "x", Steps: []entities.Step{entities.Navigate(""), tt.step}}
			err := s.Validate(sc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "step 1")
		})
	}
}

func TestValidate_EmptyScenario(t *testing.T) {
	s := newLayer(t)
	assert.Error(t, s.Validate(entities.Scenario{Name: "empty"}))
	assert.Error(t, s.Validate(entities.Scenario{Steps: []entities.Step{entities.Navigate("")}}))
}

func TestAllowURL(t *testing.T) {
	s := newLayer(t)

	assert.NoError(t, s.AllowURL("https://seleniumbase.io/demo_page"))
	assert.NoError(t, s.AllowURL("https://SeleniumBase.io/other"))
	assert.Error(t, s.AllowURL("http://seleniumbase.io/demo_page"))
	assert.Error(t, s.AllowURL("https://example.com/demo_page"))
}
