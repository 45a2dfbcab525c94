package entities

import (
	"fmt"
	"time"
)

// StepKind identifies the shape of a scenario step.
type StepKind string

const (
	StepNavigate StepKind = "navigate"
	StepAct      StepKind = "act"
	StepAssert   StepKind = "assert"
	StepFallback StepKind = "fallback"
)

// Fallback runs Primary under a short timeout and Secondary only when the
// primary interaction fails.
type Fallback struct {
	Primary   Action        `json:"primary"`
	Secondary Action        `json:"secondary"`
	Timeout   time.Duration `json:"timeout,omitempty"`
}

// Step is one entry of a scenario. Exactly one of Path (navigate), Action,
// Assertion or Fallback is meaningful, selected by Kind.
type Step struct {
	Kind      StepKind   `json:"kind"`
	Path      string     `json:"path,omitempty"`
	Action    *Action    `json:"action,omitempty"`
	Assertion *Assertion `json:"assertion,omitempty"`
	Fallback  *Fallback  `json:"fallback,omitempty"`
}

func (s Step) String() string {
	switch s.Kind {
	case StepNavigate:
		if s.Path == "" {
			return "navigate to base url"
		}
		return "navigate to " + s.Path
	case StepAct:
		if s.Action != nil {
			return s.Action.String()
		}
	case StepAssert:
		if s.Assertion != nil {
			return "assert " + s.Assertion.String()
		}
	case StepFallback:
		if s.Fallback != nil {
			return fmt.Sprintf("%s (fallback: %s)", s.Fallback.Primary, s.Fallback.Secondary)
		}
	}
	return string(s.Kind)
}

// Locator returns the element the step is about, if any.
func (s Step) Locator() Locator {
	switch {
	case s.Action != nil:
		return s.Action.Locator
	case s.Assertion != nil:
		return s.Assertion.Locator
	case s.Fallback != nil:
		return s.Fallback.Primary.Target
	}
	return ""
}

// Scenario is one independent test case: an ordered list of steps run
// against a fresh browser session.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Steps       []Step `json:"steps"`
}

// Navigate loads path relative to the configured base URL. An empty path
// opens the base URL itself.
func Navigate(path string) Step {
	return Step{Kind: StepNavigate, Path: path}
}

// Act wraps an action in a step.
func Act(a Action) Step {
	return Step{Kind: StepAct, Action: &a}
}

// Check wraps an assertion in a step.
func Check(a Assertion) Step {
	return Step{Kind: StepAssert, Assertion: &a}
}

// WithFallback builds the two-branch strategy step from two act steps.
func WithFallback(primary, secondary Step, timeout time.Duration) Step {
	if primary.Action == nil || secondary.Action == nil {
		panic("entities: WithFallback needs two act steps")
	}
	return Step{Kind: StepFallback, Fallback: &Fallback{
		Primary:   *primary.Action,
		Secondary: *secondary.Action,
		Timeout:   timeout,
	}}
}

func TypeText(loc Locator, text string) Step {
	return Act(Action{Type: ActionTypeText, Locator: loc, Text: text})
}

func Click(loc Locator) Step {
	return Act(Action{Type: ActionClick, Locator: loc})
}

func JSClick(loc Locator) Step {
	return Act(Action{Type: ActionJSClick, Locator: loc})
}

func HoverAndClick(hover, click Locator) Step {
	return Act(Action{Type: ActionHoverClick, Locator: hover, Target: click})
}

func SelectOption(loc Locator, text string) Step {
	return Act(Action{Type: ActionSelectOption, Locator: loc, Text: text})
}

func PressKey(loc Locator, key Key, times int) Step {
	return Act(Action{Type: ActionPressKey, Locator: loc, Key: key, Times: times})
}

func DragAndDrop(source, target Locator) Step {
	return Act(Action{Type: ActionDragDrop, Locator: source, Target: target})
}

func ClickVisible(loc Locator) Step {
	return Act(Action{Type: ActionClickVisible, Locator: loc})
}

func ClickLink(text string) Step {
	return Act(Action{Type: ActionClickLink, Text: text})
}

func Highlight(loc Locator) Step {
	return Act(Action{Type: ActionHighlight, Locator: loc})
}

func SwitchToFrame(loc Locator) Step {
	return Act(Action{Type: ActionSwitchFrame, Locator: loc})
}

func SwitchToDefault() Step {
	return Act(Action{Type: ActionSwitchDefault})
}

func AssertTitle(expected string) Step {
	return Check(Assertion{Predicate: PredicateTitleEquals, Expected: expected})
}

func AssertVisible(loc Locator) Step {
	return Check(Assertion{Predicate: PredicateVisible, Locator: loc})
}

func AssertNotVisible(loc Locator) Step {
	return Check(Assertion{Predicate: PredicateNotVisible, Locator: loc})
}

// AssertText checks that the element's text contains expected.
func AssertText(loc Locator, expected string) Step {
	return Check(Assertion{Predicate: PredicateTextContains, Locator: loc, Expected: expected})
}

// AssertExactText checks the element's trimmed text equals expected.
func AssertExactText(loc Locator, expected string) Step {
	return Check(Assertion{Predicate: PredicateTextEquals, Locator: loc, Expected: expected})
}

func AssertSelected(loc Locator) Step {
	return Check(Assertion{Predicate: PredicateSelected, Locator: loc})
}

func AssertNotSelected(loc Locator) Step {
	return Check(Assertion{Predicate: PredicateNotSelected, Locator: loc})
}

func AssertTextVisible(text string) Step {
	return Check(Assertion{Predicate: PredicateTextVisible, Expected: text})
}

func AssertTextNotVisible(text string) Step {
	return Check(Assertion{Predicate: PredicateTextNotVisible, Expected: text})
}

func AssertLinkText(text string) Step {
	return Check(Assertion{Predicate: PredicateLinkText, Expected: text})
}
