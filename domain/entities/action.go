package entities

import "fmt"

// ActionType represents one interaction the driver performs
type ActionType string

const (
	ActionTypeText      ActionType = "type"
	ActionClick         ActionType = "click"
	ActionJSClick       ActionType = "js_click"
	ActionHoverClick    ActionType = "hover_click"
	ActionSelectOption  ActionType = "select_option"
	ActionPressKey      ActionType = "press_key"
	ActionDragDrop      ActionType = "drag_drop"
	ActionClickVisible  ActionType = "click_visible"
	ActionClickLink     ActionType = "click_link"
	ActionHighlight     ActionType = "highlight"
	ActionSwitchFrame   ActionType = "switch_frame"
	ActionSwitchDefault ActionType = "switch_default"
)

var actionTypes = map[ActionType]bool{
	ActionTypeText:      true,
	ActionClick:         true,
	ActionJSClick:       true,
	ActionHoverClick:    true,
	ActionSelectOption:  true,
	ActionPressKey:      true,
	ActionDragDrop:      true,
	ActionClickVisible:  true,
	ActionClickLink:     true,
	ActionHighlight:     true,
	ActionSwitchFrame:   true,
	ActionSwitchDefault: true,
}

// Valid reports whether t is a known action.
func (t ActionType) Valid() bool {
	return actionTypes[t]
}

// NeedsLocator reports whether the action operates on an element.
func (t ActionType) NeedsLocator() bool {
	switch t {
	case ActionClickLink, ActionSwitchDefault:
		return false
	}
	return true
}

// NeedsTarget reports whether the action uses a second element.
func (t ActionType) NeedsTarget() bool {
	return t == ActionHoverClick || t == ActionDragDrop
}

// Key is a keyboard key name in the DOM KeyboardEvent.key vocabulary.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Action represents a single interaction step
type Action struct {
	Type    ActionType `json:"type" yaml:"type"`
	Locator Locator    `json:"locator,omitempty" yaml:"locator,omitempty"`
	Target  Locator    `json:"target,omitempty" yaml:"target,omitempty"`
	Text    string     `json:"text,omitempty" yaml:"text,omitempty"`
	Key     Key        `json:"key,omitempty" yaml:"key,omitempty"`
	Times   int        `json:"times,omitempty" yaml:"times,omitempty"`
}

func (a Action) String() string {
	switch a.Type {
	case ActionTypeText:
		return fmt.Sprintf("type %q into %s", a.Text, a.Locator)
	case ActionHoverClick:
		return fmt.Sprintf("hover %s and click %s", a.Locator, a.Target)
	case ActionDragDrop:
		return fmt.Sprintf("drag %s onto %s", a.Locator, a.Target)
	case ActionSelectOption:
		return fmt.Sprintf("select %q in %s", a.Text, a.Locator)
	case ActionPressKey:
		return fmt.Sprintf("press %s x%d on %s", a.Key, a.Times, a.Locator)
	case ActionClickLink:
		return fmt.Sprintf("click link %q", a.Text)
	case ActionSwitchDefault:
		return "switch to default content"
	}
	return fmt.Sprintf("%s %s", a.Type, a.Locator)
}
