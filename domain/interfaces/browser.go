package interfaces

import (
	"context"

	"ui_automation/domain/entities"
)

//go:generate mockgen -destination=mocks/mock_driver.go -package=mocks ui_automation/domain/interfaces Driver,DriverFactory

// Driver is the browser-driver capability a scenario runs against. One
// Driver is one browser session owned by one scenario. Every call blocks
// until the underlying library reports completion or the context expires.
type Driver interface {
	// Navigate loads url and waits for the page load event
	Navigate(ctx context.Context, url string) error

	// Title returns the current document title
	Title(ctx context.Context) (string, error)

	// Type replaces the content of an input or textarea with text
	Type(ctx context.Context, loc entities.Locator, text string) error

	// Click clicks the first element matching loc once it is actionable
	Click(ctx context.Context, loc entities.Locator) error

	// JSClick dispatches a programmatic click, ignoring visibility
	JSClick(ctx context.Context, loc entities.Locator) error

	// HoverAndClick hovers over hover, then clicks target
	HoverAndClick(ctx context.Context, hover, target entities.Locator) error

	// SelectOptionByText selects the option whose visible text is text
	SelectOptionByText(ctx context.Context, loc entities.Locator, text string) error

	// PressKey focuses loc and presses key once
	PressKey(ctx context.Context, loc entities.Locator, key entities.Key) error

	// DragAndDrop drags source onto target
	DragAndDrop(ctx context.Context, source, target entities.Locator) error

	// ClickVisibleElements clicks every visible match and returns the count
	ClickVisibleElements(ctx context.Context, loc entities.Locator) (int, error)

	// ClickLinkText clicks the link whose text is text
	ClickLinkText(ctx context.Context, text string) error

	// Highlight outlines the element; fails if it is not visible
	Highlight(ctx context.Context, loc entities.Locator) error

	// SwitchToFrame scopes later lookups to the iframe matched by loc
	SwitchToFrame(ctx context.Context, loc entities.Locator) error

	// SwitchToDefaultContent scopes lookups back to the top document
	SwitchToDefaultContent(ctx context.Context) error

	// WaitVisible waits until loc is visible or ctx expires
	WaitVisible(ctx context.Context, loc entities.Locator) error

	// IsElementVisible reports current visibility without waiting
	IsElementVisible(ctx context.Context, loc entities.Locator) (bool, error)

	// IsTextVisible reports whether text is rendered in the current scope
	IsTextVisible(ctx context.Context, text string) (bool, error)

	// IsLinkTextVisible reports whether a visible link has exactly this text
	IsLinkTextVisible(ctx context.Context, text string) (bool, error)

	// IsSelected reports whether a checkbox or radio button is checked
	IsSelected(ctx context.Context, loc entities.Locator) (bool, error)

	// Text returns an input's value, or the rendered text of other elements
	Text(ctx context.Context, loc entities.Locator) (string, error)

	// Screenshot captures the viewport as PNG
	Screenshot(ctx context.Context) ([]byte, error)

	// Close ends the session
	Close() error
}

// DriverFactory opens a fresh, isolated browser session per scenario.
type DriverFactory interface {
	// Name identifies the backing library
	Name() string

	// NewDriver opens a new session
	NewDriver(ctx context.Context) (Driver, error)

	// Close releases the shared browser process
	Close() error
}
