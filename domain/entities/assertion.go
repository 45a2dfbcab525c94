package entities

import "fmt"

// PredicateType is a boolean condition checked against the current DOM.
type PredicateType string

const (
	PredicateTitleEquals    PredicateType = "title_equals"
	PredicateVisible        PredicateType = "visible"
	PredicateNotVisible     PredicateType = "not_visible"
	PredicateTextContains   PredicateType = "text_contains"
	PredicateTextEquals     PredicateType = "text_equals"
	PredicateSelected       PredicateType = "selected"
	PredicateNotSelected    PredicateType = "not_selected"
	PredicateTextVisible    PredicateType = "text_visible"
	PredicateTextNotVisible PredicateType = "text_not_visible"
	PredicateLinkText       PredicateType = "link_text_visible"
)

// Valid reports whether p is a known predicate.
func (p PredicateType) Valid() bool {
	switch p {
	case PredicateTitleEquals, PredicateVisible, PredicateNotVisible,
		PredicateTextContains, PredicateTextEquals, PredicateSelected,
		PredicateNotSelected, PredicateTextVisible, PredicateTextNotVisible,
		PredicateLinkText:
		return true
	}
	return false
}

// NeedsLocator reports whether the predicate inspects one element.
func (p PredicateType) NeedsLocator() bool {
	switch p {
	case PredicateTitleEquals, PredicateTextVisible, PredicateTextNotVisible, PredicateLinkText:
		return false
	}
	return true
}

// Assertion pairs a predicate with the element or text it inspects.
type Assertion struct {
	Predicate PredicateType `json:"predicate" yaml:"predicate"`
	Locator   Locator       `json:"locator,omitempty" yaml:"locator,omitempty"`
	Expected  string        `json:"expected,omitempty" yaml:"expected,omitempty"`
}

func (a Assertion) String() string {
	switch {
	case a.Locator == "":
		return fmt.Sprintf("%s %q", a.Predicate, a.Expected)
	case a.Expected == "":
		return fmt.Sprintf("%s %s", a.Predicate, a.Locator)
	}
	return fmt.Sprintf("%s %s %q", a.Predicate, a.Locator, a.Expected)
}
