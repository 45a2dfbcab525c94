package entities

// Locator is a CSS selector naming one DOM element or a family of elements.
type Locator string

func (l Locator) String() string {
	return string(l)
}

// NamedLocator is a registry entry: a semantic name inside a page section.
type NamedLocator struct {
	Section string  `json:"section" yaml:"section"`
	Name    string  `json:"name" yaml:"name"`
	Locator Locator `json:"locator" yaml:"locator"`
}

// Key returns the "section.name" form used for lookups.
func (n NamedLocator) Key() string {
	return n.Section + "." + n.Name
}
