package pageobjects

import (
	"sort"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/errs"
)

// Registry is a read-only index of named locators.
type Registry struct {
	index map[string]entities.NamedLocator
	order []string
}

// Build indexes sections, rejecting empty names, empty selectors and
// duplicate section.name keys. All problems are reported together.
func Build(sections ...Section) (*Registry, error) {
	r := &Registry{index: make(map[string]entities.NamedLocator)}
	var problems []string

	for _, sec := range sections {
		for _, nl := range sec.Entries() {
			key := nl.Key()
			switch {
			case nl.Section == "" || nl.Name == "":
				problems = append(problems, "entry with empty name: "+key)
				continue
			case strings.TrimSpace(nl.Locator.String()) == "":
				problems = append(problems, "missing selector for "+key)
				continue
			}
			if _, dup := r.index[key]; dup {
				problems = append(problems, "duplicate locator name "+key)
				continue
			}
			r.index[key] = nl
			r.order = append(r.order, key)
		}
	}

	if len(problems) > 0 {
		return nil, errs.Configurationf("page objects: %s", strings.Join(problems, "; "))
	}
	return r, nil
}

// MustBuild is Build that panics, for package-level registries that must
// be valid at process start.
func MustBuild(sections ...Section) *Registry {
	r, err := Build(sections...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = MustBuild(DemoPage.Sections()...)

// Default returns the registry of the demo page locators.
func Default() *Registry {
	return defaultRegistry
}

// Lookup returns the locator registered as section.name.
func (r *Registry) Lookup(section, name string) (entities.Locator, error) {
	nl, ok := r.index[section+"."+name]
	if !ok {
		return "", errs.Configurationf("unknown locator %s.%s", section, name)
	}
	return nl.Locator, nil
}

// Resolve looks up a "section.name" reference.
func (r *Registry) Resolve(ref string) (entities.Locator, error) {
	section, name, ok := strings.Cut(ref, ".")
	if !ok || section == "" || name == "" {
		return "", errs.Configurationf("locator reference %q is not section.name", ref)
	}
	return r.Lookup(section, name)
}

// Entries returns every registered locator in registration order.
func (r *Registry) Entries() []entities.NamedLocator {
	out := make([]entities.NamedLocator, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.index[key])
	}
	return out
}

// SectionNames returns the distinct section names, sorted.
func (r *Registry) SectionNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, nl := range r.index {
		if !seen[nl.Section] {
			seen[nl.Section] = true
			names = append(names, nl.Section)
		}
	}
	sort.Strings(names)
	return names
}
