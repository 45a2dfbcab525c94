package scenarios

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/errs"
	"ui_automation/infrastructure/pageobjects"

	"gopkg.in/yaml.v3"
)

// cssPrefix marks a locator given as a raw selector instead of a
// section.name reference.
const cssPrefix = "css="

type fileDoc struct {
	Scenarios []scenarioDoc `yaml:"scenarios"`
}

type scenarioDoc struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Steps       []stepDoc `yaml:"steps"`
}

type actionDoc struct {
	Act     string `yaml:"act"`
	Locator string `yaml:"locator"`
	Target  string `yaml:"target"`
	Text    string `yaml:"text"`
	Key     string `yaml:"key"`
	Times   int    `yaml:"times"`
}

type fallbackDoc struct {
	Primary   actionDoc     `yaml:"primary"`
	Secondary actionDoc     `yaml:"secondary"`
	Timeout   time.Duration `yaml:"timeout"`
}

type stepDoc struct {
	Navigate *string `yaml:"navigate"`

	actionDoc `yaml:",inline"`

	Assert   string       `yaml:"assert"`
	Expected string       `yaml:"expected"`
	Fallback *fallbackDoc `yaml:"fallback"`
}

// LoadFile reads scenarios from a YAML file. Locators are section.name
// references resolved against reg, or raw selectors prefixed with "css=".
// Every reference is resolved here so a bad name fails before any browser
// starts.
func LoadFile(path string, reg *pageobjects.Registry) ([]entities.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	scs, err := Parse(data, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scs, nil
}

// Parse decodes a scenario document.
func Parse(data []byte, reg *pageobjects.Registry) ([]entities.Scenario, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.Configurationf("invalid scenario yaml: %v", err)
	}

	out := make([]entities.Scenario, 0, len(doc.Scenarios))
	for _, sd := range doc.Scenarios {
		sc, err := sd.build(reg)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func (sd scenarioDoc) build(reg *pageobjects.Registry) (entities.Scenario, error) {
	if sd.Name == "" {
		return entities.Scenario{}, errs.Configurationf("scenario without name")
	}
	sc := entities.Scenario{Name: sd.Name, Description: sd.Description}
	for i, st := range sd.Steps {
		step, err := st.build(reg)
		if err != nil {
			return entities.Scenario{}, errs.Configurationf("scenario %s step %d: %v", sd.Name, i, err)
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

func (st stepDoc) build(reg *pageobjects.Registry) (entities.Step, error) {
	kinds := 0
	for _, set := range []bool{st.Navigate != nil, st.Act != "", st.Assert != "", st.Fallback != nil} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return entities.Step{}, fmt.Errorf("step needs exactly one of navigate, act, assert, fallback")
	}

	switch {
	case st.Navigate != nil:
		return entities.Navigate(*st.Navigate), nil

	case st.Act != "":
		a, err := st.actionDoc.build(reg)
		if err != nil {
			return entities.Step{}, err
		}
		return entities.Act(a), nil

	case st.Assert != "":
		p := entities.PredicateType(st.Assert)
		if !p.Valid() {
			return entities.Step{}, fmt.Errorf("unknown predicate %q", st.Assert)
		}
		a := entities.Assertion{Predicate: p, Expected: st.Expected}
		if p.NeedsLocator() {
			loc, err := resolve(reg, st.Locator)
			if err != nil {
				return entities.Step{}, err
			}
			a.Locator = loc
		}
		return entities.Check(a), nil
	}

	primary, err := st.Fallback.Primary.build(reg)
	if err != nil {
		return entities.Step{}, fmt.Errorf("primary: %w", err)
	}
	secondary, err := st.Fallback.Secondary.build(reg)
	if err != nil {
		return entities.Step{}, fmt.Errorf("secondary: %w", err)
	}
	return entities.WithFallback(entities.Act(primary), entities.Act(secondary), st.Fallback.Timeout), nil
}

func (ad actionDoc) build(reg *pageobjects.Registry) (entities.Action, error) {
	t := entities.ActionType(ad.Act)
	if !t.Valid() {
		return entities.Action{}, fmt.Errorf("unknown action %q", ad.Act)
	}

	a := entities.Action{Type: t, Text: ad.Text, Key: entities.Key(ad.Key), Times: ad.Times}
	if t.NeedsLocator() {
		loc, err := resolve(reg, ad.Locator)
		if err != nil {
			return entities.Action{}, err
		}
		a.Locator = loc
	}
	if t.NeedsTarget() {
		target, err := resolve(reg, ad.Target)
		if err != nil {
			return entities.Action{}, fmt.Errorf("target: %w", err)
		}
		a.Target = target
	}
	if t == entities.ActionPressKey && a.Times == 0 {
		a.Times = 1
	}
	return a, nil
}

func resolve(reg *pageobjects.Registry, ref string) (entities.Locator, error) {
	if ref == "" {
		return "", fmt.Errorf("missing locator")
	}
	if css, ok := strings.CutPrefix(ref, cssPrefix); ok {
		if strings.TrimSpace(css) == "" {
			return "", fmt.Errorf("empty selector in %q", ref)
		}
		return entities.Locator(css), nil
	}
	return reg.Resolve(ref)
}
