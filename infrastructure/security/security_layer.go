package security

import (
	"fmt"
	"net/url"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/errs"

	"github.com/sirupsen/logrus"
)

// SecurityLayer rejects malformed scenarios before a browser is opened and
// keeps navigation on the configured origin.
type SecurityLayer struct {
	logger    *logrus.Logger
	origin    *url.URL
	maxRepeat int
}

func NewSecurityLayer(baseURL string, maxRepeat int, logger *logrus.Logger) (*SecurityLayer, error) {
	origin, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if maxRepeat < 1 {
		maxRepeat = 1
	}
	return &SecurityLayer{
		logger:    logger,
		origin:    origin,
		maxRepeat: maxRepeat,
	}, nil
}

// Validate checks ordering and per-step shape. The first step must be a
// navigation so no act or assert ever runs against a blank session.
func (s *SecurityLayer) Validate(sc entities.Scenario) error {
	if strings.TrimSpace(sc.Name) == "" {
		return errs.Configurationf("scenario has no name")
	}
	if len(sc.Steps) == 0 {
		return errs.Configurationf("scenario %s has no steps", sc.Name)
	}
	if sc.Steps[0].Kind != entities.StepNavigate {
		return errs.Configurationf("scenario %s: first step must navigate, got %s", sc.Name, sc.Steps[0].Kind)
	}

	for i, step := range sc.Steps {
		if err := s.validateStep(step); err != nil {
			s.logger.WithFields(logrus.Fields{
				"scenario": sc.Name,
				"step":     i,
			}).Debugf("Rejected step: %v", err)
			return errs.Configurationf("scenario %s step %d: %v", sc.Name, i, err)
		}
	}
	return nil
}

func (s *SecurityLayer) validateStep(step entities.Step) error {
	switch step.Kind {
	case entities.StepNavigate:
		return nil
	case entities.StepAct:
		if step.Action == nil {
			return fmt.Errorf("act step without action")
		}
		return s.validateAction(*step.Action)
	case entities.StepAssert:
		if step.Assertion == nil {
			return fmt.Errorf("assert step without assertion")
		}
		return validateAssertion(*step.Assertion)
	case entities.StepFallback:
		if step.Fallback == nil {
			return fmt.Errorf("fallback step without strategies")
		}
		if step.Fallback.Timeout < 0 {
			return fmt.Errorf("fallback timeout must not be negative")
		}
		if err := s.validateAction(step.Fallback.Primary); err != nil {
			return fmt.Errorf("primary: %w", err)
		}
		if err := s.validateAction(step.Fallback.Secondary); err != nil {
			return fmt.Errorf("secondary: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown step kind %q", step.Kind)
}

func (s *SecurityLayer) validateAction(a entities.Action) error {
	if !a.Type.Valid() {
		return fmt.Errorf("unknown action %q", a.Type)
	}
	if a.Type.NeedsLocator() && a.Locator == "" {
		return fmt.Errorf("%s needs a locator", a.Type)
	}
	if a.Type.NeedsTarget() && a.Target == "" {
		return fmt.Errorf("%s needs a target locator", a.Type)
	}
	switch a.Type {
	case entities.ActionSelectOption, entities.ActionClickLink:
		if a.Text == "" {
			return fmt.Errorf("%s needs text", a.Type)
		}
	case entities.ActionPressKey:
		if a.Key == "" {
			return fmt.Errorf("press_key needs a key")
		}
		if a.Times < 1 || a.Times > s.maxRepeat {
			return fmt.Errorf("press_key times must be within 1..%d, got %d", s.maxRepeat, a.Times)
		}
	}
	return nil
}

func validateAssertion(a entities.Assertion) error {
	if !a.Predicate.Valid() {
		return fmt.Errorf("unknown predicate %q", a.Predicate)
	}
	if a.Predicate.NeedsLocator() && a.Locator == "" {
		return fmt.Errorf("%s needs a locator", a.Predicate)
	}
	switch a.Predicate {
	case entities.PredicateTitleEquals, entities.PredicateTextContains, entities.PredicateTextEquals,
		entities.PredicateTextVisible, entities.PredicateTextNotVisible, entities.PredicateLinkText:
		if a.Expected == "" {
			return fmt.Errorf("%s needs an expected value", a.Predicate)
		}
	}
	return nil
}

// AllowURL permits only URLs on the base URL's scheme and host.
func (s *SecurityLayer) AllowURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errs.Configurationf("invalid url %q: %v", rawURL, err)
	}
	if !strings.EqualFold(u.Scheme, s.origin.Scheme) || !strings.EqualFold(u.Host, s.origin.Host) {
		s.logger.Warnf("Blocked navigation to %s (origin %s://%s)", rawURL, s.origin.Scheme, s.origin.Host)
		return errs.Configurationf("navigation to %s leaves origin %s://%s", rawURL, s.origin.Scheme, s.origin.Host)
	}
	return nil
}
