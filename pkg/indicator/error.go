package indicator

import (
	"strings"

	"go.uber.org/multierr"
)

// ValidationError carries every precondition violated by one indicator.
type ValidationError struct {
	Indicator string
	Messages  []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validate aggregates the results of the given checks. It returns nil when every
// check passed, otherwise a *ValidationError listing all failures in order.
func Validate(name string, checks ...error) error {
	err := multierr.Combine(checks...)
	if err == nil {
		return nil
	}

	verr := &ValidationError{Indicator: name}
	for _, e := range multierr.Errors(err) {
		verr.Messages = append(verr.Messages, e.Error())
	}

	log.WithField("indicator", name).Debugf("validation failed: %s", verr.Error())
	return verr
}
