// Package forms provides huh-based forms for entering durations.
package forms

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/user/hours-cli/pkg/timeutil"
)

// TimeValidator returns a huh validation func that accepts any input conv can
// convert.
func TimeValidator(conv timeutil.Converter) func(string) error {
	return func(s string) error {
		if _, err := conv.Convert(s); err != nil {
			var pe *timeutil.ParseError
			if errors.As(err, &pe) {
				return errors.New(pe.Reason)
			}
			return err
		}
		return nil
	}
}

// NewTimeForm creates a huh form asking for one duration in clock or decimal
// notation. The value pointer is bound to the input and populated on submit.
func NewTimeForm(conv timeutil.Converter, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time").
				Description("H:MM:SS, MM:SS or decimal hours (1.25 or 1,25)").
				Placeholder("1:30:00").
				Value(value).
				Validate(TimeValidator(conv)),
		),
	).WithTheme(Theme())
}
