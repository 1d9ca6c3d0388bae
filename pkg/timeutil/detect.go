package timeutil

import "regexp"

// Notation identifies which grammar a duration string uses.
type Notation int

const (
	// NotationClock is H:MM:SS or MM:SS.
	NotationClock Notation = iota + 1
	// NotationDecimal is fractional hours with '.' or ',' as separator.
	NotationDecimal
)

func (n Notation) String() string {
	switch n {
	case NotationClock:
		return "clock"
	case NotationDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

var (
	// Groups: hours-or-minutes, minutes-or-seconds, optional seconds.
	clockPattern   = regexp.MustCompile(`^(\d*):(\d*)(?::(\d*))?$`)
	decimalPattern = regexp.MustCompile(`^\d*[.,]?\d*$`)
)

// Detect classifies text. Clock notation is tried first, so "1:30" never
// falls through to decimal. Signs and any other characters are rejected.
func Detect(text string) (Notation, error) {
	switch {
	case clockPattern.MatchString(text):
		return NotationClock, nil
	case decimalPattern.MatchString(text):
		return NotationDecimal, nil
	default:
		return 0, parseErr(text, "could not classify input")
	}
}
