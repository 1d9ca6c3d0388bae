package timeutil

import "fmt"

// ParseError reports input that is not a valid duration in the expected notation.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %s", e.Input, e.Reason)
}

// InvariantError reports input that matched a notation's pattern but could
// not be converted to a number. It signals a disagreement between the
// detector and the parsers, not bad user input.
type InvariantError struct {
	Input string
	Err   error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal error converting %q: %v", e.Input, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func parseErr(input, reason string) *ParseError {
	return &ParseError{Input: input, Reason: reason}
}
