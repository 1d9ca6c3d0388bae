package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/user/hours-cli/pkg/timeutil"
	"github.com/user/hours-cli/tui/styles"
)

// Exit statuses, following sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitConfig   = 78
)

// usageError wraps bad arguments or flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// configError wraps failures loading configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return fmt.Sprintf("configuration: %v", e.err) }
func (e *configError) Unwrap() error { return e.err }

// usageArgs marks errors from an argument validator as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// exitCode maps an error returned by a command to a process exit status.
func exitCode(err error) int {
	var (
		usageErr     *usageError
		configErr    *configError
		parseErr     *timeutil.ParseError
		invariantErr *timeutil.InvariantError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.As(err, &configErr):
		return ExitConfig
	case errors.As(err, &invariantErr):
		return ExitSoftware
	case errors.As(err, &parseErr):
		return ExitDataErr
	default:
		return ExitSoftware
	}
}

func printError(w io.Writer, err error) {
	msg := "Error: " + err.Error()
	if useColor {
		msg = styles.Error.Render(msg)
	}
	fmt.Fprintln(w, msg)

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(w, "Run 'hours --help' for usage.")
	}
}
