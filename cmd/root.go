package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/user/hours-cli/config"
	"github.com/user/hours-cli/logger"
	"github.com/user/hours-cli/pkg/timeutil"
)

var Version = "0.1.0"

// Flag values
var (
	verbose      bool
	overflowFlag string
	noColor      bool
)

// Settings resolved from config and flags before each command runs.
var (
	log      = zerolog.Nop()
	conv     timeutil.Converter
	useColor bool
)

var rootCmd = &cobra.Command{
	Use:   "hours <time>",
	Short: "Convert time between H:MM:SS and decimal hours",
	Long: `hours converts a duration from hours, minutes and seconds to a fraction
of an hour, or vice versa. The notation is detected automatically.

Examples:
  hours 1:30:18   -> 1.5050
  hours 1:30      -> 0.0250   (one colon is MM:SS)
  hours 1.055     -> 1:03:18
  hours 1,5       -> 1:30:00`,
	Args:              usageArgs(cobra.ExactArgs(1)),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := conv.Convert(args[0])
		if err != nil {
			return err
		}
		printResult(cmd, args[0], res)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  usageArgs(cobra.NoArgs),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hours version %s\n", Version)
	},
}

// setup loads configuration, applies flag overrides and builds the logger
// and converter shared by all commands.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return &configError{err: err}
	}

	if overflowFlag != "" {
		cfg.Overflow = overflowFlag
		if err := config.Validate(cfg); err != nil {
			return &usageError{err: fmt.Errorf("invalid --overflow: %w", err)}
		}
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log = logger.New(cmd.ErrOrStderr(), level, cfg.Log.Pretty)

	policy, err := cfg.OverflowPolicy()
	if err != nil {
		return &configError{err: err}
	}
	conv = timeutil.Converter{Overflow: policy}
	useColor = cfg.Color && !noColor

	log.Debug().
		Str("overflow", policy.String()).
		Bool("color", useColor).
		Msg("configuration loaded")
	return nil
}

// printResult logs the parsed value and writes the converted output.
func printResult(cmd *cobra.Command, input string, res timeutil.Result) {
	log.Debug().
		Str("input", input).
		Stringer("notation", res.Notation).
		Stringer("value", res.Value).
		Msg("converted")
	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug information")
	rootCmd.PersistentFlags().StringVar(&overflowFlag, "overflow", "", "Hour overflow policy: reset or saturate (default from config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured error output")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and exits with a sysexits-style status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		code := exitCode(err)
		log.Debug().Err(err).Int("exit_code", code).Msg("command failed")
		printError(stderr, err)
		return code
	}
	return ExitOK
}
