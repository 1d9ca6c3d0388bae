package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/hours-cli/pkg/timeutil"
)

var toDecimalCmd = &cobra.Command{
	Use:     "to-decimal <H:MM:SS|MM:SS>",
	Aliases: []string{"dec"},
	Short:   "Convert clock notation to decimal hours",
	Long: `Convert H:MM:SS or MM:SS to decimal hours with four decimal places.
A single colon is read as minutes:seconds. Excess seconds and minutes carry
upward, so 0:60:00 is 1.0000.`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := conv.FromClock(args[0])
		if err != nil {
			return err
		}
		printResult(cmd, args[0], timeutil.Result{
			Notation: timeutil.NotationClock,
			Value:    t,
			Output:   timeutil.FormatDecimal(t.ToDecimal()),
		})
		return nil
	},
}

var toTimeCmd = &cobra.Command{
	Use:     "to-time <decimal>",
	Aliases: []string{"time"},
	Short:   "Convert decimal hours to H:MM:SS",
	Long: `Convert decimal hours to H:MM:SS. Either '.' or ',' may be used as the
decimal separator, and either side of it may be empty (1. or .25).`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := conv.FromDecimalText(args[0])
		if err != nil {
			return err
		}
		printResult(cmd, args[0], timeutil.Result{
			Notation: timeutil.NotationDecimal,
			Value:    t,
			Output:   t.String(),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toDecimalCmd)
	rootCmd.AddCommand(toTimeCmd)
}
