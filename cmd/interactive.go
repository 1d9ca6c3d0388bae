package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/user/hours-cli/tui"
	"github.com/user/hours-cli/tui/forms"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask for a time and convert it",
	Long:  `Show an input form, validate the entered time as you type, and print its conversion.`,
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value string
		if err := forms.NewTimeForm(conv, &value).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				log.Debug().Msg("prompt aborted")
				return nil
			}
			return fmt.Errorf("prompt failed: %w", err)
		}

		res, err := conv.Convert(value)
		if err != nil {
			return err
		}
		printResult(cmd, value, res)
		return nil
	},
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Convert interactively while typing",
	Long:  `Open a small screen that converts the typed time on every keystroke. Enter prints the result, Esc quits.`,
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, ok, err := tui.Run(conv)
		if err != nil {
			return err
		}
		if !ok {
			log.Debug().Msg("live converter closed without a result")
			return nil
		}
		printResult(cmd, res.Input, res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(liveCmd)
}
