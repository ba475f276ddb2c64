package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/kbforms/internal/config"
	"github.com/muurk/kbforms/internal/ui"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change preferences",
	Long: `Show or change kbforms preferences.

Preferences:
  default-project   Project directory used when --project is not given
  copy-on-open      Copy handoff instructions as soon as the dialog opens`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show preferences and the configuration file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a preference",
	Example: `  kbforms config set default-project ./bots/echo
  kbforms config set copy-on-open true
  kbforms config set default-project ""`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.PreferenceKeys,
	RunE:      runConfigSet,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration: %s\n\n", path)
	for _, key := range config.PreferenceKeys {
		value, err := registry.Preferences.Get(key)
		if err != nil {
			return err
		}
		if value == "" {
			value = ui.MutedStyle.Render("(not set)")
		}
		fmt.Fprintf(out, "  %s %s\n", ui.ResultKeyStyle.Width(18).Render(key), value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	key, value := strings.TrimSpace(args[0]), args[1]
	if err := registry.Preferences.Set(key, value); err != nil {
		return err
	}
	if err := config.SaveGlobal(); err != nil {
		return err
	}

	stored, _ := registry.Preferences.Get(key)
	fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("Preference saved",
		ui.Detail{Key: "Key", Value: key},
		ui.Detail{Key: "Value", Value: stored},
	).Render())
	return nil
}
