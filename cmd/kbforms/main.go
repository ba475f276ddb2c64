// Kbforms manages the QnA knowledge base files of a bot project.
//
// It lists knowledge bases and flags the ones whose name or source URL fail
// validation, renames them through an interactive dialog, line prompts or
// flags, and shows provisioning handoff instructions with a one-key copy.
//
// Usage:
//
//	kbforms [command] [flags]
//
// Running without arguments lists the knowledge bases of the project.
// See 'kbforms --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/kbforms/internal/config"
	"github.com/muurk/kbforms/internal/logging"
	"github.com/muurk/kbforms/internal/version"
)

// Global flags
var (
	projectDir string
	logLevel   string
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kbforms",
	Short: "Knowledge base editor for bot projects",
	Long: `Manage the QnA knowledge base files (*.qna) of a bot project.

List knowledge bases, rename them through an interactive dialog or
prompts, and share provisioning handoff instructions.

If no command is specified, the knowledge bases of the project are listed.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(logLevel)
	},
	RunE: runList,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", "", "Bot project directory (default: preference or current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); default from "+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kbforms %s\n", version.Full())
	},
}

// initLogging applies --log-level, falling back to the environment.
func initLogging(level string) error {
	if level != "" {
		return logging.Initialize(level)
	}
	return logging.InitializeFromEnv()
}

// loadRegistry returns the user registry, or an empty one when the
// configuration file cannot be read.
func loadRegistry() *config.Registry {
	registry, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("Ignoring unreadable configuration: " + err.Error())
		return config.NewRegistry()
	}
	return registry
}
