package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	appName    = "defold-buddy"
	appVersion = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Companion CLI for the Defold editor",
	Long: `Defold-buddy locates a running Defold editor instance and forwards
commands to it over the editor's local HTTP endpoint:
  - hot reload changed files on save, without switching windows
  - trigger builds, bundles and debugger actions from the terminal

The editor's port is discovered from the last known-good value, falling
back to the editor log, falling back to asking you.`,
	Version: appVersion,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().Bool("no-prompt", false, "Never prompt; fail silently when no editor is found")

	// Add subcommands
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(historyCmd)

	// Version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s v%s\n", appName, appVersion))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
