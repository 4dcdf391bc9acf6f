package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/thinknathan/defold-buddy/internal/editor"
)

var sendCmd = &cobra.Command{
	Use:   "send <command>",
	Short: "Send a command to the running editor",
	Long: `Send resolves the port of the running Defold editor and dispatches a
single command to it, for example:

  defold-buddy send hot-reload
  defold-buddy send build

Run "defold-buddy commands" for the full vocabulary.`,
	Args: cobra.ExactArgs(1),
	Run:  runSend,
}

func runSend(cmd *cobra.Command, args []string) {
	command := editor.Command(args[0])
	if !command.Valid() {
		fmt.Fprintf(os.Stderr, "unknown editor command %q; see `%s commands`\n", args[0], appName)
		os.Exit(1)
	}

	a, err := buildApp(cmd, true)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer a.close()

	ctx := context.Background()

	port, ok := a.resolver.Resolve(ctx, a.cfg.InteractiveEnabled())
	if !ok {
		fmt.Fprintln(os.Stderr, "no running Defold editor found")
		os.Exit(1)
	}

	if !a.client.Dispatch(ctx, port, command) {
		fmt.Fprintf(os.Stderr, "editor on port %s did not accept %s\n", port, command)
		os.Exit(1)
	}

	fmt.Printf("sent %s to editor on port %s\n", command, port)
}
