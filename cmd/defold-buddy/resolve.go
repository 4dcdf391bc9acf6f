package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve and print the running editor's port",
	Args:  cobra.NoArgs,
	Run:   runResolve,
}

func runResolve(cmd *cobra.Command, args []string) {
	a, err := buildApp(cmd, true)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer a.close()

	port, ok := a.resolver.Resolve(context.Background(), a.cfg.InteractiveEnabled())
	if !ok {
		fmt.Fprintln(os.Stderr, "no running Defold editor found")
		os.Exit(1)
	}

	fmt.Println(port)
}
