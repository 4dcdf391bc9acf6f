package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinknathan/defold-buddy/internal/editor"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the editor command vocabulary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range editor.Commands() {
			fmt.Println(c)
		}
	},
}
