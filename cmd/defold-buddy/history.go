package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thinknathan/defold-buddy/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent editor port resolutions",
	Args:  cobra.NoArgs,
	Run:   runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	ctx := context.Background()

	hist, err := history.Open(ctx, "")
	if err != nil {
		log.Fatalf("Failed to open resolution history: %v", err)
	}
	defer hist.Close()

	entries, err := hist.Recent(ctx, limit)
	if err != nil {
		log.Fatalf("Failed to read resolution history: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("no resolutions recorded yet")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PORT\tSOURCE\tWHEN")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Port, e.Source, e.ResolvedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
}
