package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thinknathan/defold-buddy/internal/cache"
	"github.com/thinknathan/defold-buddy/internal/config"
	"github.com/thinknathan/defold-buddy/internal/editor"
	"github.com/thinknathan/defold-buddy/internal/history"
	"github.com/thinknathan/defold-buddy/internal/interaction"
	"github.com/thinknathan/defold-buddy/internal/launch"
	"github.com/thinknathan/defold-buddy/internal/logscan"
	"github.com/thinknathan/defold-buddy/internal/resolve"
)

// app bundles the wired collaborators behind each subcommand.
type app struct {
	dir      string
	cfg      *config.Config
	client   *editor.Client
	resolver *resolve.Resolver
	hist     *history.DB
}

// buildApp loads configuration for the project directory and wires the
// resolver. allowPrompt gates the interactive fallback; save-triggered
// flows pass false so a background reload can never pop a dialog.
func buildApp(cmd *cobra.Command, allowPrompt bool) (*app, error) {
	dir, _ := cmd.Root().PersistentFlags().GetString("dir")
	noPrompt, _ := cmd.Root().PersistentFlags().GetBool("no-prompt")

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	client := editor.NewClient(
		editor.WithProbeTimeout(cfg.ProbeTimeout()),
		editor.WithDispatchTimeout(cfg.DispatchTimeout()),
	)

	portCache := cache.New(cache.NewFileStore(""), client.Probe)

	// History is best-effort; a broken database never blocks a resolution.
	hist, err := history.Open(context.Background(), "")
	if err != nil {
		log.Printf("resolution history unavailable: %v", err)
		hist = nil
	}

	var prompter interaction.Prompter
	if allowPrompt && !noPrompt && cfg.InteractiveEnabled() &&
		interaction.IsTerminal(os.Stdin) && interaction.IsTerminal(os.Stdout) {
		prompter = interaction.HuhPrompter{}
	}

	resolver := resolve.New(resolve.Config{
		Cache: portCache,
		Probe: client.Probe,
		LatestLog: func() (string, error) {
			return logscan.LatestLog(cfg.LogDir)
		},
		ScanLog:     logscan.Scan,
		Prompter:    prompter,
		Launcher:    &launch.EditorLauncher{EditorPath: cfg.EditorPath},
		ProjectPath: projectFile(cfg, dir),
		Notify: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
		Record: func(port string, source resolve.Source) {
			if hist == nil {
				return
			}
			if err := hist.Record(context.Background(), port, history.Source(source)); err != nil {
				log.Printf("record resolution: %v", err)
			}
		},
	})

	return &app{
		dir:      dir,
		cfg:      cfg,
		client:   client,
		resolver: resolver,
		hist:     hist,
	}, nil
}

func (a *app) close() {
	if a.hist != nil {
		a.hist.Close()
	}
}

// projectFile returns the game.project to hand a newly launched editor:
// the configured one, else the one in the project directory if present.
func projectFile(cfg *config.Config, dir string) string {
	if cfg.Project != "" {
		return cfg.Project
	}

	candidate := filepath.Join(dir, "game.project")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}
