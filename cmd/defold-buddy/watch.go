package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thinknathan/defold-buddy/internal/editor"
	"github.com/thinknathan/defold-buddy/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Hot reload the editor on every save",
	Long: `Watch observes the project tree and dispatches hot-reload to the
running editor whenever a reloadable file is saved. Files produced by a
separate build step (TypeScript by default) get a short grace delay so the
freshly built output is on disk before the editor reloads.

Watching is silent best-effort: when no editor is reachable the save is
logged and skipped, never interrupted with a prompt.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	a, err := buildApp(cmd, false)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	defer a.close()

	root := a.dir
	if len(args) == 1 {
		root = args[0]
	}

	w, err := watch.New(watch.Config{
		Root:                 root,
		Extensions:           a.cfg.WatchExtensions,
		TranspiledExtensions: a.cfg.TranspiledExtensions,
		ReloadDelay:          a.cfg.ReloadDelay(),
		Trigger: func(ctx context.Context, path string) {
			port, ok := a.resolver.Resolve(ctx, false)
			if !ok {
				log.Printf("skipping reload for %s: no running editor", filepath.Base(path))
				return
			}
			if !a.client.Dispatch(ctx, port, editor.CmdHotReload) {
				log.Printf("hot reload failed for %s", filepath.Base(path))
				return
			}
			log.Printf("hot reload after save of %s", filepath.Base(path))
		},
	})
	if err != nil {
		log.Fatalf("Failed to watch %s: %v", root, err)
	}
	defer w.Close()

	log.Printf("watching %s", root)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Watcher stopped: %v", err)
	}
}
