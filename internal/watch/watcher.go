// Package watch observes project file saves and triggers hot reloads.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config wires a Watcher.
type Config struct {
	// Root is the directory tree to watch.
	Root string
	// Extensions trigger a reload immediately on save.
	Extensions []string
	// TranspiledExtensions trigger a reload after ReloadDelay, giving a
	// separate build step time to flush its output to disk.
	TranspiledExtensions []string
	// ReloadDelay is the grace delay for transpiled files.
	ReloadDelay time.Duration
	// Trigger runs the reload for a saved file. Failures are the trigger's
	// business; the watcher never blocks on them.
	Trigger func(ctx context.Context, path string)
}

// Watcher drives reload triggers from filesystem save events.
type Watcher struct {
	cfg Config
	fsw *fsnotify.Watcher
}

// New creates a Watcher over cfg.Root and all its subdirectories.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{cfg: cfg, fsw: fsw}

	if err := w.addTree(cfg.Root); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run processes events until ctx is canceled or the watcher closes. Saves of
// qualifying files fire Trigger; transpiled files wait out the grace delay
// first. Delayed triggers run concurrently, so rapid saves may interleave.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}

	// New directories join the watch; files may qualify for a reload.
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if event.Op.Has(fsnotify.Create) {
			if err := w.addTree(event.Name); err != nil {
				log.Printf("watch %s: %v", event.Name, err)
			}
		}
		return
	}

	delay, ok := w.cfg.delayFor(event.Name)
	if !ok {
		return
	}

	go func() {
		if delay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
		w.cfg.Trigger(ctx, event.Name)
	}()
}

// addTree registers dir and every subdirectory, skipping build output and
// dot directories.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "build" || name == "node_modules"
}

// delayFor reports whether a save of path should trigger a reload, and
// after how long.
func (c Config) delayFor(path string) (time.Duration, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}

	for _, e := range c.TranspiledExtensions {
		if ext == strings.ToLower(e) {
			return c.ReloadDelay, true
		}
	}
	for _, e := range c.Extensions {
		if ext == strings.ToLower(e) {
			return 0, true
		}
	}

	return 0, false
}
