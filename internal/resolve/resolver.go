// Package resolve orchestrates finding a working editor port: cached port
// first, then the editor log, then an interactive fallback.
package resolve

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/thinknathan/defold-buddy/internal/interaction"
)

// Source records how a port was found.
type Source string

const (
	SourceCache  Source = "cache"
	SourceLog    Source = "log"
	SourceManual Source = "manual"
)

// Prompt answer values.
const (
	choiceLaunch = "launch"
	choiceManual = "manual"
	choiceCancel = "cancel"
)

// Cache is the port cache consumed by the resolver. Get must only return a
// port that passed a liveness probe during the call.
type Cache interface {
	Get(ctx context.Context) (string, bool)
	Set(port string)
	Clear()
}

// Launcher starts a new editor instance.
type Launcher interface {
	Launch(projectPath string) error
}

// Config wires a Resolver. Every collaborator is injected so tests can
// substitute fakes and count calls.
type Config struct {
	// Cache is the probing port cache. Required.
	Cache Cache
	// Probe checks whether an editor answers on a port. Required.
	Probe func(ctx context.Context, port string) bool
	// LatestLog locates the most recent editor log file.
	LatestLog func() (string, error)
	// ScanLog extracts candidate ports from a log file, newest first.
	ScanLog func(path string) ([]string, error)
	// Prompter asks the user for a fallback choice. Nil disables the
	// interactive path regardless of the per-call flag.
	Prompter interaction.Prompter
	// Launcher starts a new editor instance for the "open editor" choice.
	Launcher Launcher
	// ProjectPath is handed to the Launcher.
	ProjectPath string
	// Notify surfaces an unexpected failure to the user. Defaults to log.Printf.
	Notify func(format string, args ...any)
	// Record is called with every successful resolution. Optional.
	Record func(port string, source Source)
}

// Resolver produces a single working editor port, or a definitive
// not-found.
type Resolver struct {
	cfg Config
}

// New creates a Resolver from cfg.
func New(cfg Config) *Resolver {
	if cfg.Notify == nil {
		cfg.Notify = log.Printf
	}
	return &Resolver{cfg: cfg}
}

// Resolve finds a live editor port. With interactive set, a failed search
// falls back to prompting the user; otherwise the cached value is cleared
// and not-found is returned silently.
//
// The loop carries allowLogScan through at most one extra pass per prompt
// answer: after a manual port entry the stored value is re-verified through
// the cache path without rescanning the log.
func (r *Resolver) Resolve(ctx context.Context, interactive bool) (string, bool) {
	allowLogScan := true
	source := SourceCache

	for {
		if port, ok := r.cfg.Cache.Get(ctx); ok {
			r.cfg.Cache.Set(port) // refresh the last known-good value
			r.record(port, source)
			return port, true
		}
		source = SourceCache

		if allowLogScan {
			if port, ok := r.scanForPort(ctx); ok {
				r.cfg.Cache.Set(port)
				r.record(port, SourceLog)
				return port, true
			}
		}

		if !interactive || r.cfg.Prompter == nil {
			r.cfg.Cache.Clear()
			return "", false
		}

		again, nextSource := r.promptFallback()
		if !again {
			return "", false
		}

		allowLogScan = false
		source = nextSource
	}
}

// scanForPort locates the newest editor log and probes its announced ports,
// newest first. A missing log file means no candidates, not a failure.
func (r *Resolver) scanForPort(ctx context.Context) (string, bool) {
	if r.cfg.LatestLog == nil || r.cfg.ScanLog == nil {
		return "", false
	}

	path, err := r.cfg.LatestLog()
	if err != nil {
		log.Printf("locate editor log: %v", err)
		return "", false
	}

	ports, err := r.cfg.ScanLog(path)
	if err != nil {
		log.Printf("scan editor log: %v", err)
		return "", false
	}

	for _, port := range ports {
		if r.cfg.Probe(ctx, port) {
			return port, true
		}
	}

	return "", false
}

// promptFallback asks the user what to do about a missing editor. It
// returns true when resolution should run another pass (manual port entry);
// every other answer is terminal.
func (r *Resolver) promptFallback() (bool, Source) {
	choice, err := r.cfg.Prompter.Select(
		"No running Defold editor found",
		[]interaction.SelectOption{
			{Label: "Open a new editor instance", Value: choiceLaunch},
			{Label: "Enter the port manually", Value: choiceManual},
			{Label: "Cancel", Value: choiceCancel},
		},
	)
	if err != nil {
		if !errors.Is(err, interaction.ErrCanceled) {
			r.cfg.Notify("editor lookup failed unexpectedly: %v", err)
		}
		return false, SourceCache
	}

	switch choice {
	case choiceLaunch:
		if r.cfg.Launcher == nil {
			return false, SourceCache
		}
		if err := r.cfg.Launcher.Launch(r.cfg.ProjectPath); err != nil {
			r.cfg.Notify("could not open the editor: %v", err)
		}
		// The new instance needs time to come up; the user retries once
		// it is ready.
		return false, SourceCache

	case choiceManual:
		port, err := r.cfg.Prompter.Input("Editor port")
		if err != nil {
			if !errors.Is(err, interaction.ErrCanceled) {
				r.cfg.Notify("editor lookup failed unexpectedly: %v", err)
			}
			return false, SourceCache
		}
		port = strings.TrimSpace(port)
		if port == "" {
			return false, SourceCache
		}
		r.cfg.Cache.Set(port)
		return true, SourceManual

	default:
		return false, SourceCache
	}
}

func (r *Resolver) record(port string, source Source) {
	if r.cfg.Record != nil {
		r.cfg.Record(port, source)
	}
}
