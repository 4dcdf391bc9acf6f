// Package interaction holds the interactive prompt primitives, keeping the
// resolver free of any TUI dependency.
package interaction

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCanceled is returned when the user dismisses a prompt without
// answering. Callers treat it as a valid terminal outcome, not a failure.
var ErrCanceled = errors.New("prompt canceled")

// SelectOption is a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter is the interface for interactive user input and selection.
type Prompter interface {
	Input(title string) (string, error)
	Select(title string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
