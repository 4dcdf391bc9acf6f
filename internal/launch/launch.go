// Package launch starts a new Defold editor instance. Platform-specific
// process spawning lives in the per-OS files; everything else in the tool is
// platform-neutral.
package launch

import (
	"fmt"
)

// Launcher starts a new editor instance for a project.
type Launcher interface {
	Launch(projectPath string) error
}

// EditorLauncher launches the Defold editor binary.
type EditorLauncher struct {
	// EditorPath is the editor binary (or, on macOS, application) to launch.
	// Empty selects the platform default.
	EditorPath string
}

// Launch starts the editor detached, opening projectPath if non-empty. It
// returns once the process has been spawned; it does not wait for the editor
// to come up.
func (l *EditorLauncher) Launch(projectPath string) error {
	cmd := launchCommand(l.EditorPath, projectPath)
	setDetached(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch editor: %w", err)
	}

	// Detach fully: the editor outlives this process.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("release editor process: %w", err)
	}

	return nil
}

func appendProject(args []string, projectPath string) []string {
	if projectPath != "" {
		args = append(args, projectPath)
	}
	return args
}
