package launch

import "os/exec"

const defaultEditorApp = "Defold"

func launchCommand(editorPath, projectPath string) *exec.Cmd {
	if editorPath == "" {
		editorPath = defaultEditorApp
	}
	args := appendProject([]string{"-a", editorPath}, projectPath)
	return exec.Command("open", args...)
}

// setDetached is a no-op on macOS; `open` hands the app to launchd.
func setDetached(cmd *exec.Cmd) {}
