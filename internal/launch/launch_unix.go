//go:build !windows && !darwin

package launch

import (
	"os/exec"
	"syscall"
)

const defaultEditorBinary = "Defold"

func launchCommand(editorPath, projectPath string) *exec.Cmd {
	if editorPath == "" {
		editorPath = defaultEditorBinary
	}
	return exec.Command(editorPath, appendProject(nil, projectPath)...)
}

// setDetached puts the editor in its own process group so it survives this
// process exiting.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}
