package launch

import (
	"os/exec"
	"syscall"
)

const defaultEditorBinary = "Defold.exe"

func launchCommand(editorPath, projectPath string) *exec.Cmd {
	if editorPath == "" {
		editorPath = defaultEditorBinary
	}
	args := appendProject([]string{"/C", "start", "", editorPath}, projectPath)
	return exec.Command("cmd", args...)
}

// setDetached starts the editor in a new process group, detached from our
// console.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
