// Package editor implements the Defold editor command protocol: probing a
// candidate port for a live editor instance and dispatching commands to it
// over the editor's local HTTP endpoint.
package editor

// Command identifies an action the running editor can perform. The set is
// fixed by the editor; the dispatch layer passes the identifier through
// opaquely.
type Command string

// Commands accepted by the editor's /command/ endpoint.
const (
	CmdAssetPortal        Command = "asset-portal"
	CmdBuild              Command = "build"
	CmdBuildHTML5         Command = "build-html5"
	CmdDebuggerBreak      Command = "debugger-break"
	CmdDebuggerContinue   Command = "debugger-continue"
	CmdDebuggerDetach     Command = "debugger-detach"
	CmdDebuggerStart      Command = "debugger-start"
	CmdDebuggerStepInto   Command = "debugger-step-into"
	CmdDebuggerStepOut    Command = "debugger-step-out"
	CmdDebuggerStepOver   Command = "debugger-step-over"
	CmdDebuggerStop       Command = "debugger-stop"
	CmdDocumentation      Command = "documentation"
	CmdEngineProfiler     Command = "engine-profiler"
	CmdFetchLibraries     Command = "fetch-libraries"
	CmdHotReload          Command = "hot-reload"
	CmdRebuild            Command = "rebuild"
	CmdRebundle           Command = "rebundle"
	CmdReloadExtensions   Command = "reload-extensions"
	CmdReportIssue        Command = "report-issue"
	CmdShowBuildErrors    Command = "show-build-errors"
	CmdToggleAssets       Command = "toggle-pane-assets"
	CmdToggleChangedFiles Command = "toggle-pane-changed-files"
	CmdToggleConsole      Command = "toggle-pane-console"
	CmdTogglePaneTools    Command = "toggle-pane-tools"
	CmdTogglePaneProps    Command = "toggle-pane-properties"
	CmdToggleCurveEditor  Command = "toggle-pane-curve-editor"
)

var commands = []Command{
	CmdAssetPortal,
	CmdBuild,
	CmdBuildHTML5,
	CmdDebuggerBreak,
	CmdDebuggerContinue,
	CmdDebuggerDetach,
	CmdDebuggerStart,
	CmdDebuggerStepInto,
	CmdDebuggerStepOut,
	CmdDebuggerStepOver,
	CmdDebuggerStop,
	CmdDocumentation,
	CmdEngineProfiler,
	CmdFetchLibraries,
	CmdHotReload,
	CmdRebuild,
	CmdRebundle,
	CmdReloadExtensions,
	CmdReportIssue,
	CmdShowBuildErrors,
	CmdToggleAssets,
	CmdToggleChangedFiles,
	CmdToggleConsole,
	CmdTogglePaneTools,
	CmdTogglePaneProps,
	CmdToggleCurveEditor,
}

// Commands returns the full command vocabulary in a stable order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}

// Valid reports whether c is a known editor command.
func (c Command) Valid() bool {
	for _, known := range commands {
		if c == known {
			return true
		}
	}
	return false
}

func (c Command) String() string {
	return string(c)
}
