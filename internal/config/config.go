// Package config contains configuration for defold-buddy.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	kdl "github.com/sblinch/kdl-go"
)

// Configuration file names.
const (
	GlobalConfigFile  = "config.kdl"
	ProjectConfigFile = ".defold-buddy.kdl"
)

// Config holds the tool configuration. Zero values fall back to defaults at
// load time.
type Config struct {
	// EditorPath is the Defold editor binary or application to launch.
	EditorPath string `kdl:"editor-path"`
	// Project is the game.project file handed to a newly launched editor.
	Project string `kdl:"project"`
	// LogDir overrides the platform editor log directory.
	LogDir string `kdl:"log-dir"`
	// NoPrompt disables the interactive fallback when no editor is found.
	NoPrompt bool `kdl:"no-prompt"`

	// WatchExtensions are saved-file extensions that trigger a hot reload.
	WatchExtensions []string `kdl:"watch-extensions"`
	// TranspiledExtensions are extensions whose build output lags the save;
	// reloads for them wait ReloadDelayMS first.
	TranspiledExtensions []string `kdl:"transpiled-extensions"`
	// ReloadDelayMS is the grace delay for transpiled files, in milliseconds.
	ReloadDelayMS int `kdl:"reload-delay-ms"`

	// ProbeTimeoutMS bounds the liveness probe, in milliseconds.
	ProbeTimeoutMS int `kdl:"probe-timeout-ms"`
	// DispatchTimeoutMS bounds a command dispatch, in milliseconds.
	DispatchTimeoutMS int `kdl:"dispatch-timeout-ms"`
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		WatchExtensions: []string{
			".script", ".gui_script", ".render_script", ".editor_script", ".lua",
		},
		TranspiledExtensions: []string{".ts"},
		ReloadDelayMS:        1500,
		ProbeTimeoutMS:       1500,
		DispatchTimeoutMS:    2000,
	}
}

// InteractiveEnabled reports whether the interactive fallback is on.
func (c *Config) InteractiveEnabled() bool {
	return !c.NoPrompt
}

// ProbeTimeout returns the probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMS) * time.Millisecond
}

// DispatchTimeout returns the dispatch timeout as a duration.
func (c *Config) DispatchTimeout() time.Duration {
	return time.Duration(c.DispatchTimeoutMS) * time.Millisecond
}

// ReloadDelay returns the transpile grace delay as a duration.
func (c *Config) ReloadDelay() time.Duration {
	return time.Duration(c.ReloadDelayMS) * time.Millisecond
}

// Load reads configuration for dir: the global config first, then
// .defold-buddy.kdl found in dir or a parent, each overlaying defaults.
// Missing files are fine; defaults apply.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if globalPath := globalConfigPath(); globalPath != "" {
		if err := mergeFile(cfg, globalPath); err != nil {
			return nil, err
		}
	}

	if projectPath := FindProjectConfig(dir); projectPath != "" {
		if err := mergeFile(cfg, projectPath); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// FindProjectConfig searches for .defold-buddy.kdl starting from dir and
// walking up.
func FindProjectConfig(dir string) string {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(absDir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			// Reached root
			break
		}
		absDir = parent
	}

	return ""
}

func globalConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}

	path := filepath.Join(configDir, "defold-buddy", GlobalConfigFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := kdl.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}
