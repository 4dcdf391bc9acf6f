package logscan

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// logFilePattern matches the editor's daily log files, e.g. editor2.2024-05-14.log.
const logFilePattern = "editor2.*.log"

// DefaultLogDir returns the platform directory where the Defold editor
// writes its log files.
func DefaultLogDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("log directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "Defold"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("log directory: APPDATA not set")
		}
		return filepath.Join(appData, "Defold"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("log directory: %w", err)
		}
		return filepath.Join(home, ".Defold"), nil
	}
}

// LatestLog returns the most recently modified editor log file in dir.
// An empty dir selects the platform default.
func LatestLog(dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = DefaultLogDir()
		if err != nil {
			return "", err
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, logFilePattern))
	if err != nil {
		return "", fmt.Errorf("list editor logs: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no editor logs in %s", dir)
	}

	var (
		newest     string
		newestTime time.Time
	)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = path
			newestTime = info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no readable editor logs in %s", dir)
	}

	return newest, nil
}
