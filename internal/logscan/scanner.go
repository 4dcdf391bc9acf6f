// Package logscan extracts editor command-server ports from Defold editor
// log files.
package logscan

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Markers that together identify a command-server announcement. The editor
// logs one such line per start, from the UI thread, tagged with the HTTP
// server subsystem.
const (
	markerThread    = "JavaFX Application Thread"
	markerSubsystem = "util.http-server"
	markerRunning   = `:msg "server running"`
)

// localURLPattern matches the :local-url field of an announcement line, e.g.
// :local-url "http://0.0.0.0:62677".
var localURLPattern = regexp.MustCompile(`:local-url "https?://[^:"]+:(\d+)"`)

// Scan reads the editor log at path and returns the ports announced in it,
// most recently announced first. Lines that carry all three announcement
// markers but no parsable :local-url field are skipped. The file is streamed
// line by line, so arbitrarily large logs are fine.
func Scan(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open editor log: %w", err)
	}
	defer f.Close()

	var ports []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if port, ok := parseLine(scanner.Text()); ok {
			ports = append(ports, port)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read editor log: %w", err)
	}

	// Log files are append-only, so reversing yields newest-first.
	for i, j := 0, len(ports)-1; i < j; i, j = i+1, j-1 {
		ports[i], ports[j] = ports[j], ports[i]
	}

	return ports, nil
}

// parseLine extracts the announced port from a single log line, if the line
// is a command-server announcement.
func parseLine(line string) (string, bool) {
	if !strings.Contains(line, markerThread) ||
		!strings.Contains(line, markerSubsystem) ||
		!strings.Contains(line, markerRunning) {
		return "", false
	}

	m := localURLPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[1], true
}
