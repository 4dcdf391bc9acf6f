// Package cache persists the last known-good editor port across
// invocations and revalidates it on every read.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store is raw port persistence. Implementations survive process restarts;
// the in-memory variant exists for tests and one-shot runs.
type Store interface {
	// Get returns the stored port, if any.
	Get() (string, bool)
	// Set stores port, overwriting any previous value.
	Set(port string) error
	// Clear removes the stored port.
	Clear() error
}

// persistedState is the on-disk shape of the state file.
type persistedState struct {
	Version   int    `json:"version"`
	Port      string `json:"port,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// FileStore keeps the port in a small JSON state file.
type FileStore struct {
	path string

	mu    sync.Mutex
	state persistedState
}

// DefaultStatePath returns the default state file location, honoring
// XDG_STATE_HOME.
func DefaultStatePath() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "defold-buddy", "state.json")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "defold-buddy", "state.json")
	}

	return filepath.Join(os.TempDir(), "defold-buddy-state.json")
}

// NewFileStore creates a file store at path, loading any existing state.
// An empty path selects the default location. A missing or unreadable state
// file is treated as empty state.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultStatePath()
	}

	fs := &FileStore{
		path:  path,
		state: persistedState{Version: 1},
	}

	if data, err := os.ReadFile(path); err == nil {
		var state persistedState
		if err := json.Unmarshal(data, &state); err == nil {
			fs.state = state
		}
	}

	return fs
}

// Get returns the stored port, if any.
func (fs *FileStore) Get() (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.state.Port, fs.state.Port != ""
}

// Set stores port and writes the state file.
func (fs *FileStore) Set(port string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.state.Port = port
	return fs.saveLocked()
}

// Clear removes the stored port and writes the state file.
func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.state.Port = ""
	return fs.saveLocked()
}

func (fs *FileStore) saveLocked() error {
	fs.state.UpdatedAt = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(fs.state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	// Write atomically via temp file so a crash never truncates the state.
	tmpPath := fs.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmpPath, fs.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename state file: %w", err)
	}

	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu   sync.Mutex
	port string
}

// Get returns the stored port, if any.
func (ms *MemStore) Get() (string, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.port, ms.port != ""
}

// Set stores port.
func (ms *MemStore) Set(port string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.port = port
	return nil
}

// Clear removes the stored port.
func (ms *MemStore) Clear() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.port = ""
	return nil
}
