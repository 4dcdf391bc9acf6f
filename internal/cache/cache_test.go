package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysLive(ctx context.Context, port string) bool { return true }
func neverLive(ctx context.Context, port string) bool  { return false }

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	fs := NewFileStore(path)
	_, ok := fs.Get()
	assert.False(t, ok)

	require.NoError(t, fs.Set("8080"))

	// A fresh store over the same file sees the value.
	reloaded := NewFileStore(path)
	port, ok := reloaded.Get()
	assert.True(t, ok)
	assert.Equal(t, "8080", port)
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	fs := NewFileStore(path)
	require.NoError(t, fs.Set("8080"))
	require.NoError(t, fs.Clear())

	_, ok := NewFileStore(path).Get()
	assert.False(t, ok)
}

func TestFileStore_CorruptStateFileIsEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok := NewFileStore(path).Get()
	assert.False(t, ok)
}

func TestPortCache_GetProbesBeforeReturning(t *testing.T) {
	store := &MemStore{}
	require.NoError(t, store.Set("8080"))

	var probed []string
	c := New(store, func(ctx context.Context, port string) bool {
		probed = append(probed, port)
		return true
	})

	port, ok := c.Get(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "8080", port)
	assert.Equal(t, []string{"8080"}, probed)
}

func TestPortCache_FailedProbeYieldsAbsentWithoutDeleting(t *testing.T) {
	store := &MemStore{}
	require.NoError(t, store.Set("8080"))

	c := New(store, neverLive)

	_, ok := c.Get(context.Background())
	assert.False(t, ok)

	// The stale value is untrusted, not erased.
	stored, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "8080", stored)
}

func TestPortCache_EmptyStoreSkipsProbe(t *testing.T) {
	probes := 0
	c := New(&MemStore{}, func(ctx context.Context, port string) bool {
		probes++
		return true
	})

	_, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.Zero(t, probes)
}

func TestPortCache_SetWritesThrough(t *testing.T) {
	store := &MemStore{}
	c := New(store, alwaysLive)

	c.Set("9010")
	port, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "9010", port)

	c.Clear()
	_, ok = store.Get()
	assert.False(t, ok)
}
