package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		Extensions:           []string{".script", ".gui_script", ".lua"},
		TranspiledExtensions: []string{".ts"},
		ReloadDelay:          1500 * time.Millisecond,
	}
}

func TestDelayFor_TranspiledFileGetsGraceDelay(t *testing.T) {
	cfg := testConfig()

	delay, ok := cfg.delayFor("src/foo.ts")
	assert.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, delay)
}

func TestDelayFor_ScriptFileReloadsImmediately(t *testing.T) {
	cfg := testConfig()

	delay, ok := cfg.delayFor("main/foo.script")
	assert.True(t, ok)
	assert.Zero(t, delay)
}

func TestDelayFor_UnlistedExtensionDoesNotReload(t *testing.T) {
	cfg := testConfig()

	tests := []string{
		"main/foo.png",
		"main/foo",
		"README",
		"notes.txt",
	}
	for _, path := range tests {
		_, ok := cfg.delayFor(path)
		assert.False(t, ok, "path %s should not trigger a reload", path)
	}
}

func TestDelayFor_ExtensionMatchIsCaseInsensitive(t *testing.T) {
	cfg := testConfig()

	_, ok := cfg.delayFor("main/FOO.Script")
	assert.True(t, ok)
}

func TestSkipDir(t *testing.T) {
	assert.True(t, skipDir(".git"))
	assert.True(t, skipDir("build"))
	assert.True(t, skipDir("node_modules"))
	assert.False(t, skipDir("main"))
	assert.False(t, skipDir("scripts"))
}
