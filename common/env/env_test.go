package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDotEnv places a .env file in a fresh working directory and reloads from it.
func writeDotEnv(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dotEnvFile), []byte(contents), 0o644))
	t.Cleanup(Reload) // runs after the directory and variables are restored
	t.Chdir(dir)
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	Reload()
}

func TestReloadDotEnvSyntax(t *testing.T) {
	writeDotEnv(t, `
# local overrides
BUILDENV_LOG_LEVEL=debug # verbose while testing
export BUILDENV_BUNDLE_PATH=/tmp/App.app
BUILDENV_RECEIPT_PATH="/r/sandboxReceipt"
BUILDENV_SENTRY_DSN='https://key@sentry.example/1?a=b#frag'
`)

	tests := []struct {
		key  Key
		want string
	}{
		{LogLevel, "debug"},
		{BundlePath, "/tmp/App.app"},
		{ReceiptPath, "/r/sandboxReceipt"},
		{SentryDSN, "https://key@sentry.example/1?a=b#frag"},
	}
	for _, tt := range tests {
		got, ok := Get[string](tt.key)
		assert.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
	_, ok := Get[string](LogFile)
	assert.False(t, ok)
}

func TestReloadMalformedDotEnv(t *testing.T) {
	writeDotEnv(t, "BUILDENV_LOG_LEVEL=debug\nBUILDENV_RECEIPT_PATH='/r/sandboxReceipt\"\n")

	_, ok := Get[string](ReceiptPath)
	assert.False(t, ok, "unterminated quote must not leak into the value")
	_, ok = Get[string](LogLevel)
	assert.False(t, ok, "a malformed file is ignored as a whole")
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, dotEnvFile), []byte("BUILDENV_LOG_LEVEL=trace\nBUILDENV_LOG_FILE=/tmp/a.log\n"), 0o644))
	t.Cleanup(Reload) // runs after the directory and variables are restored
	t.Chdir(dir)

	t.Setenv(LogLevel, "warn")
	Reload()

	level, ok := Get[string](LogLevel)
	assert.True(t, ok)
	assert.Equal(t, "warn", level, "process environment wins over .env")

	file, ok := Get[string](LogFile)
	assert.True(t, ok)
	assert.Equal(t, "/tmp/a.log", file)

	_, ok = Get[int](LogFile)
	assert.False(t, ok)
}
