// Package env reads buildenv settings from a .env file in the working directory and from the
// process environment, the latter taking precedence.
package env

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Key = string

const (
	LogLevel    Key = "BUILDENV_LOG_LEVEL"
	LogFile     Key = "BUILDENV_LOG_FILE"
	BundlePath  Key = "BUILDENV_BUNDLE_PATH"
	ReceiptPath Key = "BUILDENV_RECEIPT_PATH"
	SentryDSN   Key = "BUILDENV_SENTRY_DSN"

	dotEnvFile = ".env"
)

var keys = []Key{LogLevel, LogFile, BundlePath, ReceiptPath, SentryDSN}

var envVars = map[string]any{}

func init() {
	Reload()
}

// Reload re-reads the .env file and the process environment. A .env file that cannot be parsed is
// ignored as a whole.
func Reload() {
	vars := map[string]any{}
	buf, err := os.ReadFile(dotEnvFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		slog.Error(".env file found, but failed to read", slog.Any("error", err))
	default:
		parsed, err := godotenv.Parse(bytes.NewReader(buf))
		if err != nil {
			slog.Error(".env file found, but failed to parse", slog.Any("error", err))
			break
		}
		for k, v := range parsed {
			vars[k] = v
		}
	}

	// Process environment overrides anything from the .env file
	for _, key := range keys {
		if value, exists := os.LookupEnv(key); exists {
			vars[key] = value
		}
	}
	envVars = vars
}

func Get[T any](key Key) (T, bool) {
	if value, exists := envVars[key]; exists {
		if v, ok := value.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
