// Package config loads the buildenv configuration from a JSON file, with overrides from the
// environment (see [env]).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/getlantern/buildenv/common"
	"github.com/getlantern/buildenv/common/atomicfile"
	"github.com/getlantern/buildenv/common/env"
	"github.com/getlantern/buildenv/internal"
	"github.com/getlantern/buildenv/probe"
)

// Keys for the configuration file.
const (
	BundlePathKey     = "bundle_path"
	ReceiptPathKey    = "receipt_path"
	ExecutablePathKey = "executable_path"
	LogLevelKey       = "log_level"
	LogFileKey        = "log_file"
	SentryDSNKey      = "sentry_dsn"
	ServiceNameKey    = "service_name"
)

// ErrInvalid is wrapped by errors returned for configurations that fail validation.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings used to build host probes and the ambient logging and reporting.
type Config struct {
	BundlePath     string `koanf:"bundle_path"`
	ReceiptPath    string `koanf:"receipt_path"`
	ExecutablePath string `koanf:"executable_path"`
	LogLevel       string `koanf:"log_level"`
	LogFile        string `koanf:"log_file"`
	SentryDSN      string `koanf:"sentry_dsn"`
	ServiceName    string `koanf:"service_name"`
}

var envOverrides = map[string]env.Key{
	BundlePathKey:  env.BundlePath,
	ReceiptPathKey: env.ReceiptPath,
	LogLevelKey:    env.LogLevel,
	LogFileKey:     env.LogFile,
	SentryDSNKey:   env.SentryDSN,
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		ServiceName: common.Name,
	}
}

// Load reads the configuration at path. A missing file, or an empty path, yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	def := Default()
	for key, value := range map[string]string{LogLevelKey: def.LogLevel, ServiceNameKey: def.ServiceName} {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if path != "" {
		raw, err := atomicfile.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("Config file not found, using defaults", "path", path)
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := k.Load(rawbytes.Provider(raw), json.Parser()); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	for key, envKey := range envOverrides {
		if value, ok := env.Get[string](envKey); ok && value != "" {
			if err := k.Set(key, value); err != nil {
				return nil, fmt.Errorf("applying %s: %w", envKey, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that cannot be corrected silently.
func (c *Config) Validate() error {
	var errs error
	if _, err := internal.ParseLogLevel(c.LogLevel); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: %s: %w", ErrInvalid, LogLevelKey, err))
	}
	if c.ServiceName == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: %s must not be empty", ErrInvalid, ServiceNameKey))
	}
	return errs
}

// ProbeOptions returns the host probe options described by the configuration.
func (c *Config) ProbeOptions() probe.Options {
	return probe.Options{
		BundlePath:     c.BundlePath,
		ReceiptPath:    c.ReceiptPath,
		ExecutablePath: c.ExecutablePath,
	}
}
