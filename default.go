package buildenv

import (
	"log/slog"
	"sync"
)

var defaultClassifier = sync.OnceValue(func() *Classifier {
	return New(nil, WithLogger(slog.Default()))
})

// Default returns the process-wide Classifier for the host platform. It logs through the default
// slog logger.
func Default() *Classifier { return defaultClassifier() }

// Current returns the Environment of the running process.
func Current() Environment { return Default().Environment() }

// Name returns the name of the running process's Environment.
func Name() string { return Default().EnvironmentName() }

func IsSimulator() bool             { return Default().IsSimulator() }
func IsDebug() bool                 { return Default().IsDebug() }
func IsAdHoc() bool                 { return Default().IsAdHoc() }
func IsTestFlight() bool            { return Default().IsTestFlight() }
func IsAppStore() bool              { return Default().IsAppStore() }
func IsRelease() bool               { return Default().IsRelease() }
func IsDebuggerAttached() bool      { return Default().IsDebuggerAttached() }
func IsRunningInAppExtension() bool { return Default().IsRunningInAppExtension() }
func IsCableConnected() bool        { return Default().IsCableConnected() }
