// Package buildenv detects which build/distribution environment an application is running in
// (simulator, debug, ad-hoc, TestFlight, App Store or other) and provides helpers to run code
// conditionally on it. Platform facts are gathered through a [probe.Platform] and memoized for the
// lifetime of a [Classifier].
package buildenv

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/getlantern/buildenv/internal"
	"github.com/getlantern/buildenv/probe"
)

const appExtensionMarker = ".appex/"

// Classifier derives the Environment from lazily computed platform signals. Each signal is probed
// at most once; a Classifier is safe for concurrent use.
type Classifier struct {
	log *slog.Logger

	simulator         func() bool
	debugBuild        func() bool
	embeddedProvision func() bool
	sandboxReceipt    func() bool
	debuggerAttached  func() bool
	executablePath    func() string
	powerState        func() probe.PowerState
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used to record probe failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Classifier) {
		if log != nil {
			c.log = log
		}
	}
}

// New returns a Classifier over the given platform. A nil platform selects the host platform with
// default options.
func New(platform probe.Platform, opts ...Option) *Classifier {
	if platform == nil {
		platform = probe.NewHost(probe.Options{})
	}
	c := &Classifier{log: internal.NoOpLogger()}
	for _, opt := range opts {
		opt(c)
	}

	c.simulator = sync.OnceValue(platform.IsSimulator)
	c.debugBuild = sync.OnceValue(platform.IsDebugBuild)
	c.embeddedProvision = sync.OnceValue(func() bool {
		return c.degrade("embedded_provision", platform.HasEmbeddedProvision)
	})
	c.sandboxReceipt = sync.OnceValue(func() bool {
		name, err := platform.ReceiptName()
		if err != nil {
			c.log.Debug("Receipt probe failed", "error", err)
			return false
		}
		return name == probe.SandboxReceiptName
	})
	c.debuggerAttached = sync.OnceValue(func() bool {
		return c.degrade("debugger_attached", platform.IsDebuggerAttached)
	})
	c.executablePath = sync.OnceValue(func() string {
		path, err := platform.ExecutablePath()
		if err != nil {
			c.log.Debug("Executable path probe failed", "error", err)
			return ""
		}
		return path
	})
	c.powerState = sync.OnceValue(func() probe.PowerState {
		state, err := platform.PowerState()
		if err != nil {
			c.log.Debug("Power state probe failed", "error", err)
			return probe.PowerUnknown
		}
		return state
	})
	return c
}

// degrade runs a fallible boolean probe, logging and returning false on failure.
func (c *Classifier) degrade(signal string, fn func() (bool, error)) bool {
	ok, err := fn()
	if err != nil {
		c.log.Debug("Probe failed, assuming false", "signal", signal, "error", err)
		return false
	}
	return ok
}

// IsSimulator reports whether the process runs inside an emulated device.
func (c *Classifier) IsSimulator() bool {
	return c.simulator()
}

// IsDebug reports whether this is a simulator run or a debug build.
func (c *Classifier) IsDebug() bool {
	return c.simulator() || c.debugBuild()
}

// IsAdHoc reports whether a provisioning profile is embedded in a device build.
func (c *Classifier) IsAdHoc() bool {
	if c.simulator() {
		return false
	}
	return c.embeddedProvision()
}

// IsTestFlight reports whether a device build carries a sandbox receipt and no provisioning
// profile. It is never true together with IsAdHoc.
func (c *Classifier) IsTestFlight() bool {
	if c.simulator() {
		return false
	}
	return c.sandboxReceipt() && !c.embeddedProvision()
}

// IsAppStore reports whether a device build has neither a sandbox receipt nor a provisioning
// profile.
func (c *Classifier) IsAppStore() bool {
	if c.simulator() {
		return false
	}
	return !c.sandboxReceipt() && !c.embeddedProvision()
}

// IsRelease reports whether a device build was compiled without the debug configuration. This is
// independent of the distribution channel: an ad-hoc or TestFlight build can also be a release.
func (c *Classifier) IsRelease() bool {
	if c.simulator() {
		return false
	}
	return !c.debugBuild()
}

// IsDebugOrAdHoc reports whether IsDebug or IsAdHoc holds.
func (c *Classifier) IsDebugOrAdHoc() bool {
	return c.IsDebug() || c.IsAdHoc()
}

// Environment returns the first matching category in the order Simulator, Debug, AdHoc,
// TestFlight, AppStore, falling back to Other.
func (c *Classifier) Environment() Environment {
	checks := []struct {
		env   Environment
		match func() bool
	}{
		{Simulator, c.IsSimulator},
		{Debug, c.IsDebug},
		{AdHoc, c.IsAdHoc},
		{TestFlight, c.IsTestFlight},
		{AppStore, c.IsAppStore},
	}
	for _, check := range checks {
		if check.match() {
			return check.env
		}
	}
	return Other
}

// EnvironmentName returns the name of Environment.
func (c *Classifier) EnvironmentName() string {
	return c.Environment().String()
}

// IsDebuggerAttached reports whether a debugger is tracing the process. Failure to query the
// process state reports false.
func (c *Classifier) IsDebuggerAttached() bool {
	return c.debuggerAttached()
}

// IsRunningInAppExtension reports whether the executable lives inside an app extension bundle.
func (c *Classifier) IsRunningInAppExtension() bool {
	return strings.Contains(c.executablePath(), appExtensionMarker)
}

// IsCableConnected reports whether the device is charging or fully charged.
func (c *Classifier) IsCableConnected() bool {
	return c.powerState().PluggedIn()
}

// IsCableBuild reports whether a debug build is running on a device attached to power, which in
// practice means it was just installed from a developer machine.
func (c *Classifier) IsCableBuild() bool {
	return c.IsDebug() && c.IsCableConnected()
}
