package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Options configures a Host. Zero values select platform defaults.
type Options struct {
	// BundlePath is the application bundle root. Defaults to the directory holding the executable.
	BundlePath string
	// ReceiptPath is the distribution receipt location as reported by the host app. On iOS the
	// receipt lives in the app's data container, not the bundle, so iOS hosts must supply
	// Bundle.main.appStoreReceiptURL here; without it a TestFlight install classifies as App Store.
	// When empty the bundle's StoreKit directory is inspected, which only matches macOS-style
	// bundle layouts and test fixtures.
	ReceiptPath string
	// ExecutablePath overrides os.Executable.
	ExecutablePath string
	// PowerSource supplies the battery state on platforms where Go cannot read it directly.
	PowerSource PowerSource
}

// Host is the Platform implementation backed by the running process and its bundle.
type Host struct {
	opts Options
}

var _ Platform = (*Host)(nil)

// NewHost returns a Platform for the current process.
func NewHost(opts Options) *Host {
	return &Host{opts: opts}
}

func (h *Host) IsSimulator() bool {
	return isSimulator()
}

func (h *Host) IsDebugBuild() bool {
	return debugBuild
}

func (h *Host) ExecutablePath() (string, error) {
	if h.opts.ExecutablePath != "" {
		return h.opts.ExecutablePath, nil
	}
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return path, nil
}

// BundlePath returns the configured bundle root, or the executable's directory.
func (h *Host) BundlePath() (string, error) {
	if h.opts.BundlePath != "" {
		return h.opts.BundlePath, nil
	}
	exe, err := h.ExecutablePath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// HasEmbeddedProvision reports whether the provisioning profile at the bundle root can be read.
// A missing profile is not an error.
func (h *Host) HasEmbeddedProvision() (bool, error) {
	bundle, err := h.BundlePath()
	if err != nil {
		return false, err
	}
	if _, err := os.ReadFile(filepath.Join(bundle, ProvisionFileName)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading provisioning profile: %w", err)
	}
	return true, nil
}

func (h *Host) ReceiptName() (string, error) {
	if h.opts.ReceiptPath != "" {
		return filepath.Base(h.opts.ReceiptPath), nil
	}
	bundle, err := h.BundlePath()
	if err != nil {
		return "", err
	}
	_, err = os.Stat(filepath.Join(bundle, receiptDir, SandboxReceiptName))
	switch {
	case err == nil:
		return SandboxReceiptName, nil
	case errors.Is(err, fs.ErrNotExist):
		return ProductionReceiptName, nil
	default:
		return "", fmt.Errorf("inspecting receipt: %w", err)
	}
}

func (h *Host) IsDebuggerAttached() (bool, error) {
	return debuggerAttached()
}

func (h *Host) PowerState() (PowerState, error) {
	if h.opts.PowerSource != nil {
		return h.opts.PowerSource.PowerState()
	}
	return systemPowerState()
}
