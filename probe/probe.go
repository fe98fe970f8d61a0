// Package probe abstracts the host platform facts used to classify a build. Each target platform
// contributes its own implementation of the low-level checks through build-tagged files; tests use
// [github.com/getlantern/buildenv/probe/probetest] instead.
package probe

// Platform answers the raw questions the classifier needs. Implementations should be cheap and
// side-effect free; callers memoize the results.
type Platform interface {
	// IsSimulator reports whether the process runs inside an emulated device.
	IsSimulator() bool
	// IsDebugBuild reports whether the binary was built with the debug configuration.
	IsDebugBuild() bool
	// HasEmbeddedProvision reports whether an ad-hoc provisioning profile ships inside the bundle.
	HasEmbeddedProvision() (bool, error)
	// ReceiptName returns the file name of the distribution receipt.
	ReceiptName() (string, error)
	IsDebuggerAttached() (bool, error)
	ExecutablePath() (string, error)
	PowerState() (PowerState, error)
}

// PowerSource is implemented by host applications that can read the device battery state, e.g. a
// gomobile iOS host wrapping UIDevice.batteryState.
type PowerSource interface {
	PowerState() (PowerState, error)
}

// PowerState mirrors the device battery states reported by mobile platforms.
type PowerState int

const (
	PowerUnknown PowerState = iota
	PowerUnplugged
	PowerCharging
	PowerFull
)

func (s PowerState) String() string {
	switch s {
	case PowerUnplugged:
		return "unplugged"
	case PowerCharging:
		return "charging"
	case PowerFull:
		return "full"
	default:
		return "unknown"
	}
}

func (s PowerState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PluggedIn reports whether the device is connected to external power.
func (s PowerState) PluggedIn() bool {
	return s == PowerCharging || s == PowerFull
}

const (
	// ProvisionFileName is the ad-hoc/enterprise provisioning profile embedded at the bundle root.
	ProvisionFileName = "embedded.mobileprovision"
	// SandboxReceiptName is the receipt file name used by TestFlight and App Review installs.
	SandboxReceiptName = "sandboxReceipt"
	// ProductionReceiptName is the receipt file name used by App Store installs.
	ProductionReceiptName = "receipt"

	receiptDir = "StoreKit"
)
