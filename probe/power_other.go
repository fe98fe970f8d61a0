//go:build !linux

package probe

// systemPowerState has no portable implementation outside linux; hosts provide a PowerSource.
func systemPowerState() (PowerState, error) {
	return PowerUnknown, nil
}
