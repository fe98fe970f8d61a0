//go:build linux

package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/prometheus/procfs/sysfs"
)

func systemPowerState() (PowerState, error) {
	return powerStateFrom(sysfs.DefaultMountPoint)
}

// powerStateFrom reports the state of the first supply, in name order, whose status maps to a known
// state. Mains adapters publish no status and are skipped. A sysfs without a power_supply class
// reports PowerUnknown.
func powerStateFrom(mountPoint string) (PowerState, error) {
	sys, err := sysfs.NewFS(mountPoint)
	if err != nil {
		return PowerUnknown, fmt.Errorf("opening sysfs: %w", err)
	}
	supplies, err := sys.PowerSupplyClass()
	if errors.Is(err, fs.ErrNotExist) {
		return PowerUnknown, nil
	}
	if err != nil {
		return PowerUnknown, fmt.Errorf("reading power supplies: %w", err)
	}
	for _, name := range slices.Sorted(maps.Keys(supplies)) {
		if state := parsePowerSupplyStatus(supplies[name].Status); state != PowerUnknown {
			return state, nil
		}
	}
	return PowerUnknown, nil
}
