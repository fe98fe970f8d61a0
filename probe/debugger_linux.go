//go:build linux

package probe

import (
	"fmt"
	"os"
)

const procStatusPath = "/proc/self/status"

func debuggerAttached() (bool, error) {
	data, err := os.ReadFile(procStatusPath)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", procStatusPath, err)
	}
	pid, err := tracerPID(data)
	if err != nil {
		return false, err
	}
	return pid != 0, nil
}
