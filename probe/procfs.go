package probe

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// tracerPID extracts the TracerPid field from the contents of /proc/<pid>/status.
func tracerPID(status []byte) (int, error) {
	scanner := bufio.NewScanner(bytes.NewReader(status))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || key != "TracerPid" {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("parsing TracerPid %q: %w", value, err)
		}
		return pid, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, errors.New("TracerPid not found")
}

// parsePowerSupplyStatus maps the status attribute of a /sys/class/power_supply entry.
func parsePowerSupplyStatus(status string) PowerState {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "charging":
		return PowerCharging
	case "full":
		return PowerFull
	case "discharging", "not charging":
		return PowerUnplugged
	default:
		return PowerUnknown
	}
}
