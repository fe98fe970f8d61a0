//go:build android

package probe

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

const virtualizationTimeout = 2 * time.Second

// isSimulator detects the qemu-based emulator, either through the virtualization role gopsutil
// derives from /proc or through the emulator's device nodes.
func isSimulator() bool {
	ctx, cancel := context.WithTimeout(context.Background(), virtualizationTimeout)
	defer cancel()
	_, role, err := host.VirtualizationWithContext(ctx)
	if err != nil {
		slog.Debug("Unable to detect virtualization", "error", err)
	}
	return isEmulator(role, fileExists)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
