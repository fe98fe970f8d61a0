//go:build darwin

package probe

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// pTraced is P_TRACED from <sys/proc.h>.
const pTraced = 0x00000800

func debuggerAttached() (bool, error) {
	info, err := unix.SysctlKinfoProc("kern.proc.pid", os.Getpid())
	if err != nil {
		return false, fmt.Errorf("sysctl kern.proc.pid: %w", err)
	}
	return info.Proc.P_flag&pTraced != 0, nil
}
