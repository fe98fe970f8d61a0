//go:build ios

package probe

import (
	"os"
	"runtime"
)

func isSimulator() bool {
	return isSimulatorEnv(runtime.GOARCH, os.LookupEnv)
}
