package probe

// CoreSimulator exports these into every process it launches.
var simulatorEnvVars = []string{"SIMULATOR_DEVICE_NAME", "SIMULATOR_UDID"}

// Device nodes created by the qemu-based Android emulator.
var emulatorDeviceMarkers = []string{"/dev/qemu_pipe", "/dev/goldfish_pipe"}

// isSimulatorEnv reports an iOS simulator process: an x86-64 binary can only run in the simulator,
// and arm64 simulator processes are recognised by the variables CoreSimulator sets.
func isSimulatorEnv(goarch string, lookup func(string) (string, bool)) bool {
	if goarch == "amd64" {
		return true
	}
	for _, key := range simulatorEnvVars {
		if _, ok := lookup(key); ok {
			return true
		}
	}
	return false
}

// isEmulator reports an Android emulator from the virtualization role and the emulator's device
// nodes. gopsutil leaves the system empty for some hypervisors, so the role alone decides.
func isEmulator(role string, exists func(string) bool) bool {
	if role == "guest" {
		return true
	}
	for _, path := range emulatorDeviceMarkers {
		if exists(path) {
			return true
		}
	}
	return false
}
