package common

const (
	Name    = "buildenv"
	Version = "0.3.0"

	// filenames
	LogFileName    = "buildenv.log"
	ConfigFileName = "buildenv.json"
)
