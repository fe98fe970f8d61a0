package common

import "runtime"

func IsAndroid() bool {
	return runtime.GOOS == "android"
}

func IsIOS() bool {
	return runtime.GOOS == "ios"
}

func IsMobile() bool {
	return IsAndroid() || IsIOS()
}

// Platform returns a display name for the OS: android, ios, linux, macos, windows or unknown.
func Platform() string {
	return platformName(runtime.GOOS)
}

func platformName(goos string) string {
	switch goos {
	case "android", "ios", "linux", "windows":
		return goos
	case "darwin":
		return "macos"
	}
	return "unknown"
}
