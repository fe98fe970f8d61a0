//go:build !ios && !android

package probe

func isSimulator() bool {
	return false
}
