//go:build debug

package probe

const debugBuild = true
