//go:build !debug

package probe

// debugBuild is flipped by building with -tags debug.
const debugBuild = false
