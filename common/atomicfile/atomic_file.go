// Package atomicfile provides functions to read and write files atomically.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// WriteFile writes data to filename by writing a temporary file in the same directory and renaming
// it over the target, so readers never observe a partial file. Missing parent directories are
// created.
func WriteFile(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if runtime.GOOS != "windows" {
		if err = f.Chmod(perm); err != nil {
			return err
		}
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// os.Rename will fail on Windows if the target file already exists so we remove it first.
	if runtime.GOOS == "windows" {
		_ = os.Remove(filename)
	}
	return os.Rename(f.Name(), filename)
}

// ReadFile reads filename. Files written with WriteFile are always read whole.
func ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}
