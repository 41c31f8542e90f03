// Package fileutil provides the filesystem probes shared by the
// validation checkers.
package fileutil

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CheckDir verifies that path exists, is a directory, and is listable.
func CheckDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("does not exist")
		}
		return fmt.Errorf("stat: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("is not a directory")
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("insufficient permissions: %w", err)
	}
	return nil
}

// CheckFile verifies that path exists and is a regular file.
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("does not exist")
		}
		return fmt.Errorf("stat: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("is not a regular file")
	}
	return nil
}

// FileExists reports whether path names a regular file.
func FileExists(path string) bool {
	return CheckFile(path) == nil
}
