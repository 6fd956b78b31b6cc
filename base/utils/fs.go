package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
)

const isWindows = runtime.GOOS == "windows"

// ErrNotADirectory is returned when a directory is required but a file exists
// at its place.
var ErrNotADirectory = errors.New("exists and is not a directory")

// EnsureDirectory ensures that the given directory and all of its missing
// parents exist. Directories created by this call get the given permissions.
// Existing directories are left as they are.
// If path or one of its parents exists but is not a directory, ErrNotADirectory
// is returned and nothing is changed.
func EnsureDirectory(path string, perm FSPermission) error {
	f, err := os.Stat(path)
	if err == nil {
		if f.IsDir() {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	// ENOTDIR means a parent is a file, which the parent check reports.
	if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	// Create parents first.
	parent := filepath.Dir(path)
	if parent != path && parent != "." {
		if err := EnsureDirectory(parent, perm); err != nil {
			return err
		}
	}

	err = os.Mkdir(path, perm.AsUnixDirExecPermission())
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("could not create dir %s: %w", path, err)
	}
	err = SetDirPermission(path, perm)
	// Ignore windows permission error. For none admin users it will always fail.
	if !isWindows {
		return err
	}
	return nil
}

// EnsureParentDirectory ensures that the directory containing the given file
// path exists.
func EnsureParentDirectory(filePath string, perm FSPermission) error {
	dir := filepath.Dir(filePath)
	if dir == "." {
		return nil
	}
	return EnsureDirectory(dir, perm)
}

// PathExists returns whether the given path (file or dir) exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || errors.Is(err, fs.ErrExist)
}
