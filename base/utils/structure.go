package utils

import "io/fs"

// FSPermission describes who may access a created file or directory.
type FSPermission uint8

// PublicReadPermission lets the owner write and everyone else read.
const PublicReadPermission FSPermission = 1

// AsUnixDirExecPermission return the corresponding unix permission for a directory or executable.
func (perm FSPermission) AsUnixDirExecPermission() fs.FileMode {
	if perm == PublicReadPermission {
		return 0o755
	}
	return 0
}

// AsUnixFilePermission return the corresponding unix permission for a regular file.
func (perm FSPermission) AsUnixFilePermission() fs.FileMode {
	if perm == PublicReadPermission {
		return 0o644
	}
	return 0
}
