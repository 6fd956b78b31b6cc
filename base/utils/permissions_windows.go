//go:build windows

package utils

import (
	"github.com/hectane/go-acl"
	"golang.org/x/sys/windows"
)

// SetDirPermission sets the permission of a directory.
func SetDirPermission(path string, perm FSPermission) error {
	if perm == PublicReadPermission {
		// Set admin rights and read/execute rights for users, remove all others.
		_ = acl.Apply(path, true, false, acl.GrantName(windows.GENERIC_ALL|windows.STANDARD_RIGHTS_ALL, "Administrators"))
		_ = acl.Apply(path, false, false, acl.GrantName(windows.GENERIC_EXECUTE, "Users"))
		_ = acl.Apply(path, false, false, acl.GrantName(windows.GENERIC_READ, "Users"))
	}
	return nil
}
