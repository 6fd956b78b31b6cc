package info

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	name    = "icongen"
	license = "GPLv3"

	// Set via -ldflags "-X github.com/safing/icongen/base/info.version=v1.2.3".
	version   = "dev build"
	buildTime = "unknown"

	info     *Info
	loadInfo sync.Once
)

// Info holds the programs meta information.
type Info struct {
	Name          string
	Version       string
	VersionNumber string
	License       string

	BuildTime string
	GoVersion string

	Commit     string
	CommitTime string
	Dirty      bool
}

// Set sets meta information via the main routine. This should be the first thing your program calls.
func Set(setName string, setVersion string, setLicenseName string) {
	if setName != "" {
		name = setName
	}
	if setLicenseName != "" {
		license = setLicenseName
	}
	if setVersion != "" {
		version = setVersion
	}
}

// GetInfo returns all the meta information about the program.
func GetInfo() *Info {
	loadInfo.Do(func() {
		buildSettings := make(map[string]string)
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range buildInfo.Settings {
				buildSettings[setting.Key] = setting.Value
			}
		}

		v := strings.TrimSpace(strings.TrimPrefix(version, "v"))
		number := strings.TrimSpace(strings.TrimSuffix(v, "dev build"))
		if number == "" {
			number = "0.0.0"
		}
		// Mark builds from a modified work tree.
		if buildSettings["vcs.modified"] == "true" && !strings.HasSuffix(v, "dev build") {
			v += " dev build"
		}

		info = &Info{
			Name:          name,
			Version:       v,
			VersionNumber: number,
			License:       license,
			BuildTime:     buildTime,
			GoVersion:     runtime.Version(),
			Commit:        buildSettings["vcs.revision"],
			CommitTime:    buildSettings["vcs.time"],
			Dirty:         buildSettings["vcs.modified"] == "true",
		}

		if info.Commit == "" {
			info.Commit = "unknown"
		}
		if info.CommitTime == "" {
			info.CommitTime = "unknown"
		}
	})

	return info
}

// FullVersion returns the full and detailed version string.
func FullVersion() string {
	info := GetInfo()
	builder := new(strings.Builder)

	builder.WriteString(fmt.Sprintf("%s %s\n", info.Name, info.Version))
	builder.WriteString(fmt.Sprintf("\nbuilt with %s for %s/%s\n", info.GoVersion, runtime.GOOS, runtime.GOARCH))
	builder.WriteString(fmt.Sprintf("  at %s\n", info.BuildTime))

	dirtyInfo := "clean"
	if info.Dirty {
		dirtyInfo = "dirty"
	}
	builder.WriteString(fmt.Sprintf("\ncommit %s (%s)\n", info.Commit, dirtyInfo))
	builder.WriteString(fmt.Sprintf("  at %s\n", info.CommitTime))

	builder.WriteString(fmt.Sprintf("\nLicensed under the %s license.", info.License))

	return builder.String()
}
