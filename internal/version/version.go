package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/kbforms/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/kbforms/internal/version.Commit=abc123"
//
// Otherwise they are filled from the VCS stamp of the build, falling back to
// "dev" and "unknown".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		version, commit := fromBuildInfo(debug.ReadBuildInfo())
		if Version == "" {
			Version = version
		}
		if Commit == "" {
			Commit = commit
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo extracts a module version and short commit hash.
func fromBuildInfo(info *debug.BuildInfo, ok bool) (string, string) {
	if !ok || info == nil {
		return "", ""
	}

	var version, commit string
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}

	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit != "" && modified {
		commit += "-dirty"
	}
	return version, commit
}

// Full returns the full version string including commit and platform
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s/%s)", Version, Commit, runtime.GOOS, runtime.GOARCH)
}
