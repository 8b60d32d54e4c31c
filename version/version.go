// Package version provides build version information embedding.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
)

// Short returns a short version string such as "dev-1a2b3c4".
func Short() string {
	commit := GitCommit
	if commit == "" {
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range buildInfo.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
					break
				}
			}
		}
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit != "" {
		return fmt.Sprintf("%s-%s", Version, commit)
	}
	return Version
}
