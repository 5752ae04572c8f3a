// Package build describes the running binary.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders a one-line version banner.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" || commit == "unknown" {
		return fmt.Sprintf("chatshell %s (%s)", version, i.GoVersion)
	}
	return fmt.Sprintf("chatshell %s (%s, built %s, %s)", version, commit, i.BuildDate, i.GoVersion)
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/chatshell"
}
