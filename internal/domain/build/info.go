// Package build describes the binary being run.
package build

import "fmt"

const repoURL = "https://github.com/bnema/tabcast"

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
	s := "tabcast " + version
	if i.Commit != "" {
		s += fmt.Sprintf(" (%s", shortCommit(i.Commit))
		if i.BuildDate != "" {
			s += ", " + i.BuildDate
		}
		s += ")"
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return repoURL
}
