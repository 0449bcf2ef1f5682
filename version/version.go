package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
	GoVersion = ""
)

// Info describes the running idpcall binary.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date,omitempty"`
	Dirty     bool      `json:"dirty,omitempty"`
}

// Get collects build information from the ldflags variables, falling back
// to the VCS settings embedded by the Go toolchain.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.GoVersion == "" {
		info.GoVersion = bi.GoVersion
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		case "vcs.time":
			if info.BuildDate.IsZero() {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.BuildDate = t
				}
			}
		}
	}
	return info
}

// Release reports whether the binary was built from a tagged, clean tree.
func (i Info) Release() bool {
	return i.Version != "dev" && !i.Dirty && !strings.Contains(i.Version, "dirty")
}

// Short returns "<version>[-<commit7>][-dirty]".
func (i Info) Short() string {
	parts := []string{i.Version}
	if i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		parts = append(parts, commit)
	}
	if i.Dirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

// String is the multi-line form printed by `idpcall version`.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "version:    %s\n", i.Short())
	if i.GoVersion != "" {
		fmt.Fprintf(&b, "go version: %s\n", i.GoVersion)
	}
	if !i.BuildDate.IsZero() {
		fmt.Fprintf(&b, "built:      %s\n", i.BuildDate.UTC().Format(time.RFC3339))
	}
	return b.String()
}

// Fields returns the build info as structured log fields.
func (i Info) Fields() map[string]interface{} {
	f := map[string]interface{}{
		"version": i.Short(),
		"release": i.Release(),
	}
	if i.GoVersion != "" {
		f["go_version"] = i.GoVersion
	}
	return f
}
