// Package version derives the binary's identity from build metadata:
// an -ldflags override wins, then the VCS stamp in debug.BuildInfo, then
// the "dev" fallback used by go test and non-git builds.
package version

import "runtime/debug"

// AppName identifies the service in version strings and user agents.
const AppName = "aura"

// commit may be injected at build time with
// -ldflags "-X github.com/johnazariah/aura-sub009/pkg/version.commit=<sha>"
// for container builds where no .git directory is present.
var commit string

// GitCommit is the short commit hash, with a -dirty suffix when the tree
// had local modifications at build time.
var GitCommit = resolve()

func resolve() string {
	if commit != "" {
		return short(commit)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "dev"
	}
	if dirty {
		return short(rev) + "-dirty"
	}
	return short(rev)
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "aura/<commit>" for user-agent strings and logs.
func Full() string {
	return AppName + "/" + GitCommit
}
