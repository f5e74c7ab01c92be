// Package build provides variables that are set at build-time with the -X
// ldflag:
//
//	go build -ldflags "-X github.com/lone-faerie/uconv/internal/build.version=v1.0.0"
//
// Values not given at build-time are read from [debug.BuildInfo].
package build

import (
	"regexp"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	version   string
	buildTime string
)

var once sync.Once

var semverRE = regexp.MustCompile(`v?\d+(\.\d+){0,2}`)

func semver(v string) string {
	loc := semverRE.FindStringIndex(v)
	if loc == nil {
		return v
	}
	return v[loc[0]:loc[1]]
}

func load() {
	if version != "" {
		version = semver(version)
	}
	defer func() { buildTime = utcOffset(buildTime) }()
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "" {
		version = info.Main.Version
	}
	if buildTime != "" {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.time" {
			buildTime = s.Value
			break
		}
	}
}

// utcOffset replaces a trailing "Z" of an RFC 3339 time with "+00:00".
func utcOffset(t string) string {
	if s, ok := strings.CutSuffix(t, "Z"); ok {
		return s + "+00:00"
	}
	return t
}

// Version returns the module version, or "(devel)" for builds outside of
// a module download.
func Version() string {
	once.Do(load)
	if version == "" {
		return "(devel)"
	}
	return version
}

// BuildTime returns the commit time of the build, if known. It is shown by
// --version.
func BuildTime() string {
	once.Do(load)
	return buildTime
}
