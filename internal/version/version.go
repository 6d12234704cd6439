package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags at build time:
//
//	go build -ldflags "-X github.com/soyeahso/slackhook/internal/version.Version=1.0.0
//	  -X github.com/soyeahso/slackhook/internal/version.Commit=abc123"
var (
	Version = "dev"
	Commit  = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info returns a formatted version string. Without ldflags, the module
// version and VCS revision recorded by the Go toolchain are used.
func Info() string {
	v, c := Version, Commit
	if bi, ok := readBuildInfo(); ok {
		if v == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
		if c == "unknown" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}
	return fmt.Sprintf("slackhook %s (commit: %s, %s, %s/%s)",
		v, short(c), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func short(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
