package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestInfoDefault(t *testing.T) {
	stubBuildInfo(t, nil)
	info := Info()
	assert.Contains(t, info, "slackhook dev")
	assert.Contains(t, info, "commit: unknown")
	assert.Contains(t, info, runtime.GOOS)
	assert.Contains(t, info, runtime.GOARCH)
	assert.Contains(t, info, runtime.Version())
}

func TestInfoWithLdflags(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}})

	Version = "1.2.3"
	Commit = "abc1234567890"

	info := Info()
	assert.Contains(t, info, "1.2.3")
	assert.NotContains(t, info, "v9.9.9")
	assert.Contains(t, info, "abc1234")
	assert.NotContains(t, info, "abc1234567890")
}

func TestInfoFromBuildInfo(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
	})

	info := Info()
	assert.Contains(t, info, "slackhook v0.3.0")
	assert.Contains(t, info, "commit: 0123456")
}

func TestInfoDevelBuild(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Contains(t, Info(), "slackhook dev ")
}

func TestShort(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abcdefghij", "abcdefg"},
		{"abc1234", "abc1234"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, short(tt.input))
		})
	}
}
