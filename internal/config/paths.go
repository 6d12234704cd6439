package config

import (
	"os"
	"path/filepath"
)

const defaultBaseDir = ".slackhook"

// Paths holds resolved filesystem paths for slackhook.
type Paths struct {
	Base   string // ~/.slackhook
	Config string // ~/.slackhook/config.yaml
}

// ResolvePaths computes the standard paths from the home directory.
// If SLACKHOOK_HOME is set, it overrides the default base directory.
func ResolvePaths() (Paths, error) {
	base := os.Getenv("SLACKHOOK_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		base = filepath.Join(home, defaultBaseDir)
	}

	return Paths{
		Base:   base,
		Config: filepath.Join(base, "config.yaml"),
	}, nil
}
