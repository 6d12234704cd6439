package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/soyeahso/slackhook/internal/slack"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	validLogLevels := []string{"silent", "fatal", "error", "warn", "info", "debug", "trace"}
	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	validStyles := []string{"pretty", "json"}
	if cfg.Logging.Style != "" && !slices.Contains(validStyles, cfg.Logging.Style) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.style",
			Message: fmt.Sprintf("must be one of %v, got %q", validStyles, cfg.Logging.Style),
		})
	}

	if cfg.Defaults.IconURL != "" {
		if _, err := slack.ParseURL(cfg.Defaults.IconURL); err != nil {
			issues = append(issues, ValidationIssue{
				Path:    "defaults.iconUrl",
				Message: err.Error(),
			})
		}
	}

	if e := cfg.Defaults.IconEmoji; e != "" && !(len(e) > 2 && strings.HasPrefix(e, ":") && strings.HasSuffix(e, ":")) {
		issues = append(issues, ValidationIssue{
			Path:    "defaults.iconEmoji",
			Message: fmt.Sprintf("must look like :name:, got %q", e),
		})
	}

	return issues
}
