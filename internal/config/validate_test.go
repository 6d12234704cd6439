package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, Validate(&cfg))
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Defaults()
	cfg.Logging.Level = "verbose"
	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "logging.level", issues[0].Path)
}

func TestValidate_InvalidStyle(t *testing.T) {
	cfg := Defaults()
	cfg.Logging.Style = "compact"
	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "logging.style", issues[0].Path)
}

func TestValidate_IconURL(t *testing.T) {
	cfg := Defaults()
	cfg.Defaults.IconURL = "https://example.com/icon.png"
	assert.Empty(t, Validate(&cfg))

	cfg.Defaults.IconURL = "not a url"
	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "defaults.iconUrl", issues[0].Path)
	assert.Contains(t, issues[0].Message, "invalid url")
}

func TestValidate_IconEmoji(t *testing.T) {
	tests := []struct {
		emoji string
		valid bool
	}{
		{":rocket:", true},
		{":+1:", true},
		{"rocket", false},
		{"::", false},
		{":rocket", false},
	}
	for _, tt := range tests {
		t.Run(tt.emoji, func(t *testing.T) {
			cfg := Defaults()
			cfg.Defaults.IconEmoji = tt.emoji
			issues := Validate(&cfg)
			if tt.valid {
				assert.Empty(t, issues)
			} else {
				require.Len(t, issues, 1)
				assert.Equal(t, "defaults.iconEmoji", issues[0].Path)
			}
		})
	}
}

func TestValidate_MultipleIssues(t *testing.T) {
	cfg := Defaults()
	cfg.Logging.Level = "loud"
	cfg.Defaults.IconURL = "/relative"
	cfg.Defaults.IconEmoji = "x"
	assert.Len(t, Validate(&cfg), 3)
}

func TestValidationIssueString(t *testing.T) {
	issue := ValidationIssue{Path: "logging.level", Message: "bad"}
	assert.Equal(t, "logging.level: bad", issue.String())
}
