package config

// Config is the root configuration for slackhook.
type Config struct {
	Defaults MessageDefaults `yaml:"defaults,omitempty"`
	Logging  LoggingConfig   `yaml:"logging,omitempty"`
}

// MessageDefaults are applied to a rendered payload wherever the message
// document leaves the value unset.
type MessageDefaults struct {
	Channel   string `yaml:"channel,omitempty"`
	Username  string `yaml:"username,omitempty"`
	IconEmoji string `yaml:"iconEmoji,omitempty"`
	IconURL   string `yaml:"iconUrl,omitempty"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "trace" | "debug" | "info" | "warn" | "error" | "fatal" | "silent"
	Style string `yaml:"style,omitempty"` // "pretty" | "json"
}
