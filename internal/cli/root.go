package cli

import (
	"fmt"
	"strings"

	"github.com/soyeahso/slackhook/internal/config"
	"github.com/soyeahso/slackhook/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	envFile  string
	logLevel string

	// loaded at init time
	paths config.Paths
	cfg   config.Config
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slackhook",
		Short: "slackhook — build and check Slack webhook payloads",
		Long:  "slackhook turns YAML message documents into validated Slack incoming-webhook JSON bodies.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}
			cfg, err = config.Load(paths.Config)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = strings.ToLower(logLevel)
			}
			if issues := config.Validate(&cfg); len(issues) > 0 {
				msgs := make([]string, 0, len(issues))
				for _, is := range issues {
					msgs = append(msgs, is.String())
				}
				return &config.ConfigError{Message: fmt.Sprintf("%s: %s", paths.Config, strings.Join(msgs, "; "))}
			}
			log = logging.New(nil, cfg.Logging.Level, cfg.Logging.Style)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.slackhook/config.yaml)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before config")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
