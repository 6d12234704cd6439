package cli

import (
	"errors"
	"fmt"

	"github.com/soyeahso/slackhook/internal/message"
	"github.com/soyeahso/slackhook/internal/slack"
	"github.com/soyeahso/slackhook/internal/wire"
	"github.com/spf13/cobra"
)

// buildPayload loads the document and merges configured defaults.
func buildPayload(path string, noDefaults bool) (slack.Payload, error) {
	p, err := message.Load(path)
	if err != nil {
		return p, err
	}
	if !noDefaults {
		if p, err = message.ApplyDefaults(p, cfg.Defaults); err != nil {
			return p, err
		}
	}
	if p.IconURL != nil && p.IconEmoji != nil {
		log.Warn().Str("file", path).Msg("both icon_url and icon_emoji are set; Slack will honor only one")
	}
	return p, nil
}

func encodeBody(p slack.Payload, pretty bool) ([]byte, error) {
	if pretty {
		return slack.EncodeJSON(p, "  ")
	}
	return slack.EncodeJSON(p, "")
}

func newRenderCmd() *cobra.Command {
	var (
		pretty     bool
		noDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print the webhook JSON body for a message document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rlog := log.Sub("render")

			p, err := buildPayload(args[0], noDefaults)
			if err != nil {
				printIssues(cmd, err)
				return err
			}

			body, err := encodeBody(p, pretty)
			if err != nil {
				return err
			}
			rlog.Debug().Str("file", args[0]).Int("keys", len(p.Map())).Int("bytes", len(body)).Msg("rendered payload")

			fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVar(&noDefaults, "no-defaults", false, "do not apply configured channel, username and icon defaults")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var noDefaults bool

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check message documents and their rendered JSON against the webhook schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vlog := log.Sub("validate")

			var failed int
			for _, path := range args {
				err := validateFile(path, noDefaults)
				if err != nil {
					failed++
					vlog.Error().Err(err).Str("file", path).Msg("invalid message")
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", path)
					printIssues(cmd, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d message(s) invalid", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDefaults, "no-defaults", false, "do not apply configured channel, username and icon defaults")

	return cmd
}

func validateFile(path string, noDefaults bool) error {
	p, err := buildPayload(path, noDefaults)
	if err != nil {
		return err
	}
	body, err := encodeBody(p, false)
	if err != nil {
		return err
	}
	if err := wire.Validate(body); err != nil {
		return fmt.Errorf("%s: rendered body fails schema: %w", path, err)
	}
	return nil
}

// printIssues lists each collected validation issue on stderr.
func printIssues(cmd *cobra.Command, err error) {
	var verr *message.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, is := range verr.Issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", is)
	}
}
